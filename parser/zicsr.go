package parser

import "github.com/bbbbbq/riscv-online/instruction"

var csrRegMnemonics = map[string]bool{"csrrw": true, "csrrs": true, "csrrc": true}
var csrImmMnemonics = map[string]bool{"csrrwi": true, "csrrsi": true, "csrrci": true}

// tryParseZicsr handles the two CSR instruction forms: register (rd,
// csr, rs1) and immediate (rd, csr, 5-bit uimm).
func tryParseZicsr(mnem string, ops []string) (instruction.Instruction, bool, error) {
	switch {
	case csrRegMnemonics[mnem]:
		if len(ops) != 3 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, csr, rs1")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		csr, err := parseUnsignedImm(ops[1], 12)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs1, err := parseRegister(ops[2])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVZicsr, Mnemonic: mnem,
			Format: instruction.CsrRType{Rd: rd, Rs1: rs1, Csr: csr}}, true, nil

	case csrImmMnemonics[mnem]:
		if len(ops) != 3 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, csr, uimm")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		csr, err := parseUnsignedImm(ops[1], 12)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		uimm, err := parseUnsignedImm(ops[2], 5)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVZicsr, Mnemonic: mnem,
			Format: instruction.CsrIType{Rd: rd, Uimm: uimm, Csr: csr}}, true, nil
	}
	return instruction.Instruction{}, false, nil
}
