package parser

import (
	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
)

// dynRM is the dynamic-rounding-mode encoding (0b111); this dialect has
// no syntax for an explicit rounding-mode operand.
const dynRM = 0b111

var fr3Mnemonics = map[string]bool{"fadd.s": true, "fsub.s": true, "fmul.s": true, "fdiv.s": true}
var frCmpMnemonics = map[string]bool{"feq.s": true, "flt.s": true, "fle.s": true}
var frFpOnlyMnemonics = map[string]bool{"fsgnj.s": true, "fsgnjn.s": true, "fsgnjx.s": true, "fmin.s": true, "fmax.s": true}
var frToIntMnemonics = map[string]bool{"fcvt.w.s": true, "fcvt.wu.s": true, "fcvt.l.s": true, "fcvt.lu.s": true, "fmv.x.w": true, "fclass.s": true}
var frFromIntMnemonics = map[string]bool{"fcvt.s.w": true, "fcvt.s.wu": true, "fcvt.s.l": true, "fcvt.s.lu": true, "fmv.w.x": true}
var fmaMnemonics = map[string]bool{"fmadd.s": true, "fmsub.s": true, "fnmsub.s": true, "fnmadd.s": true}

var rv64OnlyFCvt = map[string]bool{"fcvt.l.s": true, "fcvt.lu.s": true, "fcvt.s.l": true, "fcvt.s.lu": true}

// tryParseRVF handles the single-precision F-extension.
func tryParseRVF(mnem string, ops []string, xlen riscv.Xlen) (instruction.Instruction, bool, error) {
	if rv64OnlyFCvt[mnem] {
		if err := xlenGate(xlen, riscv.X64, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
	}
	switch {
	case mnem == "flw":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, offset(rs1)")
		}
		rd, err := parseFPRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		off, rs1, err := parseMemOperand(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := riscv.SignedImm(off, 12)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVF, Mnemonic: mnem,
			Format: instruction.IType{Rd: rd, Rs1: rs1, Imm: imm}}, true, nil

	case mnem == "fsw":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rs2, offset(rs1)")
		}
		rs2, err := parseFPRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		off, rs1, err := parseMemOperand(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := riscv.SignedImm(off, 12)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVF, Mnemonic: mnem,
			Format: instruction.SType{Rs1: rs1, Rs2: rs2, Imm: imm}}, true, nil

	case fmaMnemonics[mnem]:
		if len(ops) != 4 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs1, rs2, rs3")
		}
		regs := make([]uint8, 4)
		for i, op := range ops {
			r, err := parseFPRegister(op)
			if err != nil {
				return instruction.Instruction{}, true, err
			}
			regs[i] = r
		}
		return instruction.Instruction{Group: instruction.RVF, Mnemonic: mnem,
			Format: instruction.R4Type{Rd: regs[0], Rs1: regs[1], Rs2: regs[2], Rs3: regs[3], Rm: dynRM}}, true, nil

	case mnem == "fsqrt.s":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs1")
		}
		rd, err := parseFPRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs1, err := parseFPRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVF, Mnemonic: mnem,
			Format: instruction.FRType{Rd: rd, Rs1: rs1, Rm: dynRM}}, true, nil

	case fr3Mnemonics[mnem] || frFpOnlyMnemonics[mnem]:
		if len(ops) != 3 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs1, rs2")
		}
		rd, err := parseFPRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs1, err := parseFPRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs2, err := parseFPRegister(ops[2])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVF, Mnemonic: mnem,
			Format: instruction.FRType{Rd: rd, Rs1: rs1, Rs2: rs2, Rm: dynRM}}, true, nil

	case frCmpMnemonics[mnem]:
		if len(ops) != 3 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs1, rs2")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs1, err := parseFPRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs2, err := parseFPRegister(ops[2])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVF, Mnemonic: mnem,
			Format: instruction.FRType{Rd: rd, Rs1: rs1, Rs2: rs2, Rm: dynRM}}, true, nil

	case frToIntMnemonics[mnem]:
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs1")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs1, err := parseFPRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVF, Mnemonic: mnem,
			Format: instruction.FRType{Rd: rd, Rs1: rs1, Rm: dynRM}}, true, nil

	case frFromIntMnemonics[mnem]:
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs1")
		}
		rd, err := parseFPRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs1, err := parseRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVF, Mnemonic: mnem,
			Format: instruction.FRType{Rd: rd, Rs1: rs1, Rm: dynRM}}, true, nil
	}
	return instruction.Instruction{}, false, nil
}
