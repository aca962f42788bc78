package parser

import "github.com/bbbbbq/riscv-online/instruction"

// tryParseSystem handles ecall/ebreak/fence/fence.i, none of which take
// operands in the restricted dialect this parser targets.
func tryParseSystem(mnem string, ops []string) (instruction.Instruction, bool, error) {
	switch mnem {
	case "ecall", "ebreak", "fence":
		if len(ops) != 0 {
			return instruction.Instruction{}, true, errf(mnem, "takes no operands")
		}
		return instruction.Instruction{Group: instruction.RV32I, Mnemonic: mnem, Format: instruction.SystemType{}}, true, nil
	case "fence.i", "fencei":
		if len(ops) != 0 {
			return instruction.Instruction{}, true, errf(mnem, "takes no operands")
		}
		return instruction.Instruction{Group: instruction.RV32I, Mnemonic: "fence.i", Format: instruction.SystemType{}}, true, nil
	}
	return instruction.Instruction{}, false, nil
}
