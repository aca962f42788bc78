package parser

import (
	"strings"

	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
)

var atomicBases = map[string]bool{
	"lr": true, "sc": true, "amoswap": true, "amoadd": true, "amoxor": true,
	"amoand": true, "amoor": true, "amomin": true, "amomax": true, "amominu": true, "amomaxu": true,
}

// tryParseAtomic handles the A-extension's lr/sc/amo* family. The
// dialect has no .aq/.rl ordering suffixes (a mnemonic carrying one is
// not recognised): Aq and Rl are always parsed as false, matching the
// uniform rendering this translator emits (see DESIGN.md Open Question 3).
func tryParseAtomic(mnem string, ops []string, xlen riscv.Xlen) (instruction.Instruction, bool, error) {
	idx := strings.LastIndexByte(mnem, '.')
	if idx < 0 {
		return instruction.Instruction{}, false, nil
	}
	base, width := mnem[:idx], mnem[idx+1:]
	if !atomicBases[base] {
		return instruction.Instruction{}, false, nil
	}

	var group instruction.Group
	switch width {
	case "w":
		group = instruction.RV32A
	case "d":
		if xlen == riscv.X32 {
			return instruction.Instruction{}, true, errf(mnem, "not available on rv32")
		}
		group = instruction.RV64A
	case "q":
		if xlen != riscv.X128 {
			return instruction.Instruction{}, true, errf(mnem, "only available on rv128")
		}
		group = instruction.RV128A
	default:
		return instruction.Instruction{}, false, nil
	}

	if base == "lr" {
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, (rs1)")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		_, rs1, err := parseMemOperand("0" + ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: group, Mnemonic: mnem,
			Format: instruction.Atomic{Rd: rd, Rs1: rs1}}, true, nil
	}

	if len(ops) != 3 {
		return instruction.Instruction{}, true, errf(mnem, "expects rd, rs2, (rs1)")
	}
	rd, err := parseRegister(ops[0])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	rs2, err := parseRegister(ops[1])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	_, rs1, err := parseMemOperand("0" + ops[2])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	return instruction.Instruction{Group: group, Mnemonic: mnem,
		Format: instruction.Atomic{Rd: rd, Rs1: rs1, Rs2: rs2}}, true, nil
}
