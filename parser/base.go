package parser

import (
	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
)

var uTypeMnemonics = map[string]bool{"lui": true, "auipc": true}

var branchMnemonics = map[string]bool{
	"beq": true, "bne": true, "blt": true, "bge": true, "bltu": true, "bgeu": true,
}

var loadMnemonics = map[string]riscv.Xlen{
	"lb": riscv.X32, "lh": riscv.X32, "lw": riscv.X32, "lbu": riscv.X32, "lhu": riscv.X32,
	"ld": riscv.X64, "lwu": riscv.X64,
}

var storeMnemonics = map[string]riscv.Xlen{
	"sb": riscv.X32, "sh": riscv.X32, "sw": riscv.X32, "sd": riscv.X64,
}

var opImmMnemonics = map[string]riscv.Xlen{
	"addi": riscv.X32, "slti": riscv.X32, "sltiu": riscv.X32, "xori": riscv.X32,
	"ori": riscv.X32, "andi": riscv.X32, "addiw": riscv.X64,
}

var shiftImmMnemonics = map[string]riscv.Xlen{
	"slli": riscv.X32, "srli": riscv.X32, "srai": riscv.X32,
	"slliw": riscv.X64, "srliw": riscv.X64, "sraiw": riscv.X64,
}

var opMnemonics = map[string]riscv.Xlen{
	"add": riscv.X32, "sub": riscv.X32, "sll": riscv.X32, "slt": riscv.X32, "sltu": riscv.X32,
	"xor": riscv.X32, "srl": riscv.X32, "sra": riscv.X32, "or": riscv.X32, "and": riscv.X32,
	"mul": riscv.X32, "mulh": riscv.X32, "mulhsu": riscv.X32, "mulhu": riscv.X32,
	"div": riscv.X32, "divu": riscv.X32, "rem": riscv.X32, "remu": riscv.X32,
	"addw": riscv.X64, "subw": riscv.X64, "sllw": riscv.X64, "srlw": riscv.X64, "sraw": riscv.X64,
	"mulw": riscv.X64, "divw": riscv.X64, "divuw": riscv.X64, "remw": riscv.X64, "remuw": riscv.X64,
}

// tryParseBase attempts to parse mnem as an RV32I/RV64I/M-extension
// mnemonic. It returns ok=false (no error) when mnem belongs to another
// family, so the caller can fall through to the next try-parser, mirroring
// the Rust parse/rv_i.rs try_parse convention.
func tryParseBase(mnem string, ops []string, xlen riscv.Xlen) (instruction.Instruction, bool, error) {
	switch {
	case uTypeMnemonics[mnem]:
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, imm20")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := parseSignedImm(ops[1], 20)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RV32I, Mnemonic: mnem, Format: instruction.UType{Rd: rd, Imm: imm}}, true, nil

	case mnem == "jal":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, offset")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := parseSignedImm(ops[1], 21)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if imm.SignExtend()%2 != 0 {
			return instruction.Instruction{}, true, errf(mnem, "offset must be 2-byte aligned")
		}
		return instruction.Instruction{Group: instruction.RV32I, Mnemonic: mnem, Format: instruction.JType{Rd: rd, Imm: imm}}, true, nil

	case mnem == "jalr":
		if len(ops) == 2 {
			rd, err := parseRegister(ops[0])
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
			return instruction.Instruction{Group: instruction.RV32I, Mnemonic: mnem,
				Format: instruction.IType{Rd: rd, Rs1: rs1, Imm: imm}}, true, nil
		}
		if len(ops) == 3 {
			rd, err := parseRegister(ops[0])
			if err != nil {
				return instruction.Instruction{}, true, err
			}
			rs1, err := parseRegister(ops[1])
			if err != nil {
				return instruction.Instruction{}, true, err
			}
			imm, err := parseSignedImm(ops[2], 12)
			if err != nil {
				return instruction.Instruction{}, true, err
			}
			return instruction.Instruction{Group: instruction.RV32I, Mnemonic: mnem,
				Format: instruction.IType{Rd: rd, Rs1: rs1, Imm: imm}}, true, nil
		}
		return instruction.Instruction{}, true, errf(mnem, "expects rd, offset(rs1) or rd, rs1, offset")

	case branchMnemonics[mnem]:
		if len(ops) != 3 {
			return instruction.Instruction{}, true, errf(mnem, "expects rs1, rs2, offset")
		}
		rs1, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs2, err := parseRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := parseSignedImm(ops[2], 13)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if imm.SignExtend()%2 != 0 {
			return instruction.Instruction{}, true, errf(mnem, "offset must be 2-byte aligned")
		}
		return instruction.Instruction{Group: instruction.RV32I, Mnemonic: mnem,
			Format: instruction.BType{Rs1: rs1, Rs2: rs2, Imm: imm}}, true, nil

	case isLoad(mnem):
		need := loadMnemonics[mnem]
		if err := xlenGate(xlen, need, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, offset(rs1)")
		}
		rd, err := parseRegister(ops[0])
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
		group := instruction.RV32I
		if need == riscv.X64 {
			group = instruction.RV64I
		}
		return instruction.Instruction{Group: group, Mnemonic: mnem,
			Format: instruction.IType{Rd: rd, Rs1: rs1, Imm: imm}}, true, nil

	case isStore(mnem):
		need := storeMnemonics[mnem]
		if err := xlenGate(xlen, need, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rs2, offset(rs1)")
		}
		rs2, err := parseRegister(ops[0])
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
		group := instruction.RV32I
		if need == riscv.X64 {
			group = instruction.RV64I
		}
		return instruction.Instruction{Group: group, Mnemonic: mnem,
			Format: instruction.SType{Rs1: rs1, Rs2: rs2, Imm: imm}}, true, nil

	case isOpImm(mnem):
		need := opImmMnemonics[mnem]
		if err := xlenGate(xlen, need, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		if len(ops) != 3 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs1, imm")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs1, err := parseRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := parseSignedImm(ops[2], 12)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		group := instruction.RV32I
		if need == riscv.X64 {
			group = instruction.RV64I
		}
		return instruction.Instruction{Group: group, Mnemonic: mnem,
			Format: instruction.IType{Rd: rd, Rs1: rs1, Imm: imm}}, true, nil

	case isShiftImm(mnem):
		need := shiftImmMnemonics[mnem]
		if err := xlenGate(xlen, need, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		if len(ops) != 3 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs1, shamt")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs1, err := parseRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		shamt, err := parseInt(ops[2])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		max := int64(xlen.ShamtBits())
		if shamt < 0 || shamt >= (1<<uint(max)) {
			return instruction.Instruction{}, true, errf(mnem, "shift amount out of range")
		}
		group := instruction.RV32I
		if need == riscv.X64 {
			group = instruction.RV64I
		}
		return instruction.Instruction{Group: group, Mnemonic: mnem,
			Format: instruction.ShiftType{Rd: rd, Rs1: rs1, Shamt: uint8(shamt)}}, true, nil

	case isOp(mnem):
		need := opMnemonics[mnem]
		if err := xlenGate(xlen, need, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		if len(ops) != 3 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs1, rs2")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs1, err := parseRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs2, err := parseRegister(ops[2])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		group := instruction.RV32I
		if need == riscv.X64 {
			group = instruction.RV64I
		}
		return instruction.Instruction{Group: group, Mnemonic: mnem,
			Format: instruction.RType{Rd: rd, Rs1: rs1, Rs2: rs2}}, true, nil
	}

	return instruction.Instruction{}, false, nil
}

func isLoad(m string) bool       { _, ok := loadMnemonics[m]; return ok }
func isStore(m string) bool      { _, ok := storeMnemonics[m]; return ok }
func isOpImm(m string) bool      { _, ok := opImmMnemonics[m]; return ok }
func isShiftImm(m string) bool   { _, ok := shiftImmMnemonics[m]; return ok }
func isOp(m string) bool         { _, ok := opMnemonics[m]; return ok }
