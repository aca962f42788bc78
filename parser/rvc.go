package parser

import (
	"strings"

	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
)

func parseCompressedRegister(tok string) (uint8, error) {
	r, err := parseRegister(tok)
	if err != nil {
		return 0, err
	}
	if r < 8 || r > 15 {
		return 0, errf("", "register %q must be one of s0-s1/a0-a5 (x8-x15) here", tok)
	}
	return r, nil
}

// tryParseRVC handles every RVC mnemonic. Built from the RVC encoding
// tables directly; see decoder16.go for why there is no original_source/
// file to ground this against.
func tryParseRVC(mnem string, ops []string, xlen riscv.Xlen) (instruction.Instruction, bool, error) {
	if !strings.HasPrefix(mnem, "c.") {
		return instruction.Instruction{}, false, nil
	}

	switch mnem {
	case "c.nop":
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CIType{Rd: 0, Imm: riscv.NewImm(0, 6)}}, true, nil

	case "c.ebreak":
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem, Format: instruction.CRType{}}, true, nil

	case "c.addi4spn":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, uimm")
		}
		rd, err := parseCompressedRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		v, err := parseInt(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if v <= 0 || v%4 != 0 || v >= 1024 {
			return instruction.Instruction{}, true, errf(mnem, "immediate must be a non-zero multiple of 4 below 1024")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CIWType{Rd: rd, Uimm: riscv.NewUimm(uint32(v), 10)}}, true, nil

	case "c.lw":
		return parseCompressedLoad(mnem, ops, 7, 4)
	case "c.ld":
		if err := xlenGate(xlen, riscv.X64, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		return parseCompressedLoad(mnem, ops, 8, 8)
	case "c.sw":
		return parseCompressedStore(mnem, ops, 7, 4)
	case "c.sd":
		if err := xlenGate(xlen, riscv.X64, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		return parseCompressedStore(mnem, ops, 8, 8)

	case "c.j", "c.jal":
		if mnem == "c.jal" && xlen != riscv.X32 {
			return instruction.Instruction{}, true, errf(mnem, "only available on rv32")
		}
		if len(ops) != 1 {
			return instruction.Instruction{}, true, errf(mnem, "expects offset")
		}
		imm, err := parseSignedImm(ops[0], 12)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if imm.SignExtend()%2 != 0 {
			return instruction.Instruction{}, true, errf(mnem, "offset must be 2-byte aligned")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem, Format: instruction.CJType{Imm: imm}}, true, nil

	case "c.beqz", "c.bnez":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rs1, offset")
		}
		rs1, err := parseCompressedRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := parseSignedImm(ops[1], 9)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if imm.SignExtend()%2 != 0 {
			return instruction.Instruction{}, true, errf(mnem, "offset must be 2-byte aligned")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CBType{Rs1: rs1, Imm: imm}}, true, nil

	case "c.addi":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, imm")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := parseSignedImm(ops[1], 6)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CIType{Rd: rd, Imm: imm}}, true, nil

	case "c.addiw":
		if err := xlenGate(xlen, riscv.X64, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, imm")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := parseSignedImm(ops[1], 6)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CIType{Rd: rd, Imm: imm}}, true, nil

	case "c.li":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, imm")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := parseSignedImm(ops[1], 6)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CIType{Rd: rd, Imm: imm}}, true, nil

	case "c.lui":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, imm")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if rd == 0 || rd == 2 {
			return instruction.Instruction{}, true, errf(mnem, "rd must not be x0 or sp")
		}
		imm, err := parseSignedImm(ops[1], 6)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if imm.SignExtend() == 0 {
			return instruction.Instruction{}, true, errf(mnem, "immediate must be non-zero")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CIType{Rd: rd, Imm: imm}}, true, nil

	case "c.addi16sp":
		if len(ops) != 1 {
			return instruction.Instruction{}, true, errf(mnem, "expects imm")
		}
		v, err := parseInt(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if v == 0 || v%16 != 0 {
			return instruction.Instruction{}, true, errf(mnem, "immediate must be a non-zero multiple of 16")
		}
		imm, err := riscv.SignedImm(v, 10)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CIType{Rd: 2, Imm: imm}}, true, nil

	case "c.slli":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, shamt")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		shamt, err := parseInt(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if shamt <= 0 || shamt >= int64(1<<xlen.ShamtBits()) {
			return instruction.Instruction{}, true, errf(mnem, "shift amount out of range")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CIType{Rd: rd, Imm: riscv.NewImm(uint32(shamt), 6)}}, true, nil

	case "c.srli", "c.srai":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, shamt")
		}
		rd, err := parseCompressedRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		shamt, err := parseInt(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if shamt <= 0 || shamt >= int64(1<<xlen.ShamtBits()) {
			return instruction.Instruction{}, true, errf(mnem, "shift amount out of range")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CBType{Rs1: rd, Imm: riscv.NewImm(uint32(shamt), 6)}}, true, nil

	case "c.andi":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, imm")
		}
		rd, err := parseCompressedRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		imm, err := parseSignedImm(ops[1], 6)
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CBType{Rs1: rd, Imm: imm}}, true, nil

	case "c.sub", "c.xor", "c.or", "c.and":
		return parseCompressedAlu(mnem, ops)
	case "c.subw", "c.addw":
		if err := xlenGate(xlen, riscv.X64, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		return parseCompressedAlu(mnem, ops)

	case "c.mv", "c.add":
		if len(ops) != 2 {
			return instruction.Instruction{}, true, errf(mnem, "expects rd, rs2")
		}
		rd, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		rs2, err := parseRegister(ops[1])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if rd == 0 {
			return instruction.Instruction{}, true, errf(mnem, "rd must not be x0")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CRType{Rd: rd, Rs2: rs2}}, true, nil

	case "c.jr", "c.jalr":
		if len(ops) != 1 {
			return instruction.Instruction{}, true, errf(mnem, "expects rs1")
		}
		rs1, err := parseRegister(ops[0])
		if err != nil {
			return instruction.Instruction{}, true, err
		}
		if rs1 == 0 {
			return instruction.Instruction{}, true, errf(mnem, "rs1 must not be x0")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
			Format: instruction.CRType{Rd: rs1, Rs2: 0}}, true, nil

	case "c.lwsp":
		return parseCompressedLoadSP(mnem, ops, 8, 4)
	case "c.ldsp":
		if err := xlenGate(xlen, riscv.X64, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		return parseCompressedLoadSP(mnem, ops, 9, 8)
	case "c.swsp":
		return parseCompressedStoreSP(mnem, ops, 8, 4)
	case "c.sdsp":
		if err := xlenGate(xlen, riscv.X64, mnem); err != nil {
			return instruction.Instruction{}, true, err
		}
		return parseCompressedStoreSP(mnem, ops, 9, 8)
	}

	return instruction.Instruction{}, false, nil
}

func parseCompressedAlu(mnem string, ops []string) (instruction.Instruction, bool, error) {
	if len(ops) != 2 {
		return instruction.Instruction{}, true, errf(mnem, "expects rd, rs2")
	}
	rd, err := parseCompressedRegister(ops[0])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	rs2, err := parseCompressedRegister(ops[1])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
		Format: instruction.CAType{Rd: rd, Rs2: rs2}}, true, nil
}

func parseCompressedLoad(mnem string, ops []string, width uint, scale int64) (instruction.Instruction, bool, error) {
	if len(ops) != 2 {
		return instruction.Instruction{}, true, errf(mnem, "expects rd, offset(rs1)")
	}
	rd, err := parseCompressedRegister(ops[0])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	off, rs1, err := parseMemOperand(ops[1])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	rs1c, err := parseCompressedRegisterIndex(rs1)
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	if off < 0 || off%scale != 0 {
		return instruction.Instruction{}, true, errf(mnem, "offset must be a non-negative multiple of %d", scale)
	}
	uimm, err := riscv.UnsignedImm(off, width)
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
		Format: instruction.CLType{Rd: rd, Rs1: rs1c, Uimm: uimm}}, true, nil
}

func parseCompressedStore(mnem string, ops []string, width uint, scale int64) (instruction.Instruction, bool, error) {
	if len(ops) != 2 {
		return instruction.Instruction{}, true, errf(mnem, "expects rs2, offset(rs1)")
	}
	rs2, err := parseCompressedRegister(ops[0])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	off, rs1, err := parseMemOperand(ops[1])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	rs1c, err := parseCompressedRegisterIndex(rs1)
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	if off < 0 || off%scale != 0 {
		return instruction.Instruction{}, true, errf(mnem, "offset must be a non-negative multiple of %d", scale)
	}
	uimm, err := riscv.UnsignedImm(off, width)
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
		Format: instruction.CSType{Rs1: rs1c, Rs2: rs2, Uimm: uimm}}, true, nil
}

func parseCompressedRegisterIndex(r uint8) (uint8, error) {
	if r < 8 || r > 15 {
		return 0, errf("", "base register must be one of s0-s1/a0-a5 (x8-x15)")
	}
	return r, nil
}

func parseCompressedLoadSP(mnem string, ops []string, width uint, scale int64) (instruction.Instruction, bool, error) {
	if len(ops) != 2 {
		return instruction.Instruction{}, true, errf(mnem, "expects rd, offset(sp)")
	}
	rd, err := parseRegister(ops[0])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	if rd == 0 {
		return instruction.Instruction{}, true, errf(mnem, "rd must not be x0")
	}
	off, base, err := parseMemOperand(ops[1])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	if base != 2 {
		return instruction.Instruction{}, true, errf(mnem, "base register must be sp")
	}
	if off < 0 || off%scale != 0 {
		return instruction.Instruction{}, true, errf(mnem, "offset must be a non-negative multiple of %d", scale)
	}
	imm := riscv.NewImm(uint32(off), width)
	return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
		Format: instruction.CIType{Rd: rd, Imm: imm}}, true, nil
}

func parseCompressedStoreSP(mnem string, ops []string, width uint, scale int64) (instruction.Instruction, bool, error) {
	if len(ops) != 2 {
		return instruction.Instruction{}, true, errf(mnem, "expects rs2, offset(sp)")
	}
	rs2, err := parseRegister(ops[0])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	off, base, err := parseMemOperand(ops[1])
	if err != nil {
		return instruction.Instruction{}, true, err
	}
	if base != 2 {
		return instruction.Instruction{}, true, errf(mnem, "base register must be sp")
	}
	if off < 0 || off%scale != 0 {
		return instruction.Instruction{}, true, errf(mnem, "offset must be a non-negative multiple of %d", scale)
	}
	uimm := riscv.NewUimm(uint32(off), width)
	return instruction.Instruction{Group: instruction.RVC, Mnemonic: mnem,
		Format: instruction.CSSType{Rs2: rs2, Uimm: uimm}}, true, nil
}
