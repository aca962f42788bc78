package encoder

import (
	"github.com/bbbbbq/riscv-online/isa"
	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
)

func cRegField(r uint8) uint32 { return uint32(r-8) & 0b111 }

// EncodeU16 packs a compressed instruction back into its 16-bit bit
// pattern. Built directly from the RVC encoding tables (see decoder16.go
// for the matching rationale): no original_source/ file implements RVC
// encoding to ground this against.
func EncodeU16(in instruction.Instruction, xlen riscv.Xlen) (uint16, error) {
	m := in.Mnemonic
	switch f := in.Format.(type) {
	case instruction.CIWType:
		if m != "c.addi4spn" {
			return 0, encErr(m, "not a ciw-form mnemonic")
		}
		v := f.Uimm.Low()
		word := (isa.C0) | (0b000 << 13) | (bits10to7(v) << 7) | (bits12to11(v) << 11) |
			(b(v, 2) << 6) | (b(v, 3) << 5) | (cRegField(f.Rd) << 2)
		return uint16(word), nil

	case instruction.CLType:
		rs1 := cRegField(f.Rs1)
		rd := cRegField(f.Rd)
		switch m {
		case "c.lw":
			v := f.Uimm.Low()
			word := isa.C0 | (0b010 << 13) | (b(v, 6) << 5) | (bits12to10(v) << 10) | (b(v, 2) << 6) | (rs1 << 7) | (rd << 2)
			return uint16(word), nil
		case "c.ld":
			if xlen == riscv.X32 {
				return 0, encErr(m, "c.ld illegal on rv32")
			}
			v := f.Uimm.Low()
			word := isa.C0 | (0b011 << 13) | (bits7to6(v) << 5) | (bits12to10(v) << 10) | (rs1 << 7) | (rd << 2)
			return uint16(word), nil
		}
		return 0, encErr(m, "not a cl-form mnemonic")

	case instruction.CSType:
		rs1 := cRegField(f.Rs1)
		rs2 := cRegField(f.Rs2)
		switch m {
		case "c.sw":
			v := f.Uimm.Low()
			word := isa.C0 | (0b110 << 13) | (b(v, 6) << 5) | (bits12to10(v) << 10) | (b(v, 2) << 6) | (rs1 << 7) | (rs2 << 2)
			return uint16(word), nil
		case "c.sd":
			if xlen == riscv.X32 {
				return 0, encErr(m, "c.sd illegal on rv32")
			}
			v := f.Uimm.Low()
			word := isa.C0 | (0b111 << 13) | (bits7to6(v) << 5) | (bits12to10(v) << 10) | (rs1 << 7) | (rs2 << 2)
			return uint16(word), nil
		}
		return 0, encErr(m, "not a cs-form mnemonic")

	case instruction.CIType:
		return encodeCI(m, f, xlen)

	case instruction.CJType:
		v := uint32(int64ToBits(f.Imm.SignExtend(), 12))
		funct3 := uint32(0b101)
		if m == "c.jal" {
			funct3 = 0b001
		} else if m != "c.j" {
			return 0, encErr(m, "not a cj-form mnemonic")
		}
		return uint16(isa.C1 | (funct3 << 13) | cjBits(v)), nil

	case instruction.CBType:
		return encodeCB(m, f)

	case instruction.CRType:
		return encodeCR(m, f)

	case instruction.CSSType:
		return encodeCSS(m, f, xlen)

	case instruction.CAType:
		return encodeCA(m, f, xlen)
	}
	return 0, encErr(m, "unsupported compressed instruction shape")
}

func b(v uint32, n uint) uint32          { return (v >> n) & 1 }
func bits12to11(v uint32) uint32         { return (v >> 4) & 0b11 }
func bits10to7(v uint32) uint32          { return (v >> 6) & 0b1111 }
func bits12to10(v uint32) uint32         { return (v >> 3) & 0b111 }
func bits7to6(v uint32) uint32           { return (v >> 6) & 0b11 }
func int64ToBits(v int64, width uint) uint32 {
	return uint32(v) & ((1 << width) - 1)
}

func cjBits(v uint32) uint32 {
	imm11 := b(v, 11)
	imm4 := b(v, 4)
	imm9 := b(v, 9)
	imm8 := b(v, 8)
	imm10 := b(v, 10)
	imm6 := b(v, 6)
	imm7 := b(v, 7)
	imm3 := b(v, 3)
	imm2 := b(v, 2)
	imm1 := b(v, 1)
	imm5 := b(v, 5)
	return (imm11 << 12) | (imm4 << 11) | (imm9 << 10) | (imm8 << 9) | (imm10 << 8) | (imm6 << 7) |
		(imm7 << 6) | (imm3 << 5) | (imm2 << 4) | (imm1 << 3) | (imm5 << 2)
}

func encodeCI(m string, f instruction.CIType, xlen riscv.Xlen) (uint16, error) {
	switch m {
	case "c.nop":
		return uint16(isa.C1), nil
	case "c.addi":
		v := int64ToBits(f.Imm.SignExtend(), 6)
		return uint16(isa.C1 | (0b000 << 13) | (b(v, 5) << 12) | (bits6to2(v) << 2) | (uint32(f.Rd) << 7)), nil
	case "c.addiw":
		if xlen == riscv.X32 {
			return 0, encErr(m, "c.addiw illegal on rv32")
		}
		v := int64ToBits(f.Imm.SignExtend(), 6)
		return uint16(isa.C1 | (0b001 << 13) | (b(v, 5) << 12) | (bits6to2(v) << 2) | (uint32(f.Rd) << 7)), nil
	case "c.li":
		v := int64ToBits(f.Imm.SignExtend(), 6)
		return uint16(isa.C1 | (0b010 << 13) | (b(v, 5) << 12) | (bits6to2(v) << 2) | (uint32(f.Rd) << 7)), nil
	case "c.lui":
		v := int64ToBits(f.Imm.SignExtend(), 6)
		return uint16(isa.C1 | (0b011 << 13) | (b(v, 5) << 12) | (bits6to2(v) << 2) | (uint32(f.Rd) << 7)), nil
	case "c.addi16sp":
		v := f.Imm.Low()
		word := isa.C1 | (0b011 << 13) | (b(v, 9) << 12) | (b(v, 4) << 6) | (b(v, 6) << 5) |
			(bits8to7(v) << 3) | (b(v, 5) << 2) | (2 << 7)
		return uint16(word), nil
	case "c.slli":
		v := f.Imm.Low()
		word := isa.C2 | (0b000 << 13) | (b(v, 5) << 12) | (bits6to2(v) << 2) | (uint32(f.Rd) << 7)
		return uint16(word), nil
	case "c.lwsp":
		if f.Rd == 0 {
			return 0, encErr(m, "rd must not be x0")
		}
		v := f.Imm.Low()
		word := isa.C2 | (0b010 << 13) | (b(v, 5) << 12) | (bits4to2(v) << 4) | (bits7to6(v) << 2) | (uint32(f.Rd) << 7)
		return uint16(word), nil
	case "c.ldsp":
		if xlen == riscv.X32 {
			return 0, encErr(m, "c.ldsp illegal on rv32")
		}
		if f.Rd == 0 {
			return 0, encErr(m, "rd must not be x0")
		}
		v := f.Imm.Low()
		word := isa.C2 | (0b011 << 13) | (b(v, 5) << 12) | (bits4to3(v) << 5) | (bits8to6(v) << 2) | (uint32(f.Rd) << 7)
		return uint16(word), nil
	}
	return 0, encErr(m, "not a ci-form mnemonic")
}

func bits6to2(v uint32) uint32  { return v & 0b11111 }
func bits8to7(v uint32) uint32  { return (v >> 7) & 0b11 }
func bits4to2(v uint32) uint32  { return (v >> 2) & 0b111 }
func bits4to3(v uint32) uint32  { return (v >> 3) & 0b11 }
func bits8to6(v uint32) uint32  { return (v >> 6) & 0b111 }

func encodeCB(m string, f instruction.CBType) (uint16, error) {
	rs1 := cRegField(f.Rs1)
	switch m {
	case "c.beqz", "c.bnez":
		funct3 := uint32(0b110)
		if m == "c.bnez" {
			funct3 = 0b111
		}
		v := int64ToBits(f.Imm.SignExtend(), 9)
		imm8 := b(v, 8)
		imm4 := b(v, 4)
		imm3 := b(v, 3)
		imm7 := b(v, 7)
		imm6 := b(v, 6)
		imm2 := b(v, 2)
		imm1 := b(v, 1)
		imm5 := b(v, 5)
		word := isa.C1 | (funct3 << 13) | (imm8 << 12) | (imm4 << 11) | (imm3 << 10) | (rs1 << 7) |
			(imm7 << 6) | (imm6 << 5) | (imm2 << 4) | (imm1 << 3) | (imm5 << 2)
		return uint16(word), nil
	case "c.srli", "c.srai":
		v := f.Imm.Low()
		funct2 := uint32(0b00)
		if m == "c.srai" {
			funct2 = 0b01
		}
		word := isa.C1 | (0b100 << 13) | (b(v, 5) << 12) | (funct2 << 10) | (rs1 << 7) | (bits6to2(v) << 2)
		return uint16(word), nil
	case "c.andi":
		v := int64ToBits(f.Imm.SignExtend(), 6)
		word := isa.C1 | (0b100 << 13) | (b(v, 5) << 12) | (0b10 << 10) | (rs1 << 7) | (bits6to2(v) << 2)
		return uint16(word), nil
	}
	return 0, encErr(m, "not a cb-form mnemonic")
}

func encodeCR(m string, f instruction.CRType) (uint16, error) {
	switch m {
	case "c.jr":
		if f.Rd == 0 {
			return 0, encErr(m, "rs1 must not be x0")
		}
		return uint16(isa.C2 | (0b100 << 13) | (uint32(f.Rd) << 7)), nil
	case "c.jalr":
		if f.Rd == 0 {
			return 0, encErr(m, "rs1 must not be x0")
		}
		return uint16(isa.C2 | (0b100 << 13) | (1 << 12) | (uint32(f.Rd) << 7)), nil
	case "c.mv":
		return uint16(isa.C2 | (0b100 << 13) | (uint32(f.Rd) << 7) | (uint32(f.Rs2) << 2)), nil
	case "c.add":
		return uint16(isa.C2 | (0b100 << 13) | (1 << 12) | (uint32(f.Rd) << 7) | (uint32(f.Rs2) << 2)), nil
	case "c.ebreak":
		return uint16(isa.C2 | (0b100 << 13) | (1 << 12)), nil
	}
	return 0, encErr(m, "not a cr-form mnemonic")
}

func encodeCSS(m string, f instruction.CSSType, xlen riscv.Xlen) (uint16, error) {
	v := f.Uimm.Low()
	switch m {
	case "c.swsp":
		word := isa.C2 | (0b110 << 13) | (bits12to9(v) << 9) | (bits7to6(v) << 7) | (uint32(f.Rs2) << 2)
		return uint16(word), nil
	case "c.sdsp":
		if xlen == riscv.X32 {
			return 0, encErr(m, "c.sdsp illegal on rv32")
		}
		word := isa.C2 | (0b111 << 13) | (bits12to10(v) << 10) | (bits9to7(v) << 7) | (uint32(f.Rs2) << 2)
		return uint16(word), nil
	}
	return 0, encErr(m, "not a css-form mnemonic")
}

func bits12to9(v uint32) uint32 { return (v >> 2) & 0b1111 }
func bits9to7(v uint32) uint32  { return (v >> 6) & 0b111 }

func encodeCA(m string, f instruction.CAType, xlen riscv.Xlen) (uint16, error) {
	rd := cRegField(f.Rd)
	rs2 := cRegField(f.Rs2)
	var wide uint32
	var sel uint32
	switch m {
	case "c.sub":
		sel = 0b00
	case "c.xor":
		sel = 0b01
	case "c.or":
		sel = 0b10
	case "c.and":
		sel = 0b11
	case "c.subw":
		if xlen == riscv.X32 {
			return 0, encErr(m, "c.subw illegal on rv32")
		}
		wide, sel = 1, 0b00
	case "c.addw":
		if xlen == riscv.X32 {
			return 0, encErr(m, "c.addw illegal on rv32")
		}
		wide, sel = 1, 0b01
	default:
		return 0, encErr(m, "not a ca-form mnemonic")
	}
	word := isa.C1 | (0b100 << 13) | (0b11 << 10) | (wide << 12) | (rd << 7) | (sel << 5) | (rs2 << 2)
	return uint16(word), nil
}
