package decoder

import (
	"fmt"

	"github.com/bbbbbq/riscv-online/isa"
	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
)

// DecodeU16 decodes a 16-bit compressed instruction word. Built from the
// RVC encoding tables directly (the Rust reference this translator was
// distilled from never implemented compressed decode), since there is no
// upstream source to ground this file on field-for-field.
func DecodeU16(w uint16, xlen riscv.Xlen) (instruction.Instruction, error) {
	h := uint32(w)
	quadrant := h & 0b11
	funct3 := (h >> 13) & 0b111

	switch quadrant {
	case isa.C0:
		return decodeC0(h, funct3, xlen)
	case isa.C1:
		return decodeC1(h, funct3, xlen)
	case isa.C2:
		return decodeC2(h, funct3, xlen)
	}
	return instruction.Instruction{}, fmt.Errorf("16-bit word with low bits 11 is not compressed")
}

func cReg(h uint32, lo uint) uint8 { return uint8(((h >> lo) & 0b111) + 8) }
func creg5(h uint32, lo uint) uint8 { return uint8((h >> lo) & 0b11111) }

func decodeC0(h, funct3 uint32, xlen riscv.Xlen) (instruction.Instruction, error) {
	rdp := cReg(h, 2)
	rs1p := cReg(h, 7)

	switch funct3 {
	case 0b000:
		raw := (bits(h, 10, 7) << 6) | (bits(h, 12, 11) << 4) | (bit(h, 6) << 2) | (bit(h, 5) << 3)
		if raw == 0 {
			return instruction.Instruction{}, fmt.Errorf("c.addi4spn with zero immediate is reserved")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.addi4spn",
			Format: instruction.CIWType{Rd: rdp, Uimm: riscv.NewUimm(raw, 10)}}, nil
	case 0b010:
		raw := (bit(h, 5) << 6) | (bits(h, 12, 10) << 3) | (bit(h, 6) << 2)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.lw",
			Format: instruction.CLType{Rd: rdp, Rs1: rs1p, Uimm: riscv.NewUimm(raw, 7)}}, nil
	case 0b011:
		if xlen == riscv.X32 {
			return instruction.Instruction{}, fmt.Errorf("compressed single-float load not supported")
		}
		raw := (bits(h, 6, 5) << 6) | (bits(h, 12, 10) << 3)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.ld",
			Format: instruction.CLType{Rd: rdp, Rs1: rs1p, Uimm: riscv.NewUimm(raw, 8)}}, nil
	case 0b110:
		rs2p := cReg(h, 2)
		raw := (bit(h, 5) << 6) | (bits(h, 12, 10) << 3) | (bit(h, 6) << 2)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.sw",
			Format: instruction.CSType{Rs1: rs1p, Rs2: rs2p, Uimm: riscv.NewUimm(raw, 7)}}, nil
	case 0b111:
		if xlen == riscv.X32 {
			return instruction.Instruction{}, fmt.Errorf("compressed single-float store not supported")
		}
		rs2p := cReg(h, 2)
		raw := (bits(h, 6, 5) << 6) | (bits(h, 12, 10) << 3)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.sd",
			Format: instruction.CSType{Rs1: rs1p, Rs2: rs2p, Uimm: riscv.NewUimm(raw, 8)}}, nil
	}
	return instruction.Instruction{}, fmt.Errorf("unsupported quadrant-0 funct3 %#x", funct3)
}

func decodeC1(h, funct3 uint32, xlen riscv.Xlen) (instruction.Instruction, error) {
	switch funct3 {
	case 0b000:
		rd := creg5(h, 7)
		raw := (bit(h, 12) << 5) | bits(h, 6, 2)
		if rd == 0 && raw == 0 {
			return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.nop",
				Format: instruction.CIType{Rd: 0, Imm: riscv.NewImm(0, 6)}}, nil
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.addi",
			Format: instruction.CIType{Rd: rd, Imm: riscv.NewImm(raw, 6)}}, nil
	case 0b001:
		if xlen == riscv.X32 {
			raw := (bit(h, 12) << 11) | (bit(h, 8) << 10) | (bits(h, 10, 9) << 8) | (bit(h, 6) << 7) |
				(bit(h, 7) << 6) | (bit(h, 2) << 5) | (bit(h, 11) << 4) | (bits(h, 5, 3) << 1)
			return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.jal",
				Format: instruction.CJType{Imm: riscv.NewImm(raw, 12)}}, nil
		}
		rd := creg5(h, 7)
		raw := (bit(h, 12) << 5) | bits(h, 6, 2)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.addiw",
			Format: instruction.CIType{Rd: rd, Imm: riscv.NewImm(raw, 6)}}, nil
	case 0b010:
		rd := creg5(h, 7)
		raw := (bit(h, 12) << 5) | bits(h, 6, 2)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.li",
			Format: instruction.CIType{Rd: rd, Imm: riscv.NewImm(raw, 6)}}, nil
	case 0b011:
		rd := creg5(h, 7)
		if rd == 2 {
			raw := (bit(h, 12) << 9) | (bit(h, 4) << 8) | (bit(h, 3) << 7) | (bit(h, 5) << 6) |
				(bit(h, 2) << 5) | (bit(h, 6) << 4)
			if raw == 0 {
				return instruction.Instruction{}, fmt.Errorf("c.addi16sp with zero immediate is reserved")
			}
			return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.addi16sp",
				Format: instruction.CIType{Rd: 2, Imm: riscv.NewImm(raw, 10)}}, nil
		}
		raw := (bit(h, 12) << 5) | bits(h, 6, 2)
		if raw == 0 {
			return instruction.Instruction{}, fmt.Errorf("c.lui with zero immediate is reserved")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.lui",
			Format: instruction.CIType{Rd: rd, Imm: riscv.NewImm(raw, 6)}}, nil
	case 0b100:
		return decodeC1Alu(h, xlen)
	case 0b101:
		raw := cjImm(h)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.j",
			Format: instruction.CJType{Imm: riscv.NewImm(raw, 12)}}, nil
	case 0b110:
		rs1p := cReg(h, 7)
		raw := cbImm(h)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.beqz",
			Format: instruction.CBType{Rs1: rs1p, Imm: riscv.NewImm(raw, 9)}}, nil
	case 0b111:
		rs1p := cReg(h, 7)
		raw := cbImm(h)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.bnez",
			Format: instruction.CBType{Rs1: rs1p, Imm: riscv.NewImm(raw, 9)}}, nil
	}
	return instruction.Instruction{}, fmt.Errorf("unsupported quadrant-1 funct3 %#x", funct3)
}

func cjImm(h uint32) uint32 {
	return (bit(h, 12) << 11) | (bit(h, 8) << 10) | (bits(h, 10, 9) << 8) | (bit(h, 6) << 7) |
		(bit(h, 7) << 6) | (bit(h, 2) << 5) | (bit(h, 11) << 4) | (bits(h, 5, 3) << 1)
}

func cbImm(h uint32) uint32 {
	return (bit(h, 12) << 8) | (bits(h, 6, 5) << 6) | (bit(h, 2) << 5) | (bit(h, 11) << 4) |
		(bit(h, 10) << 3) | (bits(h, 4, 3) << 1)
}

func decodeC1Alu(h uint32, xlen riscv.Xlen) (instruction.Instruction, error) {
	rdp := cReg(h, 7)
	switch bits(h, 11, 10) {
	case 0b00:
		shamt := (bit(h, 12) << 5) | bits(h, 6, 2)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.srli",
			Format: instruction.CBType{Rs1: rdp, Imm: riscv.NewImm(shamt, 6)}}, nil
	case 0b01:
		shamt := (bit(h, 12) << 5) | bits(h, 6, 2)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.srai",
			Format: instruction.CBType{Rs1: rdp, Imm: riscv.NewImm(shamt, 6)}}, nil
	case 0b10:
		raw := (bit(h, 12) << 5) | bits(h, 6, 2)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.andi",
			Format: instruction.CBType{Rs1: rdp, Imm: riscv.NewImm(raw, 6)}}, nil
	case 0b11:
		rs2p := cReg(h, 2)
		wide := bit(h, 12) == 1
		switch bits(h, 6, 5) {
		case 0b00:
			if wide {
				if xlen == riscv.X32 {
					return instruction.Instruction{}, fmt.Errorf("c.subw illegal on rv32")
				}
				return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.subw",
					Format: instruction.CAType{Rd: rdp, Rs2: rs2p}}, nil
			}
			return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.sub",
				Format: instruction.CAType{Rd: rdp, Rs2: rs2p}}, nil
		case 0b01:
			if wide {
				if xlen == riscv.X32 {
					return instruction.Instruction{}, fmt.Errorf("c.addw illegal on rv32")
				}
				return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.addw",
					Format: instruction.CAType{Rd: rdp, Rs2: rs2p}}, nil
			}
			return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.xor",
				Format: instruction.CAType{Rd: rdp, Rs2: rs2p}}, nil
		case 0b10:
			if wide {
				return instruction.Instruction{}, fmt.Errorf("reserved quadrant-1 alu encoding")
			}
			return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.or",
				Format: instruction.CAType{Rd: rdp, Rs2: rs2p}}, nil
		case 0b11:
			if wide {
				return instruction.Instruction{}, fmt.Errorf("reserved quadrant-1 alu encoding")
			}
			return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.and",
				Format: instruction.CAType{Rd: rdp, Rs2: rs2p}}, nil
		}
	}
	return instruction.Instruction{}, fmt.Errorf("unreachable quadrant-1 alu dispatch")
}

func decodeC2(h, funct3 uint32, xlen riscv.Xlen) (instruction.Instruction, error) {
	switch funct3 {
	case 0b000:
		rd := creg5(h, 7)
		shamt := (bit(h, 12) << 5) | bits(h, 6, 2)
		if xlen == riscv.X32 && bit(h, 12) == 1 {
			return instruction.Instruction{}, fmt.Errorf("c.slli shamt bit 5 illegal on rv32")
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.slli",
			Format: instruction.CIType{Rd: rd, Imm: riscv.NewImm(shamt, 6)}}, nil
	case 0b010:
		rd := creg5(h, 7)
		if rd == 0 {
			return instruction.Instruction{}, fmt.Errorf("c.lwsp with rd=x0 is reserved")
		}
		raw := (bit(h, 12) << 5) | (bits(h, 6, 4) << 2) | (bits(h, 3, 2) << 6)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.lwsp",
			Format: instruction.CIType{Rd: rd, Imm: riscv.NewImm(raw, 8)}}, nil
	case 0b011:
		if xlen == riscv.X32 {
			return instruction.Instruction{}, fmt.Errorf("compressed single-float load not supported")
		}
		rd := creg5(h, 7)
		if rd == 0 {
			return instruction.Instruction{}, fmt.Errorf("c.ldsp with rd=x0 is reserved")
		}
		raw := (bit(h, 12) << 5) | (bits(h, 6, 5) << 3) | (bits(h, 4, 2) << 6)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.ldsp",
			Format: instruction.CIType{Rd: rd, Imm: riscv.NewImm(raw, 9)}}, nil
	case 0b100:
		return decodeC2JrMv(h)
	case 0b110:
		rs2 := creg5(h, 2)
		raw := (bits(h, 12, 9) << 2) | (bits(h, 8, 7) << 6)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.swsp",
			Format: instruction.CSSType{Rs2: rs2, Uimm: riscv.NewUimm(raw, 8)}}, nil
	case 0b111:
		if xlen == riscv.X32 {
			return instruction.Instruction{}, fmt.Errorf("compressed single-float store not supported")
		}
		rs2 := creg5(h, 2)
		raw := (bits(h, 12, 10) << 3) | (bits(h, 9, 7) << 6)
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.sdsp",
			Format: instruction.CSSType{Rs2: rs2, Uimm: riscv.NewUimm(raw, 9)}}, nil
	}
	return instruction.Instruction{}, fmt.Errorf("unsupported quadrant-2 funct3 %#x", funct3)
}

func decodeC2JrMv(h uint32) (instruction.Instruction, error) {
	rd := creg5(h, 7)
	rs2 := creg5(h, 2)
	wide := bit(h, 12) == 1

	if !wide {
		if rs2 == 0 {
			if rd == 0 {
				return instruction.Instruction{}, fmt.Errorf("c.jr with rs1=x0 is reserved")
			}
			return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.jr",
				Format: instruction.CRType{Rd: rd, Rs2: 0}}, nil
		}
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.mv",
			Format: instruction.CRType{Rd: rd, Rs2: rs2}}, nil
	}
	if rd == 0 && rs2 == 0 {
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.ebreak", Format: instruction.CRType{}}, nil
	}
	if rs2 == 0 {
		return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.jalr",
			Format: instruction.CRType{Rd: rd, Rs2: 0}}, nil
	}
	return instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.add",
		Format: instruction.CRType{Rd: rd, Rs2: rs2}}, nil
}
