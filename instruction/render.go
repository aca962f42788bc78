package instruction

import "fmt"

// Disassemble renders the instruction as assembly text. Register x0 and
// f0 render under their ABI names ("zero", "ft0"); immediates render as
// signed decimal; compressed atomics and ordinary forms share the same
// register-before-offset conventions (see DESIGN.md Open Question 3 for
// the atomic rendering choice).
func (in Instruction) Disassemble() string {
	m := in.Mnemonic
	switch f := in.Format.(type) {
	case UType:
		return fmt.Sprintf("%s %s, %d", m, reg(f.Rd), f.Imm.SignExtend())
	case JType:
		return fmt.Sprintf("%s %s, %d", m, reg(f.Rd), f.Imm.SignExtend())
	case IType:
		switch {
		case m == "flw":
			return fmt.Sprintf("%s %s, %d(%s)", m, fpReg(f.Rd), f.Imm.SignExtend(), reg(f.Rs1))
		case loadMnemonics[m]:
			return fmt.Sprintf("%s %s, %d(%s)", m, reg(f.Rd), f.Imm.SignExtend(), reg(f.Rs1))
		case jalrMnemonic[m]:
			return fmt.Sprintf("%s %s, %d(%s)", m, reg(f.Rd), f.Imm.SignExtend(), reg(f.Rs1))
		default:
			return fmt.Sprintf("%s %s, %s, %d", m, reg(f.Rd), reg(f.Rs1), f.Imm.SignExtend())
		}
	case SType:
		if m == "fsw" {
			return fmt.Sprintf("%s %s, %d(%s)", m, fpReg(f.Rs2), f.Imm.SignExtend(), reg(f.Rs1))
		}
		return fmt.Sprintf("%s %s, %d(%s)", m, reg(f.Rs2), f.Imm.SignExtend(), reg(f.Rs1))
	case BType:
		return fmt.Sprintf("%s %s, %s, %d", m, reg(f.Rs1), reg(f.Rs2), f.Imm.SignExtend())
	case RType:
		return fmt.Sprintf("%s %s, %s, %s", m, reg(f.Rd), reg(f.Rs1), reg(f.Rs2))
	case ShiftType:
		return fmt.Sprintf("%s %s, %s, %d", m, reg(f.Rd), reg(f.Rs1), f.Shamt)
	case R4Type:
		return fmt.Sprintf("%s %s, %s, %s, %s", m, fpReg(f.Rd), fpReg(f.Rs1), fpReg(f.Rs2), fpReg(f.Rs3))
	case FRType:
		if fpUnaryMnemonics[m] {
			switch m {
			case "fmv.x.w", "fclass.s", "fcvt.w.s", "fcvt.wu.s", "fcvt.l.s", "fcvt.lu.s":
				return fmt.Sprintf("%s %s, %s", m, reg(f.Rd), fpReg(f.Rs1))
			case "fmv.w.x", "fcvt.s.w", "fcvt.s.wu", "fcvt.s.l", "fcvt.s.lu":
				return fmt.Sprintf("%s %s, %s", m, fpReg(f.Rd), reg(f.Rs1))
			default:
				return fmt.Sprintf("%s %s, %s", m, fpReg(f.Rd), fpReg(f.Rs1))
			}
		}
		if m == "feq.s" || m == "flt.s" || m == "fle.s" {
			return fmt.Sprintf("%s %s, %s, %s", m, reg(f.Rd), fpReg(f.Rs1), fpReg(f.Rs2))
		}
		return fmt.Sprintf("%s %s, %s, %s", m, fpReg(f.Rd), fpReg(f.Rs1), fpReg(f.Rs2))
	case CsrRType:
		return fmt.Sprintf("%s %s, %d, %s", m, reg(f.Rd), f.Csr.Value(), reg(f.Rs1))
	case CsrIType:
		return fmt.Sprintf("%s %s, %d, %d", m, reg(f.Rd), f.Csr.Value(), f.Uimm.Value())
	case Atomic:
		if m == "lr.w" || m == "lr.d" || m == "lr.q" {
			return fmt.Sprintf("%s %s, (%s)", m, reg(f.Rd), reg(f.Rs1))
		}
		return fmt.Sprintf("%s %s, %s, (%s)", m, reg(f.Rd), reg(f.Rs2), reg(f.Rs1))
	case CRType:
		switch m {
		case "c.ebreak":
			return m
		case "c.jr", "c.jalr":
			return fmt.Sprintf("%s %s", m, reg(f.Rd))
		default:
			return fmt.Sprintf("%s %s, %s", m, reg(f.Rd), reg(f.Rs2))
		}
	case CIType:
		switch m {
		case "c.nop":
			return m
		case "c.lwsp", "c.ldsp":
			return fmt.Sprintf("%s %s, %d(sp)", m, reg(f.Rd), f.Imm.Low())
		case "c.addi16sp":
			return fmt.Sprintf("%s sp, %d", m, f.Imm.SignExtend())
		case "c.slli":
			return fmt.Sprintf("%s %s, %d", m, reg(f.Rd), f.Imm.Low())
		default:
			return fmt.Sprintf("%s %s, %d", m, reg(f.Rd), f.Imm.SignExtend())
		}
	case CIWType:
		return fmt.Sprintf("%s %s, %d", m, reg(f.Rd), f.Uimm.Value())
	case CLType:
		return fmt.Sprintf("%s %s, %d(%s)", m, reg(f.Rd), f.Uimm.Value(), reg(f.Rs1))
	case CSType:
		return fmt.Sprintf("%s %s, %d(%s)", m, reg(f.Rs2), f.Uimm.Value(), reg(f.Rs1))
	case CSSType:
		return fmt.Sprintf("%s %s, %d(sp)", m, reg(f.Rs2), f.Uimm.Value())
	case CAType:
		return fmt.Sprintf("%s %s, %s", m, reg(f.Rd), reg(f.Rs2))
	case CBType:
		switch m {
		case "c.srli", "c.srai":
			return fmt.Sprintf("%s %s, %d", m, reg(f.Rs1), f.Imm.Low())
		case "c.andi":
			return fmt.Sprintf("%s %s, %d", m, reg(f.Rs1), f.Imm.SignExtend())
		default:
			return fmt.Sprintf("%s %s, %d", m, reg(f.Rs1), f.Imm.SignExtend())
		}
	case CJType:
		return fmt.Sprintf("%s %d", m, f.Imm.SignExtend())
	case SystemType:
		return m
	default:
		return m
	}
}
