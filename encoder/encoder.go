// Package encoder packs instruction.Instruction values back into raw
// bit patterns. EncodeU32 handles the 32-bit encoding; EncodeU16
// (encoder16.go) handles the compressed encoding.
//
// The R/I/S/B/U/J packers and the RV32I/RV64I/Zicsr dispatch are
// grounded on the Rust encode/process32.rs this module was distilled
// from. That source stubs RVC/RVF/atomic encoding as unimplemented;
// those paths here (encoder16.go, the RVF/atomic cases below) are built
// from the ISA's own bit layout instead.
package encoder

import (
	"github.com/bbbbbq/riscv-online/isa"
	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
)

func rType(opcode, funct3, funct7 uint32, rd, rs1, rs2 uint8) uint32 {
	return (funct7 << 25) | (uint32(rs2) << 20) | (uint32(rs1) << 15) | (funct3 << 12) | (uint32(rd) << 7) | opcode
}

func iType(opcode, funct3 uint32, rd, rs1 uint8, imm riscv.Imm) uint32 {
	return ((imm.Low() & 0xFFF) << 20) | (uint32(rs1) << 15) | (funct3 << 12) | (uint32(rd) << 7) | opcode
}

func sType(opcode, funct3 uint32, rs1, rs2 uint8, imm riscv.Imm) uint32 {
	v := imm.Low() & 0xFFF
	return ((v >> 5) << 25) | (uint32(rs2) << 20) | (uint32(rs1) << 15) | (funct3 << 12) | ((v & 0x1F) << 7) | opcode
}

func bType(opcode, funct3 uint32, rs1, rs2 uint8, imm riscv.Imm) uint32 {
	v := imm.Low() & 0x1FFF
	bit12 := (v >> 12) & 1
	bit11 := (v >> 11) & 1
	bits105 := (v >> 5) & 0x3F
	bits41 := (v >> 1) & 0xF
	return (bit12 << 31) | (bits105 << 25) | (uint32(rs2) << 20) | (uint32(rs1) << 15) | (funct3 << 12) | (bits41 << 8) | (bit11 << 7) | opcode
}

func uType(opcode uint32, rd uint8, imm riscv.Imm) uint32 {
	return ((imm.Low() & 0xFFFFF) << 12) | (uint32(rd) << 7) | opcode
}

func jType(opcode uint32, rd uint8, imm riscv.Imm) uint32 {
	v := imm.Low() & 0x1FFFFF
	bit20 := (v >> 20) & 1
	bits101 := (v >> 1) & 0x3FF
	bit11 := (v >> 11) & 1
	bits1912 := (v >> 12) & 0xFF
	return (bit20 << 31) | (bits101 << 21) | (bit11 << 20) | (bits1912 << 12) | (uint32(rd) << 7) | opcode
}

func shiftInstr(opcode, funct3 uint32, rd, rs1 uint8, shamt uint8, arith bool, xlen riscv.Xlen) (uint32, error) {
	if xlen.ShamtBits() == 5 {
		if shamt >= 32 {
			return 0, encErr("shift", "shift amount must be < 32 on rv32")
		}
		funct7 := uint32(isa.Funct7OpAdd)
		if arith {
			funct7 = isa.Funct7OpSRA
		}
		return rType(opcode, funct3, funct7, rd, rs1, shamt), nil
	}
	if shamt >= 64 {
		return 0, encErr("shift", "shift amount must be < 64")
	}
	top6 := uint32(0)
	if arith {
		top6 = isa.Funct7OpSRA >> 1
	}
	return (top6 << 26) | (uint32(shamt&0x3F) << 20) | (uint32(rs1) << 15) | (funct3 << 12) | (uint32(rd) << 7) | opcode, nil
}

// EncodeU32 packs a 32-bit-family instruction back into its bit
// pattern for the given register width.
func EncodeU32(in instruction.Instruction, xlen riscv.Xlen) (uint32, error) {
	switch in.Group {
	case instruction.RV32I, instruction.RV64I:
		if in.Group == instruction.RV64I && xlen == riscv.X32 {
			return 0, encErr(in.Mnemonic, "not available on rv32")
		}
		return encodeBase(in, xlen)
	case instruction.RVZicsr:
		return encodeZicsr(in)
	case instruction.RVF:
		return encodeRVF(in)
	case instruction.RV32A, instruction.RV64A, instruction.RV128A:
		return encodeAtomic(in, xlen)
	}
	return 0, encErr(in.Mnemonic, "instruction group is not encodable to a 32-bit word")
}

var rTypeOps = map[string]struct {
	funct3, funct7 uint32
	is32           bool
}{
	"add": {isa.Funct3OpAddSub, isa.Funct7OpAdd, false}, "addw": {isa.Funct3OpAddSub, isa.Funct7OpAdd, true},
	"sub": {isa.Funct3OpAddSub, isa.Funct7OpSub, false}, "subw": {isa.Funct3OpAddSub, isa.Funct7OpSub, true},
	"sll": {isa.Funct3OpSLL, isa.Funct7OpAdd, false}, "sllw": {isa.Funct3OpSLL, isa.Funct7OpAdd, true},
	"slt": {isa.Funct3OpSLT, isa.Funct7OpAdd, false}, "sltu": {isa.Funct3OpSLTU, isa.Funct7OpAdd, false},
	"xor": {isa.Funct3OpXOR, isa.Funct7OpAdd, false}, "xorw": {isa.Funct3OpXOR, isa.Funct7OpAdd, true},
	"srl": {isa.Funct3OpSRLSRA, isa.Funct7OpSRL, false}, "srlw": {isa.Funct3OpSRLSRA, isa.Funct7OpSRL, true},
	"sra": {isa.Funct3OpSRLSRA, isa.Funct7OpSRA, false}, "sraw": {isa.Funct3OpSRLSRA, isa.Funct7OpSRA, true},
	"or": {isa.Funct3OpOR, isa.Funct7OpAdd, false}, "orw": {isa.Funct3OpOR, isa.Funct7OpAdd, true},
	"and": {isa.Funct3OpAND, isa.Funct7OpAdd, false}, "andw": {isa.Funct3OpAND, isa.Funct7OpAdd, true},
	"mul": {isa.Funct3OpAddSub, isa.Funct7MExt, false}, "mulw": {isa.Funct3OpAddSub, isa.Funct7MExt, true},
	"mulh": {isa.Funct3OpSLL, isa.Funct7MExt, false}, "mulhsu": {isa.Funct3OpXOR, isa.Funct7MExt, false},
	"mulhu": {isa.Funct3OpSLTU, isa.Funct7MExt, false},
	"div":   {isa.Funct3OpSRLSRA, isa.Funct7MExt, false}, "divw": {isa.Funct3OpSRLSRA, isa.Funct7MExt, true},
	"divu": {isa.Funct3OpOR, isa.Funct7MExt, false}, "divuw": {isa.Funct3OpOR, isa.Funct7MExt, true},
	"rem": {isa.Funct3OpAND, isa.Funct7MExt, false}, "remw": {isa.Funct3OpAND, isa.Funct7MExt, true},
	"remu": {isa.Funct3OpAND, isa.Funct7MExt, false}, "remuw": {isa.Funct3OpAND, isa.Funct7MExt, true},
}

var iTypeOps = map[string]struct {
	opcode, funct3 uint32
	is32           bool
}{
	"addi": {isa.OpcodeOpImm, isa.Funct3OpAddSub, false}, "addiw": {isa.OpcodeOpImm32, isa.Funct3OpAddSub, true},
	"slti": {isa.OpcodeOpImm, isa.Funct3OpSLT, false}, "sltiu": {isa.OpcodeOpImm, isa.Funct3OpSLTU, false},
	"xori": {isa.OpcodeOpImm, isa.Funct3OpXOR, false}, "ori": {isa.OpcodeOpImm, isa.Funct3OpOR, false},
	"andi": {isa.OpcodeOpImm, isa.Funct3OpAND, false},
	"jalr": {isa.OpcodeJalr, 0, false},
	"lb":   {isa.OpcodeLoad, isa.Funct3LoadLB, false}, "lh": {isa.OpcodeLoad, isa.Funct3LoadLH, false},
	"lw": {isa.OpcodeLoad, isa.Funct3LoadLW, false}, "ld": {isa.OpcodeLoad, isa.Funct3LoadLD, false},
	"lbu": {isa.OpcodeLoad, isa.Funct3LoadLBU, false}, "lhu": {isa.OpcodeLoad, isa.Funct3LoadLHU, false},
	"lwu": {isa.OpcodeLoad, isa.Funct3LoadLWU, false},
}

var sTypeOps = map[string]uint32{
	"sb": isa.Funct3StoreSB, "sh": isa.Funct3StoreSH, "sw": isa.Funct3StoreSW, "sd": isa.Funct3StoreSD,
}

var bTypeOps = map[string]uint32{
	"beq": isa.Funct3BranchBEQ, "bne": isa.Funct3BranchBNE, "blt": isa.Funct3BranchBLT,
	"bge": isa.Funct3BranchBGE, "bltu": isa.Funct3BranchBLTU, "bgeu": isa.Funct3BranchBGEU,
}

func encodeBase(in instruction.Instruction, xlen riscv.Xlen) (uint32, error) {
	m := in.Mnemonic
	switch f := in.Format.(type) {
	case instruction.UType:
		opcode := uint32(isa.OpcodeLui)
		if m == "auipc" {
			opcode = isa.OpcodeAuipc
		}
		return uType(opcode, f.Rd, f.Imm), nil

	case instruction.JType:
		return jType(isa.OpcodeJal, f.Rd, f.Imm), nil

	case instruction.BType:
		funct3, ok := bTypeOps[m]
		if !ok {
			return 0, encErr(m, "not a branch mnemonic")
		}
		return bType(isa.OpcodeBranch, funct3, f.Rs1, f.Rs2, f.Imm), nil

	case instruction.SType:
		funct3, ok := sTypeOps[m]
		if !ok {
			return 0, encErr(m, "not a store mnemonic")
		}
		return sType(isa.OpcodeStore, funct3, f.Rs1, f.Rs2, f.Imm), nil

	case instruction.IType:
		op, ok := iTypeOps[m]
		if !ok {
			return 0, encErr(m, "not an i-type mnemonic")
		}
		if op.opcode == isa.OpcodeJalr {
			return iType(isa.OpcodeJalr, 0, f.Rd, f.Rs1, f.Imm), nil
		}
		return iType(op.opcode, op.funct3, f.Rd, f.Rs1, f.Imm), nil

	case instruction.ShiftType:
		switch m {
		case "slli", "slliw":
			return shiftInstr(opcodeFor(m), isa.Funct3OpSLL, f.Rd, f.Rs1, f.Shamt, false, xlen)
		case "srli", "srliw":
			return shiftInstr(opcodeFor(m), isa.Funct3OpSRLSRA, f.Rd, f.Rs1, f.Shamt, false, xlen)
		case "srai", "sraiw":
			return shiftInstr(opcodeFor(m), isa.Funct3OpSRLSRA, f.Rd, f.Rs1, f.Shamt, true, xlen)
		}
		return 0, encErr(m, "not a shift mnemonic")

	case instruction.RType:
		spec, ok := rTypeOps[m]
		if !ok {
			return 0, encErr(m, "not a register-register mnemonic")
		}
		opcode := uint32(isa.OpcodeOp)
		if spec.is32 {
			opcode = isa.OpcodeOp32
		}
		return rType(opcode, spec.funct3, spec.funct7, f.Rd, f.Rs1, f.Rs2), nil

	case instruction.SystemType:
		switch m {
		case "ecall":
			return isa.OpcodeSystem | (uint32(isa.Funct12SystemECALL) << 20), nil
		case "ebreak":
			return isa.OpcodeSystem | (uint32(isa.Funct12SystemEBREAK) << 20), nil
		case "fence":
			return isa.OpcodeMiscMem, nil
		case "fence.i":
			return isa.OpcodeMiscMem | (isa.Funct3MiscMemFenceI << 12), nil
		}
		return 0, encErr(m, "not a system mnemonic")
	}
	return 0, encErr(m, "unsupported base-integer instruction shape")
}

func opcodeFor(m string) uint32 {
	if m == "slliw" || m == "srliw" || m == "sraiw" {
		return isa.OpcodeOpImm32
	}
	return isa.OpcodeOpImm
}

func encodeZicsr(in instruction.Instruction) (uint32, error) {
	m := in.Mnemonic
	switch f := in.Format.(type) {
	case instruction.CsrRType:
		var funct3 uint32
		switch m {
		case "csrrw":
			funct3 = isa.Funct3SystemCSRRW
		case "csrrs":
			funct3 = isa.Funct3SystemCSRRS
		case "csrrc":
			funct3 = isa.Funct3SystemCSRRC
		default:
			return 0, encErr(m, "not a register-form csr mnemonic")
		}
		return (f.Csr.Low() << 20) | (uint32(f.Rs1) << 15) | (funct3 << 12) | (uint32(f.Rd) << 7) | isa.OpcodeSystem, nil
	case instruction.CsrIType:
		var funct3 uint32
		switch m {
		case "csrrwi":
			funct3 = isa.Funct3SystemCSRRWI
		case "csrrsi":
			funct3 = isa.Funct3SystemCSRRSI
		case "csrrci":
			funct3 = isa.Funct3SystemCSRRCI
		default:
			return 0, encErr(m, "not an immediate-form csr mnemonic")
		}
		return (f.Csr.Low() << 20) | (f.Uimm.Low() << 15) | (funct3 << 12) | (uint32(f.Rd) << 7) | isa.OpcodeSystem, nil
	}
	return 0, encErr(m, "unsupported zicsr instruction shape")
}

func encodeAtomic(in instruction.Instruction, xlen riscv.Xlen) (uint32, error) {
	at, ok := in.Format.(instruction.Atomic)
	if !ok {
		return 0, encErr(in.Mnemonic, "unsupported atomic instruction shape")
	}
	funct3, ok := atomicWidth(in.Group)
	if !ok {
		return 0, encErr(in.Mnemonic, "atomic group has no width encoding")
	}
	funct5, ok := atomicFunct5(in.Mnemonic)
	if !ok {
		return 0, encErr(in.Mnemonic, "not an atomic mnemonic")
	}
	rs2 := at.Rs2
	if funct5 == isa.Funct5ALR {
		rs2 = 0
	}
	var aqrl uint32
	if at.Aq {
		aqrl |= 0b10
	}
	if at.Rl {
		aqrl |= 0b01
	}
	funct7 := (funct5 << 2) | aqrl
	return rType(isa.OpcodeAmo, funct3, funct7, at.Rd, at.Rs1, rs2), nil
}

func atomicWidth(g instruction.Group) (uint32, bool) {
	switch g {
	case instruction.RV32A:
		return isa.Funct3AWidthW, true
	case instruction.RV64A:
		return isa.Funct3AWidthD, true
	case instruction.RV128A:
		return isa.Funct3AWidthQ, true
	}
	return 0, false
}

func atomicFunct5(mnemonic string) (uint32, bool) {
	base := mnemonic
	if len(base) > 2 {
		base = base[:len(base)-2]
	}
	switch base {
	case "lr.":
		return isa.Funct5ALR, true
	case "sc.":
		return isa.Funct5ASC, true
	case "amoswap.":
		return isa.Funct5AmoSwap, true
	case "amoadd.":
		return isa.Funct5AmoAdd, true
	case "amoxor.":
		return isa.Funct5AmoXor, true
	case "amoand.":
		return isa.Funct5AmoAnd, true
	case "amoor.":
		return isa.Funct5AmoOr, true
	case "amomin.":
		return isa.Funct5AmoMin, true
	case "amomax.":
		return isa.Funct5AmoMax, true
	case "amominu.":
		return isa.Funct5AmoMinU, true
	case "amomaxu.":
		return isa.Funct5AmoMaxU, true
	}
	return 0, false
}

var rFPOps = map[string]uint32{
	"fadd.s": isa.FunctRS3FPAdd, "fsub.s": isa.FunctRS3FPSub, "fmul.s": isa.FunctRS3FPMul,
	"fdiv.s": isa.FunctRS3FPDiv, "fsqrt.s": isa.FunctRS3FPSqrt,
}

func encodeRVF(in instruction.Instruction) (uint32, error) {
	m := in.Mnemonic
	switch f := in.Format.(type) {
	case instruction.IType:
		if m == "flw" {
			return iType(isa.OpcodeLoadFP, isa.Funct3WidthW, f.Rd, f.Rs1, f.Imm), nil
		}
	case instruction.SType:
		if m == "fsw" {
			return sType(isa.OpcodeStoreFP, isa.Funct3WidthW, f.Rs1, f.Rs2, f.Imm), nil
		}
	case instruction.R4Type:
		var opcode uint32
		switch m {
		case "fmadd.s":
			opcode = isa.OpcodeFmadd
		case "fmsub.s":
			opcode = isa.OpcodeFmsub
		case "fnmsub.s":
			opcode = isa.OpcodeFnmsub
		case "fnmadd.s":
			opcode = isa.OpcodeFnmadd
		default:
			return 0, encErr(m, "not a fused multiply-add mnemonic")
		}
		word := (uint32(f.Rs3) << 27) | (isa.Funct2FmtS << 25) | (uint32(f.Rs2) << 20) |
			(uint32(f.Rs1) << 15) | (uint32(f.Rm) << 12) | (uint32(f.Rd) << 7) | opcode
		return word, nil

	case instruction.FRType:
		if rs3, ok := rFPOps[m]; ok {
			rs2 := f.Rs2
			if m == "fsqrt.s" {
				rs2 = 0
			}
			return fpWord(rs3, uint32(f.Rm), f.Rd, f.Rs1, rs2), nil
		}
		return encodeRVFSpecial(m, f)
	}
	return 0, encErr(m, "unsupported rvf instruction shape")
}

func fpWord(rs3field, funct3 uint32, rd, rs1, rs2 uint8) uint32 {
	return (rs3field << 27) | (isa.Funct2FmtS << 25) | (uint32(rs2) << 20) | (uint32(rs1) << 15) |
		(funct3 << 12) | (uint32(rd) << 7) | isa.OpcodeFP
}

func encodeRVFSpecial(m string, f instruction.FRType) (uint32, error) {
	switch m {
	case "fsgnj.s":
		return fpWord(isa.FunctRS3FPSgnj, isa.Funct3FPSgnj, f.Rd, f.Rs1, f.Rs2), nil
	case "fsgnjn.s":
		return fpWord(isa.FunctRS3FPSgnj, isa.Funct3FPSgnjn, f.Rd, f.Rs1, f.Rs2), nil
	case "fsgnjx.s":
		return fpWord(isa.FunctRS3FPSgnj, isa.Funct3FPSgnjx, f.Rd, f.Rs1, f.Rs2), nil
	case "fmin.s":
		return fpWord(isa.FunctRS3FPMinMax, isa.Funct3FPMin, f.Rd, f.Rs1, f.Rs2), nil
	case "fmax.s":
		return fpWord(isa.FunctRS3FPMinMax, isa.Funct3FPMax, f.Rd, f.Rs1, f.Rs2), nil
	case "feq.s":
		return fpWord(isa.FunctRS3FPCmp, isa.Funct3FPEq, f.Rd, f.Rs1, f.Rs2), nil
	case "flt.s":
		return fpWord(isa.FunctRS3FPCmp, isa.Funct3FPLt, f.Rd, f.Rs1, f.Rs2), nil
	case "fle.s":
		return fpWord(isa.FunctRS3FPCmp, isa.Funct3FPLe, f.Rd, f.Rs1, f.Rs2), nil
	case "fcvt.w.s":
		return fpWord(isa.FunctRS3FPFcvtX, uint32(f.Rm), f.Rd, f.Rs1, isa.FunctRS2CvtW), nil
	case "fcvt.wu.s":
		return fpWord(isa.FunctRS3FPFcvtX, uint32(f.Rm), f.Rd, f.Rs1, isa.FunctRS2CvtWU), nil
	case "fcvt.l.s":
		return fpWord(isa.FunctRS3FPFcvtX, uint32(f.Rm), f.Rd, f.Rs1, isa.FunctRS2CvtL), nil
	case "fcvt.lu.s":
		return fpWord(isa.FunctRS3FPFcvtX, uint32(f.Rm), f.Rd, f.Rs1, isa.FunctRS2CvtLU), nil
	case "fcvt.s.w":
		return fpWord(isa.FunctRS3FPXcvtF, uint32(f.Rm), f.Rd, f.Rs1, isa.FunctRS2CvtW), nil
	case "fcvt.s.wu":
		return fpWord(isa.FunctRS3FPXcvtF, uint32(f.Rm), f.Rd, f.Rs1, isa.FunctRS2CvtWU), nil
	case "fcvt.s.l":
		return fpWord(isa.FunctRS3FPXcvtF, uint32(f.Rm), f.Rd, f.Rs1, isa.FunctRS2CvtL), nil
	case "fcvt.s.lu":
		return fpWord(isa.FunctRS3FPXcvtF, uint32(f.Rm), f.Rd, f.Rs1, isa.FunctRS2CvtLU), nil
	case "fmv.x.w":
		return fpWord(isa.FunctRS3FPFmvxClass, 0, f.Rd, f.Rs1, 0), nil
	case "fclass.s":
		return fpWord(isa.FunctRS3FPFmvxClass, 1, f.Rd, f.Rs1, 0), nil
	case "fmv.w.x":
		return fpWord(isa.FunctRS3FPXmvF, 0, f.Rd, f.Rs1, 0), nil
	}
	return 0, encErr(m, "unsupported rvf mnemonic")
}
