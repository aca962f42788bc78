package instruction

import "github.com/bbbbbq/riscv-online/riscv"

// Instruction is a single decoded or parsed RISC-V instruction: which
// extension family it belongs to, its lowercase assembly mnemonic, and
// the typed format record carrying its operands. Format holds exactly
// one of the *Type structs in types.go; which one is determined by
// Mnemonic and is fixed at construction time by the decoder or parser.
type Instruction struct {
	Group    Group
	Mnemonic string
	Format   interface{}
}

// loadMnemonics render as "rd, imm(rs1)" rather than "rd, rs1, imm".
var loadMnemonics = map[string]bool{
	"lb": true, "lh": true, "lw": true, "ld": true,
	"lbu": true, "lhu": true, "lwu": true,
	"flw": true,
}

// storeMnemonics render as "rs2, imm(rs1)".
var storeMnemonics = map[string]bool{
	"sb": true, "sh": true, "sw": true, "sd": true,
	"fsw": true,
}

var jalrMnemonic = map[string]bool{"jalr": true}

// fpUnaryMnemonics take a single FP or integer source register (Rs1
// only; Rs2/Rm unused in FRType beyond the rounding mode already
// embedded in the instruction where present).
var fpUnaryMnemonics = map[string]bool{
	"fsqrt.s": true, "fmv.x.w": true, "fclass.s": true,
	"fcvt.w.s": true, "fcvt.wu.s": true, "fcvt.l.s": true, "fcvt.lu.s": true,
	"fcvt.s.w": true, "fcvt.s.wu": true, "fcvt.s.l": true, "fcvt.s.lu": true,
	"fmv.w.x": true,
}

func reg(i uint8) string   { return riscv.ToRegisterName(i) }
func fpReg(i uint8) string { return riscv.ToFPRegisterName(i) }
