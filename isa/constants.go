// Package isa holds the flat bit-pattern tables shared by the decoder,
// encoder and disassembler: opcodes, funct codes, and width selectors.
// None of these carry behavior — they exist so decoder/encoder dispatch
// reads as a table lookup instead of magic numbers.
package isa

// Main 32-bit opcodes (instruction bits [6:0]).
const (
	OpcodeLoad     = 0b0000011
	OpcodeLoadFP   = 0b0000111
	OpcodeMiscMem  = 0b0001111
	OpcodeOpImm    = 0b0010011
	OpcodeAuipc    = 0b0010111
	OpcodeOpImm32  = 0b0011011
	OpcodeStore    = 0b0100011
	OpcodeStoreFP  = 0b0100111
	OpcodeAmo      = 0b0101111
	OpcodeOp       = 0b0110011
	OpcodeLui      = 0b0110111
	OpcodeOp32     = 0b0111011
	OpcodeFmadd    = 0b1000011
	OpcodeFmsub    = 0b1000111
	OpcodeFnmsub   = 0b1001011
	OpcodeFnmadd   = 0b1001111
	OpcodeFP       = 0b1010011
	OpcodeBranch   = 0b1100011
	OpcodeJalr     = 0b1100111
	OpcodeJal      = 0b1101111
	OpcodeSystem   = 0b1110011
)

// Branch funct3 codes.
const (
	Funct3BranchBEQ  = 0b000
	Funct3BranchBNE  = 0b001
	Funct3BranchBLT  = 0b100
	Funct3BranchBGE  = 0b101
	Funct3BranchBLTU = 0b110
	Funct3BranchBGEU = 0b111
)

// Load/store funct3 codes.
const (
	Funct3LoadLB  = 0b000
	Funct3LoadLH  = 0b001
	Funct3LoadLW  = 0b010
	Funct3LoadLD  = 0b011
	Funct3LoadLBU = 0b100
	Funct3LoadLHU = 0b101
	Funct3LoadLWU = 0b110

	Funct3StoreSB = 0b000
	Funct3StoreSH = 0b001
	Funct3StoreSW = 0b010
	Funct3StoreSD = 0b011
)

// MISC-MEM funct3 codes.
const (
	Funct3MiscMemFence   = 0b000
	Funct3MiscMemFenceI  = 0b001
)

// SYSTEM funct3 codes.
const (
	Funct3SystemPriv   = 0b000
	Funct3SystemCSRRW  = 0b001
	Funct3SystemCSRRS  = 0b010
	Funct3SystemCSRRC  = 0b011
	Funct3SystemCSRRWI = 0b101
	Funct3SystemCSRRSI = 0b110
	Funct3SystemCSRRCI = 0b111
)

const (
	Funct12SystemECALL  = 0x000
	Funct12SystemEBREAK = 0x001
)

// OP/OP-IMM funct3 codes (shared by OP, OP-IMM, OP-32, OP-IMM-32).
const (
	Funct3OpAddSub = 0b000
	Funct3OpSLL    = 0b001
	Funct3OpSLT    = 0b010
	Funct3OpSLTU   = 0b011
	Funct3OpXOR    = 0b100
	Funct3OpSRLSRA = 0b101
	Funct3OpOR     = 0b110
	Funct3OpAND    = 0b111
)

const (
	Funct7OpAdd = 0b0000000
	Funct7OpSub = 0b0100000
	Funct7OpSRL = 0b0000000
	Funct7OpSRA = 0b0100000
	Funct7MExt  = 0b0000001
)

// Width-discriminating funct3 for LOAD-FP/STORE-FP (only .W supported here).
const Funct3WidthW = 0b010

// FMADD/FMSUB/FNMSUB/FNMADD and FP funct2 format selector (S = single precision).
const Funct2FmtS = 0b00

// FP (opcode 0x53) top-5-bits-of-funct7 "rs3" dispatch values.
const (
	FunctRS3FPAdd        = 0b00000
	FunctRS3FPSub        = 0b00001
	FunctRS3FPMul        = 0b00010
	FunctRS3FPDiv        = 0b00011
	FunctRS3FPSqrt       = 0b01011
	FunctRS3FPSgnj       = 0b00100
	FunctRS3FPMinMax     = 0b00101
	FunctRS3FPFcvtX      = 0b11000 // fcvt.{w|wu|l|lu}.s
	FunctRS3FPXcvtF      = 0b11010 // fcvt.s.{w|wu|l|lu}
	FunctRS3FPFmvxClass  = 0b11100 // fmv.x.w / fclass.s
	FunctRS3FPXmvF       = 0b11110 // fmv.w.x
	FunctRS3FPCmp        = 0b10100
)

const (
	Funct3FPSgnj  = 0b000
	Funct3FPSgnjn = 0b001
	Funct3FPSgnjx = 0b010
	Funct3FPMin   = 0b000
	Funct3FPMax   = 0b001
	Funct3FPEq    = 0b010
	Funct3FPLt    = 0b001
	Funct3FPLe    = 0b000
)

// rs2 field selecting the integer format in fcvt.{int}.s / fcvt.s.{int}.
const (
	FunctRS2CvtW  = 0b00000
	FunctRS2CvtWU = 0b00001
	FunctRS2CvtL  = 0b00010
	FunctRS2CvtLU = 0b00011
)

// Compressed opcode discriminants (instruction bits [1:0]).
const (
	C0 = 0b00
	C1 = 0b01
	C2 = 0b10
)

// Atomic (A-extension) funct5 sub-ops (instruction bits [31:27]).
const (
	Funct5AmoAdd   = 0b00000
	Funct5AmoSwap  = 0b00001
	Funct5ALR      = 0b00010
	Funct5ASC      = 0b00011
	Funct5AmoXor   = 0b00100
	Funct5AmoOr    = 0b01000
	Funct5AmoAnd   = 0b01100
	Funct5AmoMin   = 0b10000
	Funct5AmoMax   = 0b10100
	Funct5AmoMinU  = 0b11000
	Funct5AmoMaxU  = 0b11100
)

// Atomic width codes carried in funct3 of the A opcode.
const (
	Funct3AWidthW = 0b010
	Funct3AWidthD = 0b011
	Funct3AWidthQ = 0b100
)
