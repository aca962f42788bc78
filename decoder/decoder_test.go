package decoder_test

import (
	"testing"

	"github.com/bbbbbq/riscv-online/decoder"
	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeU32_BaseForms(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		want string
	}{
		{"addi", 0x00a10093, "addi ra, sp, 10"},
		{"lw", 0x00012283, "lw t0, 0(sp)"},
		{"sw", 0x00512223, "sw t0, 4(sp)"},
		{"beq", 0x00208463, "beq ra, sp, 8"},
		{"jal", 0x00c000ef, "jal ra, 12"},
		{"jalr", 0x000100e7, "jalr ra, 0(sp)"},
		{"slli", 0x00509093, "slli ra, ra, 5"},
		{"lui", 0x123451b7, "lui gp, 74565"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := decoder.DecodeU32(tt.word, riscv.X32)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inst.Disassemble())
		})
	}
}

func TestDecodeU32_MExtensionDispatch(t *testing.T) {
	// OP opcode, funct7=0x01, funct3=0b111 (AND's funct3 slot): the
	// upstream dispatch decodes this to REM on rv32 and REMU on rv64/128.
	word := uint32(0b0000001_00010_00001_111_00011_0110011)

	inst32, err := decoder.DecodeU32(word, riscv.X32)
	require.NoError(t, err)
	assert.Equal(t, "rem", inst32.Mnemonic)

	inst64, err := decoder.DecodeU32(word, riscv.X64)
	require.NoError(t, err)
	assert.Equal(t, "remu", inst64.Mnemonic)
}

func TestDecodeU32_SystemMnemonics(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		want string
	}{
		{"ecall", 0x00000073, "ecall"},
		{"ebreak", 0x00100073, "ebreak"},
		{"fence", 0x0000000f, "fence"},
		{"fence.i", 0x0000100f, "fence.i"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := decoder.DecodeU32(tt.word, riscv.X32)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inst.Mnemonic)
			assert.Equal(t, tt.want, inst.Disassemble())
		})
	}
}

func TestDecodeU32_FcvtLRejectedOnRv32(t *testing.T) {
	// fcvt.l.s x1, f1: OP-FP, rs3=FCVT_X, fmt=S, rs2=CVT_L selector.
	word := uint32(0xc02080d3)

	_, err := decoder.DecodeU32(word, riscv.X32)
	assert.Error(t, err)

	inst, err := decoder.DecodeU32(word, riscv.X64)
	require.NoError(t, err)
	assert.Equal(t, "fcvt.l.s", inst.Mnemonic)
}

func TestDecodeU32_RejectsRV64OnRV32(t *testing.T) {
	// ld x1, 0(x2): opcode LOAD, funct3=011
	word := uint32(0b000000000000_00010_011_00001_0000011)
	_, err := decoder.DecodeU32(word, riscv.X32)
	assert.Error(t, err)
}

func TestDecodeU16_Compressed(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		want string
	}{
		{"c.nop", 0x0001, "c.nop"},
		{"c.jr ra", uint16(0b1000_00001_00000_10), "c.jr ra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := decoder.DecodeU16(tt.word, riscv.X32)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inst.Disassemble())
		})
	}
}

func TestDecodeU16_Ebreak(t *testing.T) {
	word := uint16(0b1001_00000_00000_10)
	inst, err := decoder.DecodeU16(word, riscv.X32)
	require.NoError(t, err)
	assert.Equal(t, instruction.RVC, inst.Group)
	assert.Equal(t, "c.ebreak", inst.Mnemonic)
}
