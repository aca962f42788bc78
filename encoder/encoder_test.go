package encoder_test

import (
	"testing"

	"github.com/bbbbbq/riscv-online/decoder"
	"github.com/bbbbbq/riscv-online/encoder"
	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imm(t *testing.T, v int64, width uint) riscv.Imm {
	t.Helper()
	i, err := riscv.SignedImm(v, width)
	require.NoError(t, err)
	return i
}

func TestEncodeU32_BaseForms(t *testing.T) {
	tests := []struct {
		name string
		in   instruction.Instruction
		want uint32
	}{
		{
			name: "addi x1, x2, 10",
			in: instruction.Instruction{Group: instruction.RV32I, Mnemonic: "addi",
				Format: instruction.IType{Rd: 1, Rs1: 2, Imm: imm(t, 10, 12)}},
			want: 0x00a10093,
		},
		{
			name: "lw x5, 0(x2)",
			in: instruction.Instruction{Group: instruction.RV32I, Mnemonic: "lw",
				Format: instruction.IType{Rd: 5, Rs1: 2, Imm: imm(t, 0, 12)}},
			want: 0x00012283,
		},
		{
			name: "sw x5, 4(x2)",
			in: instruction.Instruction{Group: instruction.RV32I, Mnemonic: "sw",
				Format: instruction.SType{Rs1: 2, Rs2: 5, Imm: imm(t, 4, 12)}},
			want: 0x00512223,
		},
		{
			name: "beq x1, x2, 8",
			in: instruction.Instruction{Group: instruction.RV32I, Mnemonic: "beq",
				Format: instruction.BType{Rs1: 1, Rs2: 2, Imm: imm(t, 8, 13)}},
			want: 0x00208463,
		},
		{
			name: "jal x1, 12",
			in: instruction.Instruction{Group: instruction.RV32I, Mnemonic: "jal",
				Format: instruction.JType{Rd: 1, Imm: imm(t, 12, 21)}},
			want: 0x00c000ef,
		},
		{
			name: "jalr x1, 0(x2)",
			in: instruction.Instruction{Group: instruction.RV32I, Mnemonic: "jalr",
				Format: instruction.IType{Rd: 1, Rs1: 2, Imm: imm(t, 0, 12)}},
			want: 0x000100e7,
		},
		{
			name: "slli x1, x1, 5",
			in: instruction.Instruction{Group: instruction.RV32I, Mnemonic: "slli",
				Format: instruction.ShiftType{Rd: 1, Rs1: 1, Shamt: 5}},
			want: 0x00509093,
		},
		{
			name: "lui x3, 0x12345",
			in: instruction.Instruction{Group: instruction.RV32I, Mnemonic: "lui",
				Format: instruction.UType{Rd: 3, Imm: riscv.NewImm(0x12345, 20)}},
			want: 0x123451b7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encoder.EncodeU32(tt.in, riscv.X32)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeU32_RemAndRemuShareTheAndSlot(t *testing.T) {
	// "rem" and "remu" both encode through the AND funct3 slot; XLEN is
	// only a decode-side disambiguator, so the two mnemonics (and both
	// XLENs) produce the identical word.
	rem := instruction.Instruction{Group: instruction.RV32I, Mnemonic: "rem",
		Format: instruction.RType{Rd: 3, Rs1: 1, Rs2: 2}}
	remu := instruction.Instruction{Group: instruction.RV32I, Mnemonic: "remu",
		Format: instruction.RType{Rd: 3, Rs1: 1, Rs2: 2}}

	remWord, err := encoder.EncodeU32(rem, riscv.X32)
	require.NoError(t, err)
	remuWord, err := encoder.EncodeU32(remu, riscv.X64)
	require.NoError(t, err)
	assert.Equal(t, remWord, remuWord)

	inst, err := decoder.DecodeU32(remWord, riscv.X32)
	require.NoError(t, err)
	assert.Equal(t, "rem", inst.Mnemonic)

	inst, err = decoder.DecodeU32(remWord, riscv.X64)
	require.NoError(t, err)
	assert.Equal(t, "remu", inst.Mnemonic)
}

func TestEncodeU32_MulhsuUsesXorSlot(t *testing.T) {
	in := instruction.Instruction{Group: instruction.RV32I, Mnemonic: "mulhsu",
		Format: instruction.RType{Rd: 3, Rs1: 1, Rs2: 2}}
	got, err := encoder.EncodeU32(in, riscv.X32)
	require.NoError(t, err)

	inst, err := decoder.DecodeU32(got, riscv.X32)
	require.NoError(t, err)
	assert.Equal(t, "mulhsu", inst.Mnemonic)
}

func TestEncodeU32_XlenGating(t *testing.T) {
	in := instruction.Instruction{Group: instruction.RV64I, Mnemonic: "addiw",
		Format: instruction.IType{Rd: 1, Rs1: 1, Imm: imm(t, 1, 12)}}
	_, err := encoder.EncodeU32(in, riscv.X64)
	assert.NoError(t, err)

	_, err = encoder.EncodeU32(in, riscv.X32)
	assert.Error(t, err, "addiw requires rv64")
}
