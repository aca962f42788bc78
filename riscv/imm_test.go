package riscv_test

import (
	"testing"

	"github.com/bbbbbq/riscv-online/riscv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedImm_RangeAndSignExtend(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		width uint
	}{
		{"zero", 0, 12},
		{"max positive 12-bit", 2047, 12},
		{"min negative 12-bit", -2048, 12},
		{"max positive 6-bit", 31, 6},
		{"min negative 6-bit", -32, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imm, err := riscv.SignedImm(tt.value, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.value, imm.SignExtend())
			assert.Equal(t, tt.width, imm.Width())
		})
	}
}

func TestSignedImm_OutOfRange(t *testing.T) {
	_, err := riscv.SignedImm(2048, 12)
	assert.Error(t, err)

	_, err = riscv.SignedImm(-2049, 12)
	assert.Error(t, err)
}

func TestUnsignedImm_RangeAndValue(t *testing.T) {
	imm, err := riscv.UnsignedImm(31, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(31), imm.Value())

	_, err = riscv.UnsignedImm(32, 5)
	assert.Error(t, err, "5-bit uimm cannot hold 32")

	_, err = riscv.UnsignedImm(-1, 5)
	assert.Error(t, err, "uimm cannot be negative")
}

func TestNewImm_MasksRawValue(t *testing.T) {
	imm := riscv.NewImm(0xFFFFFFFF, 12)
	assert.Equal(t, uint32(0xFFF), imm.Low())
	assert.Equal(t, int64(-1), imm.SignExtend())
}
