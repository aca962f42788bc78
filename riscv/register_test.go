package riscv_test

import (
	"testing"

	"github.com/bbbbbq/riscv-online/riscv"
	"github.com/stretchr/testify/assert"
)

func TestToRegisterName(t *testing.T) {
	assert.Equal(t, "zero", riscv.ToRegisterName(0))
	assert.Equal(t, "ra", riscv.ToRegisterName(1))
	assert.Equal(t, "sp", riscv.ToRegisterName(2))
	assert.Equal(t, "s0", riscv.ToRegisterName(8))
	assert.Equal(t, "a0", riscv.ToRegisterName(10))
	assert.Equal(t, "t6", riscv.ToRegisterName(31))
}

func TestFromRegisterName(t *testing.T) {
	tests := []struct {
		name string
		want uint8
	}{
		{"zero", 0}, {"ra", 1}, {"sp", 2}, {"fp", 8}, {"s0", 8}, {"a0", 10}, {"t6", 31},
		{"x0", 0}, {"x31", 31}, {"X15", 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := riscv.FromRegisterName(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.want, r)
		})
	}

	_, ok := riscv.FromRegisterName("x32")
	assert.False(t, ok, "x32 is out of range")

	_, ok = riscv.FromRegisterName("notareg")
	assert.False(t, ok)
}

func TestFPRegisterNames(t *testing.T) {
	assert.Equal(t, "ft0", riscv.ToFPRegisterName(0))
	assert.Equal(t, "fa0", riscv.ToFPRegisterName(10))
	assert.Equal(t, "fs11", riscv.ToFPRegisterName(27))

	r, ok := riscv.FromFPRegisterName("fa0")
	assert.True(t, ok)
	assert.Equal(t, uint8(10), r)

	r, ok = riscv.FromFPRegisterName("f5")
	assert.True(t, ok)
	assert.Equal(t, uint8(5), r)
}
