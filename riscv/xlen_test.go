package riscv_test

import (
	"testing"

	"github.com/bbbbbq/riscv-online/riscv"
	"github.com/stretchr/testify/assert"
)

func TestParseXlen(t *testing.T) {
	x, err := riscv.ParseXlen(64)
	assert.NoError(t, err)
	assert.Equal(t, riscv.X64, x)

	_, err = riscv.ParseXlen(48)
	assert.Error(t, err)
}

func TestShamtBits(t *testing.T) {
	assert.Equal(t, uint(5), riscv.X32.ShamtBits())
	assert.Equal(t, uint(6), riscv.X64.ShamtBits())
	assert.Equal(t, uint(6), riscv.X128.ShamtBits())
}
