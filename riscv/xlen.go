// Package riscv holds the small value types shared across the decoder,
// encoder, parser and disassembler: the XLEN enumeration, width-aware
// immediates, and the register ABI-name tables.
package riscv

import "fmt"

// Xlen is the integer register width of the target profile.
type Xlen int

const (
	X32  Xlen = 32
	X64  Xlen = 64
	X128 Xlen = 128
)

// ParseXlen validates a raw bit-width into an Xlen, or reports the
// caller's value wasn't one of 32/64/128.
func ParseXlen(bits int) (Xlen, error) {
	switch bits {
	case 32:
		return X32, nil
	case 64:
		return X64, nil
	case 128:
		return X128, nil
	default:
		return 0, fmt.Errorf("invalid xlen")
	}
}

// ShamtBits returns the shift-amount field width for this XLEN: 5 bits
// on RV32, 6 bits on RV64/RV128.
func (x Xlen) ShamtBits() uint {
	if x == X32 {
		return 5
	}
	return 6
}

func (x Xlen) String() string {
	return fmt.Sprintf("rv%d", int(x))
}
