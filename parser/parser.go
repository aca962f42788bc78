// Package parser turns one line of the restricted RISC-V assembly dialect
// into a structured instruction.Instruction, the inverse of the decoder
// package. Each extension family gets its own tryParseX function that
// returns ok=false (no error) when the mnemonic isn't its concern, so
// ParseLine can try them in turn, mirroring the Rust parser's modular
// try_parse dispatch (see parse/mod.rs in original_source/).
package parser

import (
	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
)

// ParseLine parses a single assembly line for the given XLEN. Comments
// (# or //) and surrounding whitespace are stripped first; a blank line
// is an error, as there is no instruction to return.
func ParseLine(line string, xlen riscv.Xlen) (instruction.Instruction, error) {
	mnem, ops := tokenize(line)
	if mnem == "" {
		return instruction.Instruction{}, errf("", "empty line")
	}

	if inst, ok, err := tryParseBase(mnem, ops, xlen); ok {
		return inst, err
	}
	if inst, ok, err := tryParseSystem(mnem, ops); ok {
		return inst, err
	}
	if inst, ok, err := tryParseZicsr(mnem, ops); ok {
		return inst, err
	}
	if inst, ok, err := tryParseAtomic(mnem, ops, xlen); ok {
		return inst, err
	}
	if inst, ok, err := tryParseRVF(mnem, ops, xlen); ok {
		return inst, err
	}
	if inst, ok, err := tryParseRVC(mnem, ops, xlen); ok {
		return inst, err
	}

	return instruction.Instruction{}, errf(mnem, "unknown mnemonic")
}
