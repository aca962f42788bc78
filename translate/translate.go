// Package translate is the public facade over decoder/encoder/parser:
// hex word in, disassembly text out, and back. Grounded on the Rust
// lib.rs this module replaces - same hex parsing, same 16-vs-32-bit
// classifier, same "Error: "-prefixed error strings - but exposed as
// plain Go functions instead of wasm-bindgen exports, since the
// host/page glue is out of scope here.
package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bbbbbq/riscv-online/decoder"
	"github.com/bbbbbq/riscv-online/encoder"
	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/parser"
	"github.com/bbbbbq/riscv-online/riscv"
)

// parseXlenBits maps a CLI/config-facing bit width to riscv.Xlen.
func parseXlenBits(bits int) (riscv.Xlen, error) {
	switch bits {
	case 32:
		return riscv.X32, nil
	case 64:
		return riscv.X64, nil
	case 128:
		return riscv.X128, nil
	}
	return 0, fmt.Errorf("invalid xlen %d, must be 32, 64, or 128", bits)
}

// parseHexWord strips an optional 0x/0X prefix and parses the rest as a
// base-16 unsigned value.
func parseHexWord(input string) (uint32, error) {
	t := input
	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		t = t[2:]
	}
	v, err := strconv.ParseUint(t, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input: %w", err)
	}
	return uint32(v), nil
}

// is16Bit reports whether value's low two bits are not both set, the
// RISC-V convention marking a word as a compressed (16-bit) instruction.
func is16Bit(value uint32) bool {
	return value&0b11 != 0b11
}

func disassembleValue(value uint32, xlen riscv.Xlen) (string, error) {
	if is16Bit(value) {
		if value > 0xFFFF {
			return "", fmt.Errorf("invalid 16-bit instruction")
		}
		inst, err := decoder.DecodeU16(uint16(value), xlen)
		if err != nil {
			return "", fmt.Errorf("unsupported 16-bit instruction: %w", err)
		}
		return inst.Disassemble(), nil
	}
	inst, err := decoder.DecodeU32(value, xlen)
	if err != nil {
		return "", fmt.Errorf("unsupported 32-bit instruction: %w", err)
	}
	return inst.Disassemble(), nil
}

// Disassemble decodes a single hex instruction word for rv32i.
func Disassemble(input string) string {
	return disassembleOrError(input, riscv.X32)
}

// DisassembleWithXlen decodes a single hex instruction word for the
// requested register width (32, 64, or 128).
func DisassembleWithXlen(input string, xlenBits int) string {
	xlen, err := parseXlenBits(xlenBits)
	if err != nil {
		return "Error: " + err.Error()
	}
	return disassembleOrError(input, xlen)
}

func disassembleOrError(input string, xlen riscv.Xlen) string {
	value, err := parseHexWord(input)
	if err != nil {
		return "Error: " + err.Error()
	}
	s, err := disassembleValue(value, xlen)
	if err != nil {
		return "Error: " + err.Error()
	}
	return s
}

// DisassembleAuto decodes a single hex instruction word, trying rv32,
// then rv64, then rv128 and returning the first width that decodes.
func DisassembleAuto(input string) string {
	value, err := parseHexWord(input)
	if err != nil {
		return "Error: invalid input: " + err.Error()
	}
	var lastErr error
	for _, xlen := range []riscv.Xlen{riscv.X32, riscv.X64, riscv.X128} {
		s, err := disassembleValue(value, xlen)
		if err == nil {
			return s
		}
		lastErr = err
	}
	if lastErr == nil {
		return "Error: unsupported instruction"
	}
	return "Error: " + lastErr.Error()
}

func encodeLine(line string, xlen riscv.Xlen) (string, error) {
	inst, err := parser.ParseLine(line, xlen)
	if err != nil {
		return "", err
	}
	if inst.Group == instruction.RVC {
		w16, err := encoder.EncodeU16(inst, xlen)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("0x%04x", w16), nil
	}
	w32, err := encoder.EncodeU32(inst, xlen)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("0x%08x", w32), nil
}

// AssembleWithXlen assembles one instruction per input line for the
// requested register width, emitting one hex word (or "Error: ..." line)
// per non-blank input line, in order; blank lines produce no output.
func AssembleWithXlen(input string, xlenBits int) string {
	xlen, err := parseXlenBits(xlenBits)
	if err != nil {
		return "Error: " + err.Error()
	}
	var out []string
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		s, err := encodeLine(trimmed, xlen)
		if err != nil {
			out = append(out, "Error: "+err.Error())
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, "\n")
}

// AssembleAuto assembles one instruction per input line, trying rv32,
// then rv64, then rv128 per line and keeping the first width that
// both parses and encodes.
func AssembleAuto(input string) string {
	var out []string
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		var lastErr error
		found := false
		for _, xlen := range []riscv.Xlen{riscv.X32, riscv.X64, riscv.X128} {
			s, err := encodeLine(trimmed, xlen)
			if err == nil {
				out = append(out, s)
				found = true
				break
			}
			lastErr = err
		}
		if !found {
			if lastErr == nil {
				out = append(out, "Error: unsupported or invalid instruction")
			} else {
				out = append(out, "Error: "+lastErr.Error())
			}
		}
	}
	return strings.Join(out, "\n")
}
