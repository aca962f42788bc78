package parser

import (
	"strconv"
	"strings"

	"github.com/bbbbbq/riscv-online/riscv"
)

// trimComment strips a trailing "#" or "//" comment and surrounding
// whitespace, mirroring the Rust parser's trim_comment.
func trimComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// tokenize splits a trimmed assembly line into its mnemonic and raw
// (comma-separated, still-unparsed) operand tokens.
func tokenize(line string) (string, []string) {
	line = trimComment(line)
	if line == "" {
		return "", nil
	}
	fields := strings.Fields(line)
	mnemonic := strings.ToLower(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
	if rest == "" {
		return mnemonic, nil
	}
	return mnemonic, splitOperands(rest)
}

// splitOperands splits on top-level commas, so "imm(rs1)" remains one
// operand token.
func splitOperands(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(s[start:]))
	return out
}

// parseRegister resolves an integer ABI/numeric register token.
func parseRegister(tok string) (uint8, error) {
	if r, ok := riscv.FromRegisterName(tok); ok {
		return r, nil
	}
	return 0, errf("", "expected register, got %q", tok)
}

// parseFPRegister resolves a float ABI/numeric register token.
func parseFPRegister(tok string) (uint8, error) {
	if r, ok := riscv.FromFPRegisterName(tok); ok {
		return r, nil
	}
	return 0, errf("", "expected float register, got %q", tok)
}

// parseInt parses a decimal or 0x/0X-prefixed hex integer, with an
// optional leading sign. If the token instead names a register, this
// returns a distinct diagnostic so callers can tell "bad number" apart
// from "operand order mistake".
func parseInt(tok string) (int64, error) {
	t := tok
	neg := false
	if strings.HasPrefix(t, "+") {
		t = t[1:]
	} else if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	}
	if _, ok := riscv.FromRegisterName(tok); ok {
		return 0, errf("", "expected immediate, got register %q", tok)
	}
	var v int64
	var err error
	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		u, e := strconv.ParseUint(t[2:], 16, 64)
		v, err = int64(u), e
	} else {
		v, err = strconv.ParseInt(t, 10, 64)
	}
	if err != nil {
		return 0, errf("", "invalid immediate %q", tok)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// parseSignedImm parses a token and range-checks it into a width-bit
// signed immediate.
func parseSignedImm(tok string, width uint) (riscv.Imm, error) {
	v, err := parseInt(tok)
	if err != nil {
		return riscv.Imm{}, err
	}
	return riscv.SignedImm(v, width)
}

// parseUnsignedImm parses a token and range-checks it into a width-bit
// unsigned immediate.
func parseUnsignedImm(tok string, width uint) (riscv.Uimm, error) {
	v, err := parseInt(tok)
	if err != nil {
		return riscv.Uimm{}, err
	}
	return riscv.UnsignedImm(v, width)
}

// parseMemOperand parses the "imm(reg)" syntax used by loads, stores and
// compressed stack-relative forms, returning the raw offset and base
// register index.
func parseMemOperand(tok string) (int64, uint8, error) {
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return 0, 0, errf("", "expected offset(register), got %q", tok)
	}
	offsetTok := strings.TrimSpace(tok[:open])
	regTok := strings.TrimSpace(tok[open+1 : len(tok)-1])
	offset := int64(0)
	if offsetTok != "" {
		v, err := parseInt(offsetTok)
		if err != nil {
			return 0, 0, err
		}
		offset = v
	}
	reg, err := parseRegister(regTok)
	if err != nil {
		return 0, 0, err
	}
	return offset, reg, nil
}

func xlenGate(xlen riscv.Xlen, need riscv.Xlen, mnemonic string) error {
	if need == riscv.X64 && xlen == riscv.X32 {
		return errf(mnemonic, "not available on rv32")
	}
	return nil
}
