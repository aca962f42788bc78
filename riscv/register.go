package riscv

import (
	"fmt"
	"strconv"
	"strings"
)

// abiNames indexes x0..x31 by their calling-convention name.
var abiNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// ToRegisterName renders an integer register index in ABI form. Out-of-
// range indices fall back to a numeric "xN" form rather than panicking.
func ToRegisterName(reg uint8) string {
	if int(reg) < len(abiNames) {
		return abiNames[reg]
	}
	return fmt.Sprintf("x%d", reg)
}

// FromRegisterName resolves an ABI or numeric register token ("a0", "x10",
// "fp", "zero", ...) to its index. "fp" is accepted as an alias of s0.
func FromRegisterName(name string) (uint8, bool) {
	name = strings.ToLower(name)
	if name == "fp" {
		return 8, true
	}
	for i, n := range abiNames {
		if n == name {
			return uint8(i), true
		}
	}
	if strings.HasPrefix(name, "x") {
		n, err := strconv.Atoi(name[1:])
		if err != nil || n < 0 || n > 31 {
			return 0, false
		}
		return uint8(n), true
	}
	return 0, false
}

// fpRegNames indexes f0..f31 by their calling-convention name (shared
// across RVF; only f0-f31 are used by the single-precision subset here).
var fpRegNames = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

// ToFPRegisterName renders a float register index in ABI form.
func ToFPRegisterName(reg uint8) string {
	if int(reg) < len(fpRegNames) {
		return fpRegNames[reg]
	}
	return fmt.Sprintf("f%d", reg)
}

// FromFPRegisterName resolves an ABI or numeric ("f10") float register
// token to its index.
func FromFPRegisterName(name string) (uint8, bool) {
	name = strings.ToLower(name)
	for i, n := range fpRegNames {
		if n == name {
			return uint8(i), true
		}
	}
	if strings.HasPrefix(name, "f") {
		n, err := strconv.Atoi(name[1:])
		if err != nil || n < 0 || n > 31 {
			return 0, false
		}
		return uint8(n), true
	}
	return 0, false
}
