package parser_test

import (
	"testing"

	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/parser"
	"github.com/bbbbbq/riscv-online/riscv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_BaseForms(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"addi", "addi x1, x2, 10"},
		{"lw", "lw x5, 0(x2)"},
		{"sw", "sw x5, 4(x2)"},
		{"beq", "beq x1, x2, 8"},
		{"jal", "jal x1, 12"},
		{"jalr mem form", "jalr x1, 0(x2)"},
		{"slli", "slli x1, x1, 5"},
		{"lui hex", "lui x3, 0x12345"},
		{"comment stripped", "addi x1, x2, 10 # bump"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseLine(tt.line, riscv.X32)
			require.NoError(t, err)
		})
	}
}

func TestParseLine_ExactMnemonicAndOperands(t *testing.T) {
	inst, err := parser.ParseLine("addi x1, x2, 10", riscv.X32)
	require.NoError(t, err)
	assert.Equal(t, "addi", inst.Mnemonic)
	f, ok := inst.Format.(instruction.IType)
	require.True(t, ok)
	assert.Equal(t, uint8(1), f.Rd)
	assert.Equal(t, uint8(2), f.Rs1)
	assert.Equal(t, int64(10), f.Imm.SignExtend())
}

func TestParseLine_UnknownMnemonic(t *testing.T) {
	_, err := parser.ParseLine("frobnicate x1, x2", riscv.X32)
	assert.Error(t, err)
}

func TestParseLine_EmptyLine(t *testing.T) {
	_, err := parser.ParseLine("   ", riscv.X32)
	assert.Error(t, err)

	_, err = parser.ParseLine("# just a comment", riscv.X32)
	assert.Error(t, err)
}

func TestParseLine_XlenGating(t *testing.T) {
	_, err := parser.ParseLine("ld x1, 0(x2)", riscv.X32)
	assert.Error(t, err, "ld requires rv64")

	_, err = parser.ParseLine("ld x1, 0(x2)", riscv.X64)
	assert.NoError(t, err)
}

func TestParseLine_RegisterVsImmediateDiagnostic(t *testing.T) {
	_, err := parser.ParseLine("addi x1, x2, x3", riscv.X32)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register")
}

func TestParseLine_Zicsr(t *testing.T) {
	inst, err := parser.ParseLine("csrrw x1, 0x300, x2", riscv.X32)
	require.NoError(t, err)
	assert.Equal(t, instruction.RVZicsr, inst.Group)
}

func TestParseLine_System(t *testing.T) {
	inst, err := parser.ParseLine("ecall", riscv.X32)
	require.NoError(t, err)
	assert.Equal(t, "ecall", inst.Mnemonic)

	_, err = parser.ParseLine("fencei", riscv.X32)
	require.NoError(t, err)
}

func TestParseLine_Atomic(t *testing.T) {
	inst, err := parser.ParseLine("amoadd.w x1, x2, (x3)", riscv.X32)
	require.NoError(t, err)
	f, ok := inst.Format.(instruction.Atomic)
	require.True(t, ok)
	assert.False(t, f.Aq)
	assert.False(t, f.Rl)

	_, err = parser.ParseLine("lr.w x1, (x2)", riscv.X32)
	require.NoError(t, err)

	_, err = parser.ParseLine("amoadd.d x1, x2, (x3)", riscv.X32)
	assert.Error(t, err, "amoadd.d requires rv64")
}

func TestParseLine_RVF(t *testing.T) {
	_, err := parser.ParseLine("flw f1, 0(x2)", riscv.X32)
	require.NoError(t, err)

	_, err = parser.ParseLine("fadd.s f1, f2, f3", riscv.X32)
	require.NoError(t, err)

	_, err = parser.ParseLine("fcvt.l.s x1, f2", riscv.X32)
	assert.Error(t, err, "fcvt.l.s requires rv64")

	_, err = parser.ParseLine("fcvt.l.s x1, f2", riscv.X64)
	assert.NoError(t, err)
}

func TestParseLine_RVC(t *testing.T) {
	tests := []string{
		"c.addi4spn a0, 16",
		"c.addi a0, -1",
		"c.lw a0, 0(a1)",
		"c.sw a0, 4(a1)",
		"c.slli a0, 3",
		"c.srli a0, 1",
		"c.srai a0, 1",
		"c.andi a0, -1",
		"c.and a0, a1",
		"c.mv a0, a1",
		"c.add a0, a1",
		"c.jr ra",
		"c.jalr ra",
		"c.j 8",
		"c.beqz a0, 8",
		"c.bnez a0, 8",
		"c.nop",
		"c.ebreak",
	}
	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			inst, err := parser.ParseLine(line, riscv.X32)
			require.NoError(t, err)
			assert.Equal(t, instruction.RVC, inst.Group)
		})
	}
}

func TestParseLine_RVC_JalOnlyOnRv32(t *testing.T) {
	_, err := parser.ParseLine("c.jal 8", riscv.X32)
	assert.NoError(t, err)

	_, err = parser.ParseLine("c.jal 8", riscv.X64)
	assert.Error(t, err)
}

func TestParseLine_RVC_CompressedRegisterRange(t *testing.T) {
	_, err := parser.ParseLine("c.and t0, a1", riscv.X32)
	assert.Error(t, err, "t0 (x5) is outside the compressed x8-x15 range")
}
