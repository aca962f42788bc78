package translate_test

import (
	"strings"
	"testing"

	"github.com/bbbbbq/riscv-online/translate"
	"github.com/stretchr/testify/assert"
)

func TestDisassemble_BaseForms(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{"addi", "0x00a10093", "addi ra, sp, 10"},
		{"lw", "0x00012283", "lw t0, 0(sp)"},
		{"sw", "0x00512223", "sw t0, 4(sp)"},
		{"beq", "0x00208463", "beq ra, sp, 8"},
		{"jal", "0x00c000ef", "jal ra, 12"},
		{"uppercase 0X prefix", "0X00A10093", "addi ra, sp, 10"},
		{"no prefix", "00a10093", "addi ra, sp, 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translate.Disassemble(tt.word))
		})
	}
}

func TestDisassemble_InvalidHex(t *testing.T) {
	got := translate.Disassemble("0xzzzz")
	assert.True(t, strings.HasPrefix(got, "Error: "))
}

func TestDisassembleWithXlen_RejectsBadXlen(t *testing.T) {
	got := translate.DisassembleWithXlen("0x00a10093", 48)
	assert.True(t, strings.HasPrefix(got, "Error: "))
}

func TestDisassembleWithXlen_Rv64OnlyInstruction(t *testing.T) {
	// ld x1, 0(x2): opcode LOAD, funct3=011
	word := "0x00013083"
	gotRv32 := translate.DisassembleWithXlen(word, 32)
	assert.True(t, strings.HasPrefix(gotRv32, "Error: "))

	gotRv64 := translate.DisassembleWithXlen(word, 64)
	assert.False(t, strings.HasPrefix(gotRv64, "Error: "))
}

func TestDisassembleAuto_FallsBackToRv64(t *testing.T) {
	word := "0x00013083"
	got := translate.DisassembleAuto(word)
	assert.False(t, strings.HasPrefix(got, "Error: "))
}

func TestDisassemble_CompressedWord(t *testing.T) {
	// c.nop: low two bits are 01, so is16Bit classifies this as compressed.
	got := translate.Disassemble("0x0001")
	assert.Equal(t, "c.nop", got)
}

func TestAssembleWithXlen_SingleLine(t *testing.T) {
	got := translate.AssembleWithXlen("addi x1, x2, 10", 32)
	assert.Equal(t, "0x00a10093", got)
}

func TestAssembleWithXlen_SystemMnemonics(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"fence", "0x0000000f"},
		{"fence.i", "0x0000100f"},
		{"ecall", "0x00000073"},
		{"ebreak", "0x00100073"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, translate.AssembleWithXlen(tt.line, 32))
		})
	}
}

func TestAssembleWithXlen_MultiLine(t *testing.T) {
	input := "addi x1, x2, 10\nlw x5, 0(x2)"
	got := translate.AssembleWithXlen(input, 32)
	lines := strings.Split(got, "\n")
	assert.Equal(t, []string{"0x00a10093", "0x00012283"}, lines)
}

func TestAssembleWithXlen_BlankLinesSkipped(t *testing.T) {
	input := "addi x1, x2, 10\n\n   \nlw x5, 0(x2)"
	got := translate.AssembleWithXlen(input, 32)
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
}

func TestAssembleWithXlen_ErrorLinePreservesOrder(t *testing.T) {
	input := "addi x1, x2, 10\nfrobnicate x1, x2"
	got := translate.AssembleWithXlen(input, 32)
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "0x00a10093", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Error: "))
}

func TestAssembleWithXlen_CompressedInstruction(t *testing.T) {
	got := translate.AssembleWithXlen("c.nop", 32)
	assert.Equal(t, "0x0001", got)
}

func TestAssembleAuto_FallsBackToRv64(t *testing.T) {
	got := translate.AssembleAuto("ld x1, 0(x2)")
	assert.False(t, strings.HasPrefix(got, "Error: "))
	assert.True(t, strings.HasPrefix(got, "0x"))
}

func TestAssembleAuto_UnknownMnemonicErrors(t *testing.T) {
	got := translate.AssembleAuto("frobnicate x1, x2")
	assert.True(t, strings.HasPrefix(got, "Error: "))
}
