package instruction_test

import (
	"testing"

	"github.com/bbbbbq/riscv-online/instruction"
	"github.com/bbbbbq/riscv-online/riscv"
	"github.com/stretchr/testify/assert"
)

func TestDisassemble_BaseForms(t *testing.T) {
	tests := []struct {
		name string
		inst instruction.Instruction
		want string
	}{
		{
			name: "addi",
			inst: instruction.Instruction{Mnemonic: "addi",
				Format: instruction.IType{Rd: 1, Rs1: 2, Imm: mustImm(10, 12)}},
			want: "addi ra, sp, 10",
		},
		{
			name: "lw as imm(rs1)",
			inst: instruction.Instruction{Mnemonic: "lw",
				Format: instruction.IType{Rd: 5, Rs1: 2, Imm: mustImm(0, 12)}},
			want: "lw t0, 0(sp)",
		},
		{
			name: "sw as imm(rs1)",
			inst: instruction.Instruction{Mnemonic: "sw",
				Format: instruction.SType{Rs1: 2, Rs2: 5, Imm: mustImm(4, 12)}},
			want: "sw t0, 4(sp)",
		},
		{
			name: "beq",
			inst: instruction.Instruction{Mnemonic: "beq",
				Format: instruction.BType{Rs1: 1, Rs2: 2, Imm: mustImm(8, 13)}},
			want: "beq ra, sp, 8",
		},
		{
			name: "jalr rd, offset(rs1)",
			inst: instruction.Instruction{Mnemonic: "jalr",
				Format: instruction.IType{Rd: 1, Rs1: 2, Imm: mustImm(0, 12)}},
			want: "jalr ra, 0(sp)",
		},
		{
			name: "lui",
			inst: instruction.Instruction{Mnemonic: "lui",
				Format: instruction.UType{Rd: 3, Imm: riscv.NewImm(0x12345, 20)}},
			want: "lui gp, 74565",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inst.Disassemble())
		})
	}
}

func TestDisassemble_CompressedEbreak(t *testing.T) {
	inst := instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.ebreak", Format: instruction.CRType{}}
	assert.Equal(t, "c.ebreak", inst.Disassemble())
}

func TestDisassemble_CompressedJr(t *testing.T) {
	inst := instruction.Instruction{Group: instruction.RVC, Mnemonic: "c.jr", Format: instruction.CRType{Rd: 1, Rs2: 0}}
	assert.Equal(t, "c.jr ra", inst.Disassemble())
}

func TestDisassemble_SystemMnemonics(t *testing.T) {
	for _, m := range []string{"ecall", "ebreak", "fence", "fence.i"} {
		inst := instruction.Instruction{Mnemonic: m, Format: instruction.SystemType{}}
		assert.Equal(t, m, inst.Disassemble())
	}
}

func mustImm(v int64, width uint) riscv.Imm {
	imm, err := riscv.SignedImm(v, width)
	if err != nil {
		panic(err)
	}
	return imm
}
