// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package isa

// OperandShape names the operand byte layout following an opcode byte.
// The disassembler decodes from this table; the assembler's encoder is a
// separate hand-written switch and does not read it.
type OperandShape uint8

const (
	SHAPE_NONE       OperandShape = iota // —
	SHAPE_REG                            // reg(1)
	SHAPE_REG_IMM16                      // reg(1), imm16(2)
	SHAPE_REG_ADDR16                     // reg(1), addr16(2)
	SHAPE_ADDR16_REG                     // addr16(2), reg(1)
	SHAPE_PACKED                         // packed(1): (r1<<4)|r2
	SHAPE_REG_SHIFT                      // reg(1), shift(1)
	SHAPE_ADDR16                         // addr16(2)
	SHAPE_REG_PORT16                     // reg(1), port16(2)
	SHAPE_PORT16_REG                     // port16(2), reg(1)
)

// OperandBytes returns the number of operand bytes that follow the opcode
// byte for the given shape.
func (s OperandShape) OperandBytes() int {
	switch s {
	case SHAPE_NONE:
		return 0
	case SHAPE_REG, SHAPE_PACKED:
		return 1
	case SHAPE_REG_SHIFT, SHAPE_ADDR16:
		return 2
	case SHAPE_REG_IMM16, SHAPE_REG_ADDR16, SHAPE_ADDR16_REG,
		SHAPE_REG_PORT16, SHAPE_PORT16_REG:
		return 3
	default:
		return 0
	}
}

// InstructionInfo is the decoded view of one instruction kind, reusable by
// both assembler emission and disassembly.
type InstructionInfo struct {
	Mnemonic string
	Opcode   uint8
	Shape    OperandShape
}

// Size returns the total encoded size in bytes, opcode included.
func (info InstructionInfo) Size() int {
	return 1 + info.Shape.OperandBytes()
}

var instructionTable = []InstructionInfo{
	{"NOP", OP_NOP, SHAPE_NONE},
	{"LOAD", OP_LOAD_IMM, SHAPE_REG_IMM16},
	{"STORE", OP_STORE, SHAPE_ADDR16_REG},
	{"MOV", OP_MOV, SHAPE_PACKED},
	{"PUSH", OP_PUSH, SHAPE_REG},
	{"POP", OP_POP, SHAPE_REG},

	{"ADD", OP_ADD, SHAPE_PACKED},
	{"ADDI", OP_ADDI, SHAPE_REG_IMM16},
	{"SUB", OP_SUB, SHAPE_PACKED},
	{"SUBI", OP_SUBI, SHAPE_REG_IMM16},
	{"MUL", OP_MUL, SHAPE_PACKED},
	{"DIV", OP_DIV, SHAPE_PACKED},
	{"INC", OP_INC, SHAPE_REG},
	{"DEC", OP_DEC, SHAPE_REG},

	{"AND", OP_AND, SHAPE_PACKED},
	{"OR", OP_OR, SHAPE_PACKED},
	{"XOR", OP_XOR, SHAPE_PACKED},
	{"NOT", OP_NOT, SHAPE_REG},
	{"SHL", OP_SHL, SHAPE_REG_SHIFT},
	{"SHR", OP_SHR, SHAPE_REG_SHIFT},

	{"CMP", OP_CMP, SHAPE_PACKED},
	{"CMPI", OP_CMPI, SHAPE_REG_IMM16},

	{"JMP", OP_JMP, SHAPE_ADDR16},
	{"JZ", OP_JZ, SHAPE_ADDR16},
	{"JNZ", OP_JNZ, SHAPE_ADDR16},
	{"JC", OP_JC, SHAPE_ADDR16},
	{"JNC", OP_JNC, SHAPE_ADDR16},
	{"CALL", OP_CALL, SHAPE_ADDR16},
	{"RET", OP_RET, SHAPE_NONE},

	{"IN", OP_IN, SHAPE_REG_PORT16},
	{"OUT", OP_OUT, SHAPE_PORT16_REG},

	{"HLT", OP_HLT, SHAPE_NONE},
}

// LOAD has two distinct mnemonic shapes depending on the second operand's
// syntax (immediate vs. bracketed memory reference); the assembler
// disambiguates by operand text. The memory form is kept out of
// instructionTable and registered separately in init, under both its
// opcode and the LOAD mnemonic.
var loadMemInfo = InstructionInfo{"LOAD", OP_LOAD_MEM, SHAPE_REG_ADDR16}

var byOpcode = make(map[uint8]InstructionInfo, len(instructionTable)+1)
var byMnemonic = make(map[string][]InstructionInfo, len(instructionTable))

func init() {
	for _, info := range instructionTable {
		byOpcode[info.Opcode] = info
		byMnemonic[info.Mnemonic] = append(byMnemonic[info.Mnemonic], info)
	}
	byOpcode[OP_LOAD_MEM] = loadMemInfo
	byMnemonic["LOAD"] = append(byMnemonic["LOAD"], loadMemInfo)
}

// ByOpcode looks up the decoded shape of an opcode byte.
func ByOpcode(op uint8) (InstructionInfo, bool) {
	info, ok := byOpcode[op]
	return info, ok
}

// ByMnemonic returns every instruction-table entry sharing a mnemonic (LOAD
// has two: immediate and memory forms, disambiguated by operand shape at
// assembly time).
func ByMnemonic(mnemonic string) ([]InstructionInfo, bool) {
	infos, ok := byMnemonic[mnemonic]
	return infos, ok
}

var registerNames = [NUM_REGISTERS]string{"A", "B", "C", "D", "SP", "PC"}

// RegisterName returns the canonical name of a register index, or "" if
// out of range.
func RegisterName(index uint8) string {
	if int(index) >= len(registerNames) {
		return ""
	}
	return registerNames[index]
}

// ParseRegister maps a case-folded register name to its index. Only the
// six names A, B, C, D, SP, PC are valid; anything else is reported via ok
// == false.
func ParseRegister(name string) (uint8, bool) {
	for i, n := range registerNames {
		if n == name {
			return uint8(i), true
		}
	}
	return 0, false
}

// PackRegisters combines a destination/source register pair into the
// single packed operand byte used by two-register instructions.
func PackRegisters(dst, src uint8) uint8 {
	return (dst << 4) | (src & 0x0F)
}

// UnpackRegisters splits a packed operand byte back into destination and
// source register indices.
func UnpackRegisters(packed uint8) (dst, src uint8) {
	return packed >> 4, packed & 0x0F
}
