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

// Register indices. SP and PC are full 16-bit values; A..D are
// general-purpose.
const (
	REG_A  uint8 = 0
	REG_B  uint8 = 1
	REG_C  uint8 = 2
	REG_D  uint8 = 3
	REG_SP uint8 = 4
	REG_PC uint8 = 5

	NUM_REGISTERS = 6
)

// Flag bits within the one-byte flags register.
const (
	FLAG_Z uint8 = 0x80 // zero
	FLAG_C uint8 = 0x40 // unsigned carry/borrow
	FLAG_N uint8 = 0x20 // negative (bit 15 of result)
	FLAG_O uint8 = 0x10 // signed overflow
)

// Memory map.
const (
	MEM_SIZE       = 0x10000
	RESERVED_BASE  uint16 = 0x0000
	RESERVED_END   uint16 = 0x00FF
	PROGRAM_BASE   uint16 = 0x0100
	INITIAL_SP     uint16 = 0xFEFF
	MAX_PROGRAM_SZ        = MEM_SIZE - int(PROGRAM_BASE)

	PORT_STDOUT    uint16 = 0xFF00
	PORT_STDIN     uint16 = 0xFF01
	PORT_TIMER_CTL uint16 = 0xFF02
	PORT_TIMER_VAL uint16 = 0xFF03
)

// Opcodes, one byte each. The binary format is part of the external
// contract and these values must never change.
const (
	OP_NOP uint8 = 0x00
	OP_LOAD_IMM uint8 = 0x01
	OP_LOAD_MEM uint8 = 0x02
	OP_STORE    uint8 = 0x03
	OP_MOV      uint8 = 0x04
	OP_PUSH     uint8 = 0x05
	OP_POP      uint8 = 0x06

	OP_ADD  uint8 = 0x10
	OP_ADDI uint8 = 0x11
	OP_SUB  uint8 = 0x12
	OP_SUBI uint8 = 0x13
	OP_MUL  uint8 = 0x14
	OP_DIV  uint8 = 0x15
	OP_INC  uint8 = 0x16
	OP_DEC  uint8 = 0x17

	OP_AND uint8 = 0x20
	OP_OR  uint8 = 0x21
	OP_XOR uint8 = 0x22
	OP_NOT uint8 = 0x23
	OP_SHL uint8 = 0x24
	OP_SHR uint8 = 0x25

	OP_CMP  uint8 = 0x30
	OP_CMPI uint8 = 0x31

	OP_JMP uint8 = 0x40
	OP_JZ  uint8 = 0x41
	OP_JNZ uint8 = 0x42
	OP_JC  uint8 = 0x43
	OP_JNC uint8 = 0x44
	OP_CALL uint8 = 0x45
	OP_RET  uint8 = 0x46

	OP_IN  uint8 = 0x50
	OP_OUT uint8 = 0x51

	OP_HLT uint8 = 0xFF
)
