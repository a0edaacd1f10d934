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

import (
	"encoding/binary"
	"fmt"
)

// DecodeError reports a byte that doesn't match any known opcode.
type DecodeError struct {
	Opcode uint8
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X", err.Opcode)
}

// Disassemble decodes the single instruction at the start of code into its
// source-text mnemonic and operands, using the InstructionInfo table to
// find each opcode's operand layout. It returns the number of bytes
// consumed, opcode included.
func Disassemble(code []byte) (text string, size int, err error) {
	if len(code) == 0 {
		return "", 0, fmt.Errorf("empty instruction")
	}

	opcode := code[0]
	info, ok := ByOpcode(opcode)
	if !ok {
		return "", 0, &DecodeError{Opcode: opcode}
	}

	size = info.Size()
	if len(code) < size {
		return "", 0, fmt.Errorf(
			"truncated %s instruction: need %d bytes, have %d",
			info.Mnemonic, size, len(code),
		)
	}

	switch info.Shape {
	case SHAPE_NONE:
		text = info.Mnemonic

	case SHAPE_REG:
		text = fmt.Sprintf("%s %s", info.Mnemonic, RegisterName(code[1]))

	case SHAPE_REG_IMM16:
		imm := binary.LittleEndian.Uint16(code[2:4])
		text = fmt.Sprintf("%s %s,0x%04X", info.Mnemonic, RegisterName(code[1]), imm)

	case SHAPE_REG_ADDR16:
		addr := binary.LittleEndian.Uint16(code[2:4])
		text = fmt.Sprintf("%s %s,[0x%04X]", info.Mnemonic, RegisterName(code[1]), addr)

	case SHAPE_ADDR16_REG:
		addr := binary.LittleEndian.Uint16(code[1:3])
		text = fmt.Sprintf("%s [0x%04X],%s", info.Mnemonic, addr, RegisterName(code[3]))

	case SHAPE_PACKED:
		r1, r2 := UnpackRegisters(code[1])
		text = fmt.Sprintf("%s %s,%s", info.Mnemonic, RegisterName(r1), RegisterName(r2))

	case SHAPE_REG_SHIFT:
		text = fmt.Sprintf("%s %s,%d", info.Mnemonic, RegisterName(code[1]), code[2])

	case SHAPE_ADDR16:
		addr := binary.LittleEndian.Uint16(code[1:3])
		text = fmt.Sprintf("%s 0x%04X", info.Mnemonic, addr)

	case SHAPE_REG_PORT16:
		port := binary.LittleEndian.Uint16(code[2:4])
		text = fmt.Sprintf("%s %s,0x%04X", info.Mnemonic, RegisterName(code[1]), port)

	case SHAPE_PORT16_REG:
		port := binary.LittleEndian.Uint16(code[1:3])
		text = fmt.Sprintf("%s 0x%04X,%s", info.Mnemonic, port, RegisterName(code[3]))

	default:
		return "", 0, &DecodeError{Opcode: opcode}
	}

	return text, size, nil
}
