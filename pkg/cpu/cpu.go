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

package cpu

import "github.com/D-J-M-Rohit/SimpleCPU/pkg/isa"

// Reset puts the CPU back into its power-on state: zeroed registers and
// memory, SP at the top of the descending stack, PC at the program base,
// timer off, not halted.
func (c *CPU) Reset() {
	for i := range c.Registers {
		c.Registers[i] = 0
	}
	for i := range c.Memory {
		c.Memory[i] = 0
	}

	c.Registers[isa.REG_SP] = isa.INITIAL_SP
	c.Registers[isa.REG_PC] = isa.PROGRAM_BASE
	c.Flags = 0
	c.Cycles = 0
	c.TimerEnabled = false
	c.TimerValue = 0
	c.Running = false
	c.Halted = false
}

// LoadProgram copies program into memory starting at start and points PC
// at it. It fails if the program would not fit in the address space.
func (c *CPU) LoadProgram(program []byte, start uint16) error {
	if int(start)+len(program) > isa.MEM_SIZE {
		return &ProgramOverflowError{Start: start, Len: len(program)}
	}

	copy(c.Memory[start:], program)
	c.Registers[isa.REG_PC] = start

	return nil
}

// getReg reads a register by index. Reads of indices past the register
// file read as 0, since the decoder extracts indices from untrusted code.
func (c *CPU) getReg(index uint8) uint16 {
	if int(index) >= isa.NUM_REGISTERS {
		return 0
	}
	return c.Registers[index]
}

// setReg writes a register by index; out-of-range indices are a no-op.
func (c *CPU) setReg(index uint8, value uint16) {
	if int(index) >= isa.NUM_REGISTERS {
		return
	}
	c.Registers[index] = value
}

// readByte dispatches the four mapped ports and otherwise hits raw
// memory.
func (c *CPU) readByte(addr uint16) byte {
	switch addr {
	case isa.PORT_STDOUT:
		return 0
	case isa.PORT_STDIN:
		if c.Input == nil {
			return 0
		}
		b, err := c.Input.ReadByte()
		if err != nil {
			return 0
		}
		return b
	case isa.PORT_TIMER_CTL:
		if c.TimerEnabled {
			return 1
		}
		return 0
	case isa.PORT_TIMER_VAL:
		return byte(c.TimerValue)
	default:
		return c.Memory[addr]
	}
}

// writeByte is the write half of readByte's port dispatch.
func (c *CPU) writeByte(addr uint16, v byte) {
	switch addr {
	case isa.PORT_STDOUT:
		if c.Output != nil {
			c.Output.WriteByte(v)
		}
	case isa.PORT_STDIN:
		// the host input stream cannot be written to through memory
	case isa.PORT_TIMER_CTL:
		if v != 0 {
			c.TimerEnabled = true
			c.TimerValue = 0
		} else {
			c.TimerEnabled = false
		}
	case isa.PORT_TIMER_VAL:
		c.TimerValue = (c.TimerValue &^ 0x00FF) | uint16(v)
	default:
		c.Memory[addr] = v
	}
}

// readWord and writeWord are two independent byte accesses each; a word
// access crossing a port boundary is therefore composed of two
// independent port reads/writes, by design.
func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.readByte(addr)
	hi := c.readByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) writeWord(addr uint16, v uint16) {
	c.writeByte(addr, byte(v))
	c.writeByte(addr+1, byte(v>>8))
}

func (c *CPU) push(v uint16) {
	c.Registers[isa.REG_SP] -= 2
	c.writeWord(c.Registers[isa.REG_SP], v)
}

func (c *CPU) pop() uint16 {
	v := c.readWord(c.Registers[isa.REG_SP])
	c.Registers[isa.REG_SP] += 2
	return v
}

// Step performs exactly one fetch/decode/execute cycle.
func (c *CPU) Step() (StepOutcome, error) {
	if c.Halted {
		return StepAlreadyHalted, nil
	}

	pc := c.Registers[isa.REG_PC]
	opcode := c.readByte(pc)
	cursor := pc + 1

	if c.TimerEnabled {
		c.TimerValue++
	}

	switch opcode {
	case isa.OP_NOP:
		// no operation

	case isa.OP_LOAD_IMM:
		reg := c.readByte(cursor)
		cursor++
		imm := c.readWord(cursor)
		cursor += 2
		c.setReg(reg, imm)

	case isa.OP_LOAD_MEM:
		reg := c.readByte(cursor)
		cursor++
		addr := c.readWord(cursor)
		cursor += 2
		c.setReg(reg, c.readWord(addr))

	case isa.OP_STORE:
		addr := c.readWord(cursor)
		cursor += 2
		reg := c.readByte(cursor)
		cursor++
		c.writeWord(addr, c.getReg(reg))

	case isa.OP_MOV:
		packed := c.readByte(cursor)
		cursor++
		dst, src := isa.UnpackRegisters(packed)
		c.setReg(dst, c.getReg(src))

	case isa.OP_PUSH:
		reg := c.readByte(cursor)
		cursor++
		c.push(c.getReg(reg))

	case isa.OP_POP:
		reg := c.readByte(cursor)
		cursor++
		c.setReg(reg, c.pop())

	case isa.OP_ADD:
		packed := c.readByte(cursor)
		cursor++
		dst, src := isa.UnpackRegisters(packed)
		result, carry, overflow := addWithFlags(c.getReg(dst), c.getReg(src))
		c.setReg(dst, result)
		c.setFlags(result, carry, overflow)

	case isa.OP_ADDI:
		reg := c.readByte(cursor)
		cursor++
		imm := c.readWord(cursor)
		cursor += 2
		result, carry, overflow := addWithFlags(c.getReg(reg), imm)
		c.setReg(reg, result)
		c.setFlags(result, carry, overflow)

	case isa.OP_SUB:
		packed := c.readByte(cursor)
		cursor++
		dst, src := isa.UnpackRegisters(packed)
		result, borrow, overflow := subWithFlags(c.getReg(dst), c.getReg(src))
		c.setReg(dst, result)
		c.setFlags(result, borrow, overflow)

	case isa.OP_SUBI:
		reg := c.readByte(cursor)
		cursor++
		imm := c.readWord(cursor)
		cursor += 2
		result, borrow, overflow := subWithFlags(c.getReg(reg), imm)
		c.setReg(reg, result)
		c.setFlags(result, borrow, overflow)

	case isa.OP_MUL:
		packed := c.readByte(cursor)
		cursor++
		dst, src := isa.UnpackRegisters(packed)
		result, carry := mulWithFlags(c.getReg(dst), c.getReg(src))
		c.setReg(dst, result)
		c.setFlags(result, carry, false)

	case isa.OP_DIV:
		packed := c.readByte(cursor)
		cursor++
		dst, src := isa.UnpackRegisters(packed)
		dividend := c.getReg(dst)
		divisor := c.getReg(src)

		if divisor == 0 {
			c.Halted = true
			c.Running = false
			return StepFatal, &DivideByZeroError{PC: pc}
		}

		quotient := dividend / divisor
		remainder := dividend % divisor
		c.setReg(dst, quotient)
		c.setReg(src, remainder)
		c.setFlags(quotient, false, false)

	case isa.OP_INC:
		reg := c.readByte(cursor)
		cursor++
		result := c.getReg(reg) + 1
		c.setReg(reg, result)
		c.setFlags(result, false, false)

	case isa.OP_DEC:
		reg := c.readByte(cursor)
		cursor++
		result := c.getReg(reg) - 1
		c.setReg(reg, result)
		c.setFlags(result, false, false)

	case isa.OP_AND:
		packed := c.readByte(cursor)
		cursor++
		dst, src := isa.UnpackRegisters(packed)
		result := c.getReg(dst) & c.getReg(src)
		c.setReg(dst, result)
		c.setFlags(result, false, false)

	case isa.OP_OR:
		packed := c.readByte(cursor)
		cursor++
		dst, src := isa.UnpackRegisters(packed)
		result := c.getReg(dst) | c.getReg(src)
		c.setReg(dst, result)
		c.setFlags(result, false, false)

	case isa.OP_XOR:
		packed := c.readByte(cursor)
		cursor++
		dst, src := isa.UnpackRegisters(packed)
		result := c.getReg(dst) ^ c.getReg(src)
		c.setReg(dst, result)
		c.setFlags(result, false, false)

	case isa.OP_NOT:
		reg := c.readByte(cursor)
		cursor++
		result := ^c.getReg(reg)
		c.setReg(reg, result)
		c.setFlags(result, false, false)

	case isa.OP_SHL:
		reg := c.readByte(cursor)
		cursor++
		shift := c.readByte(cursor)
		cursor++
		result, carry := shlWithCarry(c.getReg(reg), shift)
		c.setReg(reg, result)
		c.setFlags(result, carry, false)

	case isa.OP_SHR:
		reg := c.readByte(cursor)
		cursor++
		shift := c.readByte(cursor)
		cursor++
		result, carry := shrWithCarry(c.getReg(reg), shift)
		c.setReg(reg, result)
		c.setFlags(result, carry, false)

	case isa.OP_CMP:
		packed := c.readByte(cursor)
		cursor++
		dst, src := isa.UnpackRegisters(packed)
		result, borrow, overflow := subWithFlags(c.getReg(dst), c.getReg(src))
		c.setFlags(result, borrow, overflow)

	case isa.OP_CMPI:
		reg := c.readByte(cursor)
		cursor++
		imm := c.readWord(cursor)
		cursor += 2
		result, borrow, overflow := subWithFlags(c.getReg(reg), imm)
		c.setFlags(result, borrow, overflow)

	case isa.OP_JMP:
		addr := c.readWord(cursor)
		cursor += 2
		cursor = addr

	case isa.OP_JZ:
		addr := c.readWord(cursor)
		cursor += 2
		if c.Flags&isa.FLAG_Z != 0 {
			cursor = addr
		}

	case isa.OP_JNZ:
		addr := c.readWord(cursor)
		cursor += 2
		if c.Flags&isa.FLAG_Z == 0 {
			cursor = addr
		}

	case isa.OP_JC:
		addr := c.readWord(cursor)
		cursor += 2
		if c.Flags&isa.FLAG_C != 0 {
			cursor = addr
		}

	case isa.OP_JNC:
		addr := c.readWord(cursor)
		cursor += 2
		if c.Flags&isa.FLAG_C == 0 {
			cursor = addr
		}

	case isa.OP_CALL:
		addr := c.readWord(cursor)
		cursor += 2
		c.push(cursor)
		cursor = addr

	case isa.OP_RET:
		cursor = c.pop()

	case isa.OP_IN:
		reg := c.readByte(cursor)
		cursor++
		port := c.readWord(cursor)
		cursor += 2
		c.setReg(reg, uint16(c.readByte(port)))

	case isa.OP_OUT:
		port := c.readWord(cursor)
		cursor += 2
		reg := c.readByte(cursor)
		cursor++
		c.writeByte(port, byte(c.getReg(reg)))

	case isa.OP_HLT:
		c.Halted = true
		c.Running = false

	default:
		c.Halted = true
		c.Running = false
		return StepFatal, &UnknownOpcodeError{PC: pc, Opcode: opcode}
	}

	c.Registers[isa.REG_PC] = cursor
	c.Cycles++

	return StepExecuted, nil
}

// Run steps until the CPU halts or a step returns a fatal error.
func (c *CPU) Run() error {
	c.Running = true
	c.Halted = false

	for {
		outcome, err := c.Step()

		switch outcome {
		case StepAlreadyHalted:
			return nil
		case StepFatal:
			return err
		}
	}
}
