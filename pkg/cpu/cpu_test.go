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

package cpu_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D-J-M-Rohit/SimpleCPU/pkg/cpu"
	"github.com/D-J-M-Rohit/SimpleCPU/pkg/isa"
)

func newTestCPU(output *bytes.Buffer, input *bytes.Buffer) *cpu.CPU {
	return cpu.New(output, input)
}

func TestHello(t *testing.T) {
	var out bytes.Buffer
	c := newTestCPU(&out, nil)

	program := []byte{
		isa.OP_LOAD_IMM, isa.REG_A, 72, 0,
		isa.OP_OUT, 0x00, 0xFF, isa.REG_A,
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())
	assert.Equal(t, "H", out.String())
	assert.True(t, c.Halted)
}

func TestLoop0To4(t *testing.T) {
	var out bytes.Buffer
	c := newTestCPU(&out, nil)

	// LOAD A,0 ; LOAD B,5
	// L: ADDI A,48 ; OUT 0xFF00,A ; SUBI A,48 ; ADDI A,1 ; CMP A,B ; JNZ L
	// HLT
	program := []byte{
		isa.OP_LOAD_IMM, isa.REG_A, 0, 0,
		isa.OP_LOAD_IMM, isa.REG_B, 5, 0,
		// L at offset 8 (0x0108)
		isa.OP_ADDI, isa.REG_A, 48, 0,
		isa.OP_OUT, 0x00, 0xFF, isa.REG_A,
		isa.OP_SUBI, isa.REG_A, 48, 0,
		isa.OP_ADDI, isa.REG_A, 1, 0,
		isa.OP_CMP, isa.PackRegisters(isa.REG_A, isa.REG_B),
		isa.OP_JNZ, 0x08, 0x01,
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())
	assert.Equal(t, "01234", out.String())
}

func TestStackRoundTrip(t *testing.T) {
	c := newTestCPU(nil, nil)

	program := []byte{
		isa.OP_LOAD_IMM, isa.REG_A, 0x34, 0x12,
		isa.OP_PUSH, isa.REG_A,
		isa.OP_LOAD_IMM, isa.REG_A, 0, 0,
		isa.OP_POP, isa.REG_A,
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())

	assert.Equal(t, uint16(0x1234), c.Registers[isa.REG_A])
	assert.Equal(t, uint64(5), c.Cycles)
	assert.Equal(t, isa.INITIAL_SP, c.Registers[isa.REG_SP])
}

func TestCallRet(t *testing.T) {
	c := newTestCPU(nil, nil)

	// CALL F ; HLT
	// F: LOAD A,7 ; RET
	program := []byte{
		isa.OP_CALL, 0x04, 0x01,
		isa.OP_HLT,
		isa.OP_LOAD_IMM, isa.REG_A, 7, 0,
		isa.OP_RET,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())

	assert.Equal(t, uint16(7), c.Registers[isa.REG_A])
	assert.True(t, c.Halted)
	assert.Equal(t, isa.INITIAL_SP, c.Registers[isa.REG_SP])
}

func TestDivideByZero(t *testing.T) {
	c := newTestCPU(nil, nil)

	program := []byte{
		isa.OP_LOAD_IMM, isa.REG_A, 10, 0,
		isa.OP_LOAD_IMM, isa.REG_B, 0, 0,
		isa.OP_DIV, isa.PackRegisters(isa.REG_A, isa.REG_B),
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	err := c.Run()

	require.Error(t, err)
	var divErr *cpu.DivideByZeroError
	require.ErrorAs(t, err, &divErr)
	assert.True(t, c.Halted)
}

func TestDivRemainderClobbersSource(t *testing.T) {
	c := newTestCPU(nil, nil)

	program := []byte{
		isa.OP_LOAD_IMM, isa.REG_A, 17, 0,
		isa.OP_LOAD_IMM, isa.REG_B, 5, 0,
		isa.OP_DIV, isa.PackRegisters(isa.REG_A, isa.REG_B),
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())

	assert.Equal(t, uint16(3), c.Registers[isa.REG_A])
	assert.Equal(t, uint16(2), c.Registers[isa.REG_B])
}

func TestOutOfRangeRegisterIsNoOp(t *testing.T) {
	c := newTestCPU(nil, nil)
	c.Reset()

	program := []byte{
		isa.OP_INC, 9, // register index 9 is out of range
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())

	for i, v := range c.Registers {
		switch uint8(i) {
		case isa.REG_PC:
		case isa.REG_SP:
			assert.Equal(t, isa.INITIAL_SP, v)
		default:
			assert.Zero(t, v)
		}
	}
}

func TestUnsignedOverflow(t *testing.T) {
	c := newTestCPU(nil, nil)

	program := []byte{
		isa.OP_LOAD_IMM, isa.REG_A, 0xFF, 0xFF,
		isa.OP_ADDI, isa.REG_A, 1, 0,
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())

	assert.Equal(t, uint16(0), c.Registers[isa.REG_A])
	assert.NotZero(t, c.Flags&isa.FLAG_Z)
	assert.NotZero(t, c.Flags&isa.FLAG_C)
}

func TestSignedOverflow(t *testing.T) {
	c := newTestCPU(nil, nil)

	program := []byte{
		isa.OP_LOAD_IMM, isa.REG_A, 0xFF, 0x7F,
		isa.OP_ADDI, isa.REG_A, 1, 0,
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())

	assert.Equal(t, uint16(0x8000), c.Registers[isa.REG_A])
	assert.NotZero(t, c.Flags&isa.FLAG_N)
	assert.NotZero(t, c.Flags&isa.FLAG_O)
	assert.Zero(t, c.Flags&isa.FLAG_C)
}

func TestShiftByZeroPreservesValueAndClearsCarry(t *testing.T) {
	c := newTestCPU(nil, nil)

	program := []byte{
		isa.OP_LOAD_IMM, isa.REG_A, 0x55, 0x00,
		isa.OP_SHL, isa.REG_A, 0,
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())

	assert.Equal(t, uint16(0x55), c.Registers[isa.REG_A])
	assert.Zero(t, c.Flags&isa.FLAG_C)
}

func TestLoadProgramOverflow(t *testing.T) {
	c := newTestCPU(nil, nil)

	program := make([]byte, 1)
	err := c.LoadProgram(program, 0xFFFF)
	require.NoError(t, err)

	err = c.LoadProgram(make([]byte, 2), 0xFFFF)
	require.Error(t, err)
	var overflowErr *cpu.ProgramOverflowError
	require.ErrorAs(t, err, &overflowErr)
}

func TestStepIdempotentWhenAlreadyHalted(t *testing.T) {
	c := newTestCPU(nil, nil)

	require.NoError(t, c.LoadProgram([]byte{isa.OP_HLT}, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())

	cyclesBefore := c.Cycles
	outcome, err := c.Step()
	assert.Equal(t, cpu.StepAlreadyHalted, outcome)
	assert.NoError(t, err)
	assert.Equal(t, cyclesBefore, c.Cycles)
}

func TestStdinEOFReadsZero(t *testing.T) {
	var in bytes.Buffer
	c := newTestCPU(nil, &in)

	program := []byte{
		isa.OP_IN, isa.REG_A, 0x01, 0xFF,
		isa.OP_HLT,
	}

	require.NoError(t, c.LoadProgram(program, isa.PROGRAM_BASE))
	require.NoError(t, c.Run())

	assert.Zero(t, c.Registers[isa.REG_A])
}
