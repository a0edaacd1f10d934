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

// OutputSink receives bytes written to the STDOUT port. Accepting it as a
// constructor parameter, rather than writing to a global host stream
// directly, keeps the CPU testable without touching the real terminal.
type OutputSink interface {
	WriteByte(b byte) error
}

// InputSource supplies bytes read from the STDIN port. ReadByte should
// return io.EOF once the source is exhausted; the CPU treats EOF as a read
// of 0, never as a fatal condition.
type InputSource interface {
	ReadByte() (byte, error)
}

// CPU owns a register file, flags byte, 64 KiB of linear memory, run state,
// a cycle counter, and the software timer. It is mutated only by its own
// methods.
type CPU struct {
	Registers [isa.NUM_REGISTERS]uint16
	Flags     uint8
	Memory    [isa.MEM_SIZE]byte

	Running bool
	Halted  bool
	Cycles  uint64

	TimerEnabled bool
	TimerValue   uint16

	Output OutputSink
	Input  InputSource
}

// New builds a CPU in reset state wired to the given host I/O endpoints.
// Either may be nil; a nil Output silently drops STDOUT writes and a nil
// Input yields EOF (0) on every STDIN read.
func New(output OutputSink, input InputSource) *CPU {
	c := &CPU{Output: output, Input: input}
	c.Reset()
	return c
}

// StepOutcome reports what a single Step call actually did.
type StepOutcome uint8

const (
	StepExecuted StepOutcome = iota
	StepAlreadyHalted
	StepFatal
)
