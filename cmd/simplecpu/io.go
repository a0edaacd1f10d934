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

package main

import (
	"bufio"
	"os"
)

// hostOutput satisfies cpu.OutputSink; it flushes after every byte so
// STDOUT port writes interleave with host log lines the way the caller
// sees them, never buffered until program exit.
type hostOutput struct {
	w *bufio.Writer
}

func newHostOutput() *hostOutput {
	return &hostOutput{w: bufio.NewWriter(os.Stdout)}
}

func (h *hostOutput) WriteByte(b byte) error {
	if err := h.w.WriteByte(b); err != nil {
		return err
	}
	return h.w.Flush()
}

// hostInput satisfies cpu.InputSource by reading single bytes from stdin.
type hostInput struct {
	r *bufio.Reader
}

func newHostInput() *hostInput {
	return &hostInput{r: bufio.NewReader(os.Stdin)}
}

func (h *hostInput) ReadByte() (byte, error) {
	return h.r.ReadByte()
}
