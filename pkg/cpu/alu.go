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

func addWithFlags(a, b uint16) (result uint16, carry, overflow bool) {
	sum := uint32(a) + uint32(b)
	result = uint16(sum)
	carry = sum > 0xFFFF
	overflow = ((a^result) & (b^result) & 0x8000) != 0
	return
}

func subWithFlags(a, b uint16) (result uint16, borrow, overflow bool) {
	result = a - b
	borrow = a < b
	overflow = ((a^b) & (a^result) & 0x8000) != 0
	return
}

func mulWithFlags(a, b uint16) (result uint16, carry bool) {
	product := uint32(a) * uint32(b)
	result = uint16(product)
	carry = product>>16 != 0
	return
}

// shlWithCarry shifts left by s and reports, per bit s>0, the last bit
// shifted out of bit 15 as the carry.
func shlWithCarry(v uint16, s uint8) (result uint16, carry bool) {
	result = shiftLeft(v, s)
	if s > 0 && s <= 16 {
		carry = v&(uint16(1)<<(16-s)) != 0
	}
	return
}

// shrWithCarry is the mirror of shlWithCarry for right shifts; the last bit
// shifted out of bit 0 is the carry.
func shrWithCarry(v uint16, s uint8) (result uint16, carry bool) {
	result = shiftRight(v, s)
	if s > 0 && s <= 16 {
		carry = v&(uint16(1)<<(s-1)) != 0
	}
	return
}

func shiftLeft(v uint16, s uint8) uint16 {
	if s >= 16 {
		return 0
	}
	return v << s
}

func shiftRight(v uint16, s uint8) uint16 {
	if s >= 16 {
		return 0
	}
	return v >> s
}

func (c *CPU) setFlags(result uint16, carry, overflow bool) {
	c.Flags &^= isa.FLAG_Z | isa.FLAG_C | isa.FLAG_N | isa.FLAG_O

	if result == 0 {
		c.Flags |= isa.FLAG_Z
	}
	if result&0x8000 != 0 {
		c.Flags |= isa.FLAG_N
	}
	if carry {
		c.Flags |= isa.FLAG_C
	}
	if overflow {
		c.Flags |= isa.FLAG_O
	}
}
