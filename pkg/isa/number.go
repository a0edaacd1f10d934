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
	"strconv"
	"strings"
)

// ParseNumber accepts decimal or 0x/0X-prefixed hex and converts it to an
// unsigned 16-bit value; higher bits are silently truncated. A trailing
// non-digit character after the numeral is an error — there is no partial
// parse.
func ParseNumber(s string) (uint16, bool) {
	if s == "" {
		return 0, false
	}

	var v uint64
	var err error

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}

	if err != nil {
		return 0, false
	}

	return uint16(v), true
}
