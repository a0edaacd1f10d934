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

package assembler_test

import (
	"strings"
	"testing"

	"github.com/D-J-M-Rohit/SimpleCPU/pkg/assembler"
)

// FuzzAssemble feeds arbitrary source text through Assemble and asserts it
// never panics: any malformed line must surface as one of the AssemblerError
// kinds, never a crash.
func FuzzAssemble(f *testing.F) {
	f.Add("LOAD A,1\nHLT\n")
	f.Add("L:\nJMP L\n")
	f.Add("STORE A,B\n")
	f.Add("LOAD A,[\n")
	f.Add("FROB A,B,C\n")
	f.Add(";\n#\n\n")

	f.Fuzz(func(t *testing.T, src string) {
		image, symbols, err := assembler.Assemble(strings.NewReader(src))
		if err != nil {
			if image != nil || symbols != nil {
				t.Fatalf("error case returned non-nil results: image=%v symbols=%v", image, symbols)
			}
			return
		}
		if symbols == nil {
			t.Fatalf("success case returned nil symbol table")
		}
	})
}
