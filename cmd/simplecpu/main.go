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
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const usage = "simplecpu <assemble|run|debug|trace|asm-run|asm-debug> args..."

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func dispatch(args []string) int {
	if len(args) < 1 {
		log.Println(usage)
		return 1
	}

	switch args[0] {
	case "-help", "--help", "help":
		fmt.Println(usage)
		return 0
	case "assemble":
		return cmdAssemble(args[1:])
	case "run":
		return cmdRun(args[1:])
	case "debug":
		return cmdDebug(args[1:])
	case "trace":
		return cmdTrace(args[1:])
	case "asm-run":
		return cmdAsmRun(args[1:])
	case "asm-debug":
		return cmdAsmDebug(args[1:])
	default:
		log.Println(usage)
		return 1
	}
}

func main() {
	os.Exit(dispatch(os.Args[1:]))
}
