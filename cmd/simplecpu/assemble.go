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
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/D-J-M-Rohit/SimpleCPU/internal/translate"
	"github.com/D-J-M-Rohit/SimpleCPU/pkg/assembler"
	"github.com/D-J-M-Rohit/SimpleCPU/pkg/cpu"
)

func assembleFile(path string) ([]byte, *assembler.SymbolTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, cpu.WrapLoadError(path, err)
	}
	defer file.Close()

	return assembler.Assemble(file)
}

func cmdAssemble(args []string) int {
	fs := flag.NewFlagSet("assemble", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) != 2 {
		log.Println("usage: simplecpu assemble <in.asm> <out.bin>")
		return 1
	}

	image, _, err := assembleFile(rest[0])
	if err != nil {
		log.Println(err)
		return 1
	}

	if err := os.WriteFile(rest[1], image, 0666); err != nil {
		log.Println(err)
		return 1
	}

	fmt.Println(translate.From("assembled %d bytes -> %s", len(image), rest[1]))
	return 0
}

func cmdAsmRun(args []string) int {
	fs := flag.NewFlagSet("asm-run", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) != 1 {
		log.Println("usage: simplecpu asm-run <in.asm>")
		return 1
	}

	image, _, err := assembleFile(rest[0])
	if err != nil {
		log.Println(err)
		return 1
	}

	fmt.Println(translate.From("assembled %d bytes", len(image)))

	c, err := newLoadedCPU(image)
	if err != nil {
		log.Println(err)
		return 1
	}

	enterRawTerm()
	defer exitRawTerm()

	fmt.Println("=== Program Output ===")
	runErr := c.Run()
	fmt.Println("=== End Output ===")

	if runErr != nil {
		log.Println(runErr)
		return 1
	}

	return 0
}

func cmdAsmDebug(args []string) int {
	fs := flag.NewFlagSet("asm-debug", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) != 1 {
		log.Println("usage: simplecpu asm-debug <in.asm>")
		return 1
	}

	image, _, err := assembleFile(rest[0])
	if err != nil {
		log.Println(err)
		return 1
	}

	fmt.Println(translate.From("assembled %d bytes", len(image)))

	c, err := newLoadedCPU(image)
	if err != nil {
		log.Println(err)
		return 1
	}

	fmt.Println("=== Initial Registers ===")
	dumpRegisters(c)

	enterRawTerm()
	defer exitRawTerm()

	fmt.Println("=== Program Output ===")
	runErr := c.Run()
	fmt.Println("=== End Output ===")

	fmt.Println("=== Final Registers ===")
	dumpRegisters(c)
	fmt.Println(translate.From("CYCLES=%d", c.Cycles))

	if runErr != nil {
		log.Println(runErr)
		return 1
	}

	return 0
}
