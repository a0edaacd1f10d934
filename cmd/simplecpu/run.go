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
	"github.com/D-J-M-Rohit/SimpleCPU/pkg/cpu"
	"github.com/D-J-M-Rohit/SimpleCPU/pkg/isa"
)

func loadBinary(path string) ([]byte, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, cpu.WrapLoadError(path, err)
	}
	return image, nil
}

func newLoadedCPU(image []byte) (*cpu.CPU, error) {
	c := cpu.New(newHostOutput(), newHostInput())
	if err := c.LoadProgram(image, isa.PROGRAM_BASE); err != nil {
		return nil, err
	}
	return c, nil
}

func dumpRegisters(c *cpu.CPU) {
	fmt.Println(translate.From(
		"A=0x%04X B=0x%04X C=0x%04X D=0x%04X SP=0x%04X PC=0x%04X FLAGS=0x%02X",
		c.Registers[isa.REG_A], c.Registers[isa.REG_B],
		c.Registers[isa.REG_C], c.Registers[isa.REG_D],
		c.Registers[isa.REG_SP], c.Registers[isa.REG_PC],
		c.Flags,
	))
}

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) != 1 {
		log.Println("usage: simplecpu run <in.bin>")
		return 1
	}

	image, err := loadBinary(rest[0])
	if err != nil {
		log.Println(err)
		return 1
	}

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

func cmdDebug(args []string) int {
	fs := flag.NewFlagSet("debug", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) != 1 {
		log.Println("usage: simplecpu debug <in.bin>")
		return 1
	}

	image, err := loadBinary(rest[0])
	if err != nil {
		log.Println(err)
		return 1
	}

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

func cmdTrace(args []string) int {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) != 1 {
		log.Println("usage: simplecpu trace <in.bin>")
		return 1
	}

	image, err := loadBinary(rest[0])
	if err != nil {
		log.Println(err)
		return 1
	}

	c, err := newLoadedCPU(image)
	if err != nil {
		log.Println(err)
		return 1
	}

	enterRawTerm()
	defer exitRawTerm()

	fmt.Println("=== Execution Trace ===")

	for {
		outcome, stepErr := c.Step()

		if outcome == cpu.StepAlreadyHalted {
			fmt.Println("=== End Trace ===")
			return 0
		}

		fmt.Printf(
			"CYC=%d PC=%04X A=%04X B=%04X C=%04X D=%04X\n",
			c.Cycles, c.Registers[isa.REG_PC],
			c.Registers[isa.REG_A], c.Registers[isa.REG_B],
			c.Registers[isa.REG_C], c.Registers[isa.REG_D],
		)

		if outcome == cpu.StepFatal {
			fmt.Println("=== End Trace ===")
			log.Println(stepErr)
			return 1
		}
	}
}
