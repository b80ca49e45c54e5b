// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"io/fs"
	"log"

	"github.com/ezrec/microputer/cpu"
	"github.com/ezrec/microputer/io"
)

// Emulator state. CPU + operator console.
type Emulator struct {
	Verbose  bool        // If set, enables verbose logging.
	*cpu.Cpu             // Reference to the CPU simulation.
	Terminal io.Terminal // Operator console.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{}
	emu.Reset()

	return
}

// Reset replaces the CPU with a fresh one, with empty memory.
// Operator input already buffered by the terminal is kept.
func (emu *Emulator) Reset() {
	emu.Cpu = cpu.NewCpu()
	emu.Cpu.Console = &emu.Terminal
	emu.Cpu.Verbose = emu.Verbose
}

// Close the emulator, discarding all machine state.
func (emu *Emulator) Close() (err error) {
	if emu.Cpu == nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %d instructions executed", emu.Cpu.Ticks)
	}

	emu.Cpu = nil
	emu.Terminal.Rewind()

	return
}

// LoadImage loads a program image into memory.
func (emu *Emulator) LoadImage(image []byte) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Load(image)
	if err != nil {
		err = &ErrStage{Stage: STAGE_LOAD, Err: err}
	}

	return
}

// Load reads a program image file into memory.
func (emu *Emulator) Load(filesys fs.FS, name string) (err error) {
	image, err := io.LoadImage(filesys, name)
	if err == nil {
		emu.Cpu.Verbose = emu.Verbose
		err = emu.Cpu.Load(image)
	}
	if err != nil {
		err = &ErrStage{Stage: STAGE_LOAD, Path: name, Err: err}
	}

	return
}

// Listing returns the disassembly of the loaded program.
func (emu *Emulator) Listing() (lines []io.Line, err error) {
	lines, err = emu.Cpu.Disassemble()
	if err != nil {
		err = &ErrStage{Stage: STAGE_DISASSEMBLE, Err: err}
	}

	return
}

// Disassemble writes the listing of the loaded program to a file.
func (emu *Emulator) Disassemble(filesys io.CreateFS, name string) (err error) {
	lines, err := emu.Listing()
	if err != nil {
		return
	}

	err = io.CreateListing(filesys, name, lines)
	if err != nil {
		err = &ErrStage{Stage: STAGE_DISASSEMBLE, Path: name, Err: err}
	}

	return
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrPcEnd) {
		err = nil
		done = true
		return
	}
	if err != nil {
		if emu.Verbose {
			log.Printf("emulator: halted\n%v", emu.Cpu)
		}
		err = &ErrStage{Stage: STAGE_EXECUTE, Err: err}
	}

	return
}

// Run ticks the emulator until the program ends or fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
