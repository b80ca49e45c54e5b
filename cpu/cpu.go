// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/microputer/internal"
	"github.com/ezrec/microputer/io"
)

// Console is the operator console used by PRT and RDD.
type Console io.Console

const (
	WORD_SIZE      = 2  // Bytes per instruction word.
	REGISTER_COUNT = 16 // Number of 8-bit registers.
	MEMORY_SIZE    = 32 // Bytes of memory.
	LINE_WIDTH     = 14 // Maximum characters of disassembled text per listing line.
)

// Cpu is the simulation context for the microputer.
type Cpu struct {
	Verbose bool    // Set to enable verbose logging.
	Console Console // Operator console for PRT and RDD.

	Instructions InstructionSet // Decode table, indexed by opcode.

	Register [REGISTER_COUNT]uint8 // Register file.
	Memory   [MEMORY_SIZE]byte     // Byte addressable memory.
	Loaded   int                   // Bytes of Memory loaded from the image.
	Pc       uint16                // Byte offset of the next instruction.
	Ir       Code                  // Most recently fetched instruction.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with an empty memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Instructions: instructionSet,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("%5s: %02d\n", "pc", cpu.Pc)
	text += fmt.Sprintf("%5s: %04X\n", "ir", uint16(cpu.Ir))
	for n, value := range cpu.Register {
		text += fmt.Sprintf("%5v: %d\n", CodeReg(n), value)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, program counter, and instruction register.
// - Zeros the tick counter.
// Memory and the loaded size are untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Ticks = 0
}

// Load copies a program image into memory and resets the CPU.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) > len(cpu.Memory) {
		err = ErrImageTooLarge
		return
	}

	clear(cpu.Memory[:])
	cpu.Loaded = copy(cpu.Memory[:], image)
	cpu.Reset()

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", cpu.Loaded)
	}

	return
}

// Halted returns true once the program counter has run off loaded memory.
func (cpu *Cpu) Halted() bool {
	return int(cpu.Pc) >= cpu.Loaded
}

// Disassemble returns one listing line per loaded word.
// Text longer than LINE_WIDTH is truncated to LINE_WIDTH characters.
// The CPU state is not modified.
func (cpu *Cpu) Disassemble() (lines []io.Line, err error) {
	for addr, word := range internal.Words(cpu.Memory[:cpu.Loaded]) {
		code := Code(word)
		var text string
		text, err = cpu.Instructions.disassemble(code)
		if err != nil {
			err = &ErrInstruction{Pc: addr, Code: code, Err: err}
			return
		}
		if len(text) > LINE_WIDTH {
			text = text[:LINE_WIDTH]
		}
		lines = append(lines, io.Line{Addr: int(addr), Text: text})
	}

	return
}

// FetchCode fetches the word at the program counter into the instruction
// register, and advances the program counter past it.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Halted() {
		err = ErrPcEnd
		return
	}

	pc := int(cpu.Pc)
	if pc+WORD_SIZE > cpu.Loaded {
		err = ErrMemoryBounds
		return
	}

	code = Code(binary.BigEndian.Uint16(cpu.Memory[pc:]))
	cpu.Ir = code
	cpu.Pc += WORD_SIZE

	return
}

// Tick executes a single CPU instruction cycle.
// Returns ErrPcEnd when there is nothing left to execute.
func (cpu *Cpu) Tick() (err error) {
	pc := cpu.Pc

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%02d: %v", pc, code)
	}

	err = cpu.Execute(code)
	if err != nil {
		err = &ErrInstruction{Pc: pc, Code: code, Err: err}
		return
	}

	cpu.Ticks++

	return
}

// Execute executes a single decoded instruction.
// The program counter must already point past the instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if errors.Is(err, ErrOpcodeUnknown) {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	inst, err := cpu.Instructions.Lookup(code.Opcode())
	if err != nil {
		return
	}

	return inst.Execute(cpu, code)
}

// Run ticks the CPU until the program counter runs off loaded memory,
// or an instruction fails.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrPcEnd) {
			return nil
		}
		if err != nil {
			return
		}
	}
}
