// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
)

// Instruction pairs the listing and the execution behaviour of an opcode.
type Instruction struct {
	Disassemble func(code Code) (text string, err error)
	Execute     func(cpu *Cpu, code Code) (err error)
}

// InstructionSet is indexed by Opcode.
type InstructionSet [OPCODE_COUNT]Instruction

// instructionSet is the decode table shared by all CPUs.
var instructionSet = NewInstructionSet()

// NewInstructionSet creates the instruction set with every opcode populated.
func NewInstructionSet() (set InstructionSet) {
	set[OP_LDI] = Instruction{Disassemble: disassembleLdi, Execute: executeLdi}

	alu := Instruction{Disassemble: disassembleAlu, Execute: executeAlu}
	set[OP_ADD] = alu
	set[OP_AND] = alu
	set[OP_OR] = alu
	set[OP_XOR] = alu

	set[OP_PRT] = Instruction{Disassemble: disassemblePrt, Execute: executePrt}
	set[OP_RDD] = Instruction{Disassemble: disassembleRdd, Execute: executeRdd}
	set[OP_BLT] = Instruction{Disassemble: disassembleBlt, Execute: executeBlt}

	return
}

// Lookup returns the instruction for an opcode.
// An empty slot is reported as ErrOpcodeUnknown.
func (set *InstructionSet) Lookup(op Opcode) (inst Instruction, err error) {
	if op < 0 || int(op) >= len(set) {
		err = ErrOpcodeUnknown
		return
	}

	inst = set[op]
	if inst.Disassemble == nil || inst.Execute == nil {
		err = ErrOpcodeUnknown
	}

	return
}

// disassemble decodes the word through the table and returns its full text.
func (set *InstructionSet) disassemble(code Code) (text string, err error) {
	defer func() {
		if errors.Is(err, ErrOpcodeUnknown) {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	inst, err := set.Lookup(code.Opcode())
	if err != nil {
		return
	}

	return inst.Disassemble(code)
}

func disassembleLdi(code Code) (text string, err error) {
	ri, imm := code.LdiDecode()
	text = fmt.Sprintf("%v %v %d", OP_LDI, ri, imm)
	return
}

func disassembleAlu(code Code) (text string, err error) {
	op, ri, rj, rk := code.AluDecode()
	if !op.IsAlu() {
		err = ErrOpcodeUnknown
		return
	}
	text = fmt.Sprintf("%v %v %v %v", op, ri, rj, rk)
	return
}

func disassemblePrt(code Code) (text string, err error) {
	text = fmt.Sprintf("%v %v", OP_PRT, code.PrtDecode())
	return
}

func disassembleRdd(code Code) (text string, err error) {
	text = fmt.Sprintf("%v %v", OP_RDD, code.RddDecode())
	return
}

func disassembleBlt(code Code) (text string, err error) {
	ri, rj, addr := code.BltDecode()
	text = fmt.Sprintf("%v %v %v %d", OP_BLT, ri, rj, addr)
	return
}

func executeLdi(cpu *Cpu, code Code) (err error) {
	ri, imm := code.LdiDecode()
	cpu.Register[ri] = imm

	if cpu.Verbose {
		log.Printf("cpu: %v <- %d", ri, imm)
	}

	return
}

func executeAlu(cpu *Cpu, code Code) (err error) {
	op, ri, rj, rk := code.AluDecode()
	a := cpu.Register[ri]
	b := cpu.Register[rj]

	var value uint8
	switch op {
	case OP_ADD:
		value = a + b
	case OP_AND:
		value = a & b
	case OP_OR:
		value = a | b
	case OP_XOR:
		value = a ^ b
	default:
		err = ErrOpcodeUnknown
		return
	}
	cpu.Register[rk] = value

	if cpu.Verbose {
		log.Printf("cpu: %v <- %d %v %d = %d", rk, a, op, b, value)
	}

	return
}

func executePrt(cpu *Cpu, code Code) (err error) {
	if cpu.Console == nil {
		err = ErrConsoleMissing
		return
	}

	ri := code.PrtDecode()
	err = cpu.Console.Print(int(ri), cpu.Register[ri])
	return
}

func executeRdd(cpu *Cpu, code Code) (err error) {
	if cpu.Console == nil {
		err = ErrConsoleMissing
		return
	}

	ri := code.RddDecode()
	value, err := cpu.Console.Read(int(ri))
	if err != nil {
		return
	}

	// Only the low 8 bits are kept.
	cpu.Register[ri] = uint8(value & 0xff)

	if cpu.Verbose {
		log.Printf("cpu: %v <- %d", ri, cpu.Register[ri])
	}

	return
}

func executeBlt(cpu *Cpu, code Code) (err error) {
	ri, rj, addr := code.BltDecode()
	if cpu.Register[ri] >= cpu.Register[rj] {
		return
	}

	if addr%WORD_SIZE != 0 {
		err = ErrBranchMisaligned
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: branch %02d -> %02d", cpu.Pc, addr)
	}

	cpu.Pc = uint16(addr)

	return
}
