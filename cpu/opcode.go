// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"strconv"
)

// Opcode is the operation selected by the top 3 bits of an instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LDI = Opcode(0) // LDI
	OP_ADD = Opcode(1) // ADD
	OP_AND = Opcode(2) // AND
	OP_OR  = Opcode(3) // OR
	OP_XOR = Opcode(4) // XOR
	OP_PRT = Opcode(5) // PRT
	OP_RDD = Opcode(6) // RDD
	OP_BLT = Opcode(7) // BLT
)

const (
	OPCODE_COUNT = 8 // Number of encodable opcodes.
	OPCODE_SHIFT = 13
	OPCODE_MASK  = uint16(0b111 << OPCODE_SHIFT)
)

// IsAlu returns true for the operations sharing the three register layout.
func (op Opcode) IsAlu() bool {
	return op >= OP_ADD && op <= OP_XOR
}

// CodeReg is a register index operand.
type CodeReg int

// String returns the register as rendered in listings, ie 'R3'.
func (reg CodeReg) String() string {
	return "R" + strconv.Itoa(int(reg))
}

// Code is a single 16-bit instruction word.
type Code uint16

// MakeCodeLdi creates a load-immediate instruction.
func MakeCodeLdi(ri CodeReg, imm uint8) Code {
	return Code((uint16(OP_LDI) << OPCODE_SHIFT) | ((uint16(ri) & 0xf) << 9) | (uint16(imm) << 1))
}

// MakeCodeAlu creates an ADD, AND, OR or XOR instruction storing into rk.
func MakeCodeAlu(op Opcode, ri, rj, rk CodeReg) Code {
	return Code(((uint16(op) & 0x7) << OPCODE_SHIFT) | ((uint16(ri) & 0xf) << 9) | ((uint16(rj) & 0xf) << 5) | ((uint16(rk) & 0xf) << 1))
}

// MakeCodePrt creates a print register instruction.
func MakeCodePrt(ri CodeReg) Code {
	return Code((uint16(OP_PRT) << OPCODE_SHIFT) | ((uint16(ri) & 0xf) << 9))
}

// MakeCodeRdd creates a read register instruction.
func MakeCodeRdd(ri CodeReg) Code {
	return Code((uint16(OP_RDD) << OPCODE_SHIFT) | ((uint16(ri) & 0xf) << 9))
}

// MakeCodeBlt creates a branch-if-less-than instruction.
func MakeCodeBlt(ri, rj CodeReg, addr uint8) Code {
	return Code((uint16(OP_BLT) << OPCODE_SHIFT) | ((uint16(ri) & 0xf) << 9) | ((uint16(rj) & 0xf) << 5) | (uint16(addr) & 0x1f))
}

// Opcode returns the operation from bits 15..13 of the word.
func (code Code) Opcode() Opcode {
	return Opcode((uint16(code) & OPCODE_MASK) >> OPCODE_SHIFT)
}

// LdiDecode decodes the target register and the immediate value.
func (code Code) LdiDecode() (ri CodeReg, imm uint8) {
	word := uint16(code)
	ri = CodeReg((word >> 9) & 0xf)
	imm = uint8((word >> 1) & 0xff)
	return
}

// AluDecode decodes the operation and the source (ri, rj) and target (rk)
// registers. The operation is re-read from the opcode bits.
func (code Code) AluDecode() (op Opcode, ri, rj, rk CodeReg) {
	word := uint16(code)
	op = Opcode((word >> 13) & 0x7)
	ri = CodeReg((word >> 9) & 0xf)
	rj = CodeReg((word >> 5) & 0xf)
	rk = CodeReg((word >> 1) & 0xf)
	return
}

// PrtDecode decodes the register to print.
func (code Code) PrtDecode() (ri CodeReg) {
	return CodeReg((uint16(code) >> 9) & 0xf)
}

// RddDecode decodes the register to read into.
func (code Code) RddDecode() (ri CodeReg) {
	return CodeReg((uint16(code) >> 9) & 0xf)
}

// BltDecode decodes the compared registers and the branch byte address.
func (code Code) BltDecode() (ri, rj CodeReg, addr uint8) {
	word := uint16(code)
	ri = CodeReg((word >> 9) & 0xf)
	rj = CodeReg((word >> 5) & 0xf)
	addr = uint8(word & 0x1f)
	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	text, err := instructionSet.disassemble(code)
	if err != nil {
		return fmt.Sprintf("??? 0x%04x", uint16(code))
	}

	return text
}
