// Package cpu implements the microputer processor and its disassembler.
//
// The CPU has sixteen 8-bit registers (R0-R15), 32 bytes of memory holding
// up to sixteen big-endian 16-bit instruction words, a program counter (PC)
// holding a byte offset, and an instruction register (IR).
//
// The top 3 bits of every word select one of eight opcodes. An
// InstructionSet maps each opcode to both its disassembler and its
// execution handler, so a listing and a run always agree on the decode.
package cpu
