package cpu

import (
	"errors"

	"github.com/ezrec/microputer/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcEnd          = errors.New(f("pc past loaded memory"))
	ErrMemoryBounds   = errors.New(f("fetch past loaded memory"))
	ErrImageTooLarge  = errors.New(f("image larger than memory"))
	ErrConsoleMissing = errors.New(f("console missing"))

	// Instruction errors
	ErrOpcodeUnknown    = errors.New(f("opcode unknown"))
	ErrBranchMisaligned = errors.New(f("branch target not on a word boundary"))
)

type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).Opcode())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrInstruction indicates the address and word of an instruction that
// could not be listed or executed.
type ErrInstruction struct {
	Pc   uint16
	Code Code
	Err  error
}

func (err *ErrInstruction) Error() string {
	return f("%02d: %v %v", err.Pc, err.Code.Opcode(), err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
