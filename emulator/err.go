package emulator

import (
	"github.com/ezrec/microputer/translate"
)

var f = translate.From

// Stage is a step of a run.
type Stage int

const (
	STAGE_LOAD        = Stage(0)
	STAGE_DISASSEMBLE = Stage(1)
	STAGE_EXECUTE     = Stage(2)
)

func (stage Stage) String() string {
	switch stage {
	case STAGE_LOAD:
		return f("loading machine code")
	case STAGE_DISASSEMBLE:
		return f("disassembling machine code")
	case STAGE_EXECUTE:
		return f("executing instructions")
	}

	return f("stage %d", int(stage))
}

// ErrStage indicates the step of a run that failed, and the file involved.
type ErrStage struct {
	Stage Stage
	Path  string
	Err   error
}

func (err *ErrStage) Error() string {
	if len(err.Path) != 0 {
		return f("%v '%v': %v", err.Stage, err.Path, err.Err)
	}
	return f("%v: %v", err.Stage, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}
