// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/microputer/translate"
)

// TERMINAL_STEP_LIMIT bounds the evaluation of a single operator entry.
const TERMINAL_STEP_LIMIT = 1000

// Terminal is a Console on a pair of byte streams.
// Each entry read is one whitespace separated word, evaluated as an
// integer expression, ie '200', '0x1f' or '3*4'.
type Terminal struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	input   io.Reader
}

var _ Console = (*Terminal)(nil)

// Rewind discards any buffered input.
func (tc *Terminal) Rewind() {
	tc.scanner = nil
	tc.input = nil
}

// Print writes 'R<reg> = <value>' on its own line.
func (tc *Terminal) Print(reg int, value uint8) (err error) {
	_, err = translate.Fprintf(tc.Output, "R%d = %d\n", reg, value)
	return
}

// Read prompts with 'Enter a value for R<reg>: ' and evaluates the next word
// of input.
func (tc *Terminal) Read(reg int) (value int64, err error) {
	_, err = translate.Fprintf(tc.Output, "Enter a value for R%d: ", reg)
	if err != nil {
		return
	}

	// Input may be replaced between runs.
	if tc.scanner == nil || tc.input != tc.Input {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
		tc.input = tc.Input
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrInputEmpty
		}
		return
	}

	return evalInput(tc.scanner.Text())
}

// evalInput evaluates an operator entry as an integer expression.
func evalInput(word string) (value int64, err error) {
	thread := starlark.Thread{Name: "input"}
	thread.SetMaxExecutionSteps(TERMINAL_STEP_LIMIT)
	opts := syntax.FileOptions{}

	prog := "rc=" + word + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "input", prog, nil)
	if err != nil {
		err = ErrInputInvalid(word)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrInputInvalid(word)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrInputInvalid(word)
		return
	}

	return
}
