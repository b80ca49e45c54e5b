package io

import (
	"errors"

	"github.com/ezrec/microputer/translate"
)

var f = translate.From

var (
	// Console errors
	ErrInputEmpty = errors.New(f("input empty"))
)

// ErrInputInvalid is an operator entry that is not an integer.
type ErrInputInvalid string

func (err ErrInputInvalid) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrInputInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrInputInvalid)
	return
}
