package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalPrint(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tc := &Terminal{Output: out}

	assert.NoError(tc.Print(3, 200))
	assert.NoError(tc.Print(15, 0))
	assert.Equal("R3 = 200\nR15 = 0\n", out.String())
}

func TestTerminalRead(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		input string
		value int64
	}){
		{"decimal", "200\n", 200},
		{"spaces", "   42  \n", 42},
		{"hex", "0x1f", 31},
		{"expression", "3*4", 12},
		{"negative", "-5\n", -5},
		{"large", "1000", 1000},
	}

	for _, entry := range table {
		out := &bytes.Buffer{}
		tc := &Terminal{Input: strings.NewReader(entry.input), Output: out}

		value, err := tc.Read(2)
		assert.NoError(err, entry.name)
		assert.Equal(entry.value, value, entry.name)
		assert.Equal("Enter a value for R2: ", out.String(), entry.name)
	}
}

func TestTerminalReadSequence(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tc := &Terminal{Input: strings.NewReader("1 2\n3\n"), Output: out}

	for _, expected := range []int64{1, 2, 3} {
		value, err := tc.Read(0)
		assert.NoError(err)
		assert.Equal(expected, value)
	}

	_, err := tc.Read(0)
	assert.ErrorIs(err, ErrInputEmpty)

	// A new input stream is picked up.
	tc.Input = strings.NewReader("9")
	value, err := tc.Read(0)
	assert.NoError(err)
	assert.Equal(int64(9), value)
}

func TestTerminalReadInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"abc", "'x'", "1.5", "[1]", "1+", "None", "99999999999999999999999"} {
		tc := &Terminal{Input: strings.NewReader(input), Output: &bytes.Buffer{}}

		_, err := tc.Read(1)
		assert.ErrorIs(err, ErrInputInvalid(""), input)

		var invalid ErrInputInvalid
		assert.True(errors.As(err, &invalid), input)
		assert.Equal(input, string(invalid), input)
	}
}

func TestTerminalRewind(t *testing.T) {
	assert := assert.New(t)

	input := strings.NewReader("5 6")
	tc := &Terminal{Input: input, Output: &bytes.Buffer{}}

	value, err := tc.Read(0)
	assert.NoError(err)
	assert.Equal(int64(5), value)

	// Unchanged input keeps words already buffered by the scanner.
	value, err = tc.Read(1)
	assert.NoError(err)
	assert.Equal(int64(6), value)

	input = strings.NewReader("7 8")
	tc.Input = input
	value, err = tc.Read(0)
	assert.NoError(err)
	assert.Equal(int64(7), value)

	// The reader was drained into the scanner; rewinding drops the rest.
	tc.Rewind()
	assert.Nil(tc.scanner)
	_, err = tc.Read(0)
	assert.ErrorIs(err, ErrInputEmpty)

	tc.Rewind()
	tc.Input = strings.NewReader("9")
	value, err = tc.Read(2)
	assert.NoError(err)
	assert.Equal(int64(9), value)
}
