// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Line is one line of a disassembly listing.
type Line struct {
	Addr int    // Byte address of the instruction.
	Text string // Disassembled text.
}

// String returns the line as written to a listing, ie '4: PRT R1'.
func (line Line) String() string {
	return fmt.Sprintf("%d: %v", line.Addr, line.Text)
}

// WriteListing writes each line with its address prefix. Lines are
// separated by a newline, with no newline after the last line.
func WriteListing(w io.Writer, lines []Line) (err error) {
	bw := bufio.NewWriter(w)
	for n, line := range lines {
		if n > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(line.String())
	}

	return bw.Flush()
}

// CreateListing writes the listing to a file, replacing any existing file.
// On a write failure the file may be left truncated.
func CreateListing(filesys CreateFS, name string, lines []Line) (err error) {
	ouf, err := filesys.Create(name)
	if err != nil {
		return
	}

	err = WriteListing(ouf, lines)
	err = errors.Join(err, ouf.Close())
	return
}
