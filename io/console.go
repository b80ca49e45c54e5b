// Package io provides the boundary collaborators of the microputer: the
// binary image reader, the listing writer, and the operator console.
package io

// Console defines the operator console used by the PRT and RDD instructions.
type Console interface {
	// Print shows the value of a register.
	Print(reg int, value uint8) error
	// Read prompts for, and blocks until it receives, a value for a register.
	Read(reg int) (value int64, err error)
}
