// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"io"
	"io/fs"
)

// IMAGE_LIMIT is the most bytes read from a binary image.
const IMAGE_LIMIT = 32

// ReadImage reads up to IMAGE_LIMIT bytes from a raw binary image.
// Any bytes past the limit are ignored.
func ReadImage(r io.Reader) (image []byte, err error) {
	return io.ReadAll(io.LimitReader(r, IMAGE_LIMIT))
}

// LoadImage reads a binary image file from a file system.
func LoadImage(filesys fs.FS, name string) (image []byte, err error) {
	inf, err := filesys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return ReadImage(inf)
}
