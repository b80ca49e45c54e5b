package io

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateFS defines a file system interface that supports creating files.
// It is used to write listings.
type CreateFS interface {
	// Create creates a new file for writing, truncating any existing file.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS is a readable and creatable file system rooted at a host directory.
type DirFS string

var _ fs.FS = DirFS("")
var _ CreateFS = DirFS("")

// Open opens a file for reading.
func (dir DirFS) Open(name string) (file fs.File, err error) {
	return os.DirFS(string(dir)).Open(name)
}

// Create creates or truncates a file for writing.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	if !fs.ValidPath(name) {
		err = &fs.PathError{Op: "create", Path: name, Err: fs.ErrInvalid}
		return
	}

	return os.Create(filepath.Join(string(dir), filepath.FromSlash(name)))
}
