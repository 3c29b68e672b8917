package filestore

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNotFound is returned by Load when the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrIsDirectory is returned when the path names a directory.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrFileTooLarge is returned when the file exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrBinaryFile is returned when the file does not look like text.
	ErrBinaryFile = errors.New("binary file")
)

// IOError reports a failed load or save.
type IOError struct {
	Op   string // load or save
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
