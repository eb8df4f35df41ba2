package types

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryOpen = errors.New("could not open directory")
	ErrDirectoryRead = errors.New("could not read directory")
	ErrOutOfMemory   = errors.New("out of memory")
	ErrPathTooLong   = errors.New("path too long")
	ErrNameTooLong   = errors.New("name too long")
)

// PathError is the fatal error of a scan or render step. It matches both its
// Kind sentinel and the underlying OS error with errors.Is.
type PathError struct {
	Kind error
	Path string
	Err  error
}

func NewPathError(kind error, path string, err error) *PathError {
	return &PathError{Kind: kind, Path: path, Err: err}
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
