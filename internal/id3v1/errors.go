package id3v1

import (
	"errors"
	"fmt"
)

// ErrTooShort is wrapped by IOError when a file cannot hold a record.
var ErrTooShort = errors.New("file shorter than 128 bytes")

// IOError is returned when a file cannot be opened, read or written.
//
// A missing record is not an error; Locate reports it with ok == false.
type IOError struct {
	Op   string // "open", "seek", "read", "write"
	Path string // empty when the source has no name
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("id3v1 %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("id3v1 %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// nameOf returns the file name of r when it has one (*os.File does).
func nameOf(r any) string {
	if n, ok := r.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}
