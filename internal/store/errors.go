package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Find when no record carries the requested ID.
var ErrNotFound = errors.New("record not found")

// ValidationError rejects a record before anything is stored or written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IOError wraps a failure reading or writing the persisted file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
