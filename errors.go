package main

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDirectory is wrapped by TraversalError when a directory argument names something else.
	ErrNotDirectory = errors.New("not a directory")
	// ErrInvalidArgument marks contract violations such as an unknown sort key.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TraversalError reports the path at which collecting file metadata failed.
// Any TraversalError aborts the whole run.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traversal failed at %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}
