// Package errs holds the error values shared by the container packages.
//
// Precondition failures are returned as errors that match one of the sentinels
// below with errors.Is. Expected "absent" outcomes (dequeue on an empty queue,
// inserting a duplicate into a tree) are reported with a bool instead.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for nil elements and non-positive capacities.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfBounds is returned when an index is outside the valid range of a list.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrEmptyContainer is returned when the first or last element of an empty list is requested.
	ErrEmptyContainer = errors.New("empty container")
)

// IndexError describes a rejected index.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds for size %d", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

// CheckIndex returns an *IndexError unless 0 <= index < size.
func CheckIndex(op string, index, size int) error {
	if index < 0 || index >= size {
		return &IndexError{Op: op, Index: index, Size: size}
	}
	return nil
}
