package array

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned when an element is added to an array at capacity.
	ErrFull = errors.New("array: capacity exhausted")
	// ErrInvalidResize is wrapped by every ResizeError.
	ErrInvalidResize = errors.New("array: invalid resize")
	// ErrEmpty is returned by Pop on an empty array.
	ErrEmpty = errors.New("array: empty")
)

// IndexError reports an index outside the valid range [0, Bound).
type IndexError struct {
	Op    string
	Index int
	Bound int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("array: %s index %d out of range [0, %d)", e.Op, e.Index, e.Bound)
}

// ResizeError reports a rejected Resize.
type ResizeError struct {
	Capacity    int
	NewCapacity int
	Len         int
}

func (e *ResizeError) Error() string {
	if e.NewCapacity == e.Capacity {
		return fmt.Sprintf("array: invalid resize: capacity is already %d", e.Capacity)
	}
	return fmt.Sprintf("array: invalid resize: new capacity %d is below length %d", e.NewCapacity, e.Len)
}

func (e *ResizeError) Unwrap() error { return ErrInvalidResize }
