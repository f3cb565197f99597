package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is wrapped by every AllocError.
	ErrOutOfMemory = errors.New("alloc: out of memory")
	// ErrDoubleFree is the panic value (wrapped) for a free of an address that is not live.
	ErrDoubleFree = errors.New("alloc: double free")
	// ErrLeak is returned by CheckLeaks when allocations remain live.
	ErrLeak = errors.New("alloc: leaked allocations")
)

// AllocError is the panic value of a failed allocation.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type AllocError struct {
	Layout Layout
	cause  error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("alloc: cannot allocate %d bytes (align %d): %v", e.Layout.Size, e.Layout.Align, e.cause)
}

func (e *AllocError) Unwrap() []error { return []error{ErrOutOfMemory, e.cause} }
