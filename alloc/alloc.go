package alloc

import (
	"unsafe"
)

// New allocates a T, moves v into it and returns the pointer.
// It panics with *AllocError if the allocation cannot be satisfied.
func New[T any](a *Allocator, v T) *T {
	l := LayoutOf[T]()
	a.reserve(l)

	p := new(T)
	*p = v
	a.commit(unsafe.Pointer(p), l)
	return p
}

// NewZeroed allocates a zero T and returns the pointer. Use it for values
// that must not be copied after construction.
func NewZeroed[T any](a *Allocator) *T {
	l := LayoutOf[T]()
	a.reserve(l)

	p := new(T)
	a.commit(unsafe.Pointer(p), l)
	return p
}

// Free releases p. The pointee is zeroed; no destructor runs here.
// Free(nil) is a no-op. Freeing a pointer twice panics when tracking is on.
func Free[T any](a *Allocator, p *T) {
	if p == nil {
		return
	}
	a.release(unsafe.Pointer(p), LayoutOf[T]())

	var zero T
	*p = zero
}

// MakeSlice allocates a buffer of n zero values. n == 0 returns nil without
// allocating. It panics with *AllocError on a size overflow or when the
// memory limit is reached.
func MakeSlice[T any](a *Allocator, n int) []T {
	if n == 0 {
		return nil
	}
	l, err := ArrayLayout[T](n)
	if err != nil {
		a.abort(LayoutOf[T](), err)
	}
	a.reserve(l)

	buf := make([]T, n)
	a.commit(unsafe.Pointer(unsafe.SliceData(buf)), l)
	return buf
}

// FreeSlice releases a buffer obtained from MakeSlice. The whole capacity is
// released and zeroed. Freeing a nil or empty buffer is a no-op.
func FreeSlice[T any](a *Allocator, buf []T) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	l, _ := ArrayLayout[T](len(buf)) // MakeSlice already validated this size
	a.release(unsafe.Pointer(unsafe.SliceData(buf)), l)
	clear(buf)
}
