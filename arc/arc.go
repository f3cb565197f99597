// Package arc provides Arc, an atomically reference counted pointer.
//
// An Arc handle shares one allocation with every handle cloned from it. The
// allocation holds the value and its reference count; the last handle to be
// dropped destroys the value and frees the memory:
//
//	p := arc.New(conn)
//	q := p.Clone() // Count() == 2
//	p.Drop()       // Count() == 1, conn still alive
//	q.Drop()       // conn's destructor runs, memory freed
//
// Only the count is synchronized. Mutating the value through Get from
// several goroutines needs the caller's own synchronization.
//
// Reference cycles are never collected: two values holding Arcs to each
// other keep each other alive until one side clears its handle.
package arc

import (
	"sync/atomic"

	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/box"
	"github.com/hupe1980/rawkit/cell"
)

// inner is the shared allocation. count is the one field written through
// shared handles.
type inner[T any] struct {
	value T
	count cell.UnsafeCell[atomic.Int64]
}

// Drop destroys the shared value. It runs when the owning box is dropped.
func (in *inner[T]) Drop() {
	box.Destroy(&in.value)
}

// Arc is one owning handle to a shared T.
//
// Each handle accounts for exactly one unit of the count and must be dropped
// once. Copying the Arc struct does not create a new owner; use Clone.
type Arc[T any] struct {
	ptr *inner[T]
	a   *alloc.Allocator
}

// New moves v into a shared allocation on the default allocator.
// The returned handle has Count() == 1.
func New[T any](v T) *Arc[T] {
	return NewIn(alloc.Default(), v)
}

// NewIn moves v into a shared allocation on a.
func NewIn[T any](a *alloc.Allocator, v T) *Arc[T] {
	b := box.NewInPlace(a, func(in *inner[T]) {
		in.value = v
		in.count.Get().Store(1)
	})
	return &Arc[T]{ptr: box.Leak(&b), a: a}
}

// Clone returns a new handle to the same value and increments the count.
// It panics if r was already dropped.
func (r *Arc[T]) Clone() *Arc[T] {
	in := r.live()
	in.count.Get().Add(1)
	return &Arc[T]{ptr: in, a: r.a}
}

// Get returns a pointer to the shared value. The pointer stays valid while
// any handle is alive. It panics if r was already dropped.
func (r *Arc[T]) Get() *T {
	return &r.live().value
}

// Count returns the number of live handles.
func (r *Arc[T]) Count() int {
	return int(r.live().count.Get().Load())
}

// IsValid reports whether r is a live handle. It may be called on nil.
func (r *Arc[T]) IsValid() bool {
	return r != nil && r.ptr != nil
}

// Drop releases this handle. When the count reaches zero the value's
// destructor runs and the allocation is freed, exactly once.
//
// Drop is idempotent per handle: dropping an already dropped (or nil) handle
// does nothing, so `defer p.Drop()` is safe alongside an earlier explicit
// Drop.
func (r *Arc[T]) Drop() {
	if r == nil || r.ptr == nil {
		return
	}
	in := r.ptr
	r.ptr = nil

	switch n := in.count.Get().Add(-1); {
	case n == 0:
		b := box.UnleakIn(r.a, in)
		b.Drop()
	case n < 0:
		panic("arc: too many releases")
	}
}

// PtrEqual reports whether a and b share the same allocation.
func PtrEqual[T any](a, b *Arc[T]) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	return a.ptr == b.ptr
}

func (r *Arc[T]) live() *inner[T] {
	if r == nil || r.ptr == nil {
		panic("arc: use of dropped Arc")
	}
	return r.ptr
}
