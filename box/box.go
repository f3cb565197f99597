// Package box provides Box, a heap cell with exactly one owner.
//
// A Box allocates one T from an alloc.Allocator and frees it exactly once.
// Ownership can leave the box as a raw pointer (Leak) and come back later
// (Unleak), which lets another structure hold the allocation without copying
// it:
//
//	b := box.New(node{})
//	p := box.Leak(b)      // b no longer owns; destructor disarmed
//	...
//	box.Unleak(p).Drop()  // destructor runs, memory is freed
//
// Unleak must only be called on a pointer produced by Leak on the same
// allocator, and only once per Leak. With a tracking allocator a violation
// is reported as alloc.ErrDoubleFree when the second owner drops.
package box

import (
	"github.com/hupe1980/rawkit/alloc"
)

// Dropper is implemented by values that release resources when their owner
// destroys them. Drop is called exactly once, on the owned copy, just before
// its memory is freed.
type Dropper interface {
	Drop()
}

// Box owns a single heap-allocated T.
//
// The zero Box is empty. Copying a Box copies the owning pointer, so a Box
// must be moved, not copied: after passing it on, do not Drop the source.
type Box[T any] struct {
	ptr *T
	a   *alloc.Allocator
}

// New allocates a T on the default allocator and moves v into it.
func New[T any](v T) Box[T] {
	return NewIn(alloc.Default(), v)
}

// NewIn allocates a T on a and moves v into it. It panics with
// *alloc.AllocError if the allocation fails.
func NewIn[T any](a *alloc.Allocator, v T) Box[T] {
	return Box[T]{ptr: alloc.New(a, v), a: a}
}

// NewInPlace allocates a zero T on a and lets init construct it where it
// lives. This is useful when the value cannot be moved after construction.
func NewInPlace[T any](a *alloc.Allocator, init func(v *T)) Box[T] {
	p := alloc.NewZeroed[T](a)
	if init != nil {
		init(p)
	}
	return Box[T]{ptr: p, a: a}
}

// Leak disarms b's destructor and returns the raw pointer. b is left empty.
func Leak[T any](b *Box[T]) *T {
	p := b.ptr
	b.ptr = nil
	return p
}

// Unleak re-wraps a pointer obtained from Leak on the default allocator.
func Unleak[T any](p *T) Box[T] {
	return UnleakIn(alloc.Default(), p)
}

// UnleakIn re-wraps a pointer obtained from Leak on allocator a.
func UnleakIn[T any](a *alloc.Allocator, p *T) Box[T] {
	if p == nil {
		panic("box: unleak of nil pointer")
	}
	return Box[T]{ptr: p, a: a}
}

// Get returns the owned value. It panics if the box is empty.
func (b *Box[T]) Get() *T {
	if b.ptr == nil {
		panic("box: use of empty box")
	}
	return b.ptr
}

// IsEmpty reports whether the box owns nothing (zero, leaked or dropped).
func (b *Box[T]) IsEmpty() bool {
	return b.ptr == nil
}

// Drop runs the value's destructor in place and frees the allocation.
// Dropping an empty box is a no-op.
func (b *Box[T]) Drop() {
	p := b.ptr
	if p == nil {
		return
	}
	b.ptr = nil

	Destroy(p)
	alloc.Free(b.a, p)
}

// HasDestructor reports whether *T implements Dropper.
func HasDestructor[T any]() bool {
	_, ok := any((*T)(nil)).(Dropper)
	return ok
}

// Destroy runs the destructor of the value at p, if it has one.
func Destroy[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
}
