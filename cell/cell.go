// Package cell provides UnsafeCell, a value that can be mutated through a
// shared reference.
package cell

// noCopy may be embedded into structs which must not be copied after the
// first use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// UnsafeCell wraps a value and hands out a mutable pointer to it from any
// holder of the cell. It enforces nothing: callers decide who may write and
// when. Its one job is to mark the field that is mutated without exclusive
// access to its owner.
//
// An UnsafeCell must not be copied after first use.
type UnsafeCell[T any] struct {
	_     noCopy
	value T
}

// New returns a cell holding v.
func New[T any](v T) *UnsafeCell[T] {
	return &UnsafeCell[T]{value: v}
}

// Get returns a mutable pointer to the wrapped value, regardless of any other
// pointers obtained earlier.
func (c *UnsafeCell[T]) Get() *T {
	return &c.value
}
