package array

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/box"
)

// Array is a contiguous buffer of up to Cap() elements.
//
// Invariant: 0 <= Len() <= Cap(); slots below Len() hold live values, slots
// at or above Len() hold zero values.
//
// An Array is owned by one container at a time and is not safe for
// concurrent mutation.
type Array[T any] struct {
	buf    []T // len(buf) == capacity
	length int
	a      *alloc.Allocator
}

// WithCapacity creates an array on the default allocator with room for n
// elements. n == 0 allocates nothing. It panics if n is negative.
func WithCapacity[T any](n int) *Array[T] {
	return WithCapacityIn[T](alloc.Default(), n)
}

// WithCapacityIn creates an array on allocator a with room for n elements.
func WithCapacityIn[T any](a *alloc.Allocator, n int) *Array[T] {
	if n < 0 {
		panic(fmt.Sprintf("array: negative capacity %d", n))
	}
	return &Array[T]{buf: alloc.MakeSlice[T](a, n), a: a}
}

// From creates an array on the default allocator holding a copy of values,
// with capacity len(values).
func From[T any](values ...T) *Array[T] {
	return FromIn(alloc.Default(), values...)
}

// FromIn creates an array on allocator a holding a copy of values.
func FromIn[T any](a *alloc.Allocator, values ...T) *Array[T] {
	arr := WithCapacityIn[T](a, len(values))
	arr.length = copy(arr.buf, values)
	return arr
}

// Len returns the number of live elements.
func (arr *Array[T]) Len() int { return arr.length }

// Cap returns the capacity.
func (arr *Array[T]) Cap() int { return len(arr.buf) }

// IsEmpty reports whether the array has no live elements.
func (arr *Array[T]) IsEmpty() bool { return arr.length == 0 }

// IsFull reports whether Len() == Cap().
func (arr *Array[T]) IsFull() bool { return arr.length == len(arr.buf) }

// Push appends v. It returns ErrFull if the array is at capacity. O(1).
func (arr *Array[T]) Push(v T) error {
	if arr.IsFull() {
		return ErrFull
	}
	arr.buf[arr.length] = v
	arr.length++
	return nil
}

// Insert places v at index, shifting elements at and after index one slot
// to the right. index may equal Len(). O(n).
func (arr *Array[T]) Insert(index int, v T) error {
	if arr.IsFull() {
		return ErrFull
	}
	if index < 0 || index > arr.length {
		return &IndexError{Op: "insert", Index: index, Bound: arr.length + 1}
	}
	copy(arr.buf[index+1:arr.length+1], arr.buf[index:arr.length])
	arr.buf[index] = v
	arr.length++
	return nil
}

// Delete destroys the element at index and shifts the tail one slot to the
// left. O(n).
func (arr *Array[T]) Delete(index int) error {
	if index < 0 || index >= arr.length {
		return &IndexError{Op: "delete", Index: index, Bound: arr.length}
	}
	box.Destroy(&arr.buf[index])
	arr.closeGap(index)
	return nil
}

// Remove moves the element at index out of the array and shifts the tail
// one slot to the left. The returned value is not destroyed. O(n).
func (arr *Array[T]) Remove(index int) (T, error) {
	if index < 0 || index >= arr.length {
		var zero T
		return zero, &IndexError{Op: "remove", Index: index, Bound: arr.length}
	}
	v := arr.buf[index]
	arr.closeGap(index)
	return v, nil
}

// Pop moves the last element out of the array. It returns ErrEmpty if the
// array has no elements. O(1).
func (arr *Array[T]) Pop() (T, error) {
	if arr.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return arr.Remove(arr.length - 1)
}

// closeGap shifts buf[index+1:length] left by one and zeroes the vacated
// last slot.
func (arr *Array[T]) closeGap(index int) {
	copy(arr.buf[index:arr.length-1], arr.buf[index+1:arr.length])
	arr.length--
	var zero T
	arr.buf[arr.length] = zero
}

// Get returns the element at index. It panics with *IndexError if
// index >= Len().
func (arr *Array[T]) Get(index int) T {
	return *arr.At(index)
}

// At returns a pointer to the element at index, valid until the next
// mutating call. It panics with *IndexError if index >= Len().
func (arr *Array[T]) At(index int) *T {
	if index < 0 || index >= arr.length {
		panic(&IndexError{Op: "get", Index: index, Bound: arr.length})
	}
	return &arr.buf[index]
}

// Set writes v at index. Only the capacity is checked: writing at or past
// Len() fills a spare slot without changing Len(). Overwriting a live
// element destroys it first. It panics with *IndexError if index >= Cap().
func (arr *Array[T]) Set(index int, v T) {
	if index < 0 || index >= len(arr.buf) {
		panic(&IndexError{Op: "set", Index: index, Bound: len(arr.buf)})
	}
	if index < arr.length {
		box.Destroy(&arr.buf[index])
	}
	arr.buf[index] = v
}

// Resize moves the live elements into a new buffer of newCap elements and
// frees the old buffer. It fails, leaving the array unchanged, if newCap is
// below Len() or equal to Cap().
func (arr *Array[T]) Resize(newCap int) error {
	oldCap := len(arr.buf)
	if newCap < arr.length || newCap == oldCap {
		err := &ResizeError{Capacity: oldCap, NewCapacity: newCap, Len: arr.length}
		arr.a.ObserveResize(context.Background(), oldCap, newCap, arr.length, err)
		return err
	}

	buf := alloc.MakeSlice[T](arr.a, newCap)
	copy(buf, arr.buf[:arr.length])
	arr.replace(buf, arr.length)

	arr.a.ObserveResize(context.Background(), oldCap, newCap, arr.length, nil)
	return nil
}

// replace swaps in buf, whose first length slots are live, and frees the old
// buffer without destroying its elements (they were moved, not copied).
func (arr *Array[T]) replace(buf []T, length int) {
	old := arr.buf
	arr.buf = buf
	arr.length = length
	alloc.FreeSlice(arr.a, old)
}

// Clear destroys every live element. The capacity is kept.
func (arr *Array[T]) Clear() {
	for i := 0; i < arr.length; i++ {
		box.Destroy(&arr.buf[i])
	}
	clear(arr.buf[:arr.length])
	arr.length = 0
}

// Free destroys exactly the Len() live elements and releases the buffer.
// The array is left empty with capacity 0 and may be reused after Resize.
// Freeing an already freed array does nothing.
func (arr *Array[T]) Free() {
	arr.Clear()
	arr.replace(nil, 0)
}

// All returns an iterator over index/value pairs of the live elements.
func (arr *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < arr.length; i++ {
			if !yield(i, arr.buf[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the live elements.
func (arr *Array[T]) Values() []T {
	out := make([]T, arr.length)
	copy(out, arr.buf[:arr.length])
	return out
}

// String formats the live elements as "[a, b, c]".
func (arr *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < arr.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, arr.buf[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
