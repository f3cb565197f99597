package list

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/array"
	"github.com/hupe1980/rawkit/box"
	"github.com/hupe1980/rawkit/internal/conv"
)

const (
	nilIndex     int32 = -1
	minArenaSize       = 4
)

type node[T any] struct {
	value T
	prev  int32
	next  int32
}

// List is a doubly linked list whose nodes live in one contiguous arena and
// refer to each other by index. The zero value is not usable; call New.
type List[T any] struct {
	nodes  *array.Array[node[T]]
	free   *roaring.Bitmap // vacant slots below nodes.Len()
	head   int32
	tail   int32
	length int
}

// New creates an empty list on the default allocator.
func New[T any]() *List[T] {
	return NewIn[T](alloc.Default())
}

// NewIn creates an empty list on allocator a. No memory is allocated until
// the first push.
func NewIn[T any](a *alloc.Allocator) *List[T] {
	return &List[T]{
		nodes: array.WithCapacityIn[node[T]](a, 0),
		free:  roaring.New(),
		head:  nilIndex,
		tail:  nilIndex,
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.length }

// PushFront inserts v at the front.
func (l *List[T]) PushFront(v T) {
	idx := l.alloc(node[T]{value: v, prev: nilIndex, next: l.head})
	if l.head == nilIndex {
		l.tail = idx
	} else {
		l.at(l.head).prev = idx
	}
	l.head = idx
	l.length++
}

// PushBack inserts v at the back.
func (l *List[T]) PushBack(v T) {
	idx := l.alloc(node[T]{value: v, prev: l.tail, next: nilIndex})
	if l.tail == nilIndex {
		l.head = idx
	} else {
		l.at(l.tail).next = idx
	}
	l.tail = idx
	l.length++
}

// PopFront removes and returns the front element. ok is false if the list
// is empty. The value is moved out, not destroyed.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.head == nilIndex {
		return v, false
	}
	return l.unlink(l.head), true
}

// PopBack removes and returns the back element.
func (l *List[T]) PopBack() (v T, ok bool) {
	if l.tail == nilIndex {
		return v, false
	}
	return l.unlink(l.tail), true
}

// Front returns the front element without removing it.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == nilIndex {
		return v, false
	}
	return l.at(l.head).value, true
}

// Back returns the back element without removing it.
func (l *List[T]) Back() (v T, ok bool) {
	if l.tail == nilIndex {
		return v, false
	}
	return l.at(l.tail).value, true
}

// All iterates from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != nilIndex; {
			n := l.at(i)
			if !yield(n.value) {
				return
			}
			i = n.next
		}
	}
}

// Backward iterates from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.tail; i != nilIndex; {
			n := l.at(i)
			if !yield(n.value) {
				return
			}
			i = n.prev
		}
	}
}

// String formats the list as "a -> b -> c".
func (l *List[T]) String() string {
	return format(l.All())
}

// Free destroys every element and releases the arena. The list is empty
// afterwards and may be reused.
func (l *List[T]) Free() {
	for i := l.head; i != nilIndex; {
		n := l.at(i)
		box.Destroy(&n.value)
		i = n.next
	}
	l.nodes.Free()
	l.free.Clear()
	l.head, l.tail = nilIndex, nilIndex
	l.length = 0
}

func (l *List[T]) at(i int32) *node[T] {
	return l.nodes.At(int(i))
}

// alloc stores n in a vacant slot, growing the arena if necessary.
func (l *List[T]) alloc(n node[T]) int32 {
	if !l.free.IsEmpty() {
		slot := l.free.Minimum()
		l.free.Remove(slot)
		*l.nodes.At(int(slot)) = n
		return int32(slot)
	}

	if l.nodes.IsFull() {
		if err := l.nodes.Resize(max(minArenaSize, 2*l.nodes.Cap())); err != nil {
			panic(fmt.Sprintf("list: grow arena: %v", err))
		}
	}
	idx, err := conv.IntToInt32(l.nodes.Len())
	if err != nil {
		panic("list: arena index overflow")
	}
	if err := l.nodes.Push(n); err != nil {
		panic(fmt.Sprintf("list: arena push: %v", err))
	}
	return idx
}

// unlink detaches the node at i, repairs its neighbours' links and vacates
// the slot.
func (l *List[T]) unlink(i int32) T {
	n := l.at(i)
	v := n.value

	if n.prev == nilIndex {
		l.head = n.next
	} else {
		l.at(n.prev).next = n.next
	}
	if n.next == nilIndex {
		l.tail = n.prev
	} else {
		l.at(n.next).prev = n.prev
	}

	*n = node[T]{prev: nilIndex, next: nilIndex}
	l.free.Add(uint32(i))
	l.length--
	return v
}
