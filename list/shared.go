package list

import (
	"iter"

	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/arc"
	"github.com/hupe1980/rawkit/box"
)

// Node is an element of a SharedList. It holds strong references to both
// neighbours.
type Node[T any] struct {
	Data T

	next  *arc.Arc[Node[T]]
	prev  *arc.Arc[Node[T]]
	taken bool // Data was moved out by a pop
}

// Drop releases the node's links and destroys Data unless it was moved out.
// It runs when the node's last handle is dropped.
func (n *Node[T]) Drop() {
	n.next.Drop()
	n.prev.Drop()
	n.next, n.prev = nil, nil
	if !n.taken {
		box.Destroy(&n.Data)
	}
}

// SharedList is a doubly linked list of reference counted nodes.
//
// Every node is referenced exactly twice: by its predecessor (or head) and
// by its successor (or tail). The zero value is an empty list on the
// default allocator.
type SharedList[T any] struct {
	head   *arc.Arc[Node[T]]
	tail   *arc.Arc[Node[T]]
	length int
	a      *alloc.Allocator
}

// NewShared creates an empty list on the default allocator.
func NewShared[T any]() *SharedList[T] {
	return NewSharedIn[T](alloc.Default())
}

// NewSharedIn creates an empty list whose nodes are allocated on a.
func NewSharedIn[T any](a *alloc.Allocator) *SharedList[T] {
	return &SharedList[T]{a: a}
}

// Len returns the number of elements.
func (l *SharedList[T]) Len() int { return l.length }

func (l *SharedList[T]) allocator() *alloc.Allocator {
	if l.a == nil {
		l.a = alloc.Default()
	}
	return l.a
}

// PushFront inserts v at the front.
func (l *SharedList[T]) PushFront(v T) {
	n := arc.NewIn(l.allocator(), Node[T]{Data: v})
	if l.head == nil {
		l.head = n
		l.tail = n.Clone()
	} else {
		// The old head handle moves into n.next.
		n.Get().next = l.head
		l.head.Get().prev = n.Clone()
		l.head = n
	}
	l.length++
}

// PushBack inserts v at the back.
func (l *SharedList[T]) PushBack(v T) {
	n := arc.NewIn(l.allocator(), Node[T]{Data: v})
	if l.tail == nil {
		l.tail = n
		l.head = n.Clone()
	} else {
		n.Get().prev = l.tail
		l.tail.Get().next = n.Clone()
		l.tail = n
	}
	l.length++
}

// PopFront removes and returns the front element. ok is false if the list
// is empty. The value is moved out, not destroyed.
func (l *SharedList[T]) PopFront() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	old := l.head
	on := old.Get()

	if on.next == nil {
		l.tail.Drop()
		l.head, l.tail = nil, nil
	} else {
		// Take the successor handle out of the removed node and make it
		// the new head. The successor's back link to old is dropped.
		next := on.next
		on.next = nil
		next.Get().prev.Drop()
		next.Get().prev = nil
		l.head = next
	}

	v = take(on)
	old.Drop()
	l.length--
	return v, true
}

// PopBack removes and returns the back element.
func (l *SharedList[T]) PopBack() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}
	old := l.tail
	on := old.Get()

	if on.prev == nil {
		l.head.Drop()
		l.head, l.tail = nil, nil
	} else {
		prev := on.prev
		on.prev = nil
		prev.Get().next.Drop()
		prev.Get().next = nil
		l.tail = prev
	}

	v = take(on)
	old.Drop()
	l.length--
	return v, true
}

func take[T any](n *Node[T]) T {
	v := n.Data
	n.taken = true
	return v
}

// Front returns the front element without removing it.
func (l *SharedList[T]) Front() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.Get().Data, true
}

// Back returns the back element without removing it.
func (l *SharedList[T]) Back() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}
	return l.tail.Get().Data, true
}

// All iterates from front to back.
func (l *SharedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.Get().next {
			if !yield(cur.Get().Data) {
				return
			}
		}
	}
}

// Backward iterates from back to front.
func (l *SharedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.tail; cur != nil; cur = cur.Get().prev {
			if !yield(cur.Get().Data) {
				return
			}
		}
	}
}

// String formats the list as "a -> b -> c".
func (l *SharedList[T]) String() string {
	return format(l.All())
}

// Free removes and destroys every element.
func (l *SharedList[T]) Free() {
	for {
		v, ok := l.PopFront()
		if !ok {
			return
		}
		box.Destroy(&v)
	}
}
