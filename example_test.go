package rawkit_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/arc"
	"github.com/hupe1980/rawkit/array"
	"github.com/hupe1980/rawkit/list"
)

// Example_array demonstrates a bounded array that refuses to grow implicitly.
func Example_array() {
	arr := array.WithCapacity[int](2)
	defer arr.Free()

	_ = arr.Push(1)
	_ = arr.Push(2)
	if err := arr.Push(3); errors.Is(err, array.ErrFull) {
		fmt.Println("full:", arr, arr.Len())
	}

	_ = arr.Resize(4)
	_ = arr.Insert(1, 9)
	fmt.Println(arr, arr.Cap())
	// Output:
	// full: [1, 2] 2
	// [1, 9, 2] 4
}

// Example_sortedSets demonstrates the merge-style set operations.
func Example_sortedSets() {
	a := array.From(1, 5, 7, 8, 9, 11, 20)
	b := array.From(2, 3, 7, 20, 21, 25)
	defer a.Free()
	defer b.Free()

	array.SortedUnion(a, b)
	fmt.Println(a)
	array.SortedIntersection(a, b)
	fmt.Println(a)
	// Output:
	// [1, 2, 3, 5, 7, 8, 9, 11, 20, 21, 25]
	// [2, 3, 7, 20, 21, 25]
}

type conn struct{ name string }

func (c *conn) Drop() { fmt.Println("closing", c.name) }

// Example_arc demonstrates that the last handle runs the destructor.
func Example_arc() {
	p := arc.New(conn{name: "db"})
	q := p.Clone()
	fmt.Println("count:", q.Count())

	p.Drop()
	fmt.Println("count:", q.Count())
	q.Drop()
	// Output:
	// count: 2
	// count: 1
	// closing db
}

// Example_list demonstrates the arena-backed doubly linked list.
func Example_list() {
	l := list.New[int]()
	defer l.Free()

	l.PushFront(5)
	l.PushFront(10)
	fmt.Println(l)

	v, _ := l.PopBack()
	fmt.Println(v, l)
	// Output:
	// 10 -> 5
	// 5 10
}

// Example_leakCheck demonstrates leak detection with a dedicated allocator.
func Example_leakCheck() {
	a := alloc.NewAllocator(alloc.WithTracking())

	l := list.NewSharedIn[string](a)
	l.PushBack("x")
	fmt.Println(a.Stats().LiveAllocs)

	l.Free()
	fmt.Println(a.Stats().LiveAllocs)
	// Output:
	// 1
	// 0
}
