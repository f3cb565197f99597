// Package list provides doubly linked lists built on rawkit primitives.
//
// List stores its nodes in an array.Array and links them by index. Freed
// slots are kept in a roaring bitmap and reused lowest-first; the arena
// doubles through Resize when it runs out of room. Index links cannot form
// reference cycles, so a List never leaks nodes.
//
// SharedList links nodes through arc.Arc handles: head and tail each hold a
// strong reference and neighbours hold strong references to each other.
// Removal clears the removed node's own links before its last handle is
// dropped; otherwise the two mutual references would keep the detached node
// alive.
//
// Both lists offer the same operations:
//
//	l := list.New[int]()
//	defer l.Free()
//	l.PushFront(5)
//	l.PushFront(10)
//	fmt.Println(l) // 10 -> 5
//	v, _ := l.PopBack() // 5
package list

import (
	"fmt"
	"iter"
	"strings"
)

func format[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(" -> ")
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
