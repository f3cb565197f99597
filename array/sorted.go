package array

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/box"
)

// The sorted operations below expect both arrays in ascending order. Each
// fills a fresh buffer in one merge pass, trims it to the result length and
// installs it in arr, freeing arr's old buffer. Elements of arr that do not
// make it into the result are destroyed; other is left unchanged.
//
// Merge and union copy elements of other into arr, which would give such an
// element two owners. They panic if *T implements box.Dropper.

// SortedMerge merges other into arr, keeping duplicates.
func SortedMerge[T cmp.Ordered](arr, other *Array[T]) {
	SortedMergeFunc(arr, other, cmp.Compare[T])
}

// SortedUnion replaces arr with the union of arr and other. Elements present
// in both appear once.
func SortedUnion[T cmp.Ordered](arr, other *Array[T]) {
	SortedUnionFunc(arr, other, cmp.Compare[T])
}

// SortedIntersection replaces arr with the elements present in both arrays.
func SortedIntersection[T cmp.Ordered](arr, other *Array[T]) {
	SortedIntersectionFunc(arr, other, cmp.Compare[T])
}

// SortedDifference replaces arr with the elements of arr not present in
// other.
func SortedDifference[T cmp.Ordered](arr, other *Array[T]) {
	SortedDifferenceFunc(arr, other, cmp.Compare[T])
}

// SortedMergeFunc is like SortedMerge but orders elements with compare.
func SortedMergeFunc[T any](arr, other *Array[T], compare func(a, b T) int) {
	mustCopy[T]("merge")
	a, b := arr.buf[:arr.length], other.buf[:other.length]
	out := newResult[T](arr.a, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if compare(b[j], a[i]) < 0 {
			out.add(b[j])
			j++
		} else {
			out.add(a[i])
			i++
		}
	}
	out.add(a[i:]...)
	out.add(b[j:]...)

	out.trim(arr.a)
	arr.replace(out.buf, out.n)
}

// SortedUnionFunc is like SortedUnion but orders elements with compare.
func SortedUnionFunc[T any](arr, other *Array[T], compare func(a, b T) int) {
	mustCopy[T]("union")
	a, b := arr.buf[:arr.length], other.buf[:other.length]
	out := newResult[T](arr.a, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := compare(a[i], b[j]); {
		case c < 0:
			out.add(a[i])
			i++
		case c > 0:
			out.add(b[j])
			j++
		default:
			out.add(a[i])
			i++
			j++
		}
	}
	out.add(a[i:]...)
	out.add(b[j:]...)

	out.trim(arr.a)
	arr.replace(out.buf, out.n)
}

// SortedIntersectionFunc is like SortedIntersection but orders elements with
// compare.
func SortedIntersectionFunc[T any](arr, other *Array[T], compare func(a, b T) int) {
	a, b := arr.buf[:arr.length], other.buf[:other.length]
	out := newResult[T](arr.a, min(len(a), len(b)))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := compare(a[i], b[j]); {
		case c < 0:
			box.Destroy(&a[i])
			i++
		case c > 0:
			j++
		default:
			out.add(a[i])
			i++
			j++
		}
	}
	destroyAll(a[i:])

	out.trim(arr.a)
	arr.replace(out.buf, out.n)
}

// SortedDifferenceFunc is like SortedDifference but orders elements with
// compare.
func SortedDifferenceFunc[T any](arr, other *Array[T], compare func(a, b T) int) {
	a, b := arr.buf[:arr.length], other.buf[:other.length]
	out := newResult[T](arr.a, len(a))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := compare(a[i], b[j]); {
		case c < 0:
			out.add(a[i])
			i++
		case c > 0:
			j++
		default:
			box.Destroy(&a[i])
			i++
			j++
		}
	}
	out.add(a[i:]...)

	out.trim(arr.a)
	arr.replace(out.buf, out.n)
}

// result is a write cursor over a freshly allocated buffer.
type result[T any] struct {
	buf []T
	n   int
}

func newResult[T any](a *alloc.Allocator, capacity int) *result[T] {
	return &result[T]{buf: alloc.MakeSlice[T](a, capacity)}
}

func (r *result[T]) add(vs ...T) {
	r.n += copy(r.buf[r.n:], vs)
}

// trim moves the result into a buffer of exactly n elements.
func (r *result[T]) trim(a *alloc.Allocator) {
	if r.n == len(r.buf) {
		return
	}
	buf := alloc.MakeSlice[T](a, r.n)
	copy(buf, r.buf[:r.n])
	alloc.FreeSlice(a, r.buf)
	r.buf = buf
}

// mustCopy panics if T values own resources and so cannot be duplicated.
func mustCopy[T any](op string) {
	if box.HasDestructor[T]() {
		panic(fmt.Sprintf("array: sorted %s copies elements of other; %T has a destructor", op, *new(T)))
	}
}

func destroyAll[T any](vs []T) {
	for i := range vs {
		box.Destroy(&vs[i])
	}
}
