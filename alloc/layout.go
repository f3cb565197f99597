package alloc

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/rawkit/internal/conv"
)

// Layout describes the size and alignment of an allocation.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the layout of a single T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{
		Size:  unsafe.Sizeof(zero),
		Align: unsafe.Alignof(zero),
	}
}

// ArrayLayout returns the layout of n contiguous values of type T.
func ArrayLayout[T any](n int) (Layout, error) {
	l := LayoutOf[T]()
	size, err := conv.MulSize(n, l.Size)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Size: size, Align: l.Align}, nil
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout{size: %d, align: %d}", l.Size, l.Align)
}
