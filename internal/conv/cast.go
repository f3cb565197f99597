package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// IntToInt32 converts int to int32 safely.
func IntToInt32(v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32", v)
	}
	return int32(v), nil
}

// UintptrToInt64 converts a byte size to int64 safely.
func UintptrToInt64(v uintptr) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// MulSize returns n*size, the byte size of n elements of the given size.
// It fails if n is negative or the product overflows uintptr.
func MulSize(n int, size uintptr) (uintptr, error) {
	if n < 0 {
		return 0, fmt.Errorf("size overflow: negative element count %d", n)
	}
	hi, lo := bits.Mul64(uint64(n), uint64(size))
	if hi != 0 || lo > uint64(^uintptr(0)) {
		return 0, fmt.Errorf("size overflow: %d elements of %d bytes", n, size)
	}
	return uintptr(lo), nil
}
