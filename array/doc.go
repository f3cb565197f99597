// Package array provides Array, a bounded contiguous buffer with explicit
// capacity management.
//
// An Array never grows on its own. Push and Insert fail with ErrFull once
// the length reaches the capacity; the caller decides when to Resize. The
// buffer is obtained from an alloc.Allocator and released exactly once by
// Free, which also destroys the live elements.
//
// # Error handling
//
//   - Push / Insert on a full array return ErrFull; the array is unchanged.
//   - Insert / Delete / Remove with a bad index return an *IndexError.
//   - Get and Set panic with an *IndexError, like slice indexing.
//   - Resize to a capacity below the length, or to the current capacity,
//     returns a *ResizeError wrapping ErrInvalidResize.
//
// # Sorted set operations
//
// SortedMerge, SortedUnion, SortedIntersection and SortedDifference combine
// two ascending arrays in O(n+m). The result replaces the receiver's buffer.
package array
