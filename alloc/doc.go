// Package alloc is the allocator behind every rawkit container.
//
// Allocation goes to the Go heap, but each call is accounted against a
// resource budget: live allocation counts, live bytes, peak bytes, and,
// with tracking enabled, the set of live addresses. Containers use this to
// make ownership bugs visible:
//
//   - a Free of an address that is not live panics with ErrDoubleFree
//   - allocations that are never freed remain in Stats and fail CheckLeaks
//
// # Failure
//
// Allocation never returns an error. When a request cannot be satisfied
// (memory limit reached, size overflow) the allocator logs the failure and
// panics with an *AllocError that wraps ErrOutOfMemory. Callers are not
// expected to recover.
//
// # Zero-sized types
//
// Values of size zero are counted but not address-tracked: the runtime may
// hand out the same address for all of them.
package alloc
