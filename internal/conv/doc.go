// Package conv provides overflow-checked integer and size conversions.
//
// Allocation sizes are computed as element count times element size. Both
// operands come from callers, so the product is checked before it reaches
// the memory accounting layer.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
