// Package testutil provides testing utilities for rawkit.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.SortedUniqueInts(16, 100) // ascending, no duplicates
//	ops := rng.Ops(1000)                // randomized operation sequence
//
// # Destructor Accounting
//
//	var drops testutil.DropCounter
//	v := drops.New(1) // *Droppable; v.Drop() increments drops
package testutil
