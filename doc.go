// Package rawkit provides manually managed building blocks for containers.
//
// The library rebuilds the memory primitives a systems standard library
// normally supplies, on top of an accounted allocator:
//
//   - alloc: the allocator every other package calls. It accounts bytes,
//     optionally enforces a memory limit and tracks live addresses so leaks
//     and double frees become observable.
//   - box: Box[T], a heap cell with exactly one owner (Leak / Unleak / Drop).
//   - cell: UnsafeCell[T], a mutable slot reachable through a shared reference.
//   - arc: Arc[T], an atomically reference counted pointer built on box.
//   - array: Array[T], a bounded contiguous buffer with explicit Resize.
//   - list: doubly linked lists, one arena+index based and one linked
//     through Arc handles.
//
// # Quick Start
//
//	a := array.WithCapacity[int](4)
//	defer a.Free()
//	_ = a.Push(1)
//	_ = a.Push(2)
//	fmt.Println(a) // [1, 2]
//
//	p := arc.New(conn)
//	q := p.Clone()    // Count() == 2
//	p.Drop()          // Count() == 1
//	q.Drop()          // conn.Drop() runs here, exactly once
//
// # Ownership
//
// Values stored in a Box, Arc or Array are destroyed by the container. If the
// pointer type *T implements box.Dropper, Drop is called exactly once when the
// owning container releases the value.
//
// # Observability
//
// Allocators accept a Logger (structured logging via log/slog) and a
// MetricsCollector. The metrics package provides a Prometheus implementation.
package rawkit
