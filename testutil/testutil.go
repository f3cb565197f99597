package testutil

import (
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random numbers in [0,maxVal).
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// SortedInts returns n pseudo-random numbers in [0,maxVal), ascending.
// Duplicates are possible.
func (r *RNG) SortedInts(n, maxVal int) []int {
	out := r.Ints(n, maxVal)
	slices.Sort(out)
	return out
}

// SortedUniqueInts returns up to n distinct numbers in [0,maxVal), ascending.
func (r *RNG) SortedUniqueInts(n, maxVal int) []int {
	r.mu.Lock()
	perm := r.rand.Perm(maxVal)
	r.mu.Unlock()
	out := perm[:min(n, maxVal)]
	slices.Sort(out)
	return out
}

// OpKind identifies a randomized container operation.
type OpKind int

const (
	OpPush OpKind = iota
	OpInsert
	OpDelete
	OpSet
	OpResize
)

// Op is one step of a randomized operation sequence. Index is a raw random
// number; callers reduce it modulo the current bound.
type Op struct {
	Kind  OpKind
	Index int
	Value int
}

// Ops returns n random operations.
func (r *RNG) Ops(n int) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = Op{
			Kind:  OpKind(r.rand.Intn(int(OpResize) + 1)),
			Index: r.rand.Intn(1 << 20),
			Value: r.rand.Intn(1000),
		}
	}
	return ops
}

// DropCounter counts destructor calls of Droppable values.
type DropCounter struct {
	n atomic.Int64
}

// New returns a Droppable that reports to c.
func (c *DropCounter) New(id int) Droppable {
	return Droppable{ID: id, counter: c}
}

// Count returns the number of Drop calls so far.
func (c *DropCounter) Count() int64 {
	return c.n.Load()
}

// Droppable is a value with a counting destructor.
type Droppable struct {
	ID      int
	counter *DropCounter
}

// Drop implements box.Dropper.
func (d *Droppable) Drop() {
	if d.counter != nil {
		d.counter.n.Add(1)
	}
}
