package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)
	assert.Equal(t, a.Ints(16, 100), b.Ints(16, 100))
	assert.Equal(t, int64(4711), a.Seed())

	a.Reset()
	b.Reset()
	assert.Equal(t, b.Intn(1000), a.Intn(1000))
}

func TestSortedInts(t *testing.T) {
	rng := NewRNG(1)
	xs := rng.SortedInts(50, 10)
	assert.Len(t, xs, 50)
	assert.True(t, slices.IsSorted(xs))
}

func TestSortedUniqueInts(t *testing.T) {
	rng := NewRNG(1)
	xs := rng.SortedUniqueInts(20, 100)
	assert.Len(t, xs, 20)
	assert.True(t, slices.IsSorted(xs))
	assert.Len(t, slices.Compact(slices.Clone(xs)), 20)

	assert.Len(t, rng.SortedUniqueInts(20, 5), 5)
}

func TestOps(t *testing.T) {
	ops := NewRNG(2).Ops(100)
	assert.Len(t, ops, 100)
	for _, op := range ops {
		assert.GreaterOrEqual(t, op.Kind, OpPush)
		assert.LessOrEqual(t, op.Kind, OpResize)
	}
}

func TestDropCounter(t *testing.T) {
	var c DropCounter
	d := c.New(3)
	assert.Equal(t, 3, d.ID)
	d.Drop()
	d.Drop()
	assert.Equal(t, int64(2), c.Count())

	var orphan Droppable
	assert.NotPanics(t, orphan.Drop)
}
