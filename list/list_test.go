package list

import (
	"slices"
	"testing"

	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAllocator() *alloc.Allocator {
	return alloc.NewAllocator(alloc.WithTracking())
}

func TestList_PushFrontPopBack(t *testing.T) {
	a := newTestAllocator()
	l := NewIn[int](a)

	l.PushFront(5)
	l.PushFront(10)
	assert.Equal(t, "10 -> 5", l.String())
	assert.Equal(t, 2, l.Len())

	v, ok := l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	require.Equal(t, 1, l.Len())
	assert.Equal(t, l.head, l.tail)
	n := l.at(l.head)
	assert.Equal(t, nilIndex, n.prev)
	assert.Equal(t, nilIndex, n.next)
	assert.Equal(t, 10, n.value)

	l.Free()
	assert.NoError(t, a.CheckLeaks(t.Context()))
}

func TestList_Empty(t *testing.T) {
	l := NewIn[string](newTestAllocator())
	defer l.Free()

	_, ok := l.PopFront()
	assert.False(t, ok)
	_, ok = l.PopBack()
	assert.False(t, ok)
	_, ok = l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
	assert.Equal(t, "", l.String())
}

func TestList_PushPop(t *testing.T) {
	l := NewIn[int](newTestAllocator())
	defer l.Free()

	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	front, _ := l.Front()
	back, _ := l.Back()
	assert.Equal(t, 0, front)
	assert.Equal(t, 9, back)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, slices.Collect(l.All()))
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, slices.Collect(l.Backward()))

	v, _ := l.PopFront()
	assert.Equal(t, 0, v)
	v, _ = l.PopBack()
	assert.Equal(t, 9, v)
	assert.Equal(t, 8, l.Len())
}

func TestList_SlotReuse(t *testing.T) {
	a := newTestAllocator()
	l := NewIn[int](a)
	defer l.Free()

	for i := 0; i < 4; i++ {
		l.PushBack(i)
	}
	assert.Equal(t, 4, l.nodes.Cap())

	_, _ = l.PopFront()
	_, _ = l.PopFront()
	assert.Equal(t, uint64(2), l.free.GetCardinality())

	l.PushBack(10)
	l.PushFront(11)
	assert.True(t, l.free.IsEmpty())
	assert.Equal(t, 4, l.nodes.Cap(), "vacant slots are reused before growing")
	assert.Equal(t, []int{11, 2, 3, 10}, slices.Collect(l.All()))

	l.PushBack(12)
	assert.Equal(t, 8, l.nodes.Cap())
	assert.Equal(t, int64(1), a.Stats().LiveAllocs, "one arena buffer")
}

func TestList_ArenaGrowth(t *testing.T) {
	a := newTestAllocator()
	l := NewIn[int](a)

	require.NotPanics(t, func() {
		for i := 0; i < 33; i++ {
			l.PushBack(i)
		}
	})
	assert.Equal(t, 64, l.nodes.Cap(), "arena doubles from 4")
	assert.Equal(t, 33, l.Len())

	l.Free()
	assert.Equal(t, 0, l.nodes.Cap())

	require.NotPanics(t, func() { l.PushFront(1) })
	assert.Equal(t, minArenaSize, l.nodes.Cap(), "freed list regrows")
	l.Free()
	assert.NoError(t, a.CheckLeaks(t.Context()))
}

func TestList_FreeDestroysValues(t *testing.T) {
	var drops testutil.DropCounter
	a := newTestAllocator()
	l := NewIn[testutil.Droppable](a)

	for i := 0; i < 5; i++ {
		l.PushBack(drops.New(i))
	}
	v, _ := l.PopFront()
	assert.Equal(t, 0, v.ID)
	assert.Equal(t, int64(0), drops.Count(), "popped values are moved out")

	l.Free()
	assert.Equal(t, int64(4), drops.Count())
	assert.Equal(t, 0, l.Len())
	assert.NoError(t, a.CheckLeaks(t.Context()))

	// Reusable after Free.
	l.PushBack(drops.New(9))
	assert.Equal(t, 1, l.Len())
	l.Free()
}

func TestList_EarlyBreak(t *testing.T) {
	l := NewIn[int](newTestAllocator())
	defer l.Free()
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}

	var got []int
	for v := range l.All() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, got)

	got = got[:0]
	for v := range l.Backward() {
		got = append(got, v)
		break
	}
	assert.Equal(t, []int{4}, got)
}

func TestList_DefaultAllocator(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	assert.Equal(t, "1", l.String())
	l.Free()
}

// TestList_RandomOps checks a random deque workload against a slice model.
func TestList_RandomOps(t *testing.T) {
	rng := testutil.NewRNG(7)
	a := newTestAllocator()
	l := NewIn[int](a)
	var model []int

	for step := 0; step < 3000; step++ {
		switch rng.Intn(4) {
		case 0:
			v := rng.Intn(1000)
			l.PushFront(v)
			model = slices.Insert(model, 0, v)
		case 1:
			v := rng.Intn(1000)
			l.PushBack(v)
			model = append(model, v)
		case 2:
			v, ok := l.PopFront()
			require.Equal(t, len(model) > 0, ok, "step %d", step)
			if ok {
				require.Equal(t, model[0], v, "step %d", step)
				model = model[1:]
			}
		case 3:
			v, ok := l.PopBack()
			require.Equal(t, len(model) > 0, ok, "step %d", step)
			if ok {
				require.Equal(t, model[len(model)-1], v, "step %d", step)
				model = model[:len(model)-1]
			}
		}
		require.Equal(t, len(model), l.Len(), "step %d", step)
	}

	got := slices.Collect(l.All())
	if len(model) == 0 {
		assert.Empty(t, got)
	} else {
		assert.Equal(t, model, got)
	}

	l.Free()
	assert.NoError(t, a.CheckLeaks(t.Context()))
}

func BenchmarkList_PushPop(b *testing.B) {
	l := NewIn[int](alloc.NewAllocator())
	defer l.Free()

	b.ReportAllocs()
	for b.Loop() {
		for i := 0; i < 64; i++ {
			l.PushBack(i)
		}
		for i := 0; i < 64; i++ {
			_, _ = l.PopFront()
		}
	}
}
