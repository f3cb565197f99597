package list

import (
	"slices"
	"testing"

	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/arc"
	"github.com/hupe1980/rawkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedList_PushFrontPopBack(t *testing.T) {
	a := newTestAllocator()
	l := NewSharedIn[int](a)

	l.PushFront(5)
	l.PushFront(10)
	assert.Equal(t, "10 -> 5", l.String())
	assert.Equal(t, int64(2), a.Stats().LiveAllocs)

	v, ok := l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, int64(1), a.Stats().LiveAllocs, "popped node is freed")

	require.Equal(t, 1, l.Len())
	assert.True(t, arc.PtrEqual(l.head, l.tail))
	n := l.head.Get()
	assert.Nil(t, n.next)
	assert.Nil(t, n.prev)
	assert.Equal(t, 10, n.Data)
	assert.Equal(t, 2, l.head.Count(), "head and tail")

	l.Free()
	assert.Nil(t, l.head)
	assert.Nil(t, l.tail)
	assert.NoError(t, a.CheckLeaks(t.Context()))
}

func TestSharedList_RefCounts(t *testing.T) {
	a := newTestAllocator()
	l := NewSharedIn[int](a)
	defer l.Free()

	for i := 0; i < 4; i++ {
		l.PushBack(i)
	}

	// Every node is held by exactly two references.
	for cur := l.head; cur != nil; cur = cur.Get().next {
		assert.Equal(t, 2, cur.Count())
	}
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(l.All()))
	assert.Equal(t, []int{3, 2, 1, 0}, slices.Collect(l.Backward()))

	_, _ = l.PopFront()
	_, _ = l.PopBack()
	for cur := l.head; cur != nil; cur = cur.Get().next {
		assert.Equal(t, 2, cur.Count())
	}
	assert.Equal(t, int64(2), a.Stats().LiveAllocs)
}

func TestSharedList_Empty(t *testing.T) {
	var l SharedList[int]
	_, ok := l.PopFront()
	assert.False(t, ok)
	_, ok = l.PopBack()
	assert.False(t, ok)
	_, ok = l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)

	// The zero value works on the default allocator.
	l.PushBack(1)
	front, _ := l.Front()
	back, _ := l.Back()
	assert.Equal(t, 1, front)
	assert.Equal(t, 1, back)
	l.Free()
}

func TestSharedList_Destructors(t *testing.T) {
	var drops testutil.DropCounter
	a := newTestAllocator()
	l := NewSharedIn[testutil.Droppable](a)

	for i := 0; i < 3; i++ {
		l.PushFront(drops.New(i))
	}
	v, _ := l.PopFront()
	assert.Equal(t, 2, v.ID)
	assert.Equal(t, int64(0), drops.Count(), "popped values are moved out")

	l.Free()
	assert.Equal(t, int64(2), drops.Count())
	assert.NoError(t, a.CheckLeaks(t.Context()))
}

func TestSharedList_ExternalHandleKeepsNodeAlive(t *testing.T) {
	a := newTestAllocator()
	l := NewSharedIn[string](a)
	l.PushBack("a")
	l.PushBack("b")

	pinned := l.head.Clone()
	v, _ := l.PopFront()
	assert.Equal(t, "a", v)

	// The detached node has no links left, only our handle.
	assert.Equal(t, 1, pinned.Count())
	assert.Nil(t, pinned.Get().next)
	assert.Equal(t, int64(2), a.Stats().LiveAllocs)

	pinned.Drop()
	assert.Equal(t, int64(1), a.Stats().LiveAllocs)

	l.Free()
	assert.NoError(t, a.CheckLeaks(t.Context()))
}

// TestSharedList_CycleLeak shows why removal must clear links: two nodes that
// reference each other stay allocated after every outside handle is gone.
func TestSharedList_CycleLeak(t *testing.T) {
	a := newTestAllocator()

	x := arc.NewIn(a, Node[int]{Data: 1})
	y := arc.NewIn(a, Node[int]{Data: 2})
	x.Get().next = y.Clone()
	y.Get().prev = x.Clone()

	// Keep raw access to break the cycle afterwards.
	xn, yn := x.Get(), y.Get()
	x.Drop()
	y.Drop()
	assert.ErrorIs(t, a.CheckLeaks(t.Context()), alloc.ErrLeak)

	// Clearing one link frees both nodes.
	link := xn.next
	xn.next = nil
	link.Drop()
	assert.Nil(t, yn.prev, "y was freed and dropped its back link")
	assert.NoError(t, a.CheckLeaks(t.Context()))
}

func TestSharedList_RandomOps(t *testing.T) {
	rng := testutil.NewRNG(11)
	a := newTestAllocator()
	l := NewSharedIn[int](a)
	var model []int

	for step := 0; step < 2000; step++ {
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
		require.Equal(t, int64(len(model)), a.Stats().LiveAllocs, "step %d: one allocation per node", step)
	}

	l.Free()
	assert.NoError(t, a.CheckLeaks(t.Context()))
}
