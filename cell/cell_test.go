package cell

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsafeCell(t *testing.T) {
	c := New(10)
	p := c.Get()
	q := c.Get()
	assert.Same(t, p, q)

	*p = 11
	assert.Equal(t, 11, *q)
}

func TestUnsafeCell_ZeroValue(t *testing.T) {
	var c UnsafeCell[atomic.Int64]
	c.Get().Add(3)
	assert.Equal(t, int64(3), c.Get().Load())
}

func TestUnsafeCell_SharedHolder(t *testing.T) {
	type state struct {
		name  string
		count UnsafeCell[int]
	}
	s := &state{name: "x"}

	bump := func(s *state) { *s.count.Get()++ }
	bump(s)
	bump(s)
	assert.Equal(t, 2, *s.count.Get())
}
