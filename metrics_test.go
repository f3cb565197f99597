package rawkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector
	m.RecordAlloc(64)
	m.RecordAlloc(16)
	m.RecordFree(16)
	m.RecordAllocFailure(1 << 20)
	m.RecordResize(2, 4, nil)
	m.RecordResize(4, 4, errors.New("same capacity"))

	s := m.GetStats()
	assert.Equal(t, int64(2), s.AllocCount)
	assert.Equal(t, int64(80), s.AllocBytes)
	assert.Equal(t, int64(1), s.FreeCount)
	assert.Equal(t, int64(64), s.LiveBytes)
	assert.Equal(t, int64(1), s.FailureCount)
	assert.Equal(t, int64(2), s.ResizeCount)
	assert.Equal(t, int64(1), s.ResizeErrors)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		m.RecordAlloc(1)
		m.RecordFree(1)
		m.RecordAllocFailure(1)
		m.RecordResize(1, 2, nil)
	})
}
