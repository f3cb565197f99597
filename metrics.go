package rawkit

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the metrics package).
type MetricsCollector interface {
	// RecordAlloc is called after each successful allocation of size bytes.
	RecordAlloc(size uintptr)

	// RecordFree is called after each free of size bytes.
	RecordFree(size uintptr)

	// RecordAllocFailure is called when an allocation of size bytes cannot be
	// satisfied, just before the allocator aborts.
	RecordAllocFailure(size uintptr)

	// RecordResize is called after each buffer resize attempt.
	// err is nil if the buffer was reallocated.
	RecordResize(oldCap, newCap int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(uintptr)          {}
func (NoopMetricsCollector) RecordFree(uintptr)           {}
func (NoopMetricsCollector) RecordAllocFailure(uintptr)   {}
func (NoopMetricsCollector) RecordResize(int, int, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	AllocCount   atomic.Int64
	AllocBytes   atomic.Int64
	FreeCount    atomic.Int64
	FreeBytes    atomic.Int64
	FailureCount atomic.Int64
	ResizeCount  atomic.Int64
	ResizeErrors atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(size uintptr) {
	b.AllocCount.Add(1)
	b.AllocBytes.Add(int64(size))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(size uintptr) {
	b.FreeCount.Add(1)
	b.FreeBytes.Add(int64(size))
}

// RecordAllocFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocFailure(uintptr) {
	b.FailureCount.Add(1)
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(_, _ int, err error) {
	b.ResizeCount.Add(1)
	if err != nil {
		b.ResizeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:   b.AllocCount.Load(),
		AllocBytes:   b.AllocBytes.Load(),
		FreeCount:    b.FreeCount.Load(),
		FreeBytes:    b.FreeBytes.Load(),
		LiveBytes:    b.AllocBytes.Load() - b.FreeBytes.Load(),
		FailureCount: b.FailureCount.Load(),
		ResizeCount:  b.ResizeCount.Load(),
		ResizeErrors: b.ResizeErrors.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount   int64
	AllocBytes   int64
	FreeCount    int64
	FreeBytes    int64
	LiveBytes    int64
	FailureCount int64
	ResizeCount  int64
	ResizeErrors int64
}
