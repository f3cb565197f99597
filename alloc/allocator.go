package alloc

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/rawkit"
	"github.com/hupe1980/rawkit/internal/conv"
	"github.com/hupe1980/rawkit/internal/resource"
)

// Stats tracks allocator usage.
//
//   - LiveAllocs: allocations not yet freed
//   - LiveBytes: bytes of LiveAllocs
//   - PeakBytes: highest LiveBytes observed
//   - TotalAllocs / TotalFrees: cumulative counts
type Stats struct {
	LiveAllocs  int64
	LiveBytes   int64
	PeakBytes   int64
	TotalAllocs int64
	TotalFrees  int64
}

// Allocator accounts heap allocations made on behalf of rawkit containers.
// It is safe for concurrent use.
type Allocator struct {
	ctrl     *resource.Controller
	limit    int64
	tracking bool
	logger   *rawkit.Logger
	metrics  rawkit.MetricsCollector

	mu   sync.Mutex
	live *roaring64.Bitmap // protected by mu; nil unless tracking

	liveAllocs  atomic.Int64
	totalAllocs atomic.Int64
	totalFrees  atomic.Int64
}

// Option is a configuration option for Allocator.
type Option func(*Allocator)

// WithMemoryLimit caps the bytes that may be live at once.
// Allocations beyond the limit abort. A limit <= 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(a *Allocator) {
		a.limit = bytes
	}
}

// WithTracking records every live address so that double frees and frees of
// foreign pointers are detected.
func WithTracking() Option {
	return func(a *Allocator) {
		a.tracking = true
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *rawkit.Logger) Option {
	return func(a *Allocator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m rawkit.MetricsCollector) Option {
	return func(a *Allocator) {
		if m != nil {
			a.metrics = m
		}
	}
}

// NewAllocator creates an allocator.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{
		logger:  rawkit.NoopLogger(),
		metrics: rawkit.NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(a)
	}

	a.ctrl = resource.NewController(resource.Config{MemoryLimitBytes: a.limit})
	if a.tracking {
		a.live = roaring64.New()
	}
	a.logger = a.logger.WithComponent("alloc")
	return a
}

var defaultAllocator = sync.OnceValue(func() *Allocator {
	return NewAllocator(WithTracking())
})

// Default returns the process-wide allocator. It tracks addresses and has no
// memory limit.
func Default() *Allocator {
	return defaultAllocator()
}

// Stats returns the current allocator statistics.
func (a *Allocator) Stats() Stats {
	return Stats{
		LiveAllocs:  a.liveAllocs.Load(),
		LiveBytes:   a.ctrl.MemoryUsage(),
		PeakBytes:   a.ctrl.PeakUsage(),
		TotalAllocs: a.totalAllocs.Load(),
		TotalFrees:  a.totalFrees.Load(),
	}
}

// Tracking reports whether live addresses are recorded.
func (a *Allocator) Tracking() bool {
	return a.tracking
}

// Logger returns the allocator's logger.
func (a *Allocator) Logger() *rawkit.Logger {
	return a.logger
}

// CheckLeaks returns an error wrapping ErrLeak if any allocation is live.
func (a *Allocator) CheckLeaks(ctx context.Context) error {
	s := a.Stats()
	a.logger.LogLeak(ctx, s.LiveAllocs, s.LiveBytes)
	if s.LiveAllocs != 0 {
		return fmt.Errorf("%w: %d allocations, %d bytes", ErrLeak, s.LiveAllocs, s.LiveBytes)
	}
	return nil
}

// ObserveResize reports a buffer resize attempt to the logger and metrics.
func (a *Allocator) ObserveResize(ctx context.Context, oldCap, newCap, length int, err error) {
	a.logger.LogResize(ctx, oldCap, newCap, length, err)
	a.metrics.RecordResize(oldCap, newCap, err)
}

func (a *Allocator) String() string {
	s := a.Stats()
	return fmt.Sprintf(
		"Allocator{live: %d, live_bytes: %d, peak_bytes: %d, allocs: %d, frees: %d}",
		s.LiveAllocs, s.LiveBytes, s.PeakBytes, s.TotalAllocs, s.TotalFrees,
	)
}

// reserve accounts l or aborts.
func (a *Allocator) reserve(l Layout) {
	size, err := conv.UintptrToInt64(l.Size)
	if err == nil {
		err = a.ctrl.AcquireMemory(size)
	}
	if err != nil {
		a.abort(l, err)
	}
}

func (a *Allocator) abort(l Layout, cause error) {
	a.logger.LogAllocFailure(context.Background(), l.Size, l.Align, cause)
	a.metrics.RecordAllocFailure(l.Size)
	panic(&AllocError{Layout: l, cause: cause})
}

func (a *Allocator) commit(addr unsafe.Pointer, l Layout) {
	if a.tracking && l.Size > 0 {
		a.mu.Lock()
		// An address can only already be present if its previous owner
		// dropped it without Free and the runtime reused it.
		a.live.Add(uint64(uintptr(addr)))
		a.mu.Unlock()
	}
	a.liveAllocs.Add(1)
	a.totalAllocs.Add(1)
	a.metrics.RecordAlloc(l.Size)
}

func (a *Allocator) release(addr unsafe.Pointer, l Layout) {
	if a.tracking && l.Size > 0 {
		a.mu.Lock()
		ok := a.live.CheckedRemove(uint64(uintptr(addr)))
		a.mu.Unlock()
		if !ok {
			a.logger.LogDoubleFree(context.Background(), uintptr(addr), l.Size)
			panic(fmt.Errorf("%w: %#x (%d bytes)", ErrDoubleFree, uintptr(addr), l.Size))
		}
	}

	size, _ := conv.UintptrToInt64(l.Size) // accounted in reserve, cannot overflow here
	a.ctrl.ReleaseMemory(size)
	a.liveAllocs.Add(-1)
	a.totalFrees.Add(1)
	a.metrics.RecordFree(l.Size)
}

// Owns reports whether p is a live tracked allocation. It always reports
// false when tracking is disabled.
func (a *Allocator) Owns(p unsafe.Pointer) bool {
	if !a.tracking || p == nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.live.Contains(uint64(uintptr(p)))
}
