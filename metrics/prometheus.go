// Package metrics exports allocator metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	pc, err := metrics.NewPrometheusCollector(reg, "myapp")
//	a := alloc.NewAllocator(alloc.WithMetrics(pc))
package metrics

import (
	"github.com/hupe1980/rawkit"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements rawkit.MetricsCollector with Prometheus
// counters and gauges.
type PrometheusCollector struct {
	allocs    prometheus.Counter
	frees     prometheus.Counter
	failures  prometheus.Counter
	liveBytes prometheus.Gauge
	allocSize prometheus.Histogram
	resizes   *prometheus.CounterVec
}

var _ rawkit.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers its metrics on
// reg. namespace prefixes every metric name (e.g. "rawkit").
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) (*PrometheusCollector, error) {
	c := &PrometheusCollector{
		allocs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Total allocations served",
		}),
		frees: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frees_total",
			Help:      "Total allocations released",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocation_failures_total",
			Help:      "Allocations that aborted",
		}),
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_bytes",
			Help:      "Bytes currently allocated",
		}),
		allocSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "allocation_size_bytes",
			Help:      "Size of individual allocations",
			Buckets:   prometheus.ExponentialBuckets(8, 4, 10),
		}),
		resizes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resizes_total",
			Help:      "Buffer resize attempts",
		}, []string{"status"}),
	}

	for _, col := range []prometheus.Collector{c.allocs, c.frees, c.failures, c.liveBytes, c.allocSize, c.resizes} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordAlloc implements rawkit.MetricsCollector.
func (c *PrometheusCollector) RecordAlloc(size uintptr) {
	c.allocs.Inc()
	c.liveBytes.Add(float64(size))
	c.allocSize.Observe(float64(size))
}

// RecordFree implements rawkit.MetricsCollector.
func (c *PrometheusCollector) RecordFree(size uintptr) {
	c.frees.Inc()
	c.liveBytes.Sub(float64(size))
}

// RecordAllocFailure implements rawkit.MetricsCollector.
func (c *PrometheusCollector) RecordAllocFailure(uintptr) {
	c.failures.Inc()
}

// RecordResize implements rawkit.MetricsCollector.
func (c *PrometheusCollector) RecordResize(_, _ int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.resizes.WithLabelValues(status).Inc()
}
