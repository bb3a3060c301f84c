package slotgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus. Keyed slot access is deliberately uninstrumented; only
// structural operations are recorded.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter  prometheus.Counter
//	    iterateLatency prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordInsert(duration time.Duration, err error) {
//	    p.insertCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordBuild is called once per registry construction.
	RecordBuild(slots int, duration time.Duration)

	// RecordInsert is called after each dynamic insert or routed store.
	// err carries the typed misuse error when the operation aborted.
	RecordInsert(duration time.Duration, err error)

	// RecordRemove is called after each dynamic remove.
	RecordRemove(duration time.Duration, err error)

	// RecordReset is called after each reset; count is the number of
	// slots restored.
	RecordReset(count int, duration time.Duration)

	// RecordIterate is called when a capability iteration finishes or is
	// abandoned; yielded is the number of handles produced.
	RecordIterate(yielded int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration)    {}
func (NoopMetricsCollector) RecordInsert(time.Duration, error) {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error) {}
func (NoopMetricsCollector) RecordReset(int, time.Duration)    {}
func (NoopMetricsCollector) RecordIterate(int, time.Duration)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildSlots        atomic.Int64
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	RemoveCount       atomic.Int64
	RemoveErrors      atomic.Int64
	ResetCount        atomic.Int64
	ResetSlots        atomic.Int64
	IterateCount      atomic.Int64
	IterateYielded    atomic.Int64
	IterateTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(slots int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildSlots.Add(int64(slots))
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset(count int, duration time.Duration) {
	b.ResetCount.Add(1)
	b.ResetSlots.Add(int64(count))
}

// RecordIterate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIterate(yielded int, duration time.Duration) {
	b.IterateCount.Add(1)
	b.IterateYielded.Add(int64(yielded))
	b.IterateTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:      b.BuildCount.Load(),
		BuildSlots:      b.BuildSlots.Load(),
		InsertCount:     b.InsertCount.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		InsertAvgNanos:  b.getAvgInsertNanos(),
		RemoveCount:     b.RemoveCount.Load(),
		RemoveErrors:    b.RemoveErrors.Load(),
		ResetCount:      b.ResetCount.Load(),
		ResetSlots:      b.ResetSlots.Load(),
		IterateCount:    b.IterateCount.Load(),
		IterateYielded:  b.IterateYielded.Load(),
		IterateAvgNanos: b.getAvgIterateNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgIterateNanos() int64 {
	count := b.IterateCount.Load()
	if count == 0 {
		return 0
	}
	return b.IterateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount      int64
	BuildSlots      int64
	InsertCount     int64
	InsertErrors    int64
	InsertAvgNanos  int64
	RemoveCount     int64
	RemoveErrors    int64
	ResetCount      int64
	ResetSlots      int64
	IterateCount    int64
	IterateYielded  int64
	IterateAvgNanos int64
}
