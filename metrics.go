package rawvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting container metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
// One collector may be shared by many vectors, so implementations must be
// safe for concurrent use.
type MetricsCollector interface {
	// RecordGrow is called after every attempt to replace the buffer.
	// err is nil if the new buffer was adopted.
	RecordGrow(oldCap, newCap int, duration time.Duration, err error)

	// RecordRollback is called when a relocation is abandoned.
	// destroyed is the number of objects unwound in the new buffer.
	RecordRollback(destroyed int)

	// RecordInsert is called after every insertion with the number of
	// elements requested.
	RecordInsert(n int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRollback(int)                       {}
func (NoopMetricsCollector) RecordInsert(int, error)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount      atomic.Int64
	GrowErrors     atomic.Int64
	GrowTotalNanos atomic.Int64
	SlotsAllocated atomic.Int64
	RollbackCount  atomic.Int64
	Destroyed      atomic.Int64
	InsertCount    atomic.Int64
	InsertedItems  atomic.Int64
	InsertErrors   atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap int, duration time.Duration, err error) {
	b.GrowCount.Add(1)
	b.GrowTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GrowErrors.Add(1)
		return
	}
	b.SlotsAllocated.Add(int64(newCap))
}

// RecordRollback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRollback(destroyed int) {
	b.RollbackCount.Add(1)
	b.Destroyed.Add(int64(destroyed))
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(n int, err error) {
	b.InsertCount.Add(1)
	if err != nil {
		b.InsertErrors.Add(1)
		return
	}
	b.InsertedItems.Add(int64(n))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:      b.GrowCount.Load(),
		GrowErrors:     b.GrowErrors.Load(),
		GrowAvgNanos:   b.getAvgGrowNanos(),
		SlotsAllocated: b.SlotsAllocated.Load(),
		RollbackCount:  b.RollbackCount.Load(),
		Destroyed:      b.Destroyed.Load(),
		InsertCount:    b.InsertCount.Load(),
		InsertedItems:  b.InsertedItems.Load(),
		InsertErrors:   b.InsertErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgGrowNanos() int64 {
	count := b.GrowCount.Load()
	if count == 0 {
		return 0
	}
	return b.GrowTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount      int64
	GrowErrors     int64
	GrowAvgNanos   int64
	SlotsAllocated int64
	RollbackCount  int64
	Destroyed      int64
	InsertCount    int64
	InsertedItems  int64
	InsertErrors   int64
}
