package alloc

import "sync/atomic"

// Stats is a snapshot of a Counting allocator.
type Stats struct {
	Allocs       int64 // Historical: blocks handed out
	Releases     int64 // Historical: blocks returned
	Failures     int64 // Historical: failed Allocate calls
	LiveBlocks   int64 // Current: blocks not yet returned
	LiveSlots    int64 // Current: slots in blocks not yet returned
	PeakSlots    int64 // Historical: maximum of LiveSlots
	SlotsAlloced int64 // Historical: total slots handed out
}

// Counting wraps an allocator and counts the blocks passing through it.
type Counting[T any] struct {
	inner Allocator[T]

	allocs       atomic.Int64
	releases     atomic.Int64
	failures     atomic.Int64
	liveSlots    atomic.Int64
	peakSlots    atomic.Int64
	slotsAlloced atomic.Int64
}

// NewCounting wraps inner. A nil inner allocator defaults to Heap.
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Counting[T]{inner: inner}
}

// Allocate implements Allocator.
func (a *Counting[T]) Allocate(n int) ([]T, error) {
	buf, err := a.inner.Allocate(n)
	if err != nil {
		a.failures.Add(1)
		return nil, err
	}
	a.allocs.Add(1)
	a.slotsAlloced.Add(int64(n))
	live := a.liveSlots.Add(int64(n))
	for {
		peak := a.peakSlots.Load()
		if live <= peak || a.peakSlots.CompareAndSwap(peak, live) {
			break
		}
	}
	return buf, nil
}

// Release implements Allocator.
func (a *Counting[T]) Release(buf []T) {
	a.releases.Add(1)
	a.liveSlots.Add(-int64(len(buf)))
	a.inner.Release(buf)
}

// Stats returns the current counters.
func (a *Counting[T]) Stats() Stats {
	allocs := a.allocs.Load()
	releases := a.releases.Load()
	return Stats{
		Allocs:       allocs,
		Releases:     releases,
		Failures:     a.failures.Load(),
		LiveBlocks:   allocs - releases,
		LiveSlots:    a.liveSlots.Load(),
		PeakSlots:    a.peakSlots.Load(),
		SlotsAlloced: a.slotsAlloced.Load(),
	}
}
