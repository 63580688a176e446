package testutil

import (
	"github.com/hupe1980/rawvec/alloc"
)

// FailingOption configures a FailingAllocator.
type FailingOption func(*failingConfig)

type failingConfig struct {
	failAt   int
	maxSlots int
}

// FailOnAllocate makes the k-th Allocate call (1-based) fail.
func FailOnAllocate(k int) FailingOption {
	return func(c *failingConfig) {
		c.failAt = k
	}
}

// FailAbove makes every request for more than n slots fail.
func FailAbove(n int) FailingOption {
	return func(c *failingConfig) {
		c.maxSlots = n
	}
}

// FailingAllocator wraps an allocator with injected failures and counts
// blocks in flight.
type FailingAllocator[T any] struct {
	*alloc.Counting[T]
	cfg   failingConfig
	calls int
}

// NewFailingAllocator wraps inner. A nil inner allocator defaults to alloc.Heap.
func NewFailingAllocator[T any](inner alloc.Allocator[T], optFns ...FailingOption) *FailingAllocator[T] {
	a := &FailingAllocator[T]{Counting: alloc.NewCounting(inner)}
	for _, fn := range optFns {
		fn(&a.cfg)
	}
	return a
}

// Allocate implements alloc.Allocator.
func (a *FailingAllocator[T]) Allocate(n int) ([]T, error) {
	a.calls++
	if a.cfg.failAt > 0 && a.calls == a.cfg.failAt {
		return nil, ErrInjected
	}
	if a.cfg.maxSlots > 0 && n > a.cfg.maxSlots {
		return nil, ErrInjected
	}
	return a.Counting.Allocate(n)
}
