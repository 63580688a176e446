package rawvec

import (
	"github.com/hupe1980/rawvec/alloc"
	"github.com/hupe1980/rawvec/lifetime"
)

type options[T any] struct {
	allocator alloc.Allocator[T]
	ops       lifetime.Ops[T]
	logger    *Logger
	metrics   MetricsCollector
}

// Option configures a Vector at construction time.
type Option[T any] func(*options[T])

func defaultOptions[T any]() options[T] {
	return options[T]{
		allocator: alloc.Heap[T]{},
		ops:       lifetime.Trivial[T]{},
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
}

// WithAllocator sets the allocator that provides the vector's blocks.
//
// If nil is passed, alloc.Heap is used.
//
// Example with a shared memory budget:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64 << 20})
//	v := rawvec.New(rawvec.WithAllocator[float32](alloc.NewBudgeted[float32](nil, rc)))
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(o *options[T]) {
		if a == nil {
			a = alloc.Heap[T]{}
		}
		o.allocator = a
	}
}

// WithOps sets the lifetime operations used to construct, assign and
// destroy elements.
//
// If nil is passed, lifetime.Trivial is used.
func WithOps[T any](ops lifetime.Ops[T]) Option[T] {
	return func(o *options[T]) {
		if ops == nil {
			ops = lifetime.Trivial[T]{}
		}
		o.ops = ops
	}
}

// WithLogger configures structured logging of growth and rollbacks.
// Pass nil to disable logging.
func WithLogger[T any](l *Logger) Option[T] {
	return func(o *options[T]) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rawvec.BasicMetricsCollector{}
//	v := rawvec.New(rawvec.WithMetricsCollector[int](metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
func WithMetricsCollector[T any](mc MetricsCollector) Option[T] {
	return func(o *options[T]) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
