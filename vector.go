package rawvec

import (
	"fmt"

	"github.com/hupe1980/rawvec/alloc"
	"github.com/hupe1980/rawvec/lifetime"
)

// Vector is a growable contiguous sequence of T.
//
// The zero value is an empty vector using alloc.Heap and lifetime.Trivial.
// A Vector must not be copied by value once it holds a block; use Clone.
type Vector[T any] struct {
	env       envelope[T]
	allocator alloc.Allocator[T]
	ops       lifetime.Ops[T]
	logger    *Logger
	metrics   MetricsCollector
	gen       uint32
}

// New creates an empty vector. No block is allocated until the first insertion.
func New[T any](optFns ...Option[T]) *Vector[T] {
	opts := defaultOptions[T]()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Vector[T]{
		allocator: opts.allocator,
		ops:       opts.ops,
		logger:    opts.logger,
		metrics:   opts.metrics,
		gen:       1,
	}
}

// NewN creates a vector holding n objects constructed from the zero value.
func NewN[T any](n int, optFns ...Option[T]) (*Vector[T], error) {
	var zero T
	return NewFilled(n, zero, optFns...)
}

// NewFilled creates a vector holding n copies of v, with capacity n.
func NewFilled[T any](n int, v T, optFns ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		panic(fmt.Sprintf("rawvec: negative length %d", n))
	}
	vec := New(optFns...)
	if n == 0 {
		return vec, nil
	}

	r, err := newRelocation(vec.allocator, vec.ops, n)
	if err != nil {
		return nil, err
	}
	defer r.rollback()

	if err := r.fill(n, &v); err != nil {
		return nil, err
	}
	vec.env = r.commit()
	return vec, nil
}

func (vec *Vector[T]) lazyInit() {
	if vec.ops != nil {
		return
	}
	opts := defaultOptions[T]()
	vec.allocator = opts.allocator
	vec.ops = opts.ops
	vec.logger = opts.logger
	vec.metrics = opts.metrics
	if vec.gen == 0 {
		vec.gen = 1
	}
}

// Len returns the number of live elements.
func (vec *Vector[T]) Len() int { return vec.env.size() }

// Cap returns the number of allocated slots.
func (vec *Vector[T]) Cap() int { return vec.env.capacity() }

// Empty reports whether the vector holds no elements.
func (vec *Vector[T]) Empty() bool { return vec.env.finish == 0 }

// At returns the element at index i. Out-of-range indexes panic.
func (vec *Vector[T]) At(i int) T { return vec.env.live()[i] }

// Ref returns a pointer to the element at index i. The pointer is
// invalidated by growth and by insertion or erasure at or before i.
func (vec *Vector[T]) Ref(i int) *T { return &vec.env.live()[i] }

// Set assigns v to the element at index i.
func (vec *Vector[T]) Set(i int, v T) {
	vec.lazyInit()
	vec.ops.Assign(&vec.env.live()[i], &v)
}

// Front returns the first element. It panics on an empty vector.
func (vec *Vector[T]) Front() T { return vec.env.live()[0] }

// Back returns the last element. It panics on an empty vector.
func (vec *Vector[T]) Back() T { return vec.env.live()[vec.env.finish-1] }

// Data returns the live elements as a slice sharing the vector's block.
// The slice is invalidated by the next growth.
func (vec *Vector[T]) Data() []T {
	if vec.env.start == nil {
		return nil
	}
	return vec.env.live()
}

// Generation returns a counter that changes whenever positions may have
// been invalidated.
func (vec *Vector[T]) Generation() uint32 { return vec.gen }

// bumpGen advances the generation, skipping 0 so no Cursor taken later is
// mistaken for the zero Cursor.
func (vec *Vector[T]) bumpGen() {
	if vec.gen++; vec.gen == 0 {
		vec.gen = 1
	}
}

// Free destroys all elements and releases the block. The vector is empty
// afterwards and may be reused.
func (vec *Vector[T]) Free() {
	vec.lazyInit()
	vec.adopt(envelope[T]{})
}

// adopt replaces the envelope: the old live objects are destroyed and the
// old block released before next becomes visible.
func (vec *Vector[T]) adopt(next envelope[T]) {
	old := vec.env
	lifetime.DestroyRange(vec.ops, old.live())
	if old.start != nil {
		vec.allocator.Release(old.start)
	}
	vec.env = next
	vec.bumpGen()
}
