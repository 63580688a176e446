package rawvec

import (
	"github.com/hupe1980/rawvec/alloc"
	"github.com/hupe1980/rawvec/lifetime"
)

// envelope is the storage descriptor of a Vector.
//
//	start[0:finish]          live objects
//	start[finish:len(start)] spare capacity (allocated, not constructed)
//
// A nil start is the empty sentinel: finish is 0 and no block is held.
type envelope[T any] struct {
	start  []T
	finish int
}

func (e *envelope[T]) size() int { return e.finish }

func (e *envelope[T]) capacity() int { return len(e.start) }

func (e *envelope[T]) spare() int { return len(e.start) - e.finish }

func (e *envelope[T]) live() []T { return e.start[:e.finish] }

// relocation builds a new envelope in a freshly allocated block.
//
// Construction progress is tracked in built; until commit is called,
// rollback destroys start[:built] and releases the block. The source
// envelope is only read.
type relocation[T any] struct {
	allocator alloc.Allocator[T]
	ops       lifetime.Ops[T]
	start     []T
	built     int
	committed bool
}

func newRelocation[T any](a alloc.Allocator[T], ops lifetime.Ops[T], newCap int) (*relocation[T], error) {
	buf, err := a.Allocate(newCap)
	if err != nil {
		return nil, allocationError(newCap, err)
	}
	return &relocation[T]{
		allocator: a,
		ops:       ops,
		start:     buf,
	}, nil
}

// copyFrom copy-constructs src into the next free slots.
func (r *relocation[T]) copyFrom(src []T) error {
	n, err := lifetime.CopyConstructRange(r.ops, src, r.start[r.built:])
	r.built += n
	if err != nil {
		return elementError(OpCopyConstruct, r.built, err)
	}
	return nil
}

// fill constructs n copies of *v into the next free slots.
func (r *relocation[T]) fill(n int, v *T) error {
	if n == 0 {
		return nil
	}
	built, err := lifetime.FillConstructN(r.ops, r.start[r.built:r.built+n], v)
	r.built += built
	if err != nil {
		return elementError(OpConstruct, r.built, err)
	}
	return nil
}

// splice builds src[:pos] + n copies of *v + src[pos:].
func (r *relocation[T]) splice(src []T, pos, n int, v *T) error {
	if err := r.copyFrom(src[:pos]); err != nil {
		return err
	}
	if err := r.fill(n, v); err != nil {
		return err
	}
	return r.copyFrom(src[pos:])
}

// rollback unwinds an uncommitted relocation and returns the number of
// objects it destroyed. It is a no-op after commit.
func (r *relocation[T]) rollback() int {
	if r.committed || r.start == nil {
		return 0
	}
	destroyed := r.built
	lifetime.DestroyRange(r.ops, r.start[:r.built])
	r.allocator.Release(r.start)
	r.start = nil
	r.built = 0
	return destroyed
}

func (r *relocation[T]) commit() envelope[T] {
	r.committed = true
	return envelope[T]{start: r.start, finish: r.built}
}
