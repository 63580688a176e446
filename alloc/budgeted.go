package alloc

import (
	"github.com/hupe1980/rawvec/resource"
)

// Budgeted charges every block against the memory limit of a
// resource.Controller before delegating to the wrapped allocator.
// A single Controller may be shared by many vectors.
type Budgeted[T any] struct {
	inner Allocator[T]
	rc    *resource.Controller
}

// NewBudgeted wraps inner with the memory budget of rc.
// A nil inner allocator defaults to Heap.
func NewBudgeted[T any](inner Allocator[T], rc *resource.Controller) *Budgeted[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Budgeted[T]{inner: inner, rc: rc}
}

// Allocate implements Allocator. It fails with resource.ErrMemoryLimitExceeded
// when the block does not fit into the remaining budget.
func (a *Budgeted[T]) Allocate(n int) ([]T, error) {
	size, err := checkSize[T](n)
	if err != nil {
		return nil, err
	}

	if err := a.rc.AcquireMemory(int64(size)); err != nil {
		return nil, err
	}

	buf, err := a.inner.Allocate(n)
	if err != nil {
		a.rc.ReleaseMemory(int64(size))
		return nil, err
	}
	return buf, nil
}

// Release implements Allocator.
func (a *Budgeted[T]) Release(buf []T) {
	size, _ := BlockBytes[T](len(buf)) // the block was sized by Allocate
	a.inner.Release(buf)
	a.rc.ReleaseMemory(int64(size))
}
