package alloc

import (
	"github.com/hupe1980/rawvec/internal/mem"
)

// Aligned allocates cache-line aligned heap blocks for pointer-free element
// types. The zero value is ready to use.
type Aligned[T Scalar] struct{}

// Allocate implements Allocator.
func (Aligned[T]) Allocate(n int) ([]T, error) {
	if _, err := checkSize[T](n); err != nil {
		return nil, err
	}
	return mem.AllocAlignedSlice[T](n)
}

// Release implements Allocator.
func (Aligned[T]) Release([]T) {}
