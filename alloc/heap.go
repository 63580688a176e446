package alloc

// Heap allocates blocks from the Go heap. The zero value is ready to use.
type Heap[T any] struct{}

// Allocate implements Allocator.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if _, err := checkSize[T](n); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Release implements Allocator. The garbage collector reclaims the block.
func (Heap[T]) Release([]T) {}
