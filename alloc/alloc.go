package alloc

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/rawvec/internal/conv"
)

var (
	// ErrInvalidSize is returned when a block of zero or negative slots is requested.
	ErrInvalidSize = errors.New("alloc: invalid block size")
	// ErrTooLarge is returned when the byte size of a block cannot be represented.
	ErrTooLarge = errors.New("alloc: block too large")
)

// Allocator acquires and releases raw blocks of element slots.
type Allocator[T any] interface {
	// Allocate returns a block with len == n. All slots hold the zero value.
	Allocate(n int) ([]T, error)
	// Release returns a block obtained from Allocate. It must be called
	// exactly once per block and never with nil.
	Release(buf []T)
}

// Scalar is the set of pointer-free element types that may live in memory
// the garbage collector does not scan.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// maxBlockBytes bounds a single block below the runtime's allocation limit so
// oversized requests fail with an error instead of a runtime panic.
const maxBlockBytes uint64 = 1 << 47

// BlockBytes returns the number of bytes occupied by n slots of T.
func BlockBytes[T any](n int) (int, error) {
	var zero T
	size, err := conv.ByteSize(n, unsafe.Sizeof(zero))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}
	if uint64(size) > maxBlockBytes {
		return 0, fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
	return size, nil
}

func checkSize[T any](n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return BlockBytes[T](n)
}
