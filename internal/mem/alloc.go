package mem

import (
	"unsafe"

	"github.com/hupe1980/rawvec/internal/conv"
)

// Alignment is the byte alignment of every buffer handed out (one cache line).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// AllocAlignedSlice allocates n zeroed elements of T starting on a 64-byte
// boundary. T must not contain Go pointers: the backing array is a []byte and
// is not scanned by the garbage collector.
func AllocAlignedSlice[T any](n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}

	var zero T
	size, err := conv.ByteSize(n, unsafe.Sizeof(zero))
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return make([]T, n), nil
	}

	raw := AllocAligned(size)
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n), nil //nolint:gosec // unsafe is required for memory alignment
}
