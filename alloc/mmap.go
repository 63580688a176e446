package alloc

import (
	"sync"
	"unsafe"

	"github.com/hupe1980/rawvec/internal/mmap"
)

// Mmap allocates blocks from anonymous off-heap mappings, one mapping per
// block. Only pointer-free element types are allowed since the garbage
// collector never scans the mappings. The zero value is ready to use with
// default access advice.
type Mmap[T Scalar] struct {
	mu       sync.Mutex
	mappings map[uintptr]*mmap.Mapping
	advice   mmap.AccessPattern
}

// MmapOption configures an Mmap allocator.
type MmapOption func(*mmapOptions)

type mmapOptions struct {
	advice mmap.AccessPattern
}

// WithSequentialAccess advises the kernel that blocks are scanned front to back.
func WithSequentialAccess() MmapOption {
	return func(o *mmapOptions) {
		o.advice = mmap.AccessSequential
	}
}

// WithRandomAccess advises the kernel that blocks are accessed randomly.
func WithRandomAccess() MmapOption {
	return func(o *mmapOptions) {
		o.advice = mmap.AccessRandom
	}
}

// NewMmap creates an off-heap allocator.
func NewMmap[T Scalar](optFns ...MmapOption) *Mmap[T] {
	opts := mmapOptions{advice: mmap.AccessDefault}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Mmap[T]{
		mappings: make(map[uintptr]*mmap.Mapping),
		advice:   opts.advice,
	}
}

// Allocate implements Allocator.
func (a *Mmap[T]) Allocate(n int) ([]T, error) {
	size, err := checkSize[T](n)
	if err != nil {
		return nil, err
	}

	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, err
	}
	if a.advice != mmap.AccessDefault {
		if err := m.Advise(a.advice); err != nil {
			_ = m.Close()
			return nil, err
		}
	}

	buf := unsafe.Slice((*T)(unsafe.Pointer(&m.Bytes()[0])), n) //nolint:gosec // unsafe is required for off-heap memory

	a.mu.Lock()
	if a.mappings == nil {
		a.mappings = make(map[uintptr]*mmap.Mapping)
	}
	a.mappings[blockKey(buf)] = m
	a.mu.Unlock()

	return buf, nil
}

// Release implements Allocator. Releasing a block this allocator did not
// hand out panics.
func (a *Mmap[T]) Release(buf []T) {
	if len(buf) == 0 {
		panic("alloc: release of empty block")
	}

	a.mu.Lock()
	key := blockKey(buf)
	m, ok := a.mappings[key]
	delete(a.mappings, key)
	a.mu.Unlock()

	if !ok {
		panic("alloc: release of unknown block")
	}
	_ = m.Close()
}

// Outstanding returns the number of blocks not yet released.
func (a *Mmap[T]) Outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.mappings)
}

func blockKey[T any](buf []T) uintptr {
	return uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // address identifies the mapping
}
