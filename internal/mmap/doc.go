// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Overview
//
// Anonymous mappings hand out zero-filled, page-backed memory that lives
// outside the Go heap. The alloc package uses them to back vectors of
// pointer-free element types without adding to GC scan work.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for hints
//   - Windows: VirtualAlloc/VirtualFree (advice is a no-op)
//
// # Safety
//
// The memory is invisible to the garbage collector. Never store Go pointers
// in a mapping. Close is idempotent; the caller must ensure nothing touches
// Bytes() after Close returns.
package mmap
