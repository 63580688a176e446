// Package alloc defines the allocator contract consumed by rawvec and ships
// the allocators that satisfy it.
//
// An Allocator hands out blocks of n element slots and takes them back. It
// never constructs or destroys objects: every slot of a fresh block holds the
// zero value and counts as uninitialized until the container constructs into
// it through lifetime.Ops.
//
// # Allocators
//
//   - Heap: plain Go heap slices (any element type)
//   - Aligned: 64-byte aligned heap blocks for Scalar element types
//   - Mmap: off-heap anonymous mappings for Scalar element types
//   - Budgeted: charges every block against a resource.Controller memory limit
//   - Counting: wraps another allocator and counts blocks in flight
//
// # Contract
//
//	buf, err := a.Allocate(n) // len(buf) == n, or err != nil
//	...
//	a.Release(buf)            // exactly once, never with nil
//
// Allocate reports failure through its error; callers translate it into
// rawvec.ErrAllocationFailure.
package alloc
