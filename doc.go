// Package rawvec provides Vector, a growable contiguous sequence container
// that manages object lifetime separately from buffer lifetime.
//
// A Vector owns one block obtained from a pluggable alloc.Allocator. Only
// the prefix [0, Len()) holds live objects; the rest of the block is spare
// capacity that has been allocated but not constructed. Objects enter and
// leave the live range exclusively through lifetime.Ops, so element types
// whose copies can fail (deep copies, reference counts, budgeted handles)
// are supported.
//
// # Quick Start
//
//	v := rawvec.New[int]()
//	defer v.Free()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(3)
//	_, _ = v.Insert(1, 2)      // [1 2 3]
//	_ = v.InsertN(0, 2, 0)     // [0 0 1 2 3]
//	v.EraseRange(0, 2)         // [1 2 3]
//
// # Growth
//
// Single-element insertion doubles the capacity (1 from empty). Bulk
// insertion of n elements grows to Len() + max(Len(), n). Total construction
// work across N push-backs is O(N).
//
// # Commit or Rollback
//
// Every insertion either succeeds completely or leaves the vector exactly as
// it was. When growth relocates elements into a new block and a copy fails
// part way, the objects already built in the new block are destroyed, the
// block is released and the error is returned; the old block is not touched
// until the new one is complete.
//
//	err := v.PushBack(x)
//	switch {
//	case errors.Is(err, rawvec.ErrAllocationFailure):
//	    // allocator refused the block
//	case errors.Is(err, rawvec.ErrElementOperation):
//	    // an element copy failed; v is unchanged
//	}
//
// # Positions and Invalidation
//
// Positions are plain indexes. Growth invalidates every previously obtained
// index view, Ref pointer and Data slice; insertion and erasure invalidate
// positions at or after the mutation point. Cursor is a checked alternative:
// it carries the generation it was taken at and Deref refuses stale cursors.
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Callers must serialize all access
// externally, including reads that overlap a mutation.
package rawvec
