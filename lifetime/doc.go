// Package lifetime provides the object lifetime primitives used by rawvec:
// construct an object into an uninitialized slot, assign into a live slot,
// and destroy a live object, each for a single slot or a range.
//
// Construction is the only fallible operation. Range constructors report
// how many slots they constructed before a failure; those slots are live
// and belong to the caller, which is responsible for destroying them.
package lifetime
