// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte (cache line) aligned heap allocation for pointer-free
// element buffers.
package mem
