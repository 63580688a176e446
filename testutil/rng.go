package testutil

import (
	"math/rand"
	"sync"
)

// RNG is a seeded random number generator for reproducible tests.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random numbers in [0, bound).
func (r *RNG) Ints(n, bound int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(bound)
	}
	return out
}

// Float32s returns n pseudo-random numbers in [0.0, 1.0).
func (r *RNG) Float32s(n int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float32, n)
	for i := range out {
		out[i] = r.rand.Float32()
	}
	return out
}
