// Package testutil provides testing utilities for rawvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides an instrumented element type whose every construction,
// assignment and destruction is checked against a ledger of live objects,
// failure injection for element copies and allocations, and a seeded RNG
// for randomized operation sequences.
//
// # Lifetime Ledger
//
//	ledger := testutil.NewLedger()
//	ops := testutil.NewTrackedOps(ledger, testutil.FailOnConstruct(3))
//	v := rawvec.New(rawvec.WithOps[testutil.Tracked](ops))
//	...
//	assert.Equal(t, uint64(v.Len()), ledger.Live())   // nothing leaked
//	assert.Empty(t, ledger.Violations())               // no double destroy
//
// # Failure Injection
//
//	a := testutil.NewFailingAllocator[int](nil, testutil.FailOnAllocate(2))
package testutil
