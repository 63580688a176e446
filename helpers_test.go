package rawvec

import (
	"testing"

	"github.com/hupe1980/rawvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackedFixture struct {
	vec    *Vector[testutil.Tracked]
	ledger *testutil.Ledger
	ops    *testutil.TrackedOps
	alloc  *testutil.FailingAllocator[testutil.Tracked]
}

func newTrackedFixture(t *testing.T, allocOpts ...testutil.FailingOption) *trackedFixture {
	t.Helper()
	ledger := testutil.NewLedger()
	ops := testutil.NewTrackedOps(ledger)
	a := testutil.NewFailingAllocator[testutil.Tracked](nil, allocOpts...)
	vec := New(
		WithOps[testutil.Tracked](ops),
		WithAllocator[testutil.Tracked](a),
	)
	return &trackedFixture{vec: vec, ledger: ledger, ops: ops, alloc: a}
}

// fill pushes the given values one by one.
func (f *trackedFixture) fill(t *testing.T, values ...int) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, f.vec.PushBack(testutil.T(v)))
	}
}

func (f *trackedFixture) values() []int {
	return testutil.Values(f.vec.Data())
}

// check asserts the envelope invariants and that the ledger agrees with
// the live range.
func (f *trackedFixture) check(t *testing.T) {
	t.Helper()
	checkEnvelope(t, f.vec)

	assert.Empty(t, f.ledger.Violations())
	assert.Equal(t, uint64(f.vec.Len()), f.ledger.Live(), "live objects must match Len")

	e := f.vec.env
	for i := 0; i < e.finish; i++ {
		assert.True(t, f.ledger.IsLive(e.start[i].ID), "slot %d must hold a live object", i)
	}
	for i := e.finish; i < len(e.start); i++ {
		assert.Zero(t, e.start[i].ID, "spare slot %d must be unconstructed", i)
	}

	blocks := int64(0)
	if e.start != nil {
		blocks = 1
	}
	assert.Equal(t, blocks, f.alloc.Stats().LiveBlocks, "exactly the current block is held")
}

func checkEnvelope[T any](t *testing.T, vec *Vector[T]) {
	t.Helper()
	e := vec.env
	assert.GreaterOrEqual(t, e.finish, 0)
	assert.LessOrEqual(t, e.finish, len(e.start))
	assert.LessOrEqual(t, vec.Len(), vec.Cap())
	if e.start == nil {
		assert.Zero(t, e.finish)
		assert.Zero(t, vec.Cap())
	}
}
