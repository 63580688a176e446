package rawvec

import (
	"testing"

	"github.com/hupe1980/rawvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	f := newTrackedFixture(t)
	f.fill(t, 1, 2, 3)

	clone, err := f.vec.Clone()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, testutil.Values(clone.Data()))
	assert.Equal(t, 3, clone.Cap())
	assert.Equal(t, uint64(6), f.ledger.Live())

	// Deep copy: distinct objects, independent storage.
	for i := range 3 {
		assert.NotEqual(t, f.vec.At(i).ID, clone.At(i).ID)
	}
	clone.Set(0, testutil.T(100))
	assert.Equal(t, 1, f.vec.At(0).Value)

	clone.Free()
	f.check(t)
}

func TestClone_Empty(t *testing.T) {
	f := newTrackedFixture(t)

	clone, err := f.vec.Clone()
	require.NoError(t, err)
	assert.Equal(t, 0, clone.Cap())
	assert.Zero(t, f.alloc.Stats().Allocs)
}

func TestClone_Rollback(t *testing.T) {
	f := newTrackedFixture(t)
	f.fill(t, 1, 2, 3)

	f.ops.ArmAfter(3)
	clone, err := f.vec.Clone()
	assert.Nil(t, clone)
	assertUnchanged(t, f, err, []int{1, 2, 3}, 4)
}

func TestCopyFrom(t *testing.T) {
	f := newTrackedFixture(t)
	f.fill(t, 1, 2)

	src := New(WithOps[testutil.Tracked](f.ops))
	for _, v := range []int{7, 8, 9} {
		require.NoError(t, src.PushBack(testutil.T(v)))
	}
	gen := f.vec.Generation()

	require.NoError(t, f.vec.CopyFrom(src))
	assert.Equal(t, []int{7, 8, 9}, f.values())
	assert.Equal(t, 3, f.vec.Cap())
	assert.NotEqual(t, gen, f.vec.Generation())
	assert.Equal(t, []int{7, 8, 9}, testutil.Values(src.Data()))

	// Self-copy is a no-op.
	require.NoError(t, f.vec.CopyFrom(f.vec))
	assert.Equal(t, []int{7, 8, 9}, f.values())

	src.Free()
	f.check(t)
}

func TestCopyFrom_Rollback(t *testing.T) {
	f := newTrackedFixture(t)
	f.fill(t, 1, 2)

	src := New(WithOps[testutil.Tracked](f.ops))
	for _, v := range []int{7, 8, 9} {
		require.NoError(t, src.PushBack(testutil.T(v)))
	}

	f.ops.ArmAfter(2)
	err := f.vec.CopyFrom(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrElementOperation)
	assert.Equal(t, []int{1, 2}, f.values())
	assert.Equal(t, 2, f.vec.Cap())
	assert.Equal(t, uint64(5), f.ledger.Live())
	assert.Equal(t, int64(1), f.alloc.Stats().LiveBlocks)
	assert.Empty(t, f.ledger.Violations())
}

func TestMoveFrom(t *testing.T) {
	f := newTrackedFixture(t)
	f.fill(t, 1, 2, 3)

	dstLedger := testutil.NewLedger()
	dst := New(WithOps[testutil.Tracked](testutil.NewTrackedOps(dstLedger)))
	require.NoError(t, dst.PushBack(testutil.T(42)))

	constructs := f.ledger.Constructs()
	block := &f.vec.env.start[0]

	dst.MoveFrom(f.vec)

	assert.Equal(t, []int{1, 2, 3}, testutil.Values(dst.Data()))
	assert.Same(t, block, &dst.env.start[0], "the block must be taken over")
	assert.Equal(t, constructs, f.ledger.Constructs(), "moving constructs nothing")
	assert.Zero(t, dstLedger.Live(), "previous contents must be destroyed")

	assert.True(t, f.vec.Empty())
	assert.Equal(t, 0, f.vec.Cap())

	// The moved block is released through its own allocator.
	dst.Free()
	assert.Zero(t, f.ledger.Live())
	assert.Zero(t, f.alloc.Stats().LiveBlocks)
	assert.Empty(t, f.ledger.Violations())
	assert.Empty(t, dstLedger.Violations())

	// The source stays usable.
	f.fill(t, 5)
	f.check(t)
}

func TestSwap(t *testing.T) {
	a := New[int]()
	b := New[int]()
	for i := 0; i < 3; i++ {
		require.NoError(t, a.PushBack(i))
	}
	require.NoError(t, b.Reserve(10))

	genA, genB := a.Generation(), b.Generation()
	a.Swap(b)

	assert.Empty(t, a.Data())
	assert.Equal(t, 10, a.Cap())
	assert.Equal(t, []int{0, 1, 2}, b.Data())
	assert.Equal(t, 4, b.Cap())
	assert.NotEqual(t, genA, a.Generation())
	assert.NotEqual(t, genB, b.Generation())
	checkEnvelope(t, a)
	checkEnvelope(t, b)
}
