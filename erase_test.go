package rawvec

import (
	"testing"

	"github.com/hupe1980/rawvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraseRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		want        []int
	}{
		{name: "middle", first: 1, last: 3, want: []int{1, 4, 5}},
		{name: "prefix", first: 0, last: 2, want: []int{3, 4, 5}},
		{name: "suffix", first: 3, last: 5, want: []int{1, 2, 3}},
		{name: "all", first: 0, last: 5, want: []int{}},
		{name: "empty range", first: 2, last: 2, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTrackedFixture(t)
			f.fill(t, 1, 2, 3, 4, 5)
			capBefore := f.vec.Cap()

			got := f.vec.EraseRange(tt.first, tt.last)
			assert.Equal(t, tt.first, got)
			assert.Equal(t, tt.want, f.values())
			assert.Equal(t, capBefore, f.vec.Cap())
			f.check(t)
		})
	}

	vec := New[int]()
	assert.Panics(t, func() { vec.EraseRange(0, 1) })
	assert.Panics(t, func() { vec.EraseRange(-1, 0) })
}

func TestErase(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		f := newTrackedFixture(t)
		f.fill(t, 1, 2, 3)

		assert.Equal(t, 1, f.vec.Erase(1))
		assert.Equal(t, []int{1, 3}, f.values())
		f.check(t)
	})

	t.Run("last of one", func(t *testing.T) {
		f := newTrackedFixture(t)
		f.fill(t, 7)

		assert.Equal(t, 0, f.vec.Erase(0))
		assert.True(t, f.vec.Empty())
		assert.Equal(t, 1, f.vec.Cap())
		f.check(t)
	})

	t.Run("out of range", func(t *testing.T) {
		vec := New[int]()
		require.NoError(t, vec.PushBack(1))
		assert.Panics(t, func() { vec.Erase(1) })
	})
}

func TestPopBack(t *testing.T) {
	f := newTrackedFixture(t)
	f.fill(t, 1, 2)

	f.vec.PopBack()
	assert.Equal(t, []int{1}, f.values())
	f.vec.PopBack()
	assert.True(t, f.vec.Empty())
	f.check(t)

	assert.Panics(t, func() { f.vec.PopBack() })
}

func TestClear(t *testing.T) {
	f := newTrackedFixture(t)
	f.fill(t, 1, 2, 3)
	destroys := f.ledger.Destroys()

	f.vec.Clear()
	assert.True(t, f.vec.Empty())
	assert.Equal(t, 4, f.vec.Cap())
	assert.Equal(t, destroys+3, f.ledger.Destroys())
	f.check(t)
}

func TestResize(t *testing.T) {
	f := newTrackedFixture(t)
	f.fill(t, 1, 2, 3)
	capBefore := f.vec.Cap()
	allocs := f.alloc.Stats().Allocs
	gen := f.vec.Generation()

	require.NoError(t, f.vec.Resize(3))
	assert.Equal(t, []int{1, 2, 3}, f.values())
	assert.Equal(t, capBefore, f.vec.Cap())
	assert.Equal(t, allocs, f.alloc.Stats().Allocs)
	assert.Equal(t, gen, f.vec.Generation())

	require.NoError(t, f.vec.ResizeWith(6, testutil.T(9)))
	assert.Equal(t, []int{1, 2, 3, 9, 9, 9}, f.values())
	f.check(t)

	capGrown := f.vec.Cap()
	require.NoError(t, f.vec.Resize(3))
	assert.Equal(t, []int{1, 2, 3}, f.values())
	assert.Equal(t, capGrown, f.vec.Cap(), "shrinking keeps the block")
	f.check(t)

	require.NoError(t, f.vec.Resize(5))
	assert.Equal(t, []int{1, 2, 3, 0, 0}, f.values())

	require.NoError(t, f.vec.Resize(0))
	assert.True(t, f.vec.Empty())
	f.check(t)

	assert.Panics(t, func() { _ = f.vec.Resize(-1) })
}

func TestResize_Rollback(t *testing.T) {
	f := newTrackedFixture(t)
	f.fill(t, 1, 2, 3)

	f.ops.ArmAfter(2)
	err := f.vec.ResizeWith(10, testutil.T(9))
	assertUnchanged(t, f, err, []int{1, 2, 3}, 4)
}

func TestTrivialOps_ZeroSpare(t *testing.T) {
	vec := New[*int]()
	x := 1
	for i := 0; i < 3; i++ {
		require.NoError(t, vec.PushBack(&x))
	}

	vec.EraseRange(1, 3)
	spare := vec.env.start[vec.Len():vec.Cap()]
	for _, p := range spare {
		assert.Nil(t, p, "destroyed slots must not retain references")
	}
}
