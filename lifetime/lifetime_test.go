package lifetime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type countingOps struct {
	constructs int
	assigns    int
	destroys   int
	failAt     int // 1-based construct call that fails; 0 never fails
}

func (o *countingOps) Construct(dst, src *int) error {
	o.constructs++
	if o.failAt > 0 && o.constructs == o.failAt {
		return errBoom
	}
	*dst = *src
	return nil
}

func (o *countingOps) Assign(dst, src *int) {
	o.assigns++
	*dst = *src
}

func (o *countingOps) Destroy(p *int) {
	o.destroys++
	*p = -1
}

func TestTrivial(t *testing.T) {
	var ops Ops[string] = Trivial[string]{}

	var s string
	src := "hello"
	require.NoError(t, ops.Construct(&s, &src))
	assert.Equal(t, "hello", s)

	other := "world"
	ops.Assign(&s, &other)
	assert.Equal(t, "world", s)

	ops.Destroy(&s)
	assert.Equal(t, "", s)
}

func TestFuncs(t *testing.T) {
	t.Run("fallback", func(t *testing.T) {
		var ops Ops[int] = Funcs[int]{}
		var x int
		v := 7
		require.NoError(t, ops.Construct(&x, &v))
		assert.Equal(t, 7, x)
		ops.Destroy(&x)
		assert.Equal(t, 0, x)
	})

	t.Run("custom", func(t *testing.T) {
		destroyed := 0
		ops := Funcs[int]{
			ConstructFn: func(dst, src *int) error {
				if *src < 0 {
					return errBoom
				}
				*dst = *src * 10
				return nil
			},
			AssignFn:  func(dst, src *int) { *dst = *src + 1 },
			DestroyFn: func(*int) { destroyed++ },
		}

		var x int
		v := 3
		require.NoError(t, ops.Construct(&x, &v))
		assert.Equal(t, 30, x)

		neg := -1
		assert.ErrorIs(t, ops.Construct(&x, &neg), errBoom)

		ops.Assign(&x, &v)
		assert.Equal(t, 4, x)

		ops.Destroy(&x)
		assert.Equal(t, 1, destroyed)
	})
}

func TestCopyConstructRange(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ops := &countingOps{}
		src := []int{1, 2, 3}
		dst := make([]int, 5)

		n, err := CopyConstructRange[int](ops, src, dst)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []int{1, 2, 3, 0, 0}, dst)
	})

	t.Run("partial failure", func(t *testing.T) {
		ops := &countingOps{failAt: 3}
		src := []int{1, 2, 3, 4}
		dst := make([]int, 4)

		n, err := CopyConstructRange[int](ops, src, dst)
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, 2, n)
		assert.Equal(t, []int{1, 2, 0, 0}, dst)
		// The constructed prefix is not rolled back.
		assert.Equal(t, 0, ops.destroys)
	})
}

func TestFillConstructN(t *testing.T) {
	ops := &countingOps{}
	dst := make([]int, 4)
	v := 9

	n, err := FillConstructN[int](ops, dst, &v)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{9, 9, 9, 9}, dst)

	ops = &countingOps{failAt: 1}
	dst = make([]int, 2)
	n, err = FillConstructN[int](ops, dst, &v)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, n)
}

func TestDestroy(t *testing.T) {
	ops := &countingOps{}
	s := []int{1, 2, 3}

	DestroyAt[int](ops, &s[0])
	assert.Equal(t, []int{-1, 2, 3}, s)

	DestroyRange[int](ops, s[1:])
	assert.Equal(t, []int{-1, -1, -1}, s)
	assert.Equal(t, 3, ops.destroys)
}

func TestCopy_ShiftLeft(t *testing.T) {
	ops := &countingOps{}
	s := []int{1, 2, 3, 4, 5}

	n := Copy[int](ops, s[1:], s[3:])
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 4, 5, 4, 5}, s)
	assert.Equal(t, 2, ops.assigns)
}

func TestCopyBackward_ShiftRight(t *testing.T) {
	ops := &countingOps{}
	s := []int{1, 2, 3, 4, 5, 0}

	// Shift [1,4) one slot to the right, ending at 5.
	CopyBackward[int](ops, s[:5], s[1:4])
	assert.Equal(t, []int{1, 2, 2, 3, 4, 0}, s)
	assert.Equal(t, 3, ops.assigns)
}

func TestFill(t *testing.T) {
	ops := &countingOps{}
	s := []int{1, 2, 3}
	v := 0

	Fill[int](ops, s[:2], &v)
	assert.Equal(t, []int{0, 0, 3}, s)
	assert.Equal(t, 0, ops.constructs)
}
