package rawvec

import (
	"fmt"

	"github.com/hupe1980/rawvec/lifetime"
)

// PopBack destroys the last element. It panics on an empty vector.
func (vec *Vector[T]) PopBack() {
	vec.lazyInit()
	if vec.env.finish == 0 {
		panic("rawvec: PopBack on empty vector")
	}
	vec.env.finish--
	lifetime.DestroyAt(vec.ops, &vec.env.start[vec.env.finish])
	vec.bumpGen()
}

// Erase removes the element at pos and returns pos, which now holds the
// element that followed it (or equals Len()).
func (vec *Vector[T]) Erase(pos int) int {
	vec.lazyInit()
	if pos < 0 || pos >= vec.env.finish {
		panic(fmt.Sprintf("rawvec: position %d out of range [0:%d)", pos, vec.env.finish))
	}
	if pos+1 != vec.env.finish {
		lifetime.Copy(vec.ops, vec.env.start[pos:], vec.env.start[pos+1:vec.env.finish])
	}
	vec.PopBack()
	return pos
}

// EraseRange removes the elements in [first, last) and returns first.
func (vec *Vector[T]) EraseRange(first, last int) int {
	vec.lazyInit()
	if first < 0 || first > last || last > vec.env.finish {
		panic(fmt.Sprintf("rawvec: range [%d:%d] out of range [0:%d]", first, last, vec.env.finish))
	}
	if first == last {
		return first
	}
	e := &vec.env
	newFinish := first + lifetime.Copy(vec.ops, e.start[first:], e.start[last:e.finish])
	lifetime.DestroyRange(vec.ops, e.start[newFinish:e.finish])
	e.finish = newFinish
	vec.bumpGen()
	return first
}

// Clear destroys all elements. The capacity is kept.
func (vec *Vector[T]) Clear() {
	vec.EraseRange(0, vec.env.finish)
}

// Resize changes the length to n. New elements are constructed from the
// zero value.
func (vec *Vector[T]) Resize(n int) error {
	var zero T
	return vec.ResizeWith(n, zero)
}

// ResizeWith changes the length to n, erasing trailing elements or
// appending copies of v. On error the vector is unchanged.
func (vec *Vector[T]) ResizeWith(n int, v T) error {
	if n < 0 {
		panic(fmt.Sprintf("rawvec: negative length %d", n))
	}
	if n < vec.env.finish {
		vec.EraseRange(n, vec.env.finish)
		return nil
	}
	return vec.InsertN(vec.env.finish, n-vec.env.finish, v)
}
