package rawvec

import "iter"

// Begin returns the position of the first element.
func (vec *Vector[T]) Begin() int { return 0 }

// End returns the position one past the last element.
func (vec *Vector[T]) End() int { return vec.env.finish }

// All returns an iterator over index/element pairs, front to back.
// Mutating the vector during iteration is not allowed.
func (vec *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := vec.env.live()
		for i := range live {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs, back to front.
func (vec *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := vec.env.live()
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (vec *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vec.env.live() {
			if !yield(v) {
				return
			}
		}
	}
}

// Cursor is a position tagged with the generation it was taken at.
// The zero Cursor is never valid.
type Cursor struct {
	Gen uint32
	Pos int
}

// CursorAt returns a cursor for position pos.
func (vec *Vector[T]) CursorAt(pos int) Cursor {
	vec.lazyInit()
	return Cursor{Gen: vec.gen, Pos: pos}
}

// Valid reports whether c still addresses a live element: no structural
// change has happened since it was taken and its position is in range.
func (vec *Vector[T]) Valid(c Cursor) bool {
	return c.Gen != 0 && c.Gen == vec.gen && c.Pos >= 0 && c.Pos < vec.env.finish
}

// Deref returns the element addressed by c, or false if c is stale.
func (vec *Vector[T]) Deref(c Cursor) (T, bool) {
	if !vec.Valid(c) {
		var zero T
		return zero, false
	}
	return vec.env.start[c.Pos], true
}
