package rawvec

import (
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/rawvec/alloc"
	"github.com/hupe1980/rawvec/lifetime"
)

// PushBack appends v. Amortized O(1).
func (vec *Vector[T]) PushBack(v T) error {
	vec.lazyInit()
	err := vec.insertAux(vec.env.finish, &v)
	vec.metrics.RecordInsert(1, err)
	return err
}

// Insert inserts v before position pos and returns pos. pos may equal Len().
// On error the vector is unchanged.
func (vec *Vector[T]) Insert(pos int, v T) (int, error) {
	vec.lazyInit()
	vec.checkPosition(pos)
	err := vec.insertAux(pos, &v)
	vec.metrics.RecordInsert(1, err)
	return pos, err
}

// InsertN inserts n copies of v before position pos. n == 0 is a no-op.
// On error the vector is unchanged.
func (vec *Vector[T]) InsertN(pos, n int, v T) error {
	vec.lazyInit()
	vec.checkPosition(pos)
	if n < 0 {
		panic(fmt.Sprintf("rawvec: negative count %d", n))
	}
	if n == 0 {
		return nil
	}
	err := vec.insertFill(pos, n, &v)
	vec.metrics.RecordInsert(n, err)
	return err
}

// Reserve grows the capacity to exactly n if n exceeds Cap().
// On error the vector is unchanged.
func (vec *Vector[T]) Reserve(n int) error {
	vec.lazyInit()
	if n <= vec.env.capacity() {
		return nil
	}
	return vec.relocate(n, vec.env.finish, 0, nil)
}

func (vec *Vector[T]) checkPosition(pos int) {
	if pos < 0 || pos > vec.env.finish {
		panic(fmt.Sprintf("rawvec: position %d out of range [0:%d]", pos, vec.env.finish))
	}
}

// insertAux inserts one element, growing to max(1, 2*Cap()) when full.
func (vec *Vector[T]) insertAux(pos int, v *T) error {
	e := &vec.env
	if e.finish == e.capacity() {
		oldCap := e.capacity()
		if oldCap > math.MaxInt/2 {
			return allocationError(oldCap, alloc.ErrTooLarge)
		}
		return vec.relocate(max(1, 2*oldCap), pos, 1, v)
	}

	if pos == e.finish {
		if err := lifetime.ConstructAt(vec.ops, &e.start[e.finish], v); err != nil {
			return elementError(OpConstruct, e.finish, err)
		}
		e.finish++
		vec.bumpGen()
		return nil
	}

	// Seed the new last slot from the current last element so the live
	// range never has a gap, then shift and assign.
	valueCopy := *v
	last := e.finish - 1
	if err := lifetime.ConstructAt(vec.ops, &e.start[e.finish], &e.start[last]); err != nil {
		return elementError(OpCopyConstruct, e.finish, err)
	}
	e.finish++
	lifetime.CopyBackward(vec.ops, e.start[:last+1], e.start[pos:last])
	vec.ops.Assign(&e.start[pos], &valueCopy)
	vec.bumpGen()
	return nil
}

// insertFill inserts n > 0 copies of *v, growing to Len() + max(Len(), n)
// when spare capacity is short.
func (vec *Vector[T]) insertFill(pos, n int, v *T) error {
	e := &vec.env
	if e.spare() < n {
		oldSize := e.size()
		growBy := max(oldSize, n)
		if growBy > math.MaxInt-oldSize {
			return allocationError(growBy, alloc.ErrTooLarge)
		}
		return vec.relocate(oldSize+growBy, pos, n, v)
	}

	valueCopy := *v
	elemsAfter := e.finish - pos
	oldFinish := e.finish

	if elemsAfter > n {
		// The last n live elements move into spare slots by construction.
		built, err := lifetime.CopyConstructRange(vec.ops, e.start[oldFinish-n:oldFinish], e.start[oldFinish:])
		if err != nil {
			lifetime.DestroyRange(vec.ops, e.start[oldFinish:oldFinish+built])
			return elementError(OpCopyConstruct, oldFinish+built, err)
		}
		e.finish += n
		// The rest of the tail moves into live slots by assignment.
		lifetime.CopyBackward(vec.ops, e.start[:oldFinish], e.start[pos:oldFinish-n])
		lifetime.Fill(vec.ops, e.start[pos:pos+n], &valueCopy)
		vec.bumpGen()
		return nil
	}

	// The copies that land past the old end are constructed.
	fillEnd := oldFinish + n - elemsAfter
	built, err := lifetime.FillConstructN(vec.ops, e.start[oldFinish:fillEnd], &valueCopy)
	if err != nil {
		lifetime.DestroyRange(vec.ops, e.start[oldFinish:oldFinish+built])
		return elementError(OpConstruct, oldFinish+built, err)
	}
	e.finish = fillEnd

	// The whole tail moves past them by construction.
	built, err = lifetime.CopyConstructRange(vec.ops, e.start[pos:oldFinish], e.start[fillEnd:])
	if err != nil {
		lifetime.DestroyRange(vec.ops, e.start[oldFinish:fillEnd+built])
		e.finish = oldFinish
		return elementError(OpCopyConstruct, fillEnd+built, err)
	}
	e.finish += elemsAfter

	// The old tail slots are live and receive the value by assignment.
	lifetime.Fill(vec.ops, e.start[pos:oldFinish], &valueCopy)
	vec.bumpGen()
	return nil
}

// relocate builds live[:pos] + n copies of *v + live[pos:] in a new block
// of newCap slots and adopts it. On any failure the new block is unwound
// and the vector is left untouched.
func (vec *Vector[T]) relocate(newCap, pos, n int, v *T) error {
	began := time.Now()
	oldCap := vec.env.capacity()
	size := vec.env.size()

	r, err := newRelocation(vec.allocator, vec.ops, newCap)
	if err != nil {
		vec.observeGrow(oldCap, newCap, size, began, err)
		return err
	}
	defer r.rollback()

	if err := r.splice(vec.env.live(), pos, n, v); err != nil {
		vec.logger.LogRollback(newCap, r.built, err)
		vec.metrics.RecordRollback(r.built)
		vec.observeGrow(oldCap, newCap, size, began, err)
		return err
	}

	vec.adopt(r.commit())
	vec.observeGrow(oldCap, newCap, size, began, nil)
	return nil
}

func (vec *Vector[T]) observeGrow(oldCap, newCap, size int, began time.Time, err error) {
	vec.logger.LogGrow(oldCap, newCap, size, err)
	vec.metrics.RecordGrow(oldCap, newCap, time.Since(began), err)
}
