package lifetime

// Ops performs lifetime operations on element slots.
type Ops[T any] interface {
	// Construct copy-constructs *src into the uninitialized slot dst.
	// On error dst is not live.
	Construct(dst, src *T) error
	// Assign copy-assigns *src into the live slot dst.
	Assign(dst, src *T)
	// Destroy ends the lifetime of the live object at p.
	Destroy(p *T)
}

// Trivial treats T as plain data: construction and assignment copy the
// value, destruction zeroes the slot so the garbage collector can reclaim
// anything it referenced.
type Trivial[T any] struct{}

// Construct implements Ops.
func (Trivial[T]) Construct(dst, src *T) error {
	*dst = *src
	return nil
}

// Assign implements Ops.
func (Trivial[T]) Assign(dst, src *T) {
	*dst = *src
}

// Destroy implements Ops.
func (Trivial[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Funcs adapts plain functions to Ops. Nil fields fall back to Trivial.
type Funcs[T any] struct {
	ConstructFn func(dst, src *T) error
	AssignFn    func(dst, src *T)
	DestroyFn   func(p *T)
}

// Construct implements Ops.
func (f Funcs[T]) Construct(dst, src *T) error {
	if f.ConstructFn == nil {
		return Trivial[T]{}.Construct(dst, src)
	}
	return f.ConstructFn(dst, src)
}

// Assign implements Ops.
func (f Funcs[T]) Assign(dst, src *T) {
	if f.AssignFn == nil {
		Trivial[T]{}.Assign(dst, src)
		return
	}
	f.AssignFn(dst, src)
}

// Destroy implements Ops.
func (f Funcs[T]) Destroy(p *T) {
	if f.DestroyFn == nil {
		Trivial[T]{}.Destroy(p)
		return
	}
	f.DestroyFn(p)
}
