package rawvec

// Clone returns a deep copy holding copies of all live elements, with
// capacity equal to Len(). The clone shares the allocator, lifetime ops,
// logger and metrics collector of vec. On error vec is unchanged and no
// clone is returned.
func (vec *Vector[T]) Clone() (*Vector[T], error) {
	vec.lazyInit()
	clone := &Vector[T]{
		allocator: vec.allocator,
		ops:       vec.ops,
		logger:    vec.logger,
		metrics:   vec.metrics,
		gen:       1,
	}
	env, err := clone.copyOf(vec.env.live())
	if err != nil {
		return nil, err
	}
	clone.env = env
	return clone, nil
}

// CopyFrom replaces the contents of vec with copies of the elements of src,
// using vec's allocator. On error vec is unchanged.
func (vec *Vector[T]) CopyFrom(src *Vector[T]) error {
	vec.lazyInit()
	if src == vec {
		return nil
	}
	env, err := vec.copyOf(src.env.live())
	if err != nil {
		return err
	}
	vec.adopt(env)
	return nil
}

// MoveFrom destroys the contents of vec and takes over the block of src in
// O(1). The allocator and lifetime ops travel with the block. src is left
// empty and usable.
func (vec *Vector[T]) MoveFrom(src *Vector[T]) {
	vec.lazyInit()
	if src == vec {
		return
	}
	src.lazyInit()
	vec.adopt(src.env)
	vec.allocator = src.allocator
	vec.ops = src.ops
	src.env = envelope[T]{}
	src.bumpGen()
}

// Swap exchanges the contents of vec and other in O(1).
func (vec *Vector[T]) Swap(other *Vector[T]) {
	vec.lazyInit()
	other.lazyInit()
	vec.env, other.env = other.env, vec.env
	vec.allocator, other.allocator = other.allocator, vec.allocator
	vec.ops, other.ops = other.ops, vec.ops
	vec.bumpGen()
	other.bumpGen()
}

// copyOf builds an exact-fit envelope holding copies of src.
func (vec *Vector[T]) copyOf(src []T) (envelope[T], error) {
	if len(src) == 0 {
		return envelope[T]{}, nil
	}
	r, err := newRelocation(vec.allocator, vec.ops, len(src))
	if err != nil {
		return envelope[T]{}, err
	}
	defer r.rollback()

	if err := r.copyFrom(src); err != nil {
		vec.logger.LogRollback(len(src), r.built, err)
		vec.metrics.RecordRollback(r.built)
		return envelope[T]{}, err
	}
	return r.commit(), nil
}
