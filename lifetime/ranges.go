package lifetime

// ConstructAt constructs a copy of *v into the uninitialized slot dst.
func ConstructAt[T any](ops Ops[T], dst, v *T) error {
	return ops.Construct(dst, v)
}

// CopyConstructRange constructs dst[i] from src[i] for every i in src.
// dst must be uninitialized, at least len(src) long, and must not overlap src.
// It returns the number of slots constructed; on error the first n slots of
// dst are live and the caller must destroy them.
func CopyConstructRange[T any](ops Ops[T], src, dst []T) (n int, err error) {
	dst = dst[:len(src)]
	for i := range src {
		if err := ops.Construct(&dst[i], &src[i]); err != nil {
			return i, err
		}
	}
	return len(src), nil
}

// FillConstructN constructs a copy of *v into every slot of dst.
// It returns the number of slots constructed; on error the first n slots of
// dst are live and the caller must destroy them.
func FillConstructN[T any](ops Ops[T], dst []T, v *T) (n int, err error) {
	for i := range dst {
		if err := ops.Construct(&dst[i], v); err != nil {
			return i, err
		}
	}
	return len(dst), nil
}

// DestroyAt destroys the live object at p.
func DestroyAt[T any](ops Ops[T], p *T) {
	ops.Destroy(p)
}

// DestroyRange destroys every live object in s.
func DestroyRange[T any](ops Ops[T], s []T) {
	for i := range s {
		ops.Destroy(&s[i])
	}
}

// Copy assigns src into dst front to back and returns the number of slots
// assigned. Both ranges must be live. dst may overlap src as long as it
// starts at or before src.
func Copy[T any](ops Ops[T], dst, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		ops.Assign(&dst[i], &src[i])
	}
	return n
}

// CopyBackward assigns src into the last len(src) slots of dst, back to
// front. Both ranges must be live. dst may overlap src as long as it ends
// at or after the end of src.
func CopyBackward[T any](ops Ops[T], dst, src []T) {
	d := len(dst)
	for i := len(src) - 1; i >= 0; i-- {
		d--
		ops.Assign(&dst[d], &src[i])
	}
}

// Fill assigns *v into every live slot of dst.
func Fill[T any](ops Ops[T], dst []T, v *T) {
	for i := range dst {
		ops.Assign(&dst[i], v)
	}
}
