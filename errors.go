package rawvec

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocationFailure is returned when the allocator cannot provide a block.
	// The vector is unchanged.
	ErrAllocationFailure = errors.New("rawvec: allocation failure")

	// ErrElementOperation is matched by every ElementOperationError.
	ErrElementOperation = errors.New("rawvec: element operation failure")
)

// Element operations reported by ElementOperationError.
const (
	OpConstruct     = "construct"
	OpCopyConstruct = "copy-construct"
)

// ElementOperationError reports a failed element construction.
//
// The original underlying error can be accessed via errors.Unwrap.
type ElementOperationError struct {
	Op    string
	Index int // slot of the block being built when the failure happened
	cause error
}

func (e *ElementOperationError) Error() string {
	return fmt.Sprintf("rawvec: %s failed at slot %d: %v", e.Op, e.Index, e.cause)
}

func (e *ElementOperationError) Unwrap() error { return e.cause }

// Is reports whether target is ErrElementOperation.
func (e *ElementOperationError) Is(target error) bool {
	return target == ErrElementOperation
}

func elementError(op string, index int, err error) error {
	return &ElementOperationError{Op: op, Index: index, cause: err}
}

func allocationError(slots int, err error) error {
	return fmt.Errorf("%w: %d slots: %w", ErrAllocationFailure, slots, err)
}
