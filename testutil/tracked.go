package testutil

import (
	"errors"

	"github.com/hupe1980/rawvec/lifetime"
)

// ErrInjected is returned by injected failures.
var ErrInjected = errors.New("testutil: injected failure")

// Tracked is an element type with an identity. Construction gives a slot a
// fresh ID, assignment changes only Value, destruction clears the slot.
type Tracked struct {
	ID    uint32
	Value int
}

// T returns a value to insert. It has no identity until it is constructed
// into a vector slot.
func T(v int) Tracked {
	return Tracked{Value: v}
}

// TrackedOption configures TrackedOps.
type TrackedOption func(*TrackedOps)

// FailOnConstruct makes the k-th construction (1-based) fail.
func FailOnConstruct(k int) TrackedOption {
	return func(o *TrackedOps) {
		o.failAt = k
	}
}

// FailOnValue makes every construction from value v fail.
func FailOnValue(v int) TrackedOption {
	return func(o *TrackedOps) {
		o.failValue = &v
	}
}

// TrackedOps implements lifetime.Ops for Tracked and records every
// operation in a Ledger.
type TrackedOps struct {
	ledger    *Ledger
	calls     int
	failAt    int
	failValue *int
}

var _ lifetime.Ops[Tracked] = (*TrackedOps)(nil)

// NewTrackedOps creates ops bound to ledger.
func NewTrackedOps(ledger *Ledger, optFns ...TrackedOption) *TrackedOps {
	o := &TrackedOps{ledger: ledger}
	for _, fn := range optFns {
		fn(o)
	}
	return o
}

// Calls returns the number of Construct invocations, failed ones included.
func (o *TrackedOps) Calls() int { return o.calls }

// Disarm removes all injected failures.
func (o *TrackedOps) Disarm() {
	o.failAt = 0
	o.failValue = nil
}

// ArmAfter makes the k-th construction from now on fail.
func (o *TrackedOps) ArmAfter(k int) {
	o.failAt = o.calls + k
}

// Construct implements lifetime.Ops.
func (o *TrackedOps) Construct(dst, src *Tracked) error {
	o.calls++
	if o.failAt > 0 && o.calls == o.failAt {
		return ErrInjected
	}
	if o.failValue != nil && src.Value == *o.failValue {
		return ErrInjected
	}
	o.ledger.constructedOver(dst.ID)
	*dst = Tracked{ID: o.ledger.born(), Value: src.Value}
	return nil
}

// Assign implements lifetime.Ops.
func (o *TrackedOps) Assign(dst, src *Tracked) {
	o.ledger.assigned(dst.ID)
	dst.Value = src.Value
}

// Destroy implements lifetime.Ops.
func (o *TrackedOps) Destroy(p *Tracked) {
	o.ledger.died(p.ID)
	*p = Tracked{}
}

// Values returns the Value of every element of s.
func Values(s []Tracked) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[i].Value
	}
	return out
}

// Seq returns [from, from+1, ..., to).
func Seq(from, to int) []int {
	out := make([]int, 0, max(0, to-from))
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}
