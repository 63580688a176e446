package testutil

import (
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Ledger records which tracked objects are alive.
// Object IDs start at 1; ID 0 marks a slot that holds no object.
type Ledger struct {
	mu         sync.Mutex
	live       *roaring.Bitmap
	nextID     uint32
	constructs int
	assigns    int
	destroys   int
	violations []string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{live: roaring.New()}
}

func (l *Ledger) born() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.constructs++
	l.live.Add(l.nextID)
	return l.nextID
}

func (l *Ledger) died(id uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroys++
	if id == 0 || !l.live.Contains(id) {
		l.violations = append(l.violations, fmt.Sprintf("destroy of dead object %d", id))
		return
	}
	l.live.Remove(id)
}

func (l *Ledger) assigned(id uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.assigns++
	if id == 0 || !l.live.Contains(id) {
		l.violations = append(l.violations, fmt.Sprintf("assignment into dead object %d", id))
	}
}

func (l *Ledger) constructedOver(id uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id != 0 && l.live.Contains(id) {
		l.violations = append(l.violations, fmt.Sprintf("construction over live object %d", id))
	}
}

// Live returns the number of objects alive.
func (l *Ledger) Live() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live.GetCardinality()
}

// IsLive reports whether the object with the given ID is alive.
func (l *Ledger) IsLive(id uint32) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live.Contains(id)
}

// LiveIDs returns the IDs of all live objects in ascending order.
func (l *Ledger) LiveIDs() []uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live.ToArray()
}

// Constructs returns the number of successful constructions.
func (l *Ledger) Constructs() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.constructs
}

// Assigns returns the number of assignments.
func (l *Ledger) Assigns() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.assigns
}

// Destroys returns the number of destructions, including invalid ones.
func (l *Ledger) Destroys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.destroys
}

// Violations returns every lifetime rule broken so far.
func (l *Ledger) Violations() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.violations...)
}
