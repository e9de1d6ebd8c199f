package diag

import (
	"fmt"

	"fortio.org/safecast"
)

// Bag is an ordered collection of diagnostics. Diagnostics are appended in
// the order phases run (lexer, then parser, then semantic analyzer), which
// is sufficient on its own to produce spec.md section 6's phase-then-line
// ordering without any explicit sort step.
type Bag struct {
	items []Diagnostic
	cap   uint16
}

// NewBag creates a Bag pre-sized to hold up to maximum diagnostics before
// Emit starts refusing further entries.
func NewBag(maximum int) *Bag {
	c, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("diag: bag capacity overflow: %w", err))
	}
	return &Bag{items: make([]Diagnostic, 0, c), cap: c}
}

// Emit appends d to the bag, per spec.md section 4.4's emit operation.
// Emit is a no-op once the bag has reached its capacity, so a pathological
// input cannot make a single compile produce unbounded diagnostics.
func (b *Bag) Emit(d Diagnostic) {
	if b.cap != 0 && len(b.items) >= int(b.cap) {
		return
	}
	b.items = append(b.items, d)
}

// Snapshot returns the diagnostics collected so far, per spec.md section
// 4.4's snapshot operation. The returned slice is owned by the caller.
func (b *Bag) Snapshot() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of diagnostics emitted so far.
func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether any diagnostic has been emitted. SimpleC has no
// severity levels: every Diagnostic here is a fault per spec.md section 7's
// taxonomy, so "has errors" is simply "is non-empty".
func (b *Bag) HasErrors() bool {
	return len(b.items) > 0
}
