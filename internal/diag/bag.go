package diag

// Bag is an append-only, ordered diagnostic sink. It performs no
// deduplication and no severity gating; filtering is the reporter's job.
// A Bag belongs to a single run and must not be shared across concurrent
// runs without external synchronization.
type Bag struct {
	items []Diagnostic
}

// NewBag creates an empty sink with room for capHint diagnostics.
func NewBag(capHint int) *Bag {
	return &Bag{items: make([]Diagnostic, 0, capHint)}
}

// Add records a diagnostic in arrival order.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Len returns the number of recorded diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the recorded diagnostics in arrival order.
// READONLY: the slice aliases the bag's internal storage.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// HasWarnings reports whether any diagnostic is at warning severity or above.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// HasErrors reports whether any diagnostic is at error severity.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// AtOrAbove counts diagnostics at or above the given severity.
func (b *Bag) AtOrAbove(sev Severity) int {
	count := 0
	for i := range b.items {
		if b.items[i].Severity >= sev {
			count++
		}
	}
	return count
}

// Merge appends all diagnostics from another bag, preserving both orders.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}
