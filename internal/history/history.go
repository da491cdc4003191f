package history

import (
	"errors"

	"github.com/mohamedkhairy/termcalc/internal/calculation"
)

// ErrNilCalculation is returned when appending a nil calculation.
var ErrNilCalculation = errors.New("calculation cannot be nil")

// History is an append-only, insertion-ordered log of the calculations
// performed during a session. It is owned by a single REPL instance and
// never persisted.
type History struct {
	entries []*calculation.Calculation
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Append adds a calculation to the end of the log.
func (h *History) Append(calc *calculation.Calculation) error {
	if calc == nil {
		return ErrNilCalculation
	}
	h.entries = append(h.entries, calc)
	return nil
}

// List returns a copy of the log in insertion order. Mutating the returned
// slice does not affect the history.
func (h *History) List() []*calculation.Calculation {
	out := make([]*calculation.Calculation, len(h.entries))
	copy(out, h.entries)
	return out
}

// Last returns the most recent calculation, or false if the history is empty.
func (h *History) Last() (*calculation.Calculation, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	return h.entries[len(h.entries)-1], true
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// Count returns the number of entries.
func (h *History) Count() int {
	return len(h.entries)
}

// IsEmpty reports whether the history has no entries.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}
