package collision

import (
	"fmt"

	"github.com/arloliu/polybius/errs"
)

// Tracker records alphabet symbols in order and rejects repeats.
// It maps each symbol to the position where it was first seen so duplicate
// errors can name both occurrences.
type Tracker struct {
	positions map[rune]int // symbol → first position
	symbols   []rune       // symbols in insertion order
}

// NewTracker creates a tracker sized for n symbols.
func NewTracker(n int) *Tracker {
	return &Tracker{
		positions: make(map[rune]int, n),
		symbols:   make([]rune, 0, n),
	}
}

// Track adds symbol r seen at position pos.
// It returns an error wrapping errs.ErrInvalidAlphabet if r was already tracked.
func (t *Tracker) Track(r rune, pos int) error {
	if first, exists := t.positions[r]; exists {
		return fmt.Errorf("%w: %q at positions %d and %d", errs.ErrInvalidAlphabet, r, first, pos)
	}

	t.positions[r] = pos
	t.symbols = append(t.symbols, r)

	return nil
}

// TrackAll tracks every rune of symbols in order and stops at the first duplicate.
func (t *Tracker) TrackAll(symbols []rune) error {
	for i, r := range symbols {
		if err := t.Track(r, i); err != nil {
			return err
		}
	}

	return nil
}

// Contains reports whether r has been tracked.
func (t *Tracker) Contains(r rune) bool {
	_, ok := t.positions[r]
	return ok
}

// Symbols returns the tracked symbols in insertion order.
func (t *Tracker) Symbols() []rune {
	return t.symbols
}

// Count returns the number of tracked symbols.
func (t *Tracker) Count() int {
	return len(t.symbols)
}

// Reset clears all tracked symbols, keeping allocated capacity.
func (t *Tracker) Reset() {
	for k := range t.positions {
		delete(t.positions, k)
	}
	t.symbols = t.symbols[:0]
}
