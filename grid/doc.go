// Package grid builds the Polybius square: a side×side matrix holding a random
// permutation of an alphabet, filled row-major and padded with empty cells.
//
// # Construction
//
// New normalizes the alphabet to upper case rune by rune, rejects duplicate
// symbols with errs.ErrInvalidAlphabet, computes side = ceil(sqrt(n)), and
// shuffles the symbols with a uniformly random permutation:
//
//	g, err := grid.New("abcdefghijklmnopqrstuvwxyz")
//	// g.Side() == 6; cells 26..35 are empty
//
// Uniqueness is checked after normalization, so "aA" is rejected.
//
// The shuffle uses the process-wide math/rand/v2 generator unless a source is
// injected:
//
//	grid.New(alphabet, grid.WithSeed(42))              // reproducible
//	grid.New(alphabet, grid.WithPassphrase("hunter2")) // reproducible, seed from xxHash64
//	grid.New(alphabet, grid.WithRand(r))               // caller-owned *rand.Rand
//
// FromPermutation skips the shuffle and lays out the given symbols exactly;
// key files and tests use it to restore a known grid.
//
// # Lookup
//
// A Grid is immutable. Locate maps a symbol to its 0-indexed Coordinate in O(1)
// through an index built alongside the cells; At maps a coordinate back to a
// symbol and reports false for empty or out-of-range cells. All methods are
// safe for concurrent use.
package grid
