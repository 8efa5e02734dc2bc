package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/arloliu/polybius/internal/collision"
	"github.com/arloliu/polybius/internal/hash"
	"github.com/arloliu/polybius/internal/options"
)

// Coordinate addresses a cell, 0-indexed.
type Coordinate struct {
	Row int
	Col int
}

// Grid is a square matrix holding one permutation of an alphabet.
//
// Cell i (row-major) holds symbols[i] for i < Len(); the remaining
// Side()*Side()-Len() cells are empty.
type Grid struct {
	side        int
	symbols     []rune
	index       map[rune]int
	fingerprint uint64
}

// New validates alphabet and builds a grid from a random permutation of its symbols.
//
// Symbols are upper-cased before validation. An alphabet with a repeated symbol
// fails with an error wrapping errs.ErrInvalidAlphabet. An empty alphabet yields
// an empty 0×0 grid.
func New(alphabet string, opts ...Option) (*Grid, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	symbols, err := normalize(alphabet)
	if err != nil {
		return nil, err
	}
	cfg.shuffle(symbols)

	return newGrid(symbols), nil
}

// FromPermutation builds the grid whose row-major symbol order is exactly perm,
// after upper-case normalization. No randomness is consumed.
func FromPermutation(perm string) (*Grid, error) {
	symbols, err := normalize(perm)
	if err != nil {
		return nil, err
	}

	return newGrid(symbols), nil
}

// Normalize upper-cases s rune by rune, the same mapping New applies to alphabets
// and the codec applies to text.
func Normalize(s string) string {
	return strings.Map(unicode.ToUpper, s)
}

func normalize(alphabet string) ([]rune, error) {
	symbols := []rune(Normalize(alphabet))

	tracker := collision.NewTracker(len(symbols))
	if err := tracker.TrackAll(symbols); err != nil {
		return nil, err
	}

	return symbols, nil
}

func newGrid(symbols []rune) *Grid {
	g := &Grid{
		side:    sideFor(len(symbols)),
		symbols: symbols,
		index:   make(map[rune]int, len(symbols)),
	}
	for i, r := range symbols {
		g.index[r] = i
	}
	g.fingerprint = hash.Fingerprint(string(symbols))

	return g
}

// sideFor returns ceil(sqrt(n)) without float rounding surprises.
func sideFor(n int) int {
	s := int(math.Sqrt(float64(n)))
	for s*s < n {
		s++
	}
	for s > 0 && (s-1)*(s-1) >= n {
		s--
	}

	return s
}

// Side returns the side length of the square.
func (g *Grid) Side() int {
	return g.side
}

// Len returns the number of alphabet symbols in the grid.
func (g *Grid) Len() int {
	return len(g.symbols)
}

// Symbols returns the symbols in row-major order.
func (g *Grid) Symbols() string {
	return string(g.symbols)
}

// Fingerprint returns the xxHash64 of Symbols. Two grids with the same
// fingerprint encode identically.
func (g *Grid) Fingerprint() uint64 {
	return g.fingerprint
}

// CoordinateWidth returns the number of decimal digits used to write one
// coordinate: 1 for grids up to 9×9, more for larger grids.
func (g *Grid) CoordinateWidth() int {
	if g.side <= 9 {
		return 1
	}

	return len(strconv.Itoa(g.side))
}

// Contains reports whether r is one of the grid's symbols. r is not normalized.
func (g *Grid) Contains(r rune) bool {
	_, ok := g.index[r]
	return ok
}

// Locate returns the cell holding r. r is not normalized.
func (g *Grid) Locate(r rune) (Coordinate, bool) {
	i, ok := g.index[r]
	if !ok {
		return Coordinate{}, false
	}

	return Coordinate{Row: i / g.side, Col: i % g.side}, true
}

// At returns the symbol at (row, col). It reports false for empty cells and
// coordinates outside [0, Side()).
func (g *Grid) At(row, col int) (rune, bool) {
	if row < 0 || row >= g.side || col < 0 || col >= g.side {
		return 0, false
	}

	i := row*g.side + col
	if i >= len(g.symbols) {
		return 0, false
	}

	return g.symbols[i], true
}

// Rows returns the grid as a matrix of one-symbol strings; empty cells are "".
func (g *Grid) Rows() [][]string {
	rows := make([][]string, g.side)
	for r := range rows {
		rows[r] = make([]string, g.side)
		for c := range rows[r] {
			if sym, ok := g.At(r, c); ok {
				rows[r][c] = string(sym)
			}
		}
	}

	return rows
}

// Equal reports whether both grids hold the same permutation.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}

	return g.fingerprint == other.fingerprint && string(g.symbols) == string(other.symbols)
}

// String renders one quoted row per line, e.g. ["B" "A"] / ["" ""].
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%q", row)
	}

	return sb.String()
}
