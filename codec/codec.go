// Package codec encodes text into Polybius coordinates and back against one
// fixed grid.
//
// Each symbol becomes its 1-indexed row followed by its 1-indexed column. For
// grids up to 9×9 every coordinate is a single digit, so a symbol costs two
// digits:
//
//	g, _ := grid.FromPermutation("BA") // [["B" "A"] ["" ""]]
//	c := codec.NewWithGrid(g)
//	c.Encode("ab")        // "1211"
//	c.Decode("1211")      // "AB", nil
//
// Larger grids write each coordinate as a zero-padded decimal of
// Grid.CoordinateWidth digits.
//
// Both directions skip what they cannot map: characters outside the alphabet
// contribute nothing to a code, and coordinate pairs that address an empty or
// out-of-range cell contribute nothing to a text. Only a code whose length is
// not a whole number of pairs is rejected, with errs.ErrMalformedCode.
//
// A Codec is immutable and safe for concurrent use.
package codec

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/polybius/errs"
	"github.com/arloliu/polybius/grid"
	"github.com/arloliu/polybius/internal/pool"
)

// Codec maps text to digit codes and back using one grid for its whole lifetime.
type Codec struct {
	grid  *grid.Grid
	width int // digits per coordinate
}

// New builds a grid from alphabet and returns a Codec bound to it.
// The grid is built exactly once; see grid.New for the options.
func New(alphabet string, opts ...grid.Option) (*Codec, error) {
	g, err := grid.New(alphabet, opts...)
	if err != nil {
		return nil, err
	}

	return NewWithGrid(g), nil
}

// NewWithGrid returns a Codec bound to an existing grid.
func NewWithGrid(g *grid.Grid) *Codec {
	return &Codec{
		grid:  g,
		width: g.CoordinateWidth(),
	}
}

// Grid returns the grid the codec encodes with.
func (c *Codec) Grid() *grid.Grid {
	return c.grid
}

// Alphabet returns the codec's symbols in row-major grid order.
func (c *Codec) Alphabet() string {
	return c.grid.Symbols()
}

// PairWidth returns the number of digits one symbol occupies in a code.
func (c *Codec) PairWidth() int {
	return 2 * c.width
}

// Encode upper-cases text and writes the coordinates of every alphabet symbol.
// Characters outside the alphabet are dropped.
func (c *Codec) Encode(text string) string {
	buf := pool.GetCodeBuffer()
	defer pool.PutCodeBuffer(buf)

	buf.Grow(c.PairWidth() * utf8.RuneCountInString(text))
	for _, r := range text {
		coord, ok := c.grid.Locate(unicode.ToUpper(r))
		if !ok {
			continue
		}
		c.appendIndex(buf, coord.Row+1)
		c.appendIndex(buf, coord.Col+1)
	}

	return buf.String()
}

// Decode turns a digit code back into text.
//
// It fails with errs.ErrMalformedCode when len(code) is not a multiple of
// PairWidth, returning no partial output. Pairs that address an empty cell,
// fall outside the grid, or contain a non-digit are skipped.
func (c *Codec) Decode(code string) (string, error) {
	pair := c.PairWidth()
	if len(code)%pair != 0 {
		return "", fmt.Errorf("%w: length %d is not a multiple of %d", errs.ErrMalformedCode, len(code), pair)
	}

	buf := pool.GetCodeBuffer()
	defer pool.PutCodeBuffer(buf)

	buf.Grow(len(code) / pair * utf8.UTFMax)
	for i := 0; i < len(code); i += pair {
		row, okRow := parseIndex(code[i : i+c.width])
		col, okCol := parseIndex(code[i+c.width : i+pair])
		if !okRow || !okCol {
			continue
		}
		if sym, ok := c.grid.At(row-1, col-1); ok {
			_, _ = buf.WriteRune(sym)
		}
	}

	return buf.String(), nil
}

func (c *Codec) appendIndex(buf *pool.ByteBuffer, v int) {
	if c.width == 1 {
		_ = buf.WriteByte(byte('0' + v))
		return
	}

	var digits [20]byte
	n := len(digits)
	for v > 0 || n == len(digits) {
		n--
		digits[n] = byte('0' + v%10)
		v /= 10
	}
	for pad := c.width - (len(digits) - n); pad > 0; pad-- {
		_ = buf.WriteByte('0')
	}
	_, _ = buf.Write(digits[n:])
}

// parseIndex parses a run of ASCII digits. It reports false if s holds anything else.
func parseIndex(s string) (int, bool) {
	v := 0
	for i := 0; i < len(s); i++ {
		d := s[i]
		if d < '0' || d > '9' {
			return 0, false
		}
		v = v*10 + int(d-'0')
	}

	return v, true
}
