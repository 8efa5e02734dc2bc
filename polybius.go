// Package polybius implements a randomized Polybius-square substitution cipher.
//
// An alphabet is shuffled into a square grid; every symbol of a text is replaced
// by the 1-indexed row and column of the cell holding it. With the default
// Russian alphabet the grid is 7×7 and each symbol becomes two digits.
//
// The cipher is a classical toy. It offers no confidentiality against frequency
// analysis and must not be used to protect real data.
//
// # Core Features
//
//   - Uniformly random grid per key, or a reproducible one from a seed or passphrase
//   - O(1) symbol lookup in both directions
//   - Permissive decoding: out-of-alphabet input and empty cells are skipped
//   - Key files that let another process decrypt (CRC32 and xxHash64 verified)
//   - Optional sealed ciphertext containers compressed with Zstd, S2 or LZ4
//
// # Basic Usage
//
//	c, _ := polybius.NewDefaultCodec()
//	code := c.Encode("Привет, мир")
//	text, _ := c.Decode(code) // "ПРИВЕТ МИР"
//
// Persisting the key so a later run can decrypt:
//
//	_ = polybius.SaveKey("ru.pkey", c, keyfile.WithCompression(format.CompressionZstd))
//	c2, _ := polybius.LoadKey("ru.pkey")
//	text, _ = c2.Decode(code)
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. The grid and
// codec packages hold the cipher itself; keyfile and envelope persist keys and
// ciphertexts; fileproc runs a codec over whole files.
package polybius

import (
	"github.com/arloliu/polybius/codec"
	"github.com/arloliu/polybius/fileproc"
	"github.com/arloliu/polybius/grid"
	"github.com/arloliu/polybius/keyfile"
)

// Built-in alphabets.
const (
	// English is the 26-letter Latin alphabet (6×6 grid).
	English = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Russian is the 33-letter Russian alphabet including Ё (6×6 grid).
	Russian = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЬЪЫЭЮЯ"

	// RussianExtended adds the em dash, space, colon, semicolon and newline to
	// Russian so that prose keeps its layout (7×7 grid).
	RussianExtended = Russian + "— :;\n"

	// DefaultAlphabet is used by NewDefaultCodec.
	DefaultAlphabet = RussianExtended
)

// NewCodec builds a fresh random grid from alphabet and returns a codec bound to it.
//
// Available options:
//   - grid.WithSeed(uint64)
//   - grid.WithRand(*rand.Rand)
//   - grid.WithPassphrase(string)
//
// Returns an error wrapping errs.ErrInvalidAlphabet if alphabet contains the same
// symbol twice after upper-casing.
func NewCodec(alphabet string, opts ...grid.Option) (*codec.Codec, error) {
	return codec.New(alphabet, opts...)
}

// NewDefaultCodec returns a codec over DefaultAlphabet with a fresh random grid.
func NewDefaultCodec() (*codec.Codec, error) {
	return codec.New(DefaultAlphabet)
}

// Encrypt encodes text with the grid g.
func Encrypt(g *grid.Grid, text string) string {
	return codec.NewWithGrid(g).Encode(text)
}

// Decrypt decodes code with the grid g.
func Decrypt(g *grid.Grid, code string) (string, error) {
	return codec.NewWithGrid(g).Decode(code)
}

// SaveKey writes the grid of c to a key file at path.
func SaveKey(path string, c *codec.Codec, opts ...keyfile.Option) error {
	return keyfile.Save(path, c.Grid(), opts...)
}

// LoadKey reads a key file and returns a codec bound to its grid.
func LoadKey(path string) (*codec.Codec, error) {
	g, err := keyfile.Load(path)
	if err != nil {
		return nil, err
	}

	return codec.NewWithGrid(g), nil
}

// NewFileProcessor returns a processor that runs c over whole files.
//
// Available options:
//   - fileproc.WithEnvelope(format.CompressionType)
func NewFileProcessor(c *codec.Codec, opts ...fileproc.Option) (*fileproc.Processor, error) {
	return fileproc.New(c, opts...)
}
