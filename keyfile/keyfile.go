// Package keyfile persists a grid so that text encrypted in one process can be
// decrypted in another.
//
// A key file is a section.Header (magic 0xEC10) followed by the grid's row-major
// permutation as UTF-8, optionally compressed. Loading verifies the payload CRC32
// and that the rebuilt grid has the recorded side, symbol count and fingerprint.
//
// Anyone holding the key file can decrypt; protect it accordingly.
package keyfile

import (
	"fmt"
	"os"

	"github.com/arloliu/polybius/errs"
	"github.com/arloliu/polybius/format"
	"github.com/arloliu/polybius/grid"
	"github.com/arloliu/polybius/internal/container"
	"github.com/arloliu/polybius/internal/options"
	"github.com/arloliu/polybius/section"
)

// FileMode is the permission used by Save.
const FileMode = 0o600

// Option configures how a key file is written.
type Option = options.Option[*config]

type config struct {
	compression format.CompressionType
	bigEndian   bool
}

// WithCompression compresses the permutation payload. Payloads that do not shrink
// are stored uncompressed regardless.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !ct.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, ct)
		}
		c.compression = ct

		return nil
	})
}

// WithBigEndian writes the header fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *config) { c.bigEndian = true })
}

// WithLittleEndian writes the header fields little-endian (the default).
func WithLittleEndian() Option {
	return options.NoError(func(c *config) { c.bigEndian = false })
}

// Marshal serializes g.
func Marshal(g *grid.Grid, opts ...Option) ([]byte, error) {
	cfg := &config{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.NewHeader(section.MagicKeyV1Opt, g.Side(), g.Len(), g.Fingerprint())
	if err != nil {
		return nil, err
	}
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.PairWidth = uint8(g.CoordinateWidth()) //nolint: gosec

	return container.Write(header, []byte(g.Symbols()), cfg.compression)
}

// Unmarshal restores a grid written by Marshal.
func Unmarshal(data []byte) (*grid.Grid, error) {
	header, raw, err := container.Read(data, section.MagicKeyV1Opt)
	if err != nil {
		return nil, err
	}

	g, err := grid.FromPermutation(string(raw))
	if err != nil {
		return nil, err
	}

	if g.Side() != int(header.Side) || g.Len() != int(header.SymbolCount) {
		return nil, fmt.Errorf("%w: key describes a %dx%d grid of %d symbols, payload has %dx%d of %d",
			errs.ErrInvalidHeaderFlags, header.Side, header.Side, header.SymbolCount, g.Side(), g.Side(), g.Len())
	}
	if g.Fingerprint() != header.Fingerprint {
		return nil, fmt.Errorf("%w: key header 0x%016X, payload 0x%016X",
			errs.ErrFingerprintMismatch, header.Fingerprint, g.Fingerprint())
	}

	return g, nil
}

// Save writes g to path with FileMode permissions.
func Save(path string, g *grid.Grid, opts ...Option) error {
	data, err := Marshal(g, opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, FileMode); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	return nil
}

// Load reads a grid from a key file at path.
func Load(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	g, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("invalid key file %s: %w", path, err)
	}

	return g, nil
}
