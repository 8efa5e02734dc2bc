// Package envelope wraps a digit code in a self-describing container.
//
// A container is a section.Header (magic 0xED10) followed by the code, optionally
// compressed. The header records the fingerprint of the grid that produced the
// code, so opening a container with the wrong key fails with
// errs.ErrFingerprintMismatch instead of silently decoding to garbage.
package envelope

import (
	"fmt"

	"github.com/arloliu/polybius/codec"
	"github.com/arloliu/polybius/errs"
	"github.com/arloliu/polybius/format"
	"github.com/arloliu/polybius/internal/container"
	"github.com/arloliu/polybius/internal/options"
	"github.com/arloliu/polybius/section"
)

// Option configures Seal.
type Option = options.Option[*config]

type config struct {
	compression format.CompressionType
	bigEndian   bool
}

// WithCompression compresses the code. Digit codes use ten distinct bytes, so
// any of the codecs usually shrinks them by more than half.
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

// Seal encodes text with c and returns the container bytes.
func Seal(c *codec.Codec, text string, opts ...Option) ([]byte, error) {
	return SealCode(c, c.Encode(text), opts...)
}

// SealCode wraps a code already produced by c.Encode.
func SealCode(c *codec.Codec, code string, opts ...Option) ([]byte, error) {
	cfg := &config{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	g := c.Grid()
	header, err := section.NewHeader(section.MagicMessageV1Opt, g.Side(), g.Len(), g.Fingerprint())
	if err != nil {
		return nil, err
	}
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.PairWidth = uint8(c.PairWidth()) //nolint: gosec

	return container.Write(header, []byte(code), cfg.compression)
}

// Open verifies that data was sealed with c's grid, then decodes it.
func Open(c *codec.Codec, data []byte) (string, error) {
	code, err := OpenCode(c, data)
	if err != nil {
		return "", err
	}

	return c.Decode(code)
}

// OpenCode returns the digit code stored in data without decoding it.
func OpenCode(c *codec.Codec, data []byte) (string, error) {
	header, err := parse(data)
	if err != nil {
		return "", err
	}

	g := c.Grid()
	if header.Fingerprint != g.Fingerprint() {
		return "", fmt.Errorf("%w: sealed with 0x%016X, key is 0x%016X",
			errs.ErrFingerprintMismatch, header.Fingerprint, g.Fingerprint())
	}
	if int(header.PairWidth) != c.PairWidth() {
		return "", fmt.Errorf("%w: pair width %d, key uses %d", errs.ErrInvalidHeaderFlags, header.PairWidth, c.PairWidth())
	}

	_, raw, err := container.Read(data, section.MagicMessageV1Opt)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// Inspect parses the header of a container without touching its payload.
func Inspect(data []byte) (*section.Header, error) {
	return parse(data)
}

func parse(data []byte) (*section.Header, error) {
	header, _, err := section.ParseHeader(data, section.MagicMessageV1Opt)
	if err != nil {
		return nil, err
	}

	return header, nil
}
