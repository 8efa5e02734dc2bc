// Package fileproc runs a Codec over whole files or streams.
//
// The input is read completely, transformed in one call, and written out only
// when the transformation succeeded. With WithEnvelope, encryption writes a
// sealed container instead of a bare digit code and decryption expects one.
package fileproc

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/polybius/codec"
	"github.com/arloliu/polybius/envelope"
	"github.com/arloliu/polybius/errs"
	"github.com/arloliu/polybius/format"
	"github.com/arloliu/polybius/internal/options"
)

// OutputMode is the permission ProcessFile creates output files with.
const OutputMode = 0o644

// Option configures a Processor.
type Option = options.Option[*Processor]

// WithEnvelope makes the processor read and write sealed containers whose code
// is compressed with ct.
func WithEnvelope(ct format.CompressionType) Option {
	return options.New(func(p *Processor) error {
		if !ct.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, ct)
		}
		p.envelope = true
		p.compression = ct

		return nil
	})
}

// Processor applies one Codec to whole inputs.
type Processor struct {
	codec       *codec.Codec
	envelope    bool
	compression format.CompressionType
}

// New returns a Processor bound to c.
func New(c *codec.Codec, opts ...Option) (*Processor, error) {
	p := &Processor{
		codec:       c,
		compression: format.CompressionNone,
	}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// Transform applies mode to an in-memory input.
func (p *Processor) Transform(input []byte, mode format.Mode) ([]byte, error) {
	switch mode {
	case format.ModeEncrypt:
		if p.envelope {
			return envelope.Seal(p.codec, string(input), envelope.WithCompression(p.compression))
		}

		return []byte(p.codec.Encode(string(input))), nil
	case format.ModeDecrypt:
		var (
			text string
			err  error
		)
		if p.envelope {
			text, err = envelope.Open(p.codec, input)
		} else {
			text, err = p.codec.Decode(string(input))
		}
		if err != nil {
			return nil, err
		}

		return []byte(text), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedMode, mode)
	}
}

// Process reads all of r, applies mode and writes the result to w.
func (p *Processor) Process(r io.Reader, w io.Writer, mode format.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedMode, mode)
	}

	input, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	out, err := p.Transform(input, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// ProcessFile reads the file at in, applies mode and writes the result to out.
// out is not created or truncated when reading or transforming fails.
func (p *Processor) ProcessFile(in, out string, mode format.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedMode, mode)
	}

	input, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result, err := p.Transform(input, mode)
	if err != nil {
		return fmt.Errorf("%s %s: %w", mode, in, err)
	}

	if err := os.WriteFile(out, result, OutputMode); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
