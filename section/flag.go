package section

import (
	"fmt"

	"github.com/arloliu/polybius/errs"
	"github.com/arloliu/polybius/format"
)

// Flag is the packed option word and compression byte at the start of every header.
type Flag struct {
	// Options is a packed field.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be 0.
	// Bits 4-15 are the magic number identifying the payload kind:
	//   - 0xEC10: key file v1
	//   - 0xED10: ciphertext container v1
	Options uint16

	// Compression indicates the compression applied to the payload.
	Compression uint8
}

// NewFlag creates a little-endian, uncompressed flag with the given magic.
func NewFlag(magic uint16) Flag {
	flag := Flag{
		Options:     magic & MagicNumberMask,
		Compression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// GetMagicNumber returns the magic number bits.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.Compression = uint8(c)
}

// Validate checks the magic number, reserved bits and compression type.
func (f Flag) Validate() error {
	switch f.GetMagicNumber() {
	case MagicKeyV1Opt, MagicMessageV1Opt:
	default:
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits 0x%04X", errs.ErrInvalidHeaderFlags, f.Options&ReservedBitsMask)
	}

	if !f.GetCompression().IsValid() {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompression, f.Compression)
	}

	return nil
}
