package format

import (
	"fmt"

	"github.com/arloliu/polybius/errs"
)

type (
	Mode            uint8
	CompressionType uint8
)

const (
	ModeEncrypt Mode = 0x1 // ModeEncrypt turns text into a digit code.
	ModeDecrypt Mode = 0x2 // ModeDecrypt turns a digit code back into text.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ParseMode converts "encrypt" or "decrypt" into a Mode.
// Any other value fails with errs.ErrUnsupportedMode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "encrypt":
		return ModeEncrypt, nil
	case "decrypt":
		return ModeDecrypt, nil
	default:
		return 0, fmt.Errorf("%w: got %q", errs.ErrUnsupportedMode, s)
	}
}

// ParseCompression converts a compression name (none, zstd, s2, lz4) into a CompressionType.
func ParseCompression(s string) (CompressionType, error) {
	switch s {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, s)
	}
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m == ModeEncrypt || m == ModeDecrypt
}

func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "encrypt"
	case ModeDecrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
