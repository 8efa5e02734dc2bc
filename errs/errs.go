// Package errs defines the sentinel errors returned by polybius packages.
//
// Callers match them with errors.Is; the returned errors usually wrap a sentinel
// with additional context such as the offending rune or byte offset.
package errs

import "errors"

var (
	// ErrInvalidAlphabet indicates the alphabet contains the same symbol more than once
	// after case normalization.
	ErrInvalidAlphabet = errors.New("alphabet must contain unique characters")
	// ErrMalformedCode indicates the code length is not a whole number of coordinate pairs.
	ErrMalformedCode = errors.New("code length must be a multiple of the pair width")
	// ErrUnsupportedMode indicates a processing mode other than encrypt or decrypt.
	ErrUnsupportedMode = errors.New("mode should be either 'encrypt' or 'decrypt'")

	// ErrInvalidHeaderSize indicates the header is not exactly HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidHeaderFlags indicates reserved bits are set in the header options.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	// ErrInvalidMagicNumber indicates the header magic is not the one expected by the reader.
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	// ErrInvalidCompression indicates an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrChecksumMismatch indicates the payload CRC32 does not match the header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
	// ErrFingerprintMismatch indicates the data was produced with a different grid.
	ErrFingerprintMismatch = errors.New("grid fingerprint mismatch")
	// ErrPayloadTooLarge indicates the payload does not fit the header's size field.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrTruncatedPayload indicates the data is shorter than the header claims.
	ErrTruncatedPayload = errors.New("truncated payload")
)
