package section

import (
	"fmt"
	"hash/crc32"

	"github.com/arloliu/polybius/endian"
	"github.com/arloliu/polybius/errs"
)

// Header is the fixed 32-byte header written before a key file or ciphertext payload.
//
// Layout:
//
//	Bytes  | Field       | Description
//	-------|-------------|------------------------------------------------
//	0-1    | Options     | magic + endianness (always little-endian)
//	2      | Compression | payload compression type
//	3      | PairWidth   | digits per coordinate in the code (containers)
//	4-7    | SymbolCount | number of alphabet symbols in the grid
//	8-15   | Fingerprint | xxHash64 of the grid permutation
//	16-19  | PayloadSize | uncompressed payload size in bytes
//	20-23  | StoredSize  | payload bytes following the header
//	24-27  | Checksum    | CRC32 (IEEE) of the uncompressed payload
//	28-29  | Side        | grid side length
//	30-31  | Reserved    | must be zero
type Header struct {
	Flag        Flag
	PairWidth   uint8
	SymbolCount uint32
	Fingerprint uint64
	PayloadSize uint32
	StoredSize  uint32
	Checksum    uint32
	Side        uint16
	Reserved    [2]byte
}

// NewHeader creates a header with the given magic describing a grid of side×side cells.
func NewHeader(magic uint16, side, symbolCount int, fingerprint uint64) (*Header, error) {
	if side < 0 || side > MaxSide {
		return nil, fmt.Errorf("grid side %d out of range [0..%d]", side, MaxSide)
	}
	if symbolCount < 0 || symbolCount > side*side {
		return nil, fmt.Errorf("symbol count %d does not fit a %dx%d grid", symbolCount, side, side)
	}

	return &Header{
		Flag:        NewFlag(magic),
		SymbolCount: uint32(symbolCount), //nolint: gosec
		Fingerprint: fingerprint,
		Side:        uint16(side), //nolint: gosec
	}, nil
}

// SetPayload records the sizes and checksum of a payload.
// raw is the uncompressed payload, storedSize the number of bytes actually written.
func (h *Header) SetPayload(raw []byte, storedSize int) error {
	if uint64(len(raw)) > MaxPayloadSize || uint64(storedSize) > MaxPayloadSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, max(len(raw), storedSize))
	}

	h.PayloadSize = uint32(len(raw))  //nolint: gosec
	h.StoredSize = uint32(storedSize) //nolint: gosec
	h.Checksum = crc32.ChecksumIEEE(raw)

	return nil
}

// VerifyPayload checks an uncompressed payload against the recorded size and checksum.
func (h *Header) VerifyPayload(raw []byte) error {
	if uint64(len(raw)) != uint64(h.PayloadSize) {
		return fmt.Errorf("%w: payload size %d, header says %d", errs.ErrChecksumMismatch, len(raw), h.PayloadSize)
	}
	if sum := crc32.ChecksumIEEE(raw); sum != h.Checksum {
		return fmt.Errorf("%w: got 0x%08X, want 0x%08X", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return nil
}

// Parse parses the header from a byte slice of exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// Options are always little-endian so the endianness bit can be read first.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.PairWidth = data[3]

	engine := h.GetEndianEngine()

	h.SymbolCount = engine.Uint32(data[4:8])
	h.Fingerprint = engine.Uint64(data[8:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	h.StoredSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint32(data[24:28])
	h.Side = engine.Uint16(data[28:30])
	copy(h.Reserved[:], data[30:32])

	return h.Validate()
}

// Validate checks flags and the internal consistency of the header fields.
func (h *Header) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if h.Reserved != [2]byte{} {
		return fmt.Errorf("%w: reserved bytes must be zero", errs.ErrInvalidHeaderFlags)
	}

	if uint64(h.SymbolCount) > uint64(h.Side)*uint64(h.Side) {
		return fmt.Errorf("%w: %d symbols in a %dx%d grid", errs.ErrInvalidHeaderFlags, h.SymbolCount, h.Side, h.Side)
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Compression, h.PairWidth)
	dst = engine.AppendUint32(dst, h.SymbolCount)
	dst = engine.AppendUint64(dst, h.Fingerprint)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint32(dst, h.StoredSize)
	dst = engine.AppendUint32(dst, h.Checksum)
	dst = engine.AppendUint16(dst, h.Side)
	dst = append(dst, h.Reserved[:]...)

	return dst
}

// GetEndianEngine returns the endian engine selected by the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	return endian.Select(h.Flag.IsBigEndian())
}

// IsKey reports whether the header describes a key file.
func (h *Header) IsKey() bool {
	return h.Flag.GetMagicNumber() == MagicKeyV1Opt
}

// IsMessage reports whether the header describes a ciphertext container.
func (h *Header) IsMessage() bool {
	return h.Flag.GetMagicNumber() == MagicMessageV1Opt
}

// ParseHeader splits data into a parsed header and the stored payload that follows it.
// The payload slice aliases data.
func ParseHeader(data []byte, magic uint16) (*Header, []byte, error) {
	if len(data) < HeaderSize {
		return nil, nil, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := &Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return nil, nil, err
	}

	if h.Flag.GetMagicNumber() != magic {
		return nil, nil, fmt.Errorf("%w: got 0x%04X, want 0x%04X", errs.ErrInvalidMagicNumber, h.Flag.GetMagicNumber(), magic)
	}

	payload := data[HeaderSize:]
	if uint64(len(payload)) < uint64(h.StoredSize) {
		return nil, nil, fmt.Errorf("%w: have %d bytes, header says %d", errs.ErrTruncatedPayload, len(payload), h.StoredSize)
	}

	return h, payload[:h.StoredSize], nil
}
