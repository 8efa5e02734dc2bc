package section

const (
	// Bit masks for Flag.Options
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicKeyV1Opt     = 0xEC10 // MagicKeyV1Opt identifies a version 1 key file.
	MagicMessageV1Opt = 0xED10 // MagicMessageV1Opt identifies a version 1 ciphertext container.
)

const (
	HeaderSize     = 32        // fixed header size in bytes, shared by key files and containers
	MaxPayloadSize = 1<<32 - 1 // largest payload representable by the uint32 size fields
	MaxSide        = 1<<16 - 1 // largest grid side representable by the uint16 side field
)
