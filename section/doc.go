// Package section defines the fixed binary header shared by polybius key files
// and ciphertext containers.
//
// Both formats are a 32-byte Header followed by a (possibly compressed) payload:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                     │
//	│  - Options, compression, pair width          │
//	│  - Grid side, symbol count, fingerprint      │
//	│  - Payload sizes and CRC32                   │
//	├──────────────────────────────────────────────┤
//	│ Payload (StoredSize bytes)                   │
//	│  - key file: the grid permutation (UTF-8)    │
//	│  - container: the digit code                 │
//	└──────────────────────────────────────────────┘
//
// The magic number in the options word tells the two apart, so a key file can
// never be mistaken for a container and vice versa. The options word is always
// little-endian; the remaining fields follow the endianness bit.
package section
