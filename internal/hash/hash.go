package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a grid's row-major symbol sequence.
func Fingerprint(symbols string) uint64 {
	return xxhash.Sum64String(symbols)
}

// Seed derives a shuffle seed from a passphrase.
//
// The two returned words feed a PCG source. The second word hashes the passphrase
// with a one-byte domain prefix so the words are not equal.
func Seed(passphrase string) (uint64, uint64) {
	d := xxhash.New()
	_, _ = d.WriteString("\x01")
	_, _ = d.WriteString(passphrase)

	return xxhash.Sum64String(passphrase), d.Sum64()
}
