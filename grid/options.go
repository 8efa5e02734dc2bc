package grid

import (
	"errors"
	"math/rand/v2"

	"github.com/arloliu/polybius/internal/hash"
	"github.com/arloliu/polybius/internal/options"
)

// seedStream is the second PCG word used by WithSeed.
const seedStream = 0x9E3779B97F4A7C15

// Option configures grid construction.
type Option = options.Option[*config]

type config struct {
	rng *rand.Rand
}

// shuffle permutes symbols in place with the configured source, or the
// process-wide generator when none is set.
func (c *config) shuffle(symbols []rune) {
	swap := func(i, j int) { symbols[i], symbols[j] = symbols[j], symbols[i] }
	if c.rng == nil {
		rand.Shuffle(len(symbols), swap)
		return
	}
	c.rng.Shuffle(len(symbols), swap)
}

// WithSeed makes the shuffle reproducible: the same seed and alphabet always
// produce the same grid.
func WithSeed(seed uint64) Option {
	return options.NoError(func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seedStream)) //nolint: gosec
	})
}

// WithRand shuffles with r. The generator is only used during New and must not
// be used concurrently by the caller while New runs.
func WithRand(r *rand.Rand) Option {
	return options.New(func(c *config) error {
		if r == nil {
			return errors.New("random source cannot be nil")
		}
		c.rng = r

		return nil
	})
}

// WithPassphrase seeds the shuffle from the xxHash64 of passphrase.
//
// This is a way to share a grid by word of mouth, not key derivation: the hash is
// not cryptographic and the cipher itself offers no secrecy guarantees.
func WithPassphrase(passphrase string) Option {
	return options.New(func(c *config) error {
		if passphrase == "" {
			return errors.New("passphrase cannot be empty")
		}
		s1, s2 := hash.Seed(passphrase)
		c.rng = rand.New(rand.NewPCG(s1, s2)) //nolint: gosec

		return nil
	})
}
