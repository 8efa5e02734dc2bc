package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type shuffleConfig struct {
	Seed     uint64
	Label    string
	Seeded   bool
	LastCall string
}

func (c *shuffleConfig) SetSeed(seed uint64) error {
	if seed == 0 {
		return errors.New("seed cannot be zero")
	}
	c.Seed = seed
	c.Seeded = true
	c.LastCall = "SetSeed"

	return nil
}

func (c *shuffleConfig) SetLabel(label string) {
	c.Label = label
	c.LastCall = "SetLabel"
}

func TestOption_New(t *testing.T) {
	cfg := &shuffleConfig{}

	t.Run("applies a fallible option", func(t *testing.T) {
		opt := New(func(c *shuffleConfig) error { return c.SetSeed(42) })

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, uint64(42), cfg.Seed)
		require.True(t, cfg.Seeded)
	})

	t.Run("propagates errors", func(t *testing.T) {
		opt := New(func(c *shuffleConfig) error { return c.SetSeed(0) })

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "seed cannot be zero")
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &shuffleConfig{}
	opt := NoError(func(c *shuffleConfig) { c.SetLabel("key-1") })

	require.NoError(t, opt.apply(cfg))
	require.Equal(t, "key-1", cfg.Label)
	require.Equal(t, "SetLabel", cfg.LastCall)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &shuffleConfig{}
		err := Apply(cfg,
			Option[*shuffleConfig](New(func(c *shuffleConfig) error { return c.SetSeed(7) })),
			NoError(func(c *shuffleConfig) { c.SetLabel("x") }),
		)

		require.NoError(t, err)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, "SetLabel", cfg.LastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &shuffleConfig{}
		opts := []Option[*shuffleConfig]{
			New(func(c *shuffleConfig) error { return c.SetSeed(5) }),
			New(func(c *shuffleConfig) error { return c.SetSeed(0) }),
			NoError(func(c *shuffleConfig) { c.SetLabel("never") }),
		}

		err := Apply(cfg, opts...)
		require.Error(t, err)
		require.Equal(t, uint64(5), cfg.Seed)
		require.Empty(t, cfg.Label)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &shuffleConfig{}
		err := Apply(cfg, nil, Option[*shuffleConfig](NoError(func(c *shuffleConfig) { c.SetLabel("y") })))

		require.NoError(t, err)
		require.Equal(t, "y", cfg.Label)
	})

	t.Run("empty", func(t *testing.T) {
		cfg := &shuffleConfig{}
		require.NoError(t, Apply(cfg))
		require.False(t, cfg.Seeded)
	})
}
