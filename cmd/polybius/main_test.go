package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polybius/errs"
)

func TestRun_KeygenEncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "ru.pkey")
	plain := filepath.Join(dir, "plain.txt")
	code := filepath.Join(dir, "code.txt")
	back := filepath.Join(dir, "back.txt")

	require.NoError(t, os.WriteFile(plain, []byte("шифр: простой"), 0o600))

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"keygen", "-alphabet", "ru-ext", "-passphrase", "p", "-compression", "zstd", "-out", key}, &stdout))
	require.Contains(t, stdout.String(), "7x7 grid, 38 symbols")

	for _, envelope := range []string{"", "lz4"} {
		t.Run("envelope="+envelope, func(t *testing.T) {
			require.NoError(t, run([]string{"encrypt", "-key", key, "-in", plain, "-out", code, "-envelope", envelope}, &stdout))
			require.NoError(t, run([]string{"decrypt", "-key", key, "-in", code, "-out", back, "-envelope", envelope}, &stdout))

			got, err := os.ReadFile(back)
			require.NoError(t, err)
			require.Equal(t, "ШИФР: ПРОСТОЙ", string(got))
		})
	}

	stdout.Reset()
	require.NoError(t, run([]string{"show", "-key", key}, &stdout))
	require.Contains(t, stdout.String(), "7x7 grid")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	require.ErrorIs(t, run(nil, &stdout), errUsage)
	require.ErrorIs(t, run([]string{"rot13"}, &stdout), errUsage)
	require.ErrorIs(t, run([]string{"keygen"}, &stdout), errUsage)
	require.ErrorIs(t, run([]string{"keygen", "-seed", "1", "-passphrase", "x", "-out", "k"}, &stdout), errUsage)
	require.ErrorIs(t, run([]string{"encrypt", "-key", "k"}, &stdout), errUsage)
	require.ErrorIs(t, run([]string{"show"}, &stdout), errUsage)

	key := filepath.Join(dir, "k.pkey")
	err := run([]string{"keygen", "-alphabet", "AAB", "-out", key}, &stdout)
	require.ErrorIs(t, err, errs.ErrInvalidAlphabet)

	err = run([]string{"keygen", "-compression", "brotli", "-out", key}, &stdout)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestResolveAlphabet(t *testing.T) {
	require.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", resolveAlphabet("en"))
	require.Equal(t, "XYZ", resolveAlphabet("XYZ"))
}
