package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polybius/errs"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{"encrypt", "encrypt", ModeEncrypt, false},
		{"decrypt", "decrypt", ModeDecrypt, false},
		{"uppercase is rejected", "ENCRYPT", 0, true},
		{"empty", "", 0, true},
		{"other", "sign", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrUnsupportedMode)
				require.False(t, got.IsValid())

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		input string
		want  CompressionType
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"zstd", CompressionZstd},
		{"s2", CompressionS2},
		{"lz4", CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCompression(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, got.IsValid())
		})
	}

	_, err := ParseCompression("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0x9).String())
	require.False(t, CompressionType(0).IsValid())
	require.Equal(t, "unknown", Mode(0).String())
}
