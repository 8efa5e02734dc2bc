package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polybius/errs"
	"github.com/arloliu/polybius/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// digitCode mimics an encoded message: pairs of 1-based coordinates.
func digitCode(pairs int) []byte {
	var b bytes.Buffer
	for i := range pairs {
		b.WriteByte(byte('1' + i%6))
		b.WriteByte(byte('1' + (i*7)%6))
	}

	return b.Bytes()
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "payload")
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	_, err := CreateCodec(format.CompressionType(0x9), "payload")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	require.Contains(t, err.Error(), "payload")
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	require.IsType(t, S2Compressor{}, codec)

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCodec_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"short code": []byte("1122"),
		"long code":  digitCode(4096),
		"text":       []byte(strings.Repeat("АБВГД ЕЁЖЗИ\n", 50)),
	}

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, input := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(input)
				if ct == format.CompressionLZ4 && err != nil {
					require.ErrorIs(t, err, ErrIncompressible)
					return
				}
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, input, decompressed)
			})
		}
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		out, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, out)

		out, err = codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, out)
	}
}

func TestCodec_CorruptData(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte("1234")
	codec := NewNoOpCompressor()

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestPack(t *testing.T) {
	t.Run("compresses long codes", func(t *testing.T) {
		code := digitCode(8192)
		for _, ct := range allTypes[1:] {
			used, packed, err := Pack(ct, code)
			require.NoError(t, err)
			require.Equal(t, ct, used)
			require.Less(t, len(packed), len(code))

			unpacked, err := Unpack(used, packed)
			require.NoError(t, err)
			require.Equal(t, code, unpacked)
		}
	})

	t.Run("falls back to none for tiny payloads", func(t *testing.T) {
		for _, ct := range allTypes {
			used, packed, err := Pack(ct, []byte("12"))
			require.NoError(t, err)
			require.Equal(t, format.CompressionNone, used)
			require.Equal(t, []byte("12"), packed)
		}
	})

	t.Run("empty", func(t *testing.T) {
		used, packed, err := Pack(format.CompressionZstd, nil)
		require.NoError(t, err)
		require.Equal(t, format.CompressionNone, used)
		require.Empty(t, packed)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, _, err := Pack(format.CompressionType(0x8), []byte("11"))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)

		_, err = Unpack(format.CompressionType(0x8), []byte("11"))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func BenchmarkPack(b *testing.B) {
	code := digitCode(16384)
	for _, ct := range allTypes {
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(code)))
			for b.Loop() {
				_, _, _ = Pack(ct, code)
			}
		})
	}
}
