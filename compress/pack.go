package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/polybius/format"
)

// ErrIncompressible is returned by codecs that cannot represent data more compactly.
var ErrIncompressible = errors.New("data is incompressible")

// Pack compresses data with the requested algorithm and reports the algorithm
// actually used.
//
// When the codec reports ErrIncompressible, or its output is not smaller than
// the input, data is stored uncompressed and CompressionNone is returned. Small
// payloads such as key files usually end up uncompressed this way.
func Pack(requested format.CompressionType, data []byte) (format.CompressionType, []byte, error) {
	codec, err := GetCodec(requested)
	if err != nil {
		return 0, nil, err
	}

	if requested == format.CompressionNone || len(data) == 0 {
		return format.CompressionNone, data, nil
	}

	packed, err := codec.Compress(data)
	if errors.Is(err, ErrIncompressible) || (err == nil && len(packed) >= len(data)) {
		return format.CompressionNone, data, nil
	}
	if err != nil {
		return 0, nil, fmt.Errorf("%s compression failed: %w", requested, err)
	}

	return requested, packed, nil
}

// Unpack reverses Pack for the algorithm recorded alongside the data.
func Unpack(used format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(used)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", used, err)
	}

	return out, nil
}
