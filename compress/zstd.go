package compress

// ZstdCompressor provides Zstandard compression.
//
// Digit codes use at most ten distinct byte values, so zstd's entropy stage
// shrinks them well; it is the best ratio of the built-in codecs for large
// ciphertexts.
//
// The default build uses the pure-Go klauspost/compress implementation. Building
// with the gozstd tag and cgo enabled switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(code)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
