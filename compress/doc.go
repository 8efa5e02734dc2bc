// Package compress provides the payload codecs used by polybius key files and
// ciphertext containers.
//
// A digit code is a long run of bytes drawn from '0'..'9', which general-purpose
// compressors reduce substantially. The package wraps four algorithms behind one
// interface:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Supported algorithms (format.CompressionType):
//   - None: pass-through (NoOpCompressor)
//   - Zstd: best ratio; pure Go by default, cgo gozstd with the gozstd build tag
//   - S2: balanced speed and ratio (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4/v4, block format)
//
// Most callers use Pack and Unpack, which fall back to None when compression
// would not shrink the payload:
//
//	used, packed, err := compress.Pack(format.CompressionZstd, code)
//	if err != nil {
//	    return err
//	}
//	header.Flag.SetCompression(used)
//
// All codecs are stateless values and safe for concurrent use; pooled encoder and
// decoder instances are managed internally.
package compress
