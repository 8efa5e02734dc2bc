// Package container frames a payload behind a section.Header, compressing it
// on the way out and verifying it on the way in. Key files and ciphertext
// containers are both built on it.
package container

import (
	"bytes"
	"fmt"

	"github.com/arloliu/polybius/compress"
	"github.com/arloliu/polybius/format"
	"github.com/arloliu/polybius/internal/pool"
	"github.com/arloliu/polybius/section"
)

// Write compresses raw with the requested algorithm (falling back to none when it
// does not help), completes header with the compression, sizes and checksum,
// and returns header bytes followed by the stored payload.
func Write(header *section.Header, raw []byte, requested format.CompressionType) ([]byte, error) {
	used, stored, err := compress.Pack(requested, raw)
	if err != nil {
		return nil, err
	}

	header.Flag.SetCompression(used)
	if err := header.SetPayload(raw, len(stored)); err != nil {
		return nil, err
	}

	buf := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(buf)

	buf.Grow(section.HeaderSize + len(stored))
	buf.B = header.AppendTo(buf.B)
	_, _ = buf.Write(stored)

	return bytes.Clone(buf.Bytes()), nil
}

// Read parses the header, checks it carries the expected magic, decompresses the
// payload and verifies its size and CRC32.
func Read(data []byte, magic uint16) (*section.Header, []byte, error) {
	header, stored, err := section.ParseHeader(data, magic)
	if err != nil {
		return nil, nil, err
	}

	raw, err := compress.Unpack(header.Flag.GetCompression(), stored)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if err := header.VerifyPayload(raw); err != nil {
		return nil, nil, err
	}

	return header, raw, nil
}
