package compress

import "github.com/klauspost/compress/s2"

// S2Compressor is a Codec over a LEB128-encoded counter stream, favoring
// encode throughput over ratio. A reasonable default when snapshots are
// produced faster than they can be shipped.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress S2-compresses an encoded counter payload.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress S2-decompresses a section payload back into the counter stream.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
