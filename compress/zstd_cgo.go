//go:build nobuild

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress Zstandard-compresses an encoded counter payload via cgo.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress Zstandard-decompresses a section payload back into the counter stream, via cgo.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
