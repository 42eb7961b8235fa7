// Package compress provides general-purpose compression and decompression
// codecs for the compressed snapshot envelope.
//
// # Overview
//
// Snapshots apply a two-stage strategy:
//
//  1. Encoding: the histogram's own sign-extending LEB128 counter stream
//     already exploits the long runs of zero counters typical of sparse
//     histograms.
//  2. Compression: this package's codecs further reduce the encoded
//     stream using general-purpose algorithms.
//
// The compress package implements the second stage, supporting:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Choosing a codec
//
//   - Zstd for cold storage and network transmission, where storage cost
//     and bandwidth dominate.
//   - S2 for a balance between ratio and speed, e.g. periodic snapshot
//     export on a hot path.
//   - LZ4 when decompression speed dominates, e.g. frequent snapshot
//     re-reads for dashboards.
//   - None when the caller already compresses the envelope at a layer
//     above, or when CPU is scarcer than storage.
//
// # Thread safety
//
// All codec implementations are safe for concurrent use.
package compress
