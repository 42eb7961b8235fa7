// Package hdrh implements a high dynamic range histogram: a fixed-layout,
// bucketed counter array that records integer values across several orders
// of magnitude while bounding relative error to a configured number of
// significant decimal digits, using a constant amount of memory regardless
// of how many values are recorded or how wide their range is.
//
// # Core Features
//
//   - Constant-memory recording: memory use depends only on
//     (lowest, highest, significantDigits), never on the number of
//     recorded values
//   - Bounded relative error: every bucket covers values within a fixed
//     percentage of each other, configurable via significant digits
//   - Compact, portable wire format with optional general-purpose
//     compression (None, Zstd, S2, LZ4) for storage and transport
//   - A concurrency-safe Registry for managing many tagged histograms,
//     e.g. one per RPC endpoint
//   - Curve-fitting regression tools for estimating snapshot size as a
//     function of recorded count
//
// # Basic Usage
//
// Creating a histogram and recording values:
//
//	import "github.com/quantile-labs/hdrh"
//
//	h, err := hdrh.New(1, 3600000000, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h.Record(1200)
//	h.RecordN(50, 10)
//
//	fmt.Println(h.Percentile(99), h.Mean(), h.StdDev())
//
// Encoding a snapshot for storage or transport:
//
//	var buf bytes.Buffer
//	if err := hdrh.EncodeSnapshot(h, &buf, format.CompressionZstd); err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := hdrh.DecodeSnapshot(&buf)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the histogram
// and snapshot packages, simplifying the most common use cases. For
// advanced usage and fine-grained control — custom counter widths,
// out-of-range policies, registries, regression analysis — use the
// histogram, snapshot, registry, and regression packages directly.
package hdrh

import (
	"io"

	"github.com/quantile-labs/hdrh/format"
	"github.com/quantile-labs/hdrh/histogram"
	"github.com/quantile-labs/hdrh/snapshot"
)

// New creates a histogram able to discern values down to lowest, track
// values up to highest, and preserve significantDigits decimal digits of
// precision across that range.
//
// Parameters:
//   - lowest: smallest value the histogram can discern, must be >= 1
//   - highest: largest value the histogram can track, must be >= 2*lowest
//   - significantDigits: decimal digits of precision to preserve, 1 to 5
//   - opts: optional configuration functions (see histogram.Option)
//
// Returns:
//   - *histogram.Histogram: the created histogram
//   - error: an error if the configuration is invalid
//
// Available options:
//   - histogram.WithCounterWidth(format.Width16|Width32|Width64)
//   - histogram.WithOutOfRangePolicy(format.Saturate|Reject)
//   - histogram.WithTag(string)
//
// Example:
//
//	h, err := hdrh.New(1, 3600000000, 3, histogram.WithTag("rpc_latency_us"))
func New(lowest, highest, significantDigits int64, opts ...histogram.Option) (*histogram.Histogram, error) {
	return histogram.New(lowest, highest, significantDigits, opts...)
}

// Decode reconstructs a histogram from data previously produced by
// (*histogram.Histogram).Encode — the uncompressed core wire format, not a
// compressed snapshot envelope. Use DecodeSnapshot for envelope-wrapped
// data.
func Decode(data []byte) (*histogram.Histogram, error) {
	return histogram.Decode(data)
}

// EncodeSnapshot writes h's compressed snapshot envelope to w: the core
// wire format compressed with the codec named by compressionType, fronted
// by a fixed-width header carrying a layout fingerprint for a cheap
// pre-decode compatibility check.
//
// Example:
//
//	var buf bytes.Buffer
//	err := hdrh.EncodeSnapshot(h, &buf, format.CompressionZstd)
func EncodeSnapshot(h *histogram.Histogram, w io.Writer, compressionType format.CompressionType) error {
	return snapshot.EncodeSnapshot(h, w, compressionType)
}

// DecodeSnapshot reads a compressed snapshot envelope from r and returns
// the reconstructed histogram.
//
// Example:
//
//	decoded, err := hdrh.DecodeSnapshot(bytes.NewReader(data))
func DecodeSnapshot(r io.Reader) (*histogram.Histogram, error) {
	return snapshot.DecodeSnapshot(r)
}

// VerifyLayout reports whether a snapshot's envelope fingerprint is
// consistent with the (lowest, highest, significantDigits) layout a caller
// already expects to decode into, without decompressing or decoding the
// payload.
//
// Example:
//
//	ok, err := hdrh.VerifyLayout(data, 1, 3600000000, 3)
func VerifyLayout(data []byte, lowest, highest, significantDigits int64) (bool, error) {
	return snapshot.VerifyLayout(data, lowest, highest, significantDigits)
}
