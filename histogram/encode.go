package histogram

import (
	"fmt"
	"io"

	"github.com/quantile-labs/hdrh/encoding"
	"github.com/quantile-labs/hdrh/endian"
	"github.com/quantile-labs/hdrh/errs"
)

// HeaderSize is the size, in bytes, of the fixed prefix Encode writes
// before the counter stream: 8 bytes L, 8 bytes H, 1 byte D.
const HeaderSize = 8 + 8 + 1

// wireEndian is the byte order used by the core wire format. Fixed at
// big-endian regardless of host native order, so encoded streams are
// portable across machines.
var wireEndian = endian.GetBigEndianEngine()

// Encode writes h's core wire format to w: the fixed header described by
// HeaderSize followed by the sign-extending LEB128 counter stream, and
// nothing else. This format never changes regardless of which
// construction options were used — counter width and out-of-range policy
// are construction-time behavior, not wire-format fields, and are not
// recoverable from a decoded stream.
func (h *Histogram) Encode(w io.Writer) error {
	var header [HeaderSize]byte
	wireEndian.PutUint64(header[0:8], uint64(h.p.lowest))   //nolint:gosec
	wireEndian.PutUint64(header[8:16], uint64(h.p.highest)) //nolint:gosec
	header[16] = byte(h.p.digits)

	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	return encoding.EncodeCounts(w, h.counts)
}

// Decode reads a core wire format stream produced by Encode and
// reconstructs a Histogram at the derived layout, with default
// construction options (Width64 counter width, Saturate out-of-range
// policy, no tag) — those are never recoverable from the stream, by
// design. It reports ErrInvalidHeaderSize if data is
// shorter than HeaderSize, and ErrCorruptStream if the counter stream is
// truncated or overflows the derived counter array.
func Decode(data []byte) (*Histogram, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	lowest := int64(wireEndian.Uint64(data[0:8]))   //nolint:gosec
	highest := int64(wireEndian.Uint64(data[8:16])) //nolint:gosec
	digits := int64(data[16])

	h, err := New(lowest, highest, digits)
	if err != nil {
		return nil, err
	}

	if err := encoding.DecodeCounts(data[HeaderSize:], h.counts); err != nil {
		return nil, err
	}

	for _, c := range h.counts {
		h.totalCount += c
	}

	return h, nil
}
