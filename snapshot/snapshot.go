// Package snapshot implements the compressed snapshot codec: a
// general-purpose-compressed wrapper around the histogram package's core
// wire format, fronted by the fixed-width section.EnvelopeHeader and a
// LEB128-encoded payload length.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/quantile-labs/hdrh/compress"
	"github.com/quantile-labs/hdrh/errs"
	"github.com/quantile-labs/hdrh/format"
	"github.com/quantile-labs/hdrh/histogram"
	"github.com/quantile-labs/hdrh/internal/hash"
	"github.com/quantile-labs/hdrh/internal/pool"
	"github.com/quantile-labs/hdrh/section"
)

// fingerprint computes the layout fingerprint stored in a snapshot's
// envelope: the xxHash64 of the histogram's (L, H, D), formatted as a
// colon-separated decimal string. It is cheap enough to recompute on every
// VerifyLayout call rather than caching it anywhere.
func fingerprint(lowest, highest, digits int64) uint64 {
	return hash.ID(fmt.Sprintf("%d:%d:%d", lowest, highest, digits))
}

// EncodeSnapshot runs h's core wire format (histogram.Encode) into a pooled
// buffer, compresses that buffer with the codec named by compressionType,
// and writes the envelope — codec id, layout fingerprint, LEB128 payload
// length, compressed payload — to w.
func EncodeSnapshot(h *histogram.Histogram, w io.Writer, compressionType format.CompressionType) error {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnsupportedCodec, err)
	}

	raw := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(raw)

	if err := h.Encode(raw); err != nil {
		return err
	}

	compressed, err := codec.Compress(raw.Bytes())
	if err != nil {
		return err
	}

	header := section.EnvelopeHeader{
		CodecID:     compressionType,
		Fingerprint: fingerprint(h.LowestDiscernibleValue(), h.HighestTrackableValue(), h.SignificantDigits()),
	}

	out := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(out)

	out.MustWrite(header.Bytes())
	out.B = binary.AppendUvarint(out.B, uint64(len(compressed)))
	out.MustWrite(compressed)

	_, err = w.Write(out.Bytes())

	return err
}

// DecodeSnapshot reads a full envelope from r, decompresses the payload
// with the codec named by its codec id, and decodes the result through the
// core histogram.Decode path.
func DecodeSnapshot(r io.Reader) (*histogram.Histogram, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	header, rest, err := section.ParseEnvelopeHeader(data)
	if err != nil {
		return nil, err
	}

	payload, err := parsePayload(rest)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.CodecID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnsupportedCodec, err)
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, err
	}

	return histogram.Decode(raw)
}

// parsePayload reads the LEB128 payload length prefix from data and
// returns the payload bytes that follow it.
func parsePayload(data []byte) ([]byte, error) {
	length, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, fmt.Errorf("%w: truncated payload length prefix", errs.ErrInvalidHeaderSize)
	}

	data = data[n:]
	if uint64(len(data)) < length {
		return nil, fmt.Errorf("%w: payload needs %d bytes, got %d", errs.ErrInvalidHeaderSize, length, len(data))
	}

	return data[:length], nil
}

// VerifyLayout reports whether a snapshot's envelope fingerprint is
// consistent with the layout a caller already expects to decode into,
// without decompressing or decoding the payload. Callers that already know
// (L, H, D) — e.g. a fixed deployment configuration — use this as an O(1)
// pre-check before paying for decompression.
func VerifyLayout(data []byte, lowest, highest, digits int64) (bool, error) {
	header, _, err := section.ParseEnvelopeHeader(data)
	if err != nil {
		return false, err
	}

	return header.Fingerprint == fingerprint(lowest, highest, digits), nil
}
