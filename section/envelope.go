// Package section defines the fixed-size header sections used outside the
// histogram's core wire format — currently just the snapshot envelope
// that the snapshot package wraps a compressed core-encoded stream in.
package section

import (
	"fmt"

	"github.com/quantile-labs/hdrh/endian"
	"github.com/quantile-labs/hdrh/errs"
	"github.com/quantile-labs/hdrh/format"
)

// FixedSize is the size, in bytes, of EnvelopeHeader's fixed-width
// fields: 1 byte codec id + 8 bytes fingerprint. The payload length that
// follows is a LEB128 varint and is not part of this constant.
const FixedSize = 1 + 8

// wireEndian is the byte order used by the envelope header, fixed at
// big-endian for portability across machines.
var wireEndian = endian.GetBigEndianEngine()

// EnvelopeHeader is the fixed-width prefix of a compressed snapshot
// envelope: a codec id identifying the general-purpose compressor the
// payload was compressed with, and a layout fingerprint enabling a cheap
// pre-decode compatibility check.
type EnvelopeHeader struct {
	// CodecID selects the compressor the payload was compressed with.
	CodecID format.CompressionType
	// Fingerprint is the xxHash64 of the originating histogram's
	// (L, H, D), used by VerifyLayout for an O(1) pre-decode check.
	Fingerprint uint64
}

// Bytes serializes the fixed-width fields of h. The caller appends the
// LEB128-encoded payload length and the payload itself after this.
func (h EnvelopeHeader) Bytes() []byte {
	b := make([]byte, FixedSize)
	b[0] = byte(h.CodecID)
	wireEndian.PutUint64(b[1:9], h.Fingerprint)

	return b
}

// ParseEnvelopeHeader parses the fixed-width fields from the start of
// data. It reports ErrInvalidHeaderSize if data is shorter than
// FixedSize, and the remaining, unconsumed bytes for the caller to
// continue parsing the varint length and payload from.
func ParseEnvelopeHeader(data []byte) (EnvelopeHeader, []byte, error) {
	if len(data) < FixedSize {
		return EnvelopeHeader{}, nil, fmt.Errorf("%w: envelope header needs %d bytes, got %d", errs.ErrInvalidHeaderSize, FixedSize, len(data))
	}

	h := EnvelopeHeader{
		CodecID:     format.CompressionType(data[0]),
		Fingerprint: wireEndian.Uint64(data[1:9]),
	}

	return h, data[FixedSize:], nil
}
