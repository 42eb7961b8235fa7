package registry

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/quantile-labs/hdrh/errs"
	"github.com/quantile-labs/hdrh/format"
	"github.com/quantile-labs/hdrh/internal/pool"
	"github.com/quantile-labs/hdrh/snapshot"
)

// EncodeAll snapshot-encodes every histogram currently registered in r
// into a single archive written to w: a varint entry count, then for each
// entry a varint-length-prefixed tag followed by a varint-length-prefixed
// snapshot envelope (the same format snapshot.EncodeSnapshot produces for
// one histogram). The archive is assembled in a pooled batch buffer so a
// registry-wide flush costs one Write to w instead of one per histogram.
func EncodeAll(r *Registry, w io.Writer, compressionType format.CompressionType) error {
	r.mu.RLock()
	entries := make([]entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	batch := pool.GetBatchBuffer()
	defer pool.PutBatchBuffer(batch)

	batch.B = binary.AppendUvarint(batch.B, uint64(len(entries)))

	for _, e := range entries {
		batch.B = binary.AppendUvarint(batch.B, uint64(len(e.tag)))
		batch.MustWrite([]byte(e.tag))

		buf := pool.GetStreamBuffer()
		err := snapshot.EncodeSnapshot(e.h, buf, compressionType)
		if err != nil {
			pool.PutStreamBuffer(buf)
			return fmt.Errorf("encode tag %q: %w", e.tag, err)
		}

		batch.B = binary.AppendUvarint(batch.B, uint64(buf.Len()))
		batch.MustWrite(buf.Bytes())
		pool.PutStreamBuffer(buf)
	}

	_, err := w.Write(batch.Bytes())

	return err
}

// DecodeAll reads an archive produced by EncodeAll and returns a new
// Registry populated with one histogram per entry, each retrievable by
// its original tag exactly as if it had been registered individually via
// GetOrCreate.
func DecodeAll(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, fmt.Errorf("%w: truncated entry count", errs.ErrInvalidHeaderSize)
	}
	data = data[n:]

	reg := New()
	for i := uint64(0); i < count; i++ {
		var tag string
		tag, data, err = readPrefixedString(data)
		if err != nil {
			return nil, err
		}

		var snap []byte
		snap, data, err = readPrefixedBytes(data)
		if err != nil {
			return nil, err
		}

		h, err := snapshot.DecodeSnapshot(bytes.NewReader(snap))
		if err != nil {
			return nil, fmt.Errorf("decode tag %q: %w", tag, err)
		}
		h.SetTag(tag)

		reg.entries[reg.hashFn(tag)] = entry{
			tag:     tag,
			h:       h,
			lowest:  h.LowestDiscernibleValue(),
			highest: h.HighestTrackableValue(),
			digits:  h.SignificantDigits(),
		}
	}

	return reg, nil
}

// readPrefixedString reads a varint length followed by that many bytes
// from data, returning the decoded string and the remaining bytes.
func readPrefixedString(data []byte) (string, []byte, error) {
	b, rest, err := readPrefixedBytes(data)
	if err != nil {
		return "", nil, err
	}

	return string(b), rest, nil
}

// readPrefixedBytes reads a varint length followed by that many bytes
// from data, returning the slice and the remaining bytes.
func readPrefixedBytes(data []byte) ([]byte, []byte, error) {
	length, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: truncated length prefix", errs.ErrInvalidHeaderSize)
	}
	data = data[n:]

	if uint64(len(data)) < length {
		return nil, nil, fmt.Errorf("%w: needs %d bytes, got %d", errs.ErrInvalidHeaderSize, length, len(data))
	}

	return data[:length], data[length:], nil
}
