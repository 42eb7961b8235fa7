// Package encoding implements the signed varint counter stream used by
// the histogram package's core wire format.
package encoding

import (
	"fmt"
	"io"

	"github.com/quantile-labs/hdrh/errs"
	"github.com/quantile-labs/hdrh/internal/pool"
)

// Flusher is implemented by writers that buffer internally and need an
// explicit signal to drain (e.g. bufio.Writer). EncodeCounts calls Flush
// after writing every byte of the stream, matching a sink contract of
// write_bytes plus flush.
type Flusher interface {
	Flush() error
}

// EncodeCounts writes counts as a sequence of sign-extending LEB128
// varints to w: positive values are literal counts, a negative value -k
// represents a run of k consecutive zero counters. Each varint's
// continuation bit is cleared only once the remaining high-order bits
// are a pure sign extension of the byte just emitted — this is what
// makes encode([0]) produce the single byte 127 (the sign-extending
// encoding of -1) rather than a classic zigzag mapping. The stream is
// assembled in a pooled buffer and written to w in one call, then w is
// flushed if it implements Flusher.
func EncodeCounts(w io.Writer, counts []int64) error {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	var zeros int64
	for _, c := range counts {
		if c == 0 {
			zeros++
			continue
		}

		if zeros > 0 {
			appendSigned(buf, -zeros)
			zeros = 0
		}
		appendSigned(buf, c)
	}
	if zeros > 0 {
		appendSigned(buf, -zeros)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}

	return nil
}

// appendSigned appends v to buf as a sign-extending LEB128 varint: seven
// payload bits per byte, continuation bit set on every byte except the
// last, where "last" means the remaining bits above the payload are
// entirely a sign extension of the payload's top bit.
func appendSigned(buf *pool.ByteBuffer, v int64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7

		signBitSet := b&0x40 != 0
		done := (v == 0 && !signBitSet) || (v == -1 && signBitSet)
		if !done {
			b |= 0x80
		}

		idx := buf.Len()
		buf.ExtendOrGrow(1)
		buf.B[idx] = b

		if done {
			return
		}
	}
}

// DecodeCounts reads a sign-extending LEB128 counter stream from data,
// expanding zero runs, and writes the decoded counters into dst from index
// 0. Zero runs skip their slots without writing, and a stream that covers
// fewer than len(dst) counters leaves the rest of dst untouched without
// error. It reports ErrCorruptStream if the stream ends mid-varint or
// decodes to more counters than dst has room for.
func DecodeCounts(data []byte, dst []int64) error {
	pos := 0
	i := int64(0)
	countsLen := int64(len(dst))

	for pos < len(data) {
		v, n, ok := decodeSigned(data, pos)
		if !ok {
			return fmt.Errorf("%w: truncated varint at byte %d", errs.ErrCorruptStream, pos)
		}
		pos = n

		if v < 0 {
			run := -v
			if i+run > countsLen {
				return fmt.Errorf("%w: zero run overflows counter array (have %d, need %d)", errs.ErrCorruptStream, countsLen, i+run)
			}
			i += run

			continue
		}

		if i >= countsLen {
			return fmt.Errorf("%w: decoded more counters than counter array holds (%d)", errs.ErrCorruptStream, countsLen)
		}
		dst[i] = v
		i++
	}

	return nil
}

// decodeSigned decodes a sign-extending LEB128 varint from data starting
// at offset.
func decodeSigned(data []byte, offset int) (int64, int, bool) {
	var result int64
	var shift uint

	pos := offset
	for {
		if pos >= len(data) {
			return 0, offset, false
		}
		if shift >= 64 {
			return 0, offset, false
		}

		b := data[pos]
		pos++

		result |= int64(b&0x7f) << shift
		shift += 7

		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}

			return result, pos, true
		}
	}
}
