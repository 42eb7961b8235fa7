// Package format defines the small set of wire-level enumerations shared
// across the histogram, snapshot, and compress packages.
package format

type (
	// CompressionType selects the general-purpose compressor used by the
	// snapshot envelope (see package snapshot). It never affects the core
	// 17-byte-header wire format produced by (*histogram.Histogram).Encode.
	CompressionType uint8

	// CounterWidth documents the saturation ceiling a histogram enforces
	// on RecordN, per the "narrower-counter variant" design note. Storage
	// is always a 64-bit counter array; the width only changes the point
	// at which RecordN reports ErrCounterOverflow instead of accepting
	// the increment.
	CounterWidth uint8

	// OutOfRangePolicy resolves what Record/RecordN do when given a value
	// greater than the histogram's highest trackable value.
	OutOfRangePolicy uint8
)

const (
	CompressionNone CompressionType = 0x01 // CompressionNone performs no compression.
	CompressionZstd CompressionType = 0x02 // CompressionZstd uses Zstandard.
	CompressionS2   CompressionType = 0x03 // CompressionS2 uses S2 (a Snappy derivative).
	CompressionLZ4  CompressionType = 0x04 // CompressionLZ4 uses LZ4.
)

const (
	Width16 CounterWidth = 16
	Width32 CounterWidth = 32
	Width64 CounterWidth = 64
)

const (
	// Saturate clamps out-of-range values into the last bucket.
	Saturate OutOfRangePolicy = iota
	// Reject returns ErrOutOfRange and performs no mutation.
	Reject
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (w CounterWidth) String() string {
	switch w {
	case Width16:
		return "16-bit"
	case Width32:
		return "32-bit"
	case Width64:
		return "64-bit"
	default:
		return "unknown"
	}
}

// MaxCount returns the largest per-counter value this width allows before
// RecordN must report ErrCounterOverflow.
func (w CounterWidth) MaxCount() int64 {
	switch w {
	case Width16:
		return (1 << 16) - 1
	case Width32:
		return (1 << 32) - 1
	default:
		return 1<<63 - 1
	}
}

func (p OutOfRangePolicy) String() string {
	switch p {
	case Saturate:
		return "Saturate"
	case Reject:
		return "Reject"
	default:
		return "unknown"
	}
}
