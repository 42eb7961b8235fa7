// Package errs collects the sentinel errors returned across hdrh's
// packages. Call sites wrap these with fmt.Errorf("%w: detail", ...) to add
// context; callers that need to branch on failure mode use errors.Is against
// the sentinels here rather than string matching.
package errs

import "errors"

var (
	// ErrInvalidConfig is returned by New when (L, H, D) violate a
	// construction precondition: L <= 0, H < 2L, or D outside [1, 5].
	ErrInvalidConfig = errors.New("hdrh: invalid histogram configuration")

	// ErrIncompatibleLayout is returned by Merge when the receiver and the
	// argument were constructed with different derived parameters.
	ErrIncompatibleLayout = errors.New("hdrh: incompatible histogram layout")

	// ErrOutOfRange is returned by Record/RecordN when the value exceeds
	// the highest trackable value and the histogram's out-of-range policy
	// is set to Reject.
	ErrOutOfRange = errors.New("hdrh: value out of range")

	// ErrCounterOverflow is returned by RecordN when an increment would
	// push a counter past the ceiling implied by the histogram's
	// configured counter width.
	ErrCounterOverflow = errors.New("hdrh: counter overflow")

	// ErrInvalidHeaderSize is returned while decoding a core header or a
	// snapshot envelope whose fixed-size prefix is truncated.
	ErrInvalidHeaderSize = errors.New("hdrh: invalid header size")

	// ErrCorruptStream is returned when the signed LEB128 counter stream
	// ends mid-varint, or decodes to more counters than the histogram's
	// layout has slots for.
	ErrCorruptStream = errors.New("hdrh: corrupt counter stream")

	// ErrUnsupportedCodec is returned by DecodeSnapshot for an envelope
	// whose codec id does not match any registered compress.Codec.
	ErrUnsupportedCodec = errors.New("hdrh: unsupported snapshot codec")

	// ErrTagHashCollision is returned by Registry.GetOrCreate when two
	// distinct tag strings hash to the same 64-bit identifier.
	ErrTagHashCollision = errors.New("hdrh: tag hash collision")

	// ErrTagAlreadyRegistered is returned when a tag is registered twice
	// with different layout parameters.
	ErrTagAlreadyRegistered = errors.New("hdrh: tag already registered with a different layout")
)
