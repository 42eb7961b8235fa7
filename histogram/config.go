package histogram

import (
	"fmt"
	"math/bits"

	"github.com/quantile-labs/hdrh/errs"
	"github.com/quantile-labs/hdrh/format"
	"github.com/quantile-labs/hdrh/internal/options"
)

// config holds the three positional construction parameters plus the
// functional options layered on top of them (counter width, out-of-range
// policy, tag). It is consumed once by New and then embedded, read-only,
// in the resulting Histogram.
type config struct {
	lowest  int64
	highest int64
	digits  int64

	counterWidth     format.CounterWidth
	outOfRangePolicy format.OutOfRangePolicy
	tag              string
}

// Option configures a Histogram at construction time. Options never affect
// the core wire format produced by Encode; they are construction-time
// behavior only.
type Option = options.Option[*config]

func newConfig(lowest, highest, digits int64) *config {
	return &config{
		lowest:           lowest,
		highest:          highest,
		digits:           digits,
		counterWidth:     format.Width64,
		outOfRangePolicy: format.Saturate,
	}
}

// WithCounterWidth sets the saturation ceiling RecordN enforces before
// reporting ErrCounterOverflow. Storage is always a 64-bit counter array;
// this only changes the documented ceiling, matching the "narrower-counter
// variant is a parameter on the type, not a new algorithm" design note.
func WithCounterWidth(w format.CounterWidth) Option {
	return options.New(func(c *config) error {
		switch w {
		case format.Width16, format.Width32, format.Width64:
			c.counterWidth = w
			return nil
		default:
			return fmt.Errorf("%w: counter width %d", errs.ErrInvalidConfig, w)
		}
	})
}

// WithOutOfRangePolicy resolves what Record/RecordN do when given a value
// greater than the highest trackable value. The default is Saturate.
func WithOutOfRangePolicy(p format.OutOfRangePolicy) Option {
	return options.New(func(c *config) error {
		switch p {
		case format.Saturate, format.Reject:
			c.outOfRangePolicy = p
			return nil
		default:
			return fmt.Errorf("%w: out-of-range policy %d", errs.ErrInvalidConfig, p)
		}
	})
}

// WithTag attaches a free-form descriptive label to the histogram. It never
// participates in index arithmetic; it is the key the Registry uses to look
// histograms up by name.
func WithTag(tag string) Option {
	return options.NoError(func(c *config) {
		c.tag = tag
	})
}

// params are the geometric layout constants derived from (L, H, D).
type params struct {
	lowest  int64
	highest int64
	digits  int64

	unitMagnitude               uint // u
	subBucketCountMagnitude     uint
	subBucketHalfCountMagnitude uint // m
	subBucketCount              int64 // S
	subBucketHalfCount          int64 // S/2
	subBucketMask               int64
	bucketCount                 int64 // B
	countsLen                   int64
}

// deriveParams is a pure function of (L, H, D) producing the geometric
// layout constants. It fails with ErrInvalidConfig when L <= 0, H < 2L,
// or D is outside [1, 5].
//
// sub_bucket_count_magnitude is computed as the bit-length of
// (2*10^D - 1), which is exactly ceil(log2(2*10^D)) for every D in [1, 5] —
// integer bit-length arithmetic rather than floating-point log2, for
// deterministic cross-platform results.
func deriveParams(lowest, highest, digits int64) (params, error) {
	if lowest <= 0 {
		return params{}, fmt.Errorf("%w: lowest_discernible_value must be positive, got %d", errs.ErrInvalidConfig, lowest)
	}
	if highest < 2*lowest {
		return params{}, fmt.Errorf("%w: highest_trackable_value %d must be >= 2*lowest_discernible_value %d", errs.ErrInvalidConfig, highest, lowest)
	}
	if digits < 1 || digits > 5 {
		return params{}, fmt.Errorf("%w: significant_digits must be in [1, 5], got %d", errs.ErrInvalidConfig, digits)
	}

	u := uint(bits.Len64(uint64(lowest))) - 1

	largestValueWithSingleUnitResolution := int64(2) * pow10(digits)
	subBucketCountMagnitude := uint(bits.Len64(uint64(largestValueWithSingleUnitResolution - 1)))

	m := subBucketCountMagnitude - 1
	if m < 1 {
		m = 1
	}

	subBucketCount := int64(1) << (m + 1)
	subBucketHalfCount := subBucketCount / 2
	subBucketMask := (subBucketCount - 1) << u

	var bucketCount int64 = 1
	smallestUntrackableValue := subBucketCount << u
	for smallestUntrackableValue < highest {
		if smallestUntrackableValue > (1<<62)/2 {
			// Doubling would overflow a 63-bit signed range; this bucket
			// is the last one regardless of highest.
			break
		}
		smallestUntrackableValue <<= 1
		bucketCount++
	}

	countsLen := (bucketCount + 1) * subBucketHalfCount

	return params{
		lowest:                       lowest,
		highest:                      highest,
		digits:                       digits,
		unitMagnitude:                u,
		subBucketCountMagnitude:      subBucketCountMagnitude,
		subBucketHalfCountMagnitude:  m,
		subBucketCount:               subBucketCount,
		subBucketHalfCount:           subBucketHalfCount,
		subBucketMask:                subBucketMask,
		bucketCount:                  bucketCount,
		countsLen:                    countsLen,
	}, nil
}

func pow10(n int64) int64 {
	r := int64(1)
	for i := int64(0); i < n; i++ {
		r *= 10
	}
	return r
}
