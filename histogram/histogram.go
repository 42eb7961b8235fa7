// Package histogram implements a fixed-memory HDR-style histogram: a
// bucketed counter array with bounded relative error per decade, O(1)
// recording and O(countsLen) summary statistics.
package histogram

import (
	"fmt"

	"github.com/quantile-labs/hdrh/errs"
	"github.com/quantile-labs/hdrh/format"
	"github.com/quantile-labs/hdrh/internal/options"
)

// Histogram is a single-threaded, fixed-layout bucketed counter array. It
// must not be called from more than one execution context concurrently;
// callers that need concurrent recording shard histograms per goroutine
// and merge periodically, or wrap the whole structure in external mutual
// exclusion. See package registry for a concurrency-safe collection of
// many named histograms.
type Histogram struct {
	p      params
	counts []int64

	totalCount int64

	counterWidth     format.CounterWidth
	outOfRangePolicy format.OutOfRangePolicy
	tag              string
}

// New constructs a Histogram for the value range [0, highest], resolving
// every observation to the significant decimal digits requested by
// digits. It fails with ErrInvalidConfig when lowest <= 0, highest <
// 2*lowest, or digits is outside [1, 5].
func New(lowest, highest, digits int64, opts ...Option) (*Histogram, error) {
	cfg := newConfig(lowest, highest, digits)
	// options.Apply reports ErrInvalidConfig when WithCounterWidth or
	// WithOutOfRangePolicy is given an unsupported value.
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	p, err := deriveParams(lowest, highest, digits)
	if err != nil {
		return nil, err
	}

	return &Histogram{
		p:                p,
		counts:           make([]int64, p.countsLen),
		counterWidth:     cfg.counterWidth,
		outOfRangePolicy: cfg.outOfRangePolicy,
		tag:              cfg.tag,
	}, nil
}

// clampToRange handles v > highest per the configured out-of-range
// policy: Saturate clamps v into the last bucket; Reject reports
// ErrOutOfRange. Read-only queries (Count,
// LowestEquivalentValue, HighestEquivalentValue) always saturate — only
// Record/RecordN observe the Reject policy, since a read must be total.
func (h *Histogram) clampToRange(v int64, enforcePolicy bool) (int64, error) {
	if v <= h.p.highest {
		return v, nil
	}

	if enforcePolicy && h.outOfRangePolicy == format.Reject {
		return 0, fmt.Errorf("%w: value %d exceeds highest trackable value %d", errs.ErrOutOfRange, v, h.p.highest)
	}

	return h.p.highest, nil
}

// Record increments the counter v maps to by one and TotalCount by one.
func (h *Histogram) Record(v int64) error {
	return h.RecordN(v, 1)
}

// RecordN increments the counter v maps to by n and TotalCount by n. It
// reports ErrCounterOverflow, performing no mutation, when the resulting
// counter would exceed the ceiling implied by the histogram's configured
// counter width.
func (h *Histogram) RecordN(v, n int64) error {
	clamped, err := h.clampToRange(v, true)
	if err != nil {
		return err
	}

	idx := h.p.countsIndexFor(clamped)

	max := h.counterWidth.MaxCount()
	if h.counts[idx]+n > max {
		return fmt.Errorf("%w: counter at index %d would exceed %d-bit ceiling %d", errs.ErrCounterOverflow, idx, h.counterWidth, max)
	}

	h.counts[idx] += n
	h.totalCount += n

	return nil
}

// Count returns the counter value for v (equivalently, for
// LowestEquivalentValue(v)).
func (h *Histogram) Count(v int64) int64 {
	clamped, _ := h.clampToRange(v, false)

	return h.counts[h.p.countsIndexFor(clamped)]
}

// TotalCount returns the sum of every counter, maintained incrementally.
func (h *Histogram) TotalCount() int64 {
	return h.totalCount
}

// CountsLen returns the length of the underlying counter array.
func (h *Histogram) CountsLen() int64 {
	return h.p.countsLen
}

// LowestDiscernibleValue returns the L the histogram was constructed with.
func (h *Histogram) LowestDiscernibleValue() int64 { return h.p.lowest }

// HighestTrackableValue returns the H the histogram was constructed with.
func (h *Histogram) HighestTrackableValue() int64 { return h.p.highest }

// SignificantDigits returns the D the histogram was constructed with.
func (h *Histogram) SignificantDigits() int64 { return h.p.digits }

// LowestEquivalentValue returns the smallest value that maps to the same
// counter as v.
func (h *Histogram) LowestEquivalentValue(v int64) int64 {
	clamped, _ := h.clampToRange(v, false)

	return h.p.lowestEquivalentValue(clamped)
}

// HighestEquivalentValue returns the largest value that maps to the same
// counter as v.
func (h *Histogram) HighestEquivalentValue(v int64) int64 {
	clamped, _ := h.clampToRange(v, false)

	return h.p.highestEquivalentValue(clamped)
}

// MedianEquivalentValue returns lowest/2 + highest/2 + 1 for v's
// equivalent range (see medianEquivalentValue for the single-value case).
func (h *Histogram) MedianEquivalentValue(v int64) int64 {
	clamped, _ := h.clampToRange(v, false)

	return h.p.medianEquivalentValue(clamped)
}

// Tag returns the histogram's free-form descriptive label.
func (h *Histogram) Tag() string { return h.tag }

// SetTag replaces the histogram's free-form descriptive label.
func (h *Histogram) SetTag(tag string) { h.tag = tag }

// ByteSize returns the in-memory footprint of the counter array plus the
// scalar TotalCount field: len(counts)*8 + 8 bytes.
func (h *Histogram) ByteSize() int {
	return len(h.counts)*8 + 8
}

// sameLayout reports whether h and other were derived from identical
// (L, H, D), and therefore share an index scheme.
func (h *Histogram) sameLayout(other *Histogram) bool {
	return h.p.lowest == other.p.lowest &&
		h.p.highest == other.p.highest &&
		h.p.digits == other.p.digits
}

// Merge adds other's counters and TotalCount into h, element-wise. It
// reports ErrIncompatibleLayout, modifying neither histogram, when h and
// other were constructed with different (L, H, D).
func (h *Histogram) Merge(other *Histogram) error {
	if !h.sameLayout(other) {
		return fmt.Errorf("%w: merging (%d,%d,%d) into (%d,%d,%d)",
			errs.ErrIncompatibleLayout,
			other.p.lowest, other.p.highest, other.p.digits,
			h.p.lowest, h.p.highest, h.p.digits)
	}

	for i, c := range other.counts {
		h.counts[i] += c
	}
	h.totalCount += other.totalCount

	return nil
}
