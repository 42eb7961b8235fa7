package histogram

import "math"

// Min returns the first non-empty bucket's LowestEquivalentValue, or 0 if
// TotalCount is zero.
func (h *Histogram) Min() int64 {
	for b := range h.Iterator().All() {
		if b.Count > 0 {
			return b.LowestEquivalentValue
		}
	}

	return 0
}

// Max returns the last non-empty bucket's HighestEquivalentValue, or 0 if
// TotalCount is zero.
func (h *Histogram) Max() int64 {
	var max int64
	for b := range h.Iterator().All() {
		if b.Count > 0 {
			max = b.HighestEquivalentValue
		}
	}

	return max
}

// Mean returns Σ(count·medianEquivalentValue)/TotalCount using integer
// division, or 0 if TotalCount is zero.
func (h *Histogram) Mean() int64 {
	if h.totalCount == 0 {
		return 0
	}

	var sum int64
	for b := range h.Iterator().All() {
		if b.Count == 0 {
			continue
		}
		median := medianOf(b.LowestEquivalentValue, b.HighestEquivalentValue)
		sum += b.Count * median
	}

	return sum / h.totalCount
}

// StdDev returns sqrt(Σcount·(median-mean)²/TotalCount), or 0 if
// TotalCount is zero. Uses medianEquivalentValue as the representative
// value of each counter.
func (h *Histogram) StdDev() int64 {
	if h.totalCount == 0 {
		return 0
	}

	mean := h.Mean()

	var sumSquares float64
	for b := range h.Iterator().All() {
		if b.Count == 0 {
			continue
		}
		median := medianOf(b.LowestEquivalentValue, b.HighestEquivalentValue)
		diff := float64(median - mean)
		sumSquares += float64(b.Count) * diff * diff
	}

	variance := sumSquares / float64(h.totalCount)

	return int64(math.Sqrt(variance))
}

// medianOf returns lowest/2 + highest/2 + 1, which does not overflow near
// the top of the trackable range, mirroring params.medianEquivalentValue.
func medianOf(lowest, highest int64) int64 {
	return lowest/2 + highest/2 + 1
}

// Percentiles computes, in a single forward pass over the bucket
// iterator, the value at each requested percentile. targets must be
// sorted ascending in [0.0, 100.0]; results are correspondingly
// non-decreasing (P8). Running the iterator once rather than once per
// target turns a would-be O(k·CountsLen()) query into O(CountsLen()).
//
// A target of 0.0 returns the first non-empty bucket's
// LowestEquivalentValue (the same value as Min); every other target
// returns HighestEquivalentValue, applied consistently.
// Returns all zeros when TotalCount is zero.
func (h *Histogram) Percentiles(targets []float64) []int64 {
	results := make([]int64, len(targets))
	if h.totalCount == 0 || len(targets) == 0 {
		return results
	}

	var cumulative int64
	next := 0

	for b := range h.Iterator().All() {
		cumulative += b.Count
		if b.Count == 0 {
			continue
		}

		for next < len(targets) && float64(cumulative) >= (targets[next]/100.0)*float64(h.totalCount) {
			if targets[next] == 0.0 {
				results[next] = b.LowestEquivalentValue
			} else {
				results[next] = b.HighestEquivalentValue
			}
			next++
		}

		if next >= len(targets) {
			break
		}
	}

	// Any remaining targets (those above 100.0, which cumulative never
	// reaches) are given the last non-empty bucket's value, Max().
	if next < len(targets) {
		last := h.Max()
		for ; next < len(targets); next++ {
			results[next] = last
		}
	}

	return results
}

// Percentile returns the value at a single target percentile. Prefer
// Percentiles for more than one target — it shares a single pass over the
// iterator instead of paying O(CountsLen()) per call.
func (h *Histogram) Percentile(target float64) int64 {
	return h.Percentiles([]float64{target})[0]
}
