package histogram

import "iter"

// Bucket is one (possibly empty) counter slot yielded by a BucketIterator,
// in ascending LowestEquivalentValue order.
type Bucket struct {
	Count                  int64
	LowestEquivalentValue  int64
	HighestEquivalentValue int64
}

// BucketIterator walks every counter slot of a Histogram in ascending
// value order, exactly CountsLen() times. It holds a read-only view of
// the histogram for its lifetime; mutating the histogram while an
// iteration is in progress is undefined behavior and is not prevented
// structurally.
type BucketIterator struct {
	h *Histogram
}

// Iterator returns a BucketIterator over h's current counter state.
func (h *Histogram) Iterator() BucketIterator {
	return BucketIterator{h: h}
}

// All returns an iter.Seq yielding one Bucket per counter slot. Bucket 0
// is visited first with all S sub-bucket slots; each subsequent bucket
// contributes only its upper half, so the total number of yields equals
// CountsLen().
func (it BucketIterator) All() iter.Seq[Bucket] {
	return func(yield func(Bucket) bool) {
		p := &it.h.p
		bucketIndex := int64(0)
		subBucketIndex := int64(0)

		for {
			if subBucketIndex >= p.subBucketCount {
				subBucketIndex = p.subBucketHalfCount
				bucketIndex++
			}

			idx := p.countsIndex(bucketIndex, subBucketIndex)
			if idx >= p.countsLen {
				return
			}

			lowest := p.valueFromIndex(bucketIndex, subBucketIndex)
			size := p.sizeOfEquivalentRange(bucketIndex, subBucketIndex)

			b := Bucket{
				Count:                  it.h.counts[idx],
				LowestEquivalentValue:  lowest,
				HighestEquivalentValue: lowest + size - 1,
			}
			if !yield(b) {
				return
			}

			subBucketIndex++
		}
	}
}
