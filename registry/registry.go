// Package registry implements a concurrency-safe, tag-keyed collection of
// many *histogram.Histogram instances, the way a process with one
// histogram per RPC endpoint or metric name would manage them. Unlike a
// single Histogram, which is explicitly single-threaded, Registry methods
// are safe for concurrent use — a registry shared across goroutines, each
// recording into its own named histogram, is the expected usage.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/quantile-labs/hdrh/errs"
	"github.com/quantile-labs/hdrh/histogram"
	"github.com/quantile-labs/hdrh/internal/hash"
)

// entry is one registered (tag, *Histogram) pair plus the layout it was
// created with, so GetOrCreate can detect a tag re-registered
// with an incompatible layout without touching the Histogram's internals.
type entry struct {
	tag     string
	h       *histogram.Histogram
	lowest  int64
	highest int64
	digits  int64
}

// Registry maps tag strings to *histogram.Histogram by a 64-bit hash of
// the tag, detecting rather than silently resolving a collision between
// two different tags that hash to the same ID.
type Registry struct {
	mu      sync.RWMutex
	entries map[uint64]entry
	hashFn  func(string) uint64
}

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[uint64]entry), hashFn: hash.ID}
}

// GetOrCreate returns the histogram registered under tag, constructing and
// registering one with New(lowest, highest, digits, opts...) if tag has
// not been seen before. It reports ErrTagHashCollision if tag's hash
// matches an existing entry registered under a different tag string, and
// ErrTagAlreadyRegistered if tag itself was previously registered with a
// different (lowest, highest, digits).
func (r *Registry) GetOrCreate(tag string, lowest, highest, digits int64, opts ...histogram.Option) (*histogram.Histogram, error) {
	id := r.hashFn(tag)

	r.mu.RLock()
	if e, ok := r.entries[id]; ok {
		r.mu.RUnlock()

		if e.tag != tag {
			return nil, fmt.Errorf("%w: tag %q and %q both hash to %d", errs.ErrTagHashCollision, tag, e.tag, id)
		}
		if e.lowest != lowest || e.highest != highest || e.digits != digits {
			return nil, fmt.Errorf("%w: tag %q registered as (%d,%d,%d), requested (%d,%d,%d)",
				errs.ErrTagAlreadyRegistered, tag, e.lowest, e.highest, e.digits, lowest, highest, digits)
		}

		return e.h, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock: another goroutine may have created
	// this entry between the RUnlock above and acquiring the write lock.
	if e, ok := r.entries[id]; ok {
		if e.tag != tag {
			return nil, fmt.Errorf("%w: tag %q and %q both hash to %d", errs.ErrTagHashCollision, tag, e.tag, id)
		}
		if e.lowest != lowest || e.highest != highest || e.digits != digits {
			return nil, fmt.Errorf("%w: tag %q registered as (%d,%d,%d), requested (%d,%d,%d)",
				errs.ErrTagAlreadyRegistered, tag, e.lowest, e.highest, e.digits, lowest, highest, digits)
		}

		return e.h, nil
	}

	h, err := histogram.New(lowest, highest, digits, opts...)
	if err != nil {
		return nil, err
	}
	h.SetTag(tag)

	r.entries[id] = entry{tag: tag, h: h, lowest: lowest, highest: highest, digits: digits}

	return h, nil
}

// Get returns the histogram registered under tag, and whether it exists.
func (r *Registry) Get(tag string) (*histogram.Histogram, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[r.hashFn(tag)]
	if !ok || e.tag != tag {
		return nil, false
	}

	return e.h, true
}

// Tags returns every registered tag, sorted lexically.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		tags = append(tags, e.tag)
	}
	sort.Strings(tags)

	return tags
}

// Each calls fn once per registered (tag, *Histogram) pair, in unspecified
// order. fn must not call back into r.
func (r *Registry) Each(fn func(tag string, h *histogram.Histogram)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		fn(e.tag, e.h)
	}
}

// Merge copies and combines every entry of src into dst: tags present in
// both are merged via the core Histogram.Merge, tags present only in src
// are copied over by reference. It reports ErrIncompatibleLayout if a
// shared tag has mismatched layouts in dst and src, leaving dst unchanged
// for that tag.
func Merge(dst, src *Registry) error {
	src.mu.RLock()
	defer src.mu.RUnlock()

	dst.mu.Lock()
	defer dst.mu.Unlock()

	for id, se := range src.entries {
		de, ok := dst.entries[id]
		if !ok {
			dst.entries[id] = se
			continue
		}

		if err := de.h.Merge(se.h); err != nil {
			return err
		}
	}

	return nil
}
