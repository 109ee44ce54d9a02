// Package bloom provides probabilistic seen-content tracking for batch
// ingestion. Pages whose content hash is already in the filter are
// skipped instead of stored twice.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by content hash.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected items with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a content hash.
func (f *Filter) Add(hash string) {
	f.f.AddString(hash)
}

// Test returns true if the hash might already be recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Test(hash string) bool {
	return f.f.TestString(hash)
}

// EstimatedCount returns the approximate number of recorded items.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
