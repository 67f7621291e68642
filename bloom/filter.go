// Package bloom provides probabilistic dedup of input website URLs.
// Input lists run to tens of thousands of practice sites and routinely
// repeat entries; a Bloom filter drops the repeats without holding every
// URL in memory.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for website URL deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records the URL and reports whether it was likely recorded
// before. False positives drop the occasional never-seen URL; false
// negatives never happen, so a URL is never scraped twice.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
