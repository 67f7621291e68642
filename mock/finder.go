package mock

import "github.com/fwojciec/docscout"

var _ docscout.PageFinder = (*PageFinder)(nil)

// PageFinder is a mock implementation of docscout.PageFinder.
type PageFinder struct {
	FindCandidatesFn func(baseURL, html string) ([]docscout.CandidateLink, error)
}

func (f *PageFinder) FindCandidates(baseURL, html string) ([]docscout.CandidateLink, error) {
	return f.FindCandidatesFn(baseURL, html)
}
