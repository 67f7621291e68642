package docscout

// PageFinder proposes same-site URLs likely to contain staff or doctor
// information, given the homepage HTML.
type PageFinder interface {
	// FindCandidates returns a bounded, deduplicated, priority-ordered
	// list of candidate links. Cross-domain links are discarded; ties are
	// broken by document order.
	FindCandidates(baseURL, html string) ([]CandidateLink, error)
}
