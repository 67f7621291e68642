package docscout

// Page is one fetched page of a website, carrying both the raw HTML (for
// photo and link heuristics) and the normalized visible text (for
// prompting and regex scanning).
type Page struct {
	URL  string
	HTML string
	Text string
}

// CandidateLink is a same-site URL likely to hold staff information.
type CandidateLink struct {
	URL string

	// Priority orders candidates: a lower value means an earlier match in
	// the keyword table and a more team-specific page.
	Priority int

	// Text is the anchor text the link was discovered under.
	Text string
}
