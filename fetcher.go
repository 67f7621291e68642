package docscout

import "context"

// Fetcher retrieves raw HTML from URLs. Implementations own retry,
// backoff, and User-Agent rotation; the pipeline treats a fetch as a black
// box that returns HTML or fails.
type Fetcher interface {
	// Fetch returns the page body for a URL. Non-2xx responses and
	// exhausted retries surface as errors (ETIMEOUT or EUNAVAILABLE).
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}
