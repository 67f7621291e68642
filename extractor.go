package docscout

import "context"

// PersonExtractor turns a page into raw person records. Implementations
// never panic across this boundary: internal failures surface as errors
// (EUNAVAILABLE/ETIMEOUT for transport, EINVALID for unparseable output)
// so the caller can fall back to another strategy, and an empty slice
// simply means nobody was found.
type PersonExtractor interface {
	Extract(ctx context.Context, page *Page) ([]Person, error)
}
