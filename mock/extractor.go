package mock

import (
	"context"

	"github.com/fwojciec/docscout"
)

var _ docscout.PersonExtractor = (*PersonExtractor)(nil)

// PersonExtractor is a mock implementation of docscout.PersonExtractor.
type PersonExtractor struct {
	ExtractFn func(ctx context.Context, page *docscout.Page) ([]docscout.Person, error)
}

func (e *PersonExtractor) Extract(ctx context.Context, page *docscout.Page) ([]docscout.Person, error) {
	return e.ExtractFn(ctx, page)
}
