// Package mock provides hand-written function-field mocks for the
// docscout ports.
package mock

import (
	"context"

	"github.com/fwojciec/docscout"
)

var _ docscout.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docscout.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
