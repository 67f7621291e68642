package mock

import (
	"context"

	"github.com/fwojciec/docscout"
)

var _ docscout.Completer = (*Completer)(nil)

// Completer is a mock implementation of docscout.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteFn(ctx, prompt)
}
