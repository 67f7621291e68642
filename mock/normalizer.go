package mock

import "github.com/fwojciec/docscout"

var _ docscout.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of docscout.Normalizer.
type Normalizer struct {
	NormalizeFn func(html string) (string, error)
}

func (n *Normalizer) Normalize(html string) (string, error) {
	return n.NormalizeFn(html)
}
