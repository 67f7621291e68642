// Package trafilatura implements docscout.Normalizer with the
// go-trafilatura content extractor. It is the fallback normalizer for
// pages where straight DOM text comes out empty or noisy.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/docscout"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Normalizer implements docscout.Normalizer at compile time.
var _ docscout.Normalizer = (*Normalizer)(nil)

// Normalizer extracts the main readable content from HTML as plain text.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the main content of the page as plain text. Pages
// with no extractable content yield an empty string, not an error.
func (n *Normalizer) Normalize(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return "", nil
	}

	return strings.TrimSpace(result.ContentText), nil
}
