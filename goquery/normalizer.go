// Package goquery provides HTML-level implementations of docscout ports:
// visible-text normalization, candidate team-page discovery, and doctor
// photo lookup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscout"
)

// noiseSelector matches nodes that never contain bio text.
const noiseSelector = "script, style, nav, footer, header, noscript, template, iframe, svg"

// Ensure Normalizer implements docscout.Normalizer at compile time.
var _ docscout.Normalizer = (*Normalizer)(nil)

// Normalizer extracts visible text from raw HTML.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize removes non-content nodes and returns the visible text, one
// line per text block, with whitespace collapsed. Unparseable input
// degrades to empty text rather than an error.
func (n *Normalizer) Normalize(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", nil
	}

	doc.Find(noiseSelector).Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var lines []string
	for _, raw := range strings.Split(root.Text(), "\n") {
		line := strings.Join(strings.Fields(raw), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
