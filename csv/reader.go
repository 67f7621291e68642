// Package csv reads website input lists and writes scraped person
// records as fixed-column CSV.
package csv

import (
	"bufio"
	"io"
	"strings"

	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/bloom"
)

// expectedInputURLs sizes the dedup filter. Input lists run to tens of
// thousands of practice sites.
const (
	expectedInputURLs      = 100000
	dedupFalsePositiveRate = 0.001
)

// ReadWebsites parses an input list of website URLs, one per line or
// comma-separated, in any mix. Blank entries and #-comment lines are
// skipped, scheme-less entries are rewritten to https, and repeated URLs
// are dropped.
func ReadWebsites(r io.Reader) ([]string, error) {
	seen := bloom.NewFilter(expectedInputURLs, dedupFalsePositiveRate)

	var websites []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, entry := range strings.Split(line, ",") {
			website := NormalizeWebsiteURL(entry)
			if website == "" || seen.Seen(website) {
				continue
			}
			websites = append(websites, website)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, docscout.Errorf(docscout.EINVALID, "reading website list: %v", err)
	}

	return websites, nil
}

// NormalizeWebsiteURL trims an input entry and rewrites scheme-less
// forms like "example.com" to "https://example.com". Returns "" for
// entries that cannot be a URL.
func NormalizeWebsiteURL(entry string) string {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(entry), `"`))
	if s == "" || !strings.Contains(s, ".") {
		return ""
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	return strings.TrimRight(s, "/")
}
