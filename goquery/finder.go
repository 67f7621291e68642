package goquery

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscout"
	"golang.org/x/net/publicsuffix"
)

// teamKeywords is the priority-ordered keyword table for team-page
// discovery: an earlier keyword means a more team-specific URL. Matched
// against both href and anchor text.
var teamKeywords = []string{
	"meet-the-team", "our-team", "meet-the-doctors", "meet-the-dentists",
	"team", "staff", "doctor", "dentist", "provider", "meet", "about",
}

// DefaultMaxCandidates bounds the number of candidate links returned.
const DefaultMaxCandidates = 8

// Ensure Finder implements docscout.PageFinder at compile time.
var _ docscout.PageFinder = (*Finder)(nil)

// Finder proposes team-page candidates by keyword-matching anchors.
type Finder struct {
	max int
}

// Option configures a Finder.
type Option func(*Finder)

// WithMaxCandidates overrides the candidate bound.
func WithMaxCandidates(n int) Option {
	return func(f *Finder) {
		f.max = n
	}
}

// NewFinder creates a new Finder.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{max: DefaultMaxCandidates}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type scoredLink struct {
	link  docscout.CandidateLink
	order int
}

// FindCandidates returns same-site links whose href or anchor text matches
// the keyword table, best-priority first, ties in document order, at most
// the configured bound. Cross-domain links (different registrable domain)
// are discarded and duplicates keep their best priority.
func (f *Finder) FindCandidates(baseURL, html string) ([]docscout.CandidateLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docscout.Errorf(docscout.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docscout.Errorf(docscout.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]int) // resolved URL -> index into found
	var found []scoredLink
	order := 0

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || !sameSite(base, resolved) {
			return
		}

		text := strings.TrimSpace(sel.Text())
		priority, ok := KeywordPriority(resolved, text)
		if !ok {
			return
		}

		if idx, dup := seen[resolved]; dup {
			if priority < found[idx].link.Priority {
				found[idx].link.Priority = priority
			}
			return
		}

		seen[resolved] = len(found)
		found = append(found, scoredLink{
			link:  docscout.CandidateLink{URL: resolved, Priority: priority, Text: text},
			order: order,
		})
		order++
	})

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].link.Priority != found[j].link.Priority {
			return found[i].link.Priority < found[j].link.Priority
		}
		return found[i].order < found[j].order
	})

	links := make([]docscout.CandidateLink, 0, len(found))
	for _, s := range found {
		if len(links) >= f.max {
			break
		}
		links = append(links, s.link)
	}

	return links, nil
}

// KeywordPriority returns the index of the earliest keyword matching the
// URL or anchor text, and whether any matched. Exposed so sitemap URLs
// can be scored with the same table as anchor links.
func KeywordPriority(rawURL, anchorText string) (int, bool) {
	u := strings.ToLower(rawURL)
	t := strings.ToLower(anchorText)
	for i, kw := range teamKeywords {
		if strings.Contains(u, kw) || strings.Contains(t, kw) {
			return i, true
		}
	}
	return 0, false
}

// SameSite reports whether candidate shares baseURL's registrable
// domain. Exposed so sitemap URLs face the same cross-domain filter as
// anchor links.
func SameSite(baseURL, candidate string) bool {
	base, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	return sameSite(base, candidate)
}

// isNonHTTPLink filters javascript:, mailto:, tel: and fragment links.
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "#")
}

// resolveURL resolves href against base and strips fragments.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	return resolved.String()
}

// sameSite reports whether the resolved URL shares the base URL's
// registrable domain, so www.example.com and example.com both pass while
// facebook.com links are discarded.
func sameSite(base *url.URL, resolved string) bool {
	ru, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return registrableDomain(ru.Hostname()) == registrableDomain(base.Hostname())
}

func registrableDomain(host string) string {
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// IPs, localhost: fall back to exact host comparison.
		return host
	}
	return d
}
