package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FindProfileLinks returns same-site links that look like individual
// profile pages for any of the given last names, matched against the
// href and anchor text. Used after team-page extraction to pick up bios
// that live on per-doctor pages.
func FindProfileLinks(baseURL, html string, lastNames []string) []string {
	if len(lastNames) == 0 {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(lastNames))
	for _, n := range lastNames {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			names = append(names, n)
		}
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] || !sameSite(base, resolved) {
			return
		}
		ru, err := url.Parse(resolved)
		if err != nil {
			return
		}
		// Match on path and anchor text only: the host would match every
		// internal link of a practice named after its owner.
		haystack := strings.ToLower(ru.Path + " " + sel.Text())
		for _, name := range names {
			if strings.Contains(haystack, name) {
				seen[resolved] = true
				links = append(links, resolved)
				return
			}
		}
	})

	return links
}

// PracticeName derives a practice name from a page's title tag, keeping
// the segment before the first separator: "Smith Family Dental | Anytown
// Dentist" becomes "Smith Family Dental".
func PracticeName(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	for _, sep := range []string{"|", " - ", "–", "—"} {
		if i := strings.Index(title, sep); i > 0 {
			title = title[:i]
		}
	}
	return strings.TrimSpace(title)
}
