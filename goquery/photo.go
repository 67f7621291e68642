package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// photoKeywords mark an <img> as a likely headshot when found in its src,
// alt, or class attributes.
var photoKeywords = []string{
	"doctor", "dentist", "physician", "team", "staff",
	"profile", "headshot", "photo", "portrait",
}

// FindPhoto returns the absolute URL of the image most likely to be the
// named person's photo: first an image whose src/alt/class mentions the
// person's first name or a doctor keyword, else the first image on the
// page, else "".
func FindPhoto(html, personName, baseURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	firstName := ""
	if fields := strings.Fields(strings.ToLower(personName)); len(fields) > 0 {
		firstName = fields[0]
	}

	var first, matched string
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		if src == "" {
			return true
		}
		if first == "" {
			first = src
		}

		alt, _ := sel.Attr("alt")
		class, _ := sel.Attr("class")
		haystack := strings.ToLower(src + " " + alt + " " + class)

		if firstName != "" && strings.Contains(haystack, firstName) {
			matched = src
			return false
		}
		for _, kw := range photoKeywords {
			if strings.Contains(haystack, kw) {
				matched = src
				return false
			}
		}
		return true
	})

	src := matched
	if src == "" {
		src = first
	}
	if src == "" {
		return ""
	}
	return absoluteURL(base, src)
}

func absoluteURL(base *url.URL, src string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	if base == nil {
		return ""
	}
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
