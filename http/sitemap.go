// Package http implements docscout.SitemapService over net/http.
package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docscout"
)

// maxSitemapDepth bounds recursion through nested sitemap indexes.
const maxSitemapDepth = 3

// maxSitemapURLs bounds the total URLs collected from one site. Practice
// sites are small; anything past this is blog archives and product pages.
const maxSitemapURLs = 500

// Ensure SitemapService implements docscout.SitemapService at compile time.
var _ docscout.SitemapService = (*SitemapService)(nil)

// SitemapService discovers a site's URLs from its sitemaps.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService. A nil client uses
// http.DefaultClient.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs returns the URLs listed in the site's sitemaps. Sitemap
// locations come from robots.txt Sitemap directives, falling back to
// /sitemap.xml. A site without a reachable sitemap yields an empty
// slice, not an error.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docscout.Errorf(docscout.EINVALID, "invalid base URL: %v", err)
	}

	sitemapURLs := s.findSitemapURLs(ctx, base)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var urls []string
	for _, sitemapURL := range sitemapURLs {
		found, err := s.readSitemap(ctx, sitemapURL, seen, 0)
		if err != nil {
			return nil, err
		}
		for _, u := range found {
			urls = append(urls, u)
			if len(urls) >= maxSitemapURLs {
				return urls, nil
			}
		}
	}

	return urls, nil
}

// findSitemapURLs parses Sitemap directives from robots.txt, falling
// back to the conventional /sitemap.xml location.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) []string {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if body, err := s.get(ctx, robotsURL); err == nil {
		sitemaps := parseRobots(body)
		body.Close()
		if len(sitemaps) > 0 {
			return sitemaps
		}
	}

	return []string{base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}
}

func parseRobots(body io.Reader) []string {
	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			continue
		}
		if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
			sitemaps = append(sitemaps, u)
		}
	}
	return sitemaps
}

// readSitemap fetches and parses one sitemap, recursing into sitemap
// indexes. Unreachable or malformed sitemaps are skipped rather than
// failing discovery for the whole site.
func (s *SitemapService) readSitemap(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth > maxSitemapDepth || seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, nil
	}
	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, child := range locValues(root, "sitemap") {
			found, err := s.readSitemap(ctx, child, seen, depth+1)
			if err != nil {
				return nil, err
			}
			urls = append(urls, found...)
		}
		return urls, nil
	}

	return locValues(root, "url"), nil
}

// locValues extracts non-empty <loc> values from the named child
// elements of root.
func locValues(root *etree.Element, tag string) []string {
	var values []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, docscout.Errorf(docscout.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}
