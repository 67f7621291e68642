// Package scrape orchestrates the per-website pipeline: fetch the
// homepage, locate candidate team pages, run person extraction over each
// page, reconcile the records, and assign roles. It composes the root
// package ports and contains no HTML or LLM specifics of its own.
package scrape

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/goquery"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxCandidatePages bounds how many candidate pages are visited
// per website beyond the homepage.
const DefaultMaxCandidatePages = 5

// DefaultConcurrency is the number of websites processed in parallel.
const DefaultConcurrency = 4

// minTextLen is the normalized-text length under which the fallback
// normalizer is consulted. JS-heavy sites render a near-empty body
// skeleton that the DOM normalizer cannot see through.
const minTextLen = 100

// probePaths are tried with a plain GET when link and sitemap discovery
// find no candidates at all.
var probePaths = []string{"/about-us", "/about", "/meet-us"}

// Scraper orchestrates scraping of practice websites.
type Scraper struct {
	Fetcher    docscout.Fetcher
	Normalizer docscout.Normalizer

	// FallbackNormalizer, when set, is consulted for pages whose primary
	// normalized text comes out shorter than minTextLen.
	FallbackNormalizer docscout.Normalizer

	// Primary is tried first for each page; on error or empty output the
	// Fallback extractor runs. Fallback must always be set.
	Primary  docscout.PersonExtractor
	Fallback docscout.PersonExtractor

	Finder      docscout.PageFinder
	Sitemaps    docscout.SitemapService
	RateLimiter docscout.DomainLimiter

	// Results, when set, persists each finalized website result.
	Results docscout.ResultService

	RoleConfig        docscout.RoleConfig
	MaxCandidatePages int
	Concurrency       int
}

// Result holds the outcome of a run over a website list.
type Result struct {
	Websites []*docscout.WebsiteResult
	People   int
	Failed   int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Website   string
	People    int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run processes every website with bounded concurrency and returns the
// finalized results in input order. Per-website failures are contained:
// a website that cannot be scraped still yields a result carrying an
// error note, so downstream output has at least one row per input.
func (s *Scraper) Run(ctx context.Context, websites []string, progress ProgressFunc) (*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(websites)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	results := make([]*docscout.WebsiteResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, website := range websites {
		g.Go(func() error {
			result := s.ProcessWebsite(gctx, website)
			results[i] = result

			if s.Results != nil {
				if err := s.Results.CreateResult(gctx, result); err != nil && result.ErrNote == "" {
					result.ErrNote = docscout.ErrorMessage(err)
				}
			}

			if progress != nil {
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Add(1)),
					Total:     total,
					Website:   website,
					People:    len(result.People),
				}
				if result.ErrNote != "" {
					event.Type = ProgressFailed
					event.Error = docscout.Errorf(docscout.EINTERNAL, "%s", result.ErrNote)
				}
				progress(event)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Result{Websites: results}
	for _, r := range results {
		out.People += len(r.People)
		if r.ErrNote != "" {
			out.Failed++
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return out, nil
}

// ProcessWebsite scrapes a single website. It never returns an error:
// failures are recorded in the result's error note so the caller always
// has something to emit.
func (s *Scraper) ProcessWebsite(ctx context.Context, website string) *docscout.WebsiteResult {
	result := &docscout.WebsiteResult{
		Website:   website,
		ScrapedAt: time.Now().UTC(),
	}

	home, err := s.fetchPage(ctx, website)
	if err != nil {
		result.ErrNote = docscout.ErrorMessage(err)
		return result
	}
	result.PracticeName = goquery.PracticeName(home.HTML)

	// Site text accumulates across pages for role scoring, and content
	// hashes guard against re-extracting aliased pages.
	var siteText strings.Builder
	seen := map[uint64]bool{xxhash.Sum64String(home.Text): true}
	siteText.WriteString(home.Text)

	people := s.extract(ctx, home)

	visited := 0
	for _, candidate := range s.candidates(ctx, website, home) {
		if visited >= s.maxCandidatePages() {
			break
		}
		page, err := s.fetchPage(ctx, candidate)
		if err != nil {
			continue
		}
		visited++

		hash := xxhash.Sum64String(page.Text)
		if seen[hash] {
			continue
		}
		seen[hash] = true
		siteText.WriteString("\n")
		siteText.WriteString(page.Text)

		people = docscout.Merge(people, s.extract(ctx, page))
	}

	people = s.followProfiles(ctx, home, people, seen, &siteText)

	for i := range people {
		people[i].Bio = docscout.CleanBio(people[i].Bio)
	}
	result.People = docscout.AssignRoles(people, result.PracticeName, siteText.String(), s.roleConfig())

	if len(result.People) == 0 && result.ErrNote == "" {
		result.ErrNote = "no doctors found"
	}
	return result
}

// fetchPage rate-limits, fetches, and normalizes one page, consulting
// the fallback normalizer when the primary text is too thin.
func (s *Scraper) fetchPage(ctx context.Context, pageURL string) (*docscout.Page, error) {
	if s.RateLimiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := s.RateLimiter.Wait(ctx, u.Hostname()); err != nil {
				return nil, err
			}
		}
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	text, err := s.Normalizer.Normalize(html)
	if err != nil {
		return nil, err
	}
	if len(text) < minTextLen && s.FallbackNormalizer != nil {
		if fallback, err := s.FallbackNormalizer.Normalize(html); err == nil && len(fallback) > len(text) {
			text = fallback
		}
	}

	return &docscout.Page{URL: pageURL, HTML: html, Text: text}, nil
}

// extract runs the primary extractor and falls back on error or empty
// output. Extraction never fails a website: worst case is no people.
func (s *Scraper) extract(ctx context.Context, page *docscout.Page) []docscout.Person {
	if s.Primary != nil {
		people, err := s.Primary.Extract(ctx, page)
		if err == nil && len(people) > 0 {
			return people
		}
	}
	people, err := s.Fallback.Extract(ctx, page)
	if err != nil {
		return nil
	}
	return people
}

// candidates merges link discovery with sitemap URLs, scored by the same
// keyword table, and falls back to probing fixed common paths when both
// come up empty.
func (s *Scraper) candidates(ctx context.Context, website string, home *docscout.Page) []string {
	links, err := s.Finder.FindCandidates(website, home.HTML)
	if err != nil {
		links = nil
	}

	seen := make(map[string]bool, len(links))
	var urls []string
	for _, link := range links {
		if !seen[link.URL] {
			seen[link.URL] = true
			urls = append(urls, link.URL)
		}
	}

	if s.Sitemaps != nil {
		discovered, err := s.Sitemaps.DiscoverURLs(ctx, website)
		if err == nil {
			for _, u := range discovered {
				if !goquery.SameSite(website, u) {
					continue
				}
				if _, ok := goquery.KeywordPriority(u, ""); ok && !seen[u] {
					seen[u] = true
					urls = append(urls, u)
				}
			}
		}
	}

	if len(urls) > 0 {
		return urls
	}

	base, err := url.Parse(website)
	if err != nil {
		return nil
	}
	for _, path := range probePaths {
		urls = append(urls, base.ResolveReference(&url.URL{Path: path}).String())
	}
	return urls
}

// followProfiles visits individual profile pages discovered by matching
// known last names against the homepage links, merging whatever they add.
// Bounded by the candidate page budget.
func (s *Scraper) followProfiles(ctx context.Context, home *docscout.Page, people []docscout.Person, seen map[uint64]bool, siteText *strings.Builder) []docscout.Person {
	if len(people) == 0 {
		return people
	}

	lastNames := make([]string, 0, len(people))
	for i := range people {
		if last := docscout.LastName(people[i].Name); last != "" {
			lastNames = append(lastNames, last)
		}
	}

	visited := 0
	for _, link := range goquery.FindProfileLinks(home.URL, home.HTML, lastNames) {
		if visited >= s.maxCandidatePages() {
			break
		}
		page, err := s.fetchPage(ctx, link)
		if err != nil {
			continue
		}
		visited++

		hash := xxhash.Sum64String(page.Text)
		if seen[hash] {
			continue
		}
		seen[hash] = true
		siteText.WriteString("\n")
		siteText.WriteString(page.Text)

		people = docscout.Merge(people, s.extract(ctx, page))
	}
	return people
}

func (s *Scraper) maxCandidatePages() int {
	if s.MaxCandidatePages > 0 {
		return s.MaxCandidatePages
	}
	return DefaultMaxCandidatePages
}

func (s *Scraper) roleConfig() docscout.RoleConfig {
	if s.RoleConfig == (docscout.RoleConfig{}) {
		return docscout.DefaultRoleConfig()
	}
	return s.RoleConfig
}
