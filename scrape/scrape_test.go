package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/extract"
	"github.com/fwojciec/docscout/goquery"
	"github.com/fwojciec/docscout/mock"
	"github.com/fwojciec/docscout/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

// newScraper builds a scraper over real HTML handling and heuristic
// extraction, with fetching mocked per test.
func newScraper(fetcher docscout.Fetcher) *scrape.Scraper {
	return &scrape.Scraper{
		Fetcher:    fetcher,
		Normalizer: goquery.NewNormalizer(),
		Fallback:   extract.NewHeuristic(extract.WithHeuristicClock(fixedClock(2024))),
		Finder:     goquery.NewFinder(),
	}
}

func TestScraper_ProcessWebsite(t *testing.T) {
	t.Parallel()

	t.Run("single page site with one doctor", func(t *testing.T) {
		t.Parallel()

		homepage := `<html><head><title>Smiles of Anytown | Dentist</title></head><body>
			<p>Dr. Jane Doe, DDS graduated in 2010 from dental school. She grew up in Springfield.</p>
		</body></html>`

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://smilesofanytown.com" {
					return homepage, nil
				}
				return "", docscout.Errorf(docscout.ENOTFOUND, "fetch %s: HTTP 404", url)
			},
		}

		result := newScraper(fetcher).ProcessWebsite(context.Background(), "https://smilesofanytown.com")
		assert.Empty(t, result.ErrNote)
		assert.Equal(t, "Smiles of Anytown", result.PracticeName)
		require.Len(t, result.People, 1)

		p := result.People[0]
		assert.Equal(t, "Jane Doe", p.Name)
		assert.Equal(t, docscout.RoleOwner, p.Role, "a lone doctor owns the practice")
		require.NotNil(t, p.Age)
		assert.Equal(t, 40, *p.Age)
		assert.Equal(t, "Springfield", p.Hometown)
	})

	t.Run("team page reached via link, owner by practice name", func(t *testing.T) {
		t.Parallel()

		homepage := `<html><head><title>Smith Family Dental</title></head><body>
			<a href="/our-team">Our Team</a>
			<p>Welcome to our office.</p>
		</body></html>`
		teamPage := `<html><body>
			<p>Dr. Jane Doe enjoys pediatric dentistry and volunteers at the shelter.</p>
			<p>Dr. John Smith founded the office and mentors young clinicians every week.</p>
		</body></html>`

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				switch url {
				case "https://smithfamilydental.com":
					return homepage, nil
				case "https://smithfamilydental.com/our-team":
					return teamPage, nil
				}
				return "", docscout.Errorf(docscout.ENOTFOUND, "fetch %s: HTTP 404", url)
			},
		}

		result := newScraper(fetcher).ProcessWebsite(context.Background(), "https://smithfamilydental.com")
		require.Len(t, result.People, 2)

		byName := map[string]docscout.Role{}
		for _, p := range result.People {
			byName[p.Name] = p.Role
		}
		assert.Equal(t, docscout.RoleOwner, byName["John Smith"],
			"practice name carries the Smith last name")
		assert.Equal(t, docscout.RoleAssociate, byName["Jane Doe"])
	})

	t.Run("homepage failure yields an error note and no people", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", docscout.Errorf(docscout.EUNAVAILABLE, "fetch %s: HTTP 500", url)
			},
		}

		result := newScraper(fetcher).ProcessWebsite(context.Background(), "https://example.com")
		assert.Empty(t, result.People)
		assert.Equal(t, "fetch https://example.com: HTTP 500", result.ErrNote)

		rows := result.Rows()
		require.Len(t, rows, 1, "failed site still emits exactly one row")
		assert.Equal(t, "ERROR: fetch https://example.com: HTTP 500", rows[0][8])
	})

	t.Run("primary extractor wins when it finds people", func(t *testing.T) {
		t.Parallel()

		primaryCalls, fallbackCalls := 0, 0
		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html><body><p>welcome to the practice of anytown</p></body></html>", nil
			},
		})
		s.Primary = &mock.PersonExtractor{
			ExtractFn: func(_ context.Context, _ *docscout.Page) ([]docscout.Person, error) {
				primaryCalls++
				return []docscout.Person{{Name: "Jane Doe"}}, nil
			},
		}
		s.Fallback = &mock.PersonExtractor{
			ExtractFn: func(_ context.Context, _ *docscout.Page) ([]docscout.Person, error) {
				fallbackCalls++
				return nil, nil
			},
		}
		s.MaxCandidatePages = 1

		result := s.ProcessWebsite(context.Background(), "https://example.com")
		require.Len(t, result.People, 1)
		assert.Positive(t, primaryCalls)
		assert.Zero(t, fallbackCalls)
	})

	t.Run("falls back when the primary extractor fails", func(t *testing.T) {
		t.Parallel()

		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html><body><p>welcome to the practice of anytown</p></body></html>", nil
			},
		})
		s.Primary = &mock.PersonExtractor{
			ExtractFn: func(_ context.Context, _ *docscout.Page) ([]docscout.Person, error) {
				return nil, docscout.Errorf(docscout.EUNAVAILABLE, "model down")
			},
		}
		s.Fallback = &mock.PersonExtractor{
			ExtractFn: func(_ context.Context, _ *docscout.Page) ([]docscout.Person, error) {
				return []docscout.Person{{Name: "John Smith"}}, nil
			},
		}
		s.MaxCandidatePages = 1

		result := s.ProcessWebsite(context.Background(), "https://example.com")
		require.Len(t, result.People, 1)
		assert.Equal(t, "John Smith", result.People[0].Name)
	})

	t.Run("identical page content is extracted once", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><a href="/our-team">Our Team</a>
			<p>Dr. Jane Doe loves her patients and her hometown equally well.</p></body></html>`

		extractions := 0
		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				// Every URL serves the same content, as sites that alias
				// /about and /about-us do.
				return page, nil
			},
		})
		s.Fallback = &mock.PersonExtractor{
			ExtractFn: func(_ context.Context, _ *docscout.Page) ([]docscout.Person, error) {
				extractions++
				return []docscout.Person{{Name: "Jane Doe"}}, nil
			},
		}

		s.ProcessWebsite(context.Background(), "https://example.com")
		assert.Equal(t, 1, extractions)
	})

	t.Run("probes common paths when no links match", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				if url == "https://example.com/about-us" {
					return `<html><body><p>Dr. Jane Doe, DDS cares for families across the region.</p></body></html>`, nil
				}
				if url == "https://example.com" {
					return "<html><body><p>welcome</p></body></html>", nil
				}
				return "", docscout.Errorf(docscout.ENOTFOUND, "fetch %s: HTTP 404", url)
			},
		})

		result := s.ProcessWebsite(context.Background(), "https://example.com")
		assert.Contains(t, fetched, "https://example.com/about-us")
		require.Len(t, result.People, 1)
		assert.Equal(t, "Jane Doe", result.People[0].Name)
	})

	t.Run("sitemap URLs join the candidate pool", func(t *testing.T) {
		t.Parallel()

		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://example.com/meet-the-team" {
					return `<html><body><p>Dr. John Smith has served the community for twenty years.</p></body></html>`, nil
				}
				return "<html><body><p>welcome to our office</p></body></html>", nil
			},
		})
		s.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{
					"https://example.com/meet-the-team",
					"https://example.com/blog/post-1",
				}, nil
			},
		}

		result := s.ProcessWebsite(context.Background(), "https://example.com")
		require.Len(t, result.People, 1)
		assert.Equal(t, "John Smith", result.People[0].Name)
	})

	t.Run("cross-domain sitemap URLs are never fetched", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				if url == "https://example.com/our-team" {
					return `<html><body><p>Dr. John Smith has served the community for twenty years.</p></body></html>`, nil
				}
				return "<html><body><p>welcome to our office</p></body></html>", nil
			},
		})
		s.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{
					"https://evil.example.org/our-team",
					"https://example.com/our-team",
				}, nil
			},
		}

		result := s.ProcessWebsite(context.Background(), "https://example.com")
		assert.NotContains(t, fetched, "https://evil.example.org/our-team")
		require.Len(t, result.People, 1)
		assert.Equal(t, "John Smith", result.People[0].Name)
	})
}

func TestScraper_Run(t *testing.T) {
	t.Parallel()

	t.Run("contains failures and persists results", func(t *testing.T) {
		t.Parallel()

		var created []*docscout.WebsiteResult
		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://bad.example.com" {
					return "", docscout.Errorf(docscout.EUNAVAILABLE, "fetch %s: HTTP 503", url)
				}
				if url == "https://good.example.com" {
					return `<html><body><p>Dr. Jane Doe, DDS welcomes new patients daily.</p></body></html>`, nil
				}
				return "", docscout.Errorf(docscout.ENOTFOUND, "fetch %s: HTTP 404", url)
			},
		})
		s.Results = &mock.ResultService{
			CreateResultFn: func(_ context.Context, result *docscout.WebsiteResult) error {
				created = append(created, result)
				return nil
			},
		}

		var events []scrape.ProgressEvent
		result, err := s.Run(context.Background(),
			[]string{"https://good.example.com", "https://bad.example.com"},
			func(e scrape.ProgressEvent) { events = append(events, e) })
		require.NoError(t, err)

		require.Len(t, result.Websites, 2)
		assert.Equal(t, "https://good.example.com", result.Websites[0].Website)
		assert.Equal(t, "https://bad.example.com", result.Websites[1].Website)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 1, result.People)
		assert.Len(t, created, 2, "failed sites are persisted too")

		require.NotEmpty(t, events)
		assert.Equal(t, scrape.ProgressStarted, events[0].Type)
		assert.Equal(t, scrape.ProgressFinished, events[len(events)-1].Type)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) { return "", nil },
		})
		result, err := s.Run(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Websites)
	})
}

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first request passes immediately", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(1.0)
		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("separate domains do not share a bucket", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "b.example.com"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.Error(t, limiter.Wait(ctx, "example.com"))
	})
}
