// Package resty implements docscout.Fetcher over the go-resty HTTP
// client. Practice sites often sit behind anti-bot rules, so the fetcher
// rotates browser user agents and retries blocked or flaky responses.
package resty

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/fwojciec/docscout"
	"github.com/go-resty/resty/v2"
)

// DefaultFetchTimeout bounds a single request.
const DefaultFetchTimeout = 15 * time.Second

// DefaultRetryDelays returns the delays between fetch attempts.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 3 * time.Second}
}

// userAgents is rotated across attempts so a 403 on one agent can
// succeed on the next.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 13_4) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.4 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:120.0) Gecko/20100101 Firefox/120.0",
}

// Ensure Fetcher implements docscout.Fetcher at compile time.
var _ docscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs. It does not execute JavaScript, so
// fully client-rendered sites come back as their empty shell.
type Fetcher struct {
	client      *resty.Client
	timeout     time.Duration
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetryDelays overrides the delays between attempts. Useful for tests.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = resty.New().
		SetTimeout(f.timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10)).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9")

	return f
}

// Fetch retrieves the body at url, rotating user agents and retrying on
// 403, 429, and 5xx responses. Other non-2xx responses fail immediately
// with ENOTFOUND; exhausted retries return EUNAVAILABLE; deadline errors
// return ETIMEOUT.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Top-level rand is locked, so concurrent fetches are fine.
	start := rand.Intn(len(userAgents))

	var lastErr error
	for attempt := 0; attempt <= len(f.retryDelays); attempt++ {
		ua := userAgents[(start+attempt)%len(userAgents)]

		resp, err := f.client.R().
			SetContext(ctx).
			SetHeader("User-Agent", ua).
			SetHeader("Referer", "https://www.google.com/").
			Get(url)

		switch {
		case err != nil:
			if ctx.Err() != nil {
				return "", docscout.Errorf(docscout.ETIMEOUT, "fetch %s: %v", url, ctx.Err())
			}
			lastErr = err
		case resp.IsSuccess():
			return resp.String(), nil
		case retryableStatus(resp.StatusCode()):
			lastErr = docscout.Errorf(docscout.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode())
		default:
			return "", docscout.Errorf(docscout.ENOTFOUND, "fetch %s: HTTP %d", url, resp.StatusCode())
		}

		if attempt >= len(f.retryDelays) {
			break
		}
		delay := f.retryDelays[attempt]
		if delay > 0 {
			delay += time.Duration(rand.Int63n(int64(delay)))
		}
		select {
		case <-ctx.Done():
			return "", docscout.Errorf(docscout.ETIMEOUT, "fetch %s: %v", url, ctx.Err())
		case <-time.After(delay):
		}
	}

	return "", docscout.Errorf(docscout.EUNAVAILABLE, "fetch %s failed after %d attempts: %v", url, len(f.retryDelays)+1, lastErr)
}

// Close releases resources. The underlying client needs no explicit
// cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func retryableStatus(code int) bool {
	return code == http.StatusForbidden ||
		code == http.StatusTooManyRequests ||
		code >= 500
}
