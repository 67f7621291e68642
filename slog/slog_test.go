package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/mock"
	docslog "github.com/fwojciec/docscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *stdslog.Logger {
	return stdslog.New(stdslog.NewTextHandler(buf, nil))
}

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs url and size on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		f := docslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<html>ok</html>", nil
			},
		}, newLogger(&buf))

		html, err := f.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Contains(t, buf.String(), "msg=fetch")
		assert.Contains(t, buf.String(), "url=https://example.com")
		assert.Contains(t, buf.String(), "bytes=15")
	})

	t.Run("logs the error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		f := docslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", docscout.Errorf(docscout.EUNAVAILABLE, "HTTP 503")
			},
		}, newLogger(&buf))

		_, err := f.Fetch(context.Background(), "https://bad.example.com")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "HTTP 503")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		var closed bool
		f := docslog.NewLoggingFetcher(&mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}, newLogger(&bytes.Buffer{}))

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}

func TestLoggingExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := docslog.NewLoggingExtractor(&mock.PersonExtractor{
		ExtractFn: func(_ context.Context, page *docscout.Page) ([]docscout.Person, error) {
			return []docscout.Person{{Name: "Jane Doe"}}, nil
		},
	}, "heuristic", newLogger(&buf))

	people, err := e.Extract(context.Background(), &docscout.Page{URL: "https://example.com/team"})
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Contains(t, buf.String(), "msg=extract")
	assert.Contains(t, buf.String(), "extractor=heuristic")
	assert.Contains(t, buf.String(), "people=1")
}
