package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscout"
)

// Ensure LoggingExtractor implements docscout.PersonExtractor.
var _ docscout.PersonExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PersonExtractor with per-page logging. The
// name attribute distinguishes the primary and fallback strategies in
// run logs.
type LoggingExtractor struct {
	next   docscout.PersonExtractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docscout.PersonExtractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, page *docscout.Page) (people []docscout.Person, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"extractor", e.name,
			"url", page.URL,
			"people", len(people),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, page)
}
