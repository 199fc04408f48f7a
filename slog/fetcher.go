package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure LoggingFetcher implements docscrape.Fetcher.
var _ docscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   docscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Open logs the URL being opened and delegates to the wrapped fetcher.
// The byte count is not known until the body is read, so it is omitted.
func (f *LoggingFetcher) Open(ctx context.Context, url string) (body io.ReadCloser, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("open",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Open(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
