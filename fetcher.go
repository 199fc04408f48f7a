package docscrape

import (
	"context"
	"io"
)

// Fetcher retrieves documents over HTTP.
type Fetcher interface {
	// Fetch returns the page at url decoded as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)

	// Open returns the raw response body at url.
	// The caller must close the returned reader.
	Open(ctx context.Context, url string) (io.ReadCloser, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Cache is a transparent response cache behind a Fetcher.
type Cache interface {
	// Clear removes every cached response.
	Clear(ctx context.Context) error

	// Len returns the number of cached responses.
	Len(ctx context.Context) (int, error)
}

// ArchiveStore persists downloaded archives.
type ArchiveStore interface {
	// Save writes r under name and returns the resulting path.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// Progress reports progress through a list of pages.
type Progress struct {
	URL       string
	Completed int
	Total     int
}

// ProgressFunc is called after each page is processed.
type ProgressFunc func(Progress)
