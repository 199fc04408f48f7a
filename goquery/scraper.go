// Package goquery extracts tables from the Python documentation and the
// PEP index using goquery HTML traversal.
package goquery

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

// Scraper runs the extraction routines against a fixed pair of sites.
// Each routine is a straight sequence of fetch, locate and extract steps
// written against the sites' known markup.
type Scraper struct {
	fetcher  docscrape.Fetcher
	archives docscrape.ArchiveStore
	logger   *slog.Logger
	progress docscrape.ProgressFunc

	docsURL string
	pepURL  string
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithLogger sets the logger. Defaults to discarding all records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scraper) {
		s.logger = logger
	}
}

// WithDocsURL sets the root of the Python documentation.
func WithDocsURL(u string) Option {
	return func(s *Scraper) {
		s.docsURL = u
	}
}

// WithPEPURL sets the PEP index URL.
func WithPEPURL(u string) Option {
	return func(s *Scraper) {
		s.pepURL = u
	}
}

// WithArchiveStore sets where Download saves archives.
func WithArchiveStore(store docscrape.ArchiveStore) Option {
	return func(s *Scraper) {
		s.archives = store
	}
}

// WithProgress sets a callback invoked after each page of a multi-page routine.
func WithProgress(fn docscrape.ProgressFunc) Option {
	return func(s *Scraper) {
		s.progress = fn
	}
}

// NewScraper returns a Scraper that fetches pages with fetcher.
func NewScraper(fetcher docscrape.Fetcher, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher: fetcher,
		logger:  slog.New(slog.DiscardHandler),
		docsURL: docscrape.DefaultDocsURL,
		pepURL:  docscrape.DefaultPEPURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// page fetches and parses url. Failures are logged and reported as nil so
// that loops over many pages can skip the page.
func (s *Scraper) page(ctx context.Context, url string) *goquery.Document {
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Error("page fetch failed", "url", url, "err", err)
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		s.logger.Error("page parse failed", "url", url, "err", err)
		return nil
	}
	return doc
}

// requirePage is like page but turns a missing page into an error.
func (s *Scraper) requirePage(ctx context.Context, url string) (*goquery.Document, error) {
	doc := s.page(ctx, url)
	if doc == nil {
		return nil, docscrape.Errorf(docscrape.EUNAVAILABLE, "page %s unavailable", url)
	}
	return doc, nil
}

func (s *Scraper) find(sel *goquery.Selection, tag string, attrs map[string]string) (*goquery.Selection, error) {
	found, err := FindTag(sel, tag, attrs)
	if err != nil {
		s.logger.Error("tag not found", "tag", tag, "attrs", attrs)
	}
	return found, err
}

func (s *Scraper) findMatching(sel *goquery.Selection, tag, attr string, pattern *regexp.Regexp) (*goquery.Selection, error) {
	found, err := FindTagMatching(sel, tag, attr, pattern)
	if err != nil {
		s.logger.Error("tag not found", "tag", tag, attr, pattern.String())
	}
	return found, err
}

func (s *Scraper) report(url string, completed, total int) {
	if s.progress != nil {
		s.progress(docscrape.Progress{URL: url, Completed: completed, Total: total})
	}
}
