// Package http provides an HTTP-based implementation of docscrape.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docscrape"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultEncoding is the charset label used to decode page text.
const DefaultEncoding = "utf-8"

// Ensure Fetcher implements docscrape.Fetcher at compile time.
var _ docscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents using plain HTTP GET requests.
// Responses pass through the configured transport, which is where
// caching and rate limiting are plugged in.
type Fetcher struct {
	client    *http.Client
	transport http.RoundTripper
	timeout   time.Duration
	encoding  string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the deadline for Fetch, covering the request and reading
// the page. Defaults to DefaultFetchTimeout (10s). Zero disables it.
// Open is bounded only by the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithTransport sets the round tripper used for requests.
// Defaults to http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithEncoding sets the charset label used to decode page text,
// regardless of what the server declares.
func WithEncoding(label string) Option {
	return func(f *Fetcher) {
		f.encoding = label
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		encoding: DefaultEncoding,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := f.transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	f.client = &http.Client{Transport: transport}

	return f
}

// Fetch retrieves the page at url and decodes it to UTF-8 text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	body, err := f.Open(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	r, err := charset.NewReaderLabel(f.encoding, body)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", url, err)
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(text), nil
}

// Open issues a GET request and returns the response body.
// Non-200 responses are reported as errors. No timeout applies beyond ctx,
// so large archives can stream for as long as they need.
func (f *Fetcher) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
