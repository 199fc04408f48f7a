package mock

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Sites returns a Fetcher that serves pages from a URL-to-body map.
// Unknown URLs fail like an unreachable host.
func Sites(pages map[string]string) *Fetcher {
	lookup := func(url string) (string, error) {
		body, ok := pages[url]
		if !ok {
			return "", fmt.Errorf("dial %s: connection refused", url)
		}
		return body, nil
	}
	return &Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return lookup(url)
		},
		OpenFn: func(ctx context.Context, url string) (io.ReadCloser, error) {
			body, err := lookup(url)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(strings.NewReader(body)), nil
		},
		CloseFn: func() error { return nil },
	}
}
