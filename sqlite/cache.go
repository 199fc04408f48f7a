package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docscrape"
)

// FromCacheHeader is set on responses served from the cache.
const FromCacheHeader = "X-From-Cache"

// Ensure Cache implements docscrape.Cache and http.RoundTripper at compile time.
var (
	_ docscrape.Cache   = (*Cache)(nil)
	_ http.RoundTripper = (*Cache)(nil)
)

// Cache is an http.RoundTripper that stores successful GET responses in
// SQLite and replays them on later requests for the same URL.
type Cache struct {
	db          *DB
	next        http.RoundTripper
	expireAfter time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithExpireAfter sets the maximum age of a cached response.
// Zero, the default, keeps responses until the cache is cleared.
func WithExpireAfter(d time.Duration) CacheOption {
	return func(c *Cache) {
		c.expireAfter = d
	}
}

// NewCache returns a Cache backed by db that sends misses to next.
// If next is nil, http.DefaultTransport is used.
func NewCache(db *DB, next http.RoundTripper, opts ...CacheOption) *Cache {
	if next == nil {
		next = http.DefaultTransport
	}
	c := &Cache{
		db:   db,
		next: next,
		Now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RoundTrip serves GET requests from the cache when possible.
// Only 200 responses are stored.
func (c *Cache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != "" && req.Method != http.MethodGet {
		return c.next.RoundTrip(req)
	}

	ctx := req.Context()
	key := cacheKey(req.Method, req.URL.String())

	resp, err := c.lookup(ctx, key, req)
	if err != nil {
		return nil, err
	}
	if resp != nil {
		return resp, nil
	}

	resp, err = c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, key, req.URL.String(), resp, body); err != nil {
		return nil, err
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

// Clear removes every cached response.
func (c *Cache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM responses`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Len returns the number of cached responses.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cached responses: %w", err)
	}
	return n, nil
}

func (c *Cache) lookup(ctx context.Context, key string, req *http.Request) (*http.Response, error) {
	var (
		statusCode int
		rawHeader  string
		body       []byte
		createdAt  string
	)
	err := c.db.QueryRowContext(ctx, `
		SELECT status_code, header, body, created_at
		FROM responses
		WHERE key = ?
	`, key).Scan(&statusCode, &rawHeader, &body, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read cached response: %w", err)
	}

	created, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	if c.expireAfter > 0 && c.Now().Sub(created) > c.expireAfter {
		return nil, nil
	}

	header := make(http.Header)
	if err := json.Unmarshal([]byte(rawHeader), &header); err != nil {
		return nil, fmt.Errorf("failed to decode cached header: %w", err)
	}
	header.Set(FromCacheHeader, "1")

	return &http.Response{
		Status:        strconv.Itoa(statusCode) + " " + http.StatusText(statusCode),
		StatusCode:    statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

func (c *Cache) store(ctx context.Context, key, url string, resp *http.Response, body []byte) error {
	header, err := json.Marshal(resp.Header)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}
	if body == nil {
		body = []byte{}
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO responses (key, url, status_code, header, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		key,
		url,
		resp.StatusCode,
		string(header),
		body,
		c.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to store response: %w", err)
	}
	return nil
}

// cacheKey hashes the request line into a fixed-width key.
func cacheKey(method, url string) string {
	if method == "" {
		method = http.MethodGet
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(method+" "+url))
}
