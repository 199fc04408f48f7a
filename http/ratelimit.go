package http

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimitedTransport is an http.RoundTripper that enforces a per-host
// request rate using token buckets. Each host gets its own limiter with a
// burst of 1.
type RateLimitedTransport struct {
	next http.RoundTripper
	rps  float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimitedTransport wraps next with per-host rate limiting.
// If next is nil, http.DefaultTransport is used. A non-positive rps
// disables limiting.
func NewRateLimitedTransport(next http.RoundTripper, rps float64) *RateLimitedTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &RateLimitedTransport{
		next:     next,
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// RoundTrip waits for the host's limiter and delegates to the wrapped transport.
func (t *RateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.rps > 0 {
		if err := t.limiter(req.URL.Host).Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	return t.next.RoundTrip(req)
}

func (t *RateLimitedTransport) limiter(host string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	limiter, ok := t.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(t.rps), 1)
		t.limiters[host] = limiter
	}
	return limiter
}
