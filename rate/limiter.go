// Package rate throttles source fetches per host using token buckets.
package rate

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/sigles"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the per-host rate used by the CLI.
const DefaultRequestsPerSecond = 2.0

var _ sigles.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain has its own limiter, so lookups against different sources
// never wait on each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each domain gets its own limiter with a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

var _ sigles.Fetcher = (*Fetcher)(nil)

// Fetcher waits on a DomainLimiter for the URL's host before delegating.
type Fetcher struct {
	fetcher sigles.Fetcher
	limiter sigles.DomainLimiter
}

// NewFetcher wraps fetcher with per-host throttling.
func NewFetcher(fetcher sigles.Fetcher, limiter sigles.DomainLimiter) *Fetcher {
	return &Fetcher{fetcher: fetcher, limiter: limiter}
}

// Fetch waits for the host's turn and fetches rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", sigles.Errorf(sigles.EINVALID, "invalid url %q: %v", rawURL, err)
	}
	if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
		return "", err
	}
	return f.fetcher.Fetch(ctx, rawURL)
}

// Close closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.fetcher.Close()
}
