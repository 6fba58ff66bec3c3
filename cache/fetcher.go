// Package cache serves source pages from a sigles.PageService before
// falling back to a live fetch.
package cache

import (
	"context"
	"time"

	"github.com/fwojciec/sigles"
)

// DefaultTTL is how long a cached page is served before it is refetched.
const DefaultTTL = 24 * time.Hour

var _ sigles.Fetcher = (*Fetcher)(nil)

// Fetcher returns cached pages younger than TTL and stores every
// successful live fetch. Cache failures never fail a fetch.
type Fetcher struct {
	fetcher sigles.Fetcher
	pages   sigles.PageService
	ttl     time.Duration
	now     func() time.Time
	onError func(url string, err error)
}

// NewFetcher wraps fetcher with a page cache. A ttl of zero uses DefaultTTL.
// Cache write failures are reported to onError, which may be nil.
func NewFetcher(fetcher sigles.Fetcher, pages sigles.PageService, ttl time.Duration, onError func(url string, err error)) *Fetcher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Fetcher{fetcher: fetcher, pages: pages, ttl: ttl, now: time.Now, onError: onError}
}

// Fetch returns the cached copy of url when fresh, otherwise fetches it.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if page, err := f.pages.FindPage(ctx, url); err == nil && f.now().Sub(page.FetchedAt) < f.ttl {
		return page.HTML, nil
	}

	html, err := f.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := f.pages.SavePage(ctx, &sigles.Page{URL: url, HTML: html}); err != nil && f.onError != nil {
		f.onError(url, err)
	}
	return html, nil
}

// Close closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.fetcher.Close()
}
