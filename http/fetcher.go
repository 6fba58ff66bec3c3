// Package http implements sigles.Fetcher over plain HTTP and serves the
// lookup API.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/sigles"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = sigles.DefaultFetchTimeout

// Ensure Fetcher implements sigles.Fetcher at compile time.
var _ sigles.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from source pages with browser-like headers.
// Bodies in legacy encodings are decoded to UTF-8.
type Fetcher struct {
	client *http.Client
	config sigles.FetchConfig
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithConfig replaces the request headers and timeout.
func WithConfig(cfg sigles.FetchConfig) Option {
	return func(f *Fetcher) {
		f.config = cfg
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.config.Timeout = d
	}
}

// WithTransport sets the round tripper used by the client.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.client.Transport = rt
	}
}

// NewFetcher creates a new HTTP-based Fetcher using
// sigles.DefaultFetchConfig unless overridden.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{},
		config: sigles.DefaultFetchConfig(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.config.Timeout <= 0 {
		f.config.Timeout = DefaultFetchTimeout
	}
	f.client.Timeout = f.config.Timeout

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Missing pages (404, 410) return ENOTFOUND; network failures and other
// non-2xx responses return EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", sigles.Errorf(sigles.EINVALID, "invalid url %q: %v", url, err)
	}
	for k, v := range f.config.Headers() {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", sigles.Errorf(sigles.EUNAVAILABLE, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		return "", sigles.Errorf(sigles.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", sigles.Errorf(sigles.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", sigles.Errorf(sigles.EUNAVAILABLE, "decode %s: %v", url, err)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", sigles.Errorf(sigles.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(data), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
