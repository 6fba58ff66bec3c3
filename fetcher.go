package sigles

import (
	"context"
	"time"
)

// Default fetch settings. The language preference biases Usito toward
// French content.
const (
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	DefaultAcceptLanguage = "fr-FR,fr;q=0.9,en-US;q=0.8,en;q=0.7"
	DefaultFetchTimeout   = 10 * time.Second
)

// FetchConfig holds the request settings shared by every fetch.
// It is passed by value and never mutated after construction.
type FetchConfig struct {
	UserAgent      string
	Accept         string
	AcceptLanguage string
	Timeout        time.Duration
}

// DefaultFetchConfig returns the browser-like settings used for all sources.
func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		UserAgent:      DefaultUserAgent,
		Accept:         DefaultAccept,
		AcceptLanguage: DefaultAcceptLanguage,
		Timeout:        DefaultFetchTimeout,
	}
}

// Headers returns the HTTP headers implied by the config.
// Empty values are omitted.
func (c FetchConfig) Headers() map[string]string {
	h := make(map[string]string, 3)
	if c.UserAgent != "" {
		h["User-Agent"] = c.UserAgent
	}
	if c.Accept != "" {
		h["Accept"] = c.Accept
	}
	if c.AcceptLanguage != "" {
		h["Accept-Language"] = c.AcceptLanguage
	}
	return h
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML at url.
	// Implementations return ENOTFOUND for missing pages and EUNAVAILABLE
	// for network failures and other non-2xx responses. The context
	// controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter throttles requests per host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, domain string) error
}
