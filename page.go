package sigles

import (
	"context"
	"time"
)

// Page is a fetched source page kept in the page cache.
type Page struct {
	URL         string
	HTML        string
	ContentHash string
	FetchedAt   time.Time
}

// Validate returns an error if the page is missing its URL.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page url required")
	}
	return nil
}

// PageService stores fetched pages keyed by URL.
type PageService interface {
	// FindPage returns the cached page for url.
	// Returns ENOTFOUND if the page is not cached.
	FindPage(ctx context.Context, url string) (*Page, error)

	// SavePage stores page, replacing any previous copy of its URL.
	// ContentHash and FetchedAt are set by the implementation.
	SavePage(ctx context.Context, page *Page) error

	// DeletePagesBefore removes pages fetched before t and returns how
	// many were removed.
	DeletePagesBefore(ctx context.Context, t time.Time) (int, error)
}
