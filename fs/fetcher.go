package fs

import (
	"context"
	"time"

	"github.com/fwojciec/sigles"
)

var _ sigles.Fetcher = (*Fetcher)(nil)

// Fetcher saves every successfully fetched page with a Writer.
// Archive failures are reported to onError and never fail the fetch.
type Fetcher struct {
	fetcher sigles.Fetcher
	writer  *Writer
	onError func(url string, err error)
}

// NewFetcher wraps fetcher so that pages are archived by w.
// onError may be nil.
func NewFetcher(fetcher sigles.Fetcher, w *Writer, onError func(url string, err error)) *Fetcher {
	return &Fetcher{fetcher: fetcher, writer: w, onError: onError}
}

// Fetch fetches url and archives the result.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	page := &sigles.Page{URL: url, HTML: html, FetchedAt: time.Now()}
	if err := f.writer.SavePage(ctx, page); err != nil && f.onError != nil {
		f.onError(url, err)
	}
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.fetcher.Close()
}
