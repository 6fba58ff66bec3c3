// Package retry retries transient fetch failures with exponential backoff.
package retry

import (
	"context"
	"time"

	"github.com/avast/retry-go"
	"github.com/fwojciec/sigles"
)

// Defaults give delays of 1s, 2s and 4s between four attempts.
const (
	DefaultAttempts = 4
	DefaultDelay    = 1 * time.Second
)

var _ sigles.Fetcher = (*Fetcher)(nil)

// Fetcher retries fetches that failed with EUNAVAILABLE. Other failures,
// missing pages included, are returned at once.
type Fetcher struct {
	fetcher  sigles.Fetcher
	attempts uint
	delay    time.Duration
	onRetry  func(url string, attempt uint, err error)
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithAttempts sets the total number of attempts, first one included.
func WithAttempts(n uint) Option {
	return func(f *Fetcher) {
		f.attempts = n
	}
}

// WithDelay sets the base backoff delay.
func WithDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.delay = d
	}
}

// WithOnRetry registers a callback invoked before each retry.
func WithOnRetry(fn func(url string, attempt uint, err error)) Option {
	return func(f *Fetcher) {
		f.onRetry = fn
	}
}

// NewFetcher wraps fetcher with retries.
func NewFetcher(fetcher sigles.Fetcher, opts ...Option) *Fetcher {
	f := &Fetcher{
		fetcher:  fetcher,
		attempts: DefaultAttempts,
		delay:    DefaultDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.attempts == 0 {
		f.attempts = 1
	}
	return f
}

// Fetch fetches url, retrying while the error is EUNAVAILABLE.
// The last fetch error is returned when every attempt fails.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var html string
	var lastErr error

	err := retry.Do(
		func() error {
			h, err := f.fetcher.Fetch(ctx, url)
			if err != nil {
				lastErr = err
				if !Retryable(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			html = h
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			if f.onRetry != nil {
				f.onRetry(url, n+1, err)
			}
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if lastErr != nil {
			return "", lastErr
		}
		return "", err
	}
	return html, nil
}

// Close closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.fetcher.Close()
}

// Retryable reports whether err is a transient fetch failure.
func Retryable(err error) bool {
	return sigles.ErrorCode(err) == sigles.EUNAVAILABLE
}
