package rate_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/sigles"
	"github.com/fwojciec/sigles/mock"
	"github.com/fwojciec/sigles/rate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request does not wait", func(t *testing.T) {
		t.Parallel()

		limiter := rate.NewDomainLimiter(10)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "www.abbreviations.com"))

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("second request to the same host waits", func(t *testing.T) {
		t.Parallel()

		limiter := rate.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "www.abbreviations.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "www.abbreviations.com"))

		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("hosts are throttled independently", func(t *testing.T) {
		t.Parallel()

		limiter := rate.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "www.abbreviations.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "www.allacronyms.com"))

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("gives up when the context expires", func(t *testing.T) {
		t.Parallel()

		limiter := rate.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "usito.usherbrooke.ca"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "usito.usherbrooke.ca"))
	})
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("waits on the url host before fetching", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var hosts []string
		limiter := &mock.DomainLimiter{WaitFn: func(ctx context.Context, domain string) error {
			mu.Lock()
			defer mu.Unlock()
			hosts = append(hosts, domain)
			return nil
		}}
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		f := rate.NewFetcher(inner, limiter)

		html, err := f.Fetch(context.Background(), "https://www.acronymfinder.com/ONG.html")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, []string{"www.acronymfinder.com"}, hosts)
	})

	t.Run("does not fetch when waiting fails", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.DomainLimiter{WaitFn: func(ctx context.Context, domain string) error {
			return context.Canceled
		}}
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("unexpected fetch")
				return "", nil
			},
		}
		f := rate.NewFetcher(inner, limiter)

		_, err := f.Fetch(context.Background(), "https://www.acronymfinder.com/ONG.html")

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects malformed urls", func(t *testing.T) {
		t.Parallel()

		f := rate.NewFetcher(&mock.Fetcher{}, rate.NewDomainLimiter(10))

		_, err := f.Fetch(context.Background(), "http://[::1")

		assert.Equal(t, sigles.EINVALID, sigles.ErrorCode(err))
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		f := rate.NewFetcher(&mock.Fetcher{CloseFn: func() error {
			closed = true
			return nil
		}}, rate.NewDomainLimiter(10))

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
