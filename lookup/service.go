package lookup

import (
	"context"
	"strings"

	"github.com/fwojciec/sigles"
	"golang.org/x/sync/errgroup"
)

// Ensure Service implements sigles.LookupService at compile time.
var _ sigles.LookupService = (*Service)(nil)

// Service aggregates providers into a sigles.LookupService.
type Service struct {
	providers   []sigles.Provider
	concurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithConcurrency queries up to n providers at once during LookupAll.
// Values below 2 keep lookups sequential.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		s.concurrency = n
	}
}

// NewService creates a Service over providers. Providers are ordered by
// source priority; at most one provider per source is kept.
func NewService(providers []sigles.Provider, opts ...Option) *Service {
	s := &Service{concurrency: 1}
	for _, src := range sigles.Sources {
		for _, p := range providers {
			if p.Source() == src {
				s.providers = append(s.providers, p)
				break
			}
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LookupUsito returns the first Usito candidate for term. Fetch failures
// are reported as ENOTFOUND.
func (s *Service) LookupUsito(ctx context.Context, term string) (*sigles.Record, error) {
	if strings.TrimSpace(term) == "" {
		return nil, sigles.Errorf(sigles.EINVALID, "term required")
	}
	p := s.provider(sigles.SourceUsito)
	if p == nil {
		return nil, sigles.Errorf(sigles.ENOTFOUND, "no usito provider")
	}

	records, err := p.Lookup(ctx, term)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, sigles.Errorf(sigles.ENOTFOUND, "%q not found in usito: %s", term, sigles.ErrorMessage(err))
	}
	if len(records) == 0 {
		return nil, sigles.Errorf(sigles.ENOTFOUND, "%q not found in usito", term)
	}
	return records[0], nil
}

// LookupSource returns every candidate source yields for term.
func (s *Service) LookupSource(ctx context.Context, source sigles.Source, term string) ([]*sigles.Record, error) {
	if strings.TrimSpace(term) == "" {
		return nil, sigles.Errorf(sigles.EINVALID, "term required")
	}
	p := s.provider(source)
	if p == nil {
		return nil, sigles.Errorf(sigles.EINVALID, "unknown source %q", source)
	}
	return p.Lookup(ctx, term)
}

// LookupAll queries every provider and keeps the first candidate of each
// one that matched. A failing provider never affects the others. Records
// are returned in priority order whatever the completion order.
func (s *Service) LookupAll(ctx context.Context, term string) (*sigles.Result, error) {
	if strings.TrimSpace(term) == "" {
		return nil, sigles.Errorf(sigles.EINVALID, "term required")
	}

	// One slot per provider keeps priority order under concurrency.
	slots := make([]*sigles.Record, len(s.providers))

	if s.concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.concurrency)
		for i, p := range s.providers {
			g.Go(func() error {
				slots[i] = first(gctx, p, term)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, p := range s.providers {
			if ctx.Err() != nil {
				break
			}
			slots[i] = first(ctx, p, term)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &sigles.Result{Term: sigles.DisplayTerm(term)}
	for _, rec := range slots {
		if rec != nil {
			result.Records = append(result.Records, rec)
		}
	}
	if len(result.Records) == 0 {
		return nil, sigles.Errorf(sigles.ENOTFOUND, "no source matched %q", term)
	}
	return result, nil
}

// first returns the top candidate of p, or nil when p fails.
func first(ctx context.Context, p sigles.Provider, term string) *sigles.Record {
	records, err := p.Lookup(ctx, term)
	if err != nil || len(records) == 0 {
		return nil
	}
	return records[0]
}

func (s *Service) provider(source sigles.Source) sigles.Provider {
	for _, p := range s.providers {
		if p.Source() == source {
			return p
		}
	}
	return nil
}
