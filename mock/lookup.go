package mock

import (
	"context"

	"github.com/fwojciec/sigles"
)

var _ sigles.Provider = (*Provider)(nil)

// Provider is a mock implementation of sigles.Provider.
type Provider struct {
	LookupFn func(ctx context.Context, term string) ([]*sigles.Record, error)
	SourceFn func() sigles.Source
}

func (p *Provider) Lookup(ctx context.Context, term string) ([]*sigles.Record, error) {
	return p.LookupFn(ctx, term)
}

func (p *Provider) Source() sigles.Source {
	return p.SourceFn()
}

var _ sigles.LookupService = (*LookupService)(nil)

// LookupService is a mock implementation of sigles.LookupService.
type LookupService struct {
	LookupUsitoFn  func(ctx context.Context, term string) (*sigles.Record, error)
	LookupAllFn    func(ctx context.Context, term string) (*sigles.Result, error)
	LookupSourceFn func(ctx context.Context, source sigles.Source, term string) ([]*sigles.Record, error)
}

func (s *LookupService) LookupUsito(ctx context.Context, term string) (*sigles.Record, error) {
	return s.LookupUsitoFn(ctx, term)
}

func (s *LookupService) LookupAll(ctx context.Context, term string) (*sigles.Result, error) {
	return s.LookupAllFn(ctx, term)
}

func (s *LookupService) LookupSource(ctx context.Context, source sigles.Source, term string) ([]*sigles.Record, error) {
	return s.LookupSourceFn(ctx, source, term)
}
