package mock

import (
	"context"
	"time"

	"github.com/fwojciec/sigles"
)

var _ sigles.PageService = (*PageService)(nil)

// PageService is a mock implementation of sigles.PageService.
type PageService struct {
	FindPageFn          func(ctx context.Context, url string) (*sigles.Page, error)
	SavePageFn          func(ctx context.Context, page *sigles.Page) error
	DeletePagesBeforeFn func(ctx context.Context, t time.Time) (int, error)
}

func (s *PageService) FindPage(ctx context.Context, url string) (*sigles.Page, error) {
	return s.FindPageFn(ctx, url)
}

func (s *PageService) SavePage(ctx context.Context, page *sigles.Page) error {
	return s.SavePageFn(ctx, page)
}

func (s *PageService) DeletePagesBefore(ctx context.Context, t time.Time) (int, error) {
	return s.DeletePagesBeforeFn(ctx, t)
}
