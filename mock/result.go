package mock

import (
	"context"

	"github.com/fwojciec/docscout"
)

var _ docscout.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of docscout.ResultService.
type ResultService struct {
	CreateResultFn   func(ctx context.Context, result *docscout.WebsiteResult) error
	FindResultByIDFn func(ctx context.Context, id string) (*docscout.WebsiteResult, error)
	FindResultsFn    func(ctx context.Context, filter docscout.ResultFilter) ([]*docscout.WebsiteResult, error)
	DeleteResultFn   func(ctx context.Context, id string) error
}

func (s *ResultService) CreateResult(ctx context.Context, result *docscout.WebsiteResult) error {
	return s.CreateResultFn(ctx, result)
}

func (s *ResultService) FindResultByID(ctx context.Context, id string) (*docscout.WebsiteResult, error) {
	return s.FindResultByIDFn(ctx, id)
}

func (s *ResultService) FindResults(ctx context.Context, filter docscout.ResultFilter) ([]*docscout.WebsiteResult, error) {
	return s.FindResultsFn(ctx, filter)
}

func (s *ResultService) DeleteResult(ctx context.Context, id string) error {
	return s.DeleteResultFn(ctx, id)
}
