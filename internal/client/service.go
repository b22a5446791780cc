// AngelaMos | 2026
// service.go

package client

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive(ctx context.Context) ([]ActiveClient, error) {
	return s.repo.ListActive(ctx)
}

// Complete marks the project completed; a missing id surfaces as NotFound
// from the repository. There is no transition back to active.
func (s *Service) Complete(ctx context.Context, id int64) error {
	return s.repo.Complete(ctx, id)
}
