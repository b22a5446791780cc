// AngelaMos | 2026
// service.go

package letter

import (
	"context"
	"fmt"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Letter, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateLetterRequest) error {
	exists, err := s.repo.ExistsByRefNumber(ctx, req.RefNumber)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("create letter: %w", core.ErrDuplicateKey)
	}

	return s.repo.Create(ctx, &Letter{
		Date:      req.Date,
		RefNumber: req.RefNumber,
		IssuedTo:  req.IssuedTo,
		IssuedBy:  req.IssuedBy,
		Subject:   req.Subject,
		Content:   req.Content,
	})
}
