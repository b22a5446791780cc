// AngelaMos | 2026
// service.go

package blog

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

func (s *Service) List(ctx context.Context) ([]Blog, error) {
	return s.repo.List(ctx)
}

// Create pre-checks the slug for a friendly error; the unique constraint on
// blogs.slug backstops the race between check and insert.
func (s *Service) Create(ctx context.Context, req UpsertBlogRequest) error {
	exists, err := s.repo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("create blog: %w", core.ErrDuplicateKey)
	}

	return s.repo.Create(ctx, &Blog{
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Date:     req.Date,
	})
}

func (s *Service) Update(
	ctx context.Context,
	slug string,
	req UpsertBlogRequest,
) error {
	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("update blog: %w", core.ErrNotFound)
	}

	return s.repo.UpdateBySlug(ctx, slug, &Blog{
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Date:     req.Date,
	})
}

func (s *Service) Delete(ctx context.Context, slug string) error {
	return s.repo.DeleteBySlug(ctx, slug)
}
