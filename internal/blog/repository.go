// AngelaMos | 2026
// repository.go

package blog

import (
	"context"
	"fmt"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Blog, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, b *Blog) error
	UpdateBySlug(ctx context.Context, slug string, b *Blog) error
	DeleteBySlug(ctx context.Context, slug string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT id, title, slug, excerpt, content, image_url, date
		FROM blogs
		ORDER BY date DESC`

	blogs := []Blog{}
	if err := r.db.SelectContext(ctx, &blogs, query); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	return blogs, nil
}

func (r *repository) ExistsBySlug(
	ctx context.Context,
	slug string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM blogs WHERE slug = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, slug); err != nil {
		return false, fmt.Errorf("check slug exists: %w", err)
	}

	return exists, nil
}

func (r *repository) Create(ctx context.Context, b *Blog) error {
	query := `
		INSERT INTO blogs (title, slug, excerpt, content, image_url, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.GetContext(ctx, &b.ID, query,
		b.Title,
		b.Slug,
		b.Excerpt,
		b.Content,
		b.ImageURL,
		b.Date,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create blog: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create blog: %w", err)
	}

	return nil
}

func (r *repository) UpdateBySlug(
	ctx context.Context,
	slug string,
	b *Blog,
) error {
	query := `
		UPDATE blogs
		SET title = $1, slug = $2, excerpt = $3, content = $4,
		    image_url = $5, date = $6
		WHERE slug = $7`

	result, err := r.db.ExecContext(ctx, query,
		b.Title,
		b.Slug,
		b.Excerpt,
		b.Content,
		b.ImageURL,
		b.Date,
		slug,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("update blog: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update blog: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) DeleteBySlug(ctx context.Context, slug string) error {
	query := `DELETE FROM blogs WHERE slug = $1`

	result, err := r.db.ExecContext(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete blog: %w", core.ErrNotFound)
	}

	return nil
}
