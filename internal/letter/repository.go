// AngelaMos | 2026
// repository.go

package letter

import (
	"context"
	"fmt"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Letter, error)
	ExistsByRefNumber(ctx context.Context, refNumber string) (bool, error)
	Create(ctx context.Context, l *Letter) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Letter, error) {
	query := `
		SELECT id, date, ref_number, issued_to, issued_by, subject, content
		FROM letterheads
		ORDER BY date DESC`

	letters := []Letter{}
	if err := r.db.SelectContext(ctx, &letters, query); err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}

	return letters, nil
}

func (r *repository) ExistsByRefNumber(
	ctx context.Context,
	refNumber string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM letterheads WHERE ref_number = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, refNumber); err != nil {
		return false, fmt.Errorf("check ref number exists: %w", err)
	}

	return exists, nil
}

func (r *repository) Create(ctx context.Context, l *Letter) error {
	query := `
		INSERT INTO letterheads (date, ref_number, issued_to, issued_by,
		                         subject, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.GetContext(ctx, &l.ID, query,
		l.Date,
		l.RefNumber,
		l.IssuedTo,
		l.IssuedBy,
		l.Subject,
		l.Content,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create letter: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create letter: %w", err)
	}

	return nil
}
