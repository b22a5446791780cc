// AngelaMos | 2026
// repository.go

package enquiry

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/client"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Repository interface {
	Create(ctx context.Context, e *Enquiry) error
	List(ctx context.Context) ([]Enquiry, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64, project client.NewProject) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Enquiry) error {
	query := `
		INSERT INTO enquiries (name, email, phone, service, budget, timeline,
		                       idea, description, reference, consent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, submitted_at`

	err := r.db.GetContext(ctx, e, query,
		e.Name,
		e.Email,
		e.Phone,
		e.Service,
		e.Budget,
		e.Timeline,
		e.Idea,
		e.Description,
		e.Reference,
		e.Consent,
	)
	if err != nil {
		return fmt.Errorf("create enquiry: %w", err)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Enquiry, error) {
	query := `
		SELECT id, name, email, phone, service, budget, timeline, idea,
		       description, reference, consent, submitted_at
		FROM enquiries
		ORDER BY submitted_at DESC`

	enquiries := []Enquiry{}
	if err := r.db.SelectContext(ctx, &enquiries, query); err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}

	return enquiries, nil
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM enquiries WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check enquiry exists: %w", err)
	}

	return exists, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM enquiries WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete enquiry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete enquiry: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete enquiry: %w", core.ErrNotFound)
	}

	return nil
}

// Approve converts the enquiry into an active client: one transaction inserts
// the project row and deletes the enquiry, committing only if both land. The
// delete doubles as the authoritative existence check, so a concurrent deny
// or approve that got there first rolls the insert back and reports NotFound.
func (r *repository) Approve(
	ctx context.Context,
	id int64,
	project client.NewProject,
) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := client.Insert(ctx, tx, project); err != nil {
			return err
		}

		result, err := tx.ExecContext(
			ctx,
			`DELETE FROM enquiries WHERE id = $1`,
			id,
		)
		if err != nil {
			return fmt.Errorf("delete approved enquiry: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete approved enquiry: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("delete approved enquiry: %w", core.ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("approve enquiry: %w", err)
	}

	return nil
}
