// AngelaMos | 2026
// repository.go

package client

import (
	"context"
	"fmt"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Repository interface {
	ListActive(ctx context.Context) ([]ActiveClient, error)
	Complete(ctx context.Context, id int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive(ctx context.Context) ([]ActiveClient, error) {
	query := `
		SELECT id, client_name, contact_phone, project_title,
		       project_description, delivery_date, advance_token,
		       project_manager, project_reference, status,
		       created_at, updated_at
		FROM active_clients
		WHERE status = $1
		ORDER BY created_at DESC`

	clients := []ActiveClient{}
	if err := r.db.SelectContext(ctx, &clients, query, StatusActive); err != nil {
		return nil, fmt.Errorf("list active clients: %w", err)
	}

	return clients, nil
}

func (r *repository) Complete(ctx context.Context, id int64) error {
	query := `
		UPDATE active_clients
		SET status = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, StatusCompleted, id)
	if err != nil {
		return fmt.Errorf("complete project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete project: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("complete project: %w", core.ErrNotFound)
	}

	return nil
}

// Insert writes the active-client row the approval workflow creates. It runs
// on whatever DBTX the caller holds, so approvals execute it inside their
// transaction alongside the source-row delete.
func Insert(ctx context.Context, db core.DBTX, p NewProject) error {
	query := `
		INSERT INTO active_clients (client_name, contact_email, contact_phone,
		                            project_title, project_description,
		                            delivery_date, advance_token,
		                            project_manager, project_reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := db.ExecContext(ctx, query,
		p.ClientName,
		p.ContactEmail,
		p.ContactPhone,
		p.ProjectTitle,
		p.ProjectDescription,
		p.DeliveryDate,
		p.AdvanceToken,
		p.ProjectManager,
		p.ProjectReference,
		StatusActive,
	)
	if err != nil {
		return fmt.Errorf("insert active client: %w", err)
	}

	return nil
}
