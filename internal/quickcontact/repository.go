// AngelaMos | 2026
// repository.go

package quickcontact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/client"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

// ProjectFields is what the approval carries beyond the stored contact.
type ProjectFields struct {
	ProjectTitle       string
	ProjectDescription string
	DeliveryDate       core.Date
	AdvanceToken       string
	ProjectManager     string
	Reference          *string
}

type Repository interface {
	Create(ctx context.Context, qc *QuickContact) error
	List(ctx context.Context) ([]QuickContact, error)
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64, fields ProjectFields) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, qc *QuickContact) error {
	query := `
		INSERT INTO quickcontact (name, phone, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.GetContext(ctx, qc, query,
		qc.Name,
		qc.Phone,
		qc.Subject,
		qc.Message,
	)
	if err != nil {
		return fmt.Errorf("create quick contact: %w", err)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]QuickContact, error) {
	query := `
		SELECT id, name, phone, subject, message, created_at
		FROM quickcontact
		ORDER BY created_at DESC`

	contacts := []QuickContact{}
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("list quick contacts: %w", err)
	}

	return contacts, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM quickcontact WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete quick contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quick contact: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete quick contact: %w", core.ErrNotFound)
	}

	return nil
}

// Approve re-reads the contact's name and phone, inserts the active-client
// row from them, and deletes the contact, all in one transaction. The re-read
// inside the transaction is also the existence check: a concurrently removed
// contact yields NotFound and nothing is committed.
func (r *repository) Approve(
	ctx context.Context,
	id int64,
	fields ProjectFields,
) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var contact QuickContact
		err := tx.GetContext(
			ctx,
			&contact,
			`SELECT id, name, phone FROM quickcontact WHERE id = $1`,
			id,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("read quick contact: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("read quick contact: %w", err)
		}

		phone := contact.Phone
		project := client.NewProject{
			ClientName:         contact.Name,
			ContactPhone:       &phone,
			ProjectTitle:       fields.ProjectTitle,
			ProjectDescription: fields.ProjectDescription,
			DeliveryDate:       fields.DeliveryDate,
			AdvanceToken:       fields.AdvanceToken,
			ProjectManager:     fields.ProjectManager,
			ProjectReference:   fields.Reference,
		}

		if err := client.Insert(ctx, tx, project); err != nil {
			return err
		}

		result, err := tx.ExecContext(
			ctx,
			`DELETE FROM quickcontact WHERE id = $1`,
			id,
		)
		if err != nil {
			return fmt.Errorf("delete approved quick contact: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete approved quick contact: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf(
				"delete approved quick contact: %w",
				core.ErrNotFound,
			)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("approve quick contact: %w", err)
	}

	return nil
}
