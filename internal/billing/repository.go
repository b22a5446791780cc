// AngelaMos | 2026
// repository.go

package billing

import (
	"context"
	"fmt"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Bill, error)
	ExistsByBillNo(ctx context.Context, billNo string) (bool, error)
	Create(ctx context.Context, b *Bill) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Bill, error) {
	query := `
		SELECT id, bill_no, customer_name, customer_contact, products,
		       total_amount, payment_mode, billing_date
		FROM bills
		ORDER BY billing_date DESC`

	bills := []Bill{}
	if err := r.db.SelectContext(ctx, &bills, query); err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	return bills, nil
}

func (r *repository) ExistsByBillNo(
	ctx context.Context,
	billNo string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bills WHERE bill_no = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, billNo); err != nil {
		return false, fmt.Errorf("check bill number exists: %w", err)
	}

	return exists, nil
}

func (r *repository) Create(ctx context.Context, b *Bill) error {
	query := `
		INSERT INTO bills (bill_no, customer_name, customer_contact, products,
		                   total_amount, payment_mode, billing_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.GetContext(ctx, &b.ID, query,
		b.BillNo,
		b.CustomerName,
		b.CustomerContact,
		b.Products,
		b.TotalAmount,
		b.PaymentMode,
		b.BillingDate,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create bill: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create bill: %w", err)
	}

	return nil
}
