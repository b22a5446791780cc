// AngelaMos | 2026
// service.go

package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Bill, error) {
	return s.repo.List(ctx)
}

// Create inserts a bill under its composite prefix+suffix number. An
// unparseable grand total is stored as NULL rather than rejecting the bill;
// the field arrives as free text from the billing form.
func (s *Service) Create(ctx context.Context, req CreateBillRequest) error {
	billNo := req.BillNo()

	exists, err := s.repo.ExistsByBillNo(ctx, billNo)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("create bill: %w", core.ErrDuplicateKey)
	}

	var total *core.Numeric
	if f, err := strconv.ParseFloat(strings.TrimSpace(req.GrandTotal), 64); err == nil {
		n := core.Numeric(f)
		total = &n
	}

	bill := &Bill{
		BillNo:          billNo,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerPhone,
		Products:        Items(req.Items),
		TotalAmount:     total,
		PaymentMode:     req.PaymentMode,
	}

	if req.Date != nil {
		bill.BillingDate = *req.Date
	}

	return s.repo.Create(ctx, bill)
}
