// AngelaMos | 2026
// dto.go

package billing

import (
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

// CreateBillRequest carries the billing form as the frontend sends it:
// camelCased fields, the bill number split into prefix and suffix, and the
// grand total as free text.
type CreateBillRequest struct {
	CustomerName  *string    `json:"customerName"`
	CustomerID    *string    `json:"customerId"`
	CustomerPhone *string    `json:"customerPhone"`
	BillPrefix    *string    `json:"billPrefix"`
	BillNoSuffix  *string    `json:"billNoSuffix"`
	Date          *core.Date `json:"date"`
	PaymentMode   *string    `json:"paymentMode"`
	Items         []Item     `json:"items"      validate:"required,min=1"`
	GrandTotal    string     `json:"grandTotal" validate:"required"`
}

// BillNo joins prefix and suffix; nil parts contribute nothing.
func (r *CreateBillRequest) BillNo() string {
	var no string
	if r.BillPrefix != nil {
		no += *r.BillPrefix
	}
	if r.BillNoSuffix != nil {
		no += *r.BillNoSuffix
	}
	return no
}
