// AngelaMos | 2026
// entity.go

package billing

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

// Item is one billed line. Rate and price stay strings end to end; only the
// grand total is stored as a numeric column.
type Item struct {
	Service  string `json:"service"`
	Rate     string `json:"rate"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// Items maps the jsonb products column.
type Items []Item

func (i *Items) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	case nil:
		*i = nil
		return nil
	default:
		return fmt.Errorf("scan items: unsupported type %T", src)
	}
}

func (i Items) Value() (driver.Value, error) {
	return json.Marshal(i)
}

// Bill is immutable once written; there is no update or delete path.
type Bill struct {
	ID              int64         `db:"id"               json:"id"`
	BillNo          string        `db:"bill_no"          json:"bill_no"`
	CustomerName    *string       `db:"customer_name"    json:"customer_name"`
	CustomerContact *string       `db:"customer_contact" json:"customer_contact"`
	Products        Items         `db:"products"         json:"products"`
	TotalAmount     *core.Numeric `db:"total_amount"     json:"total_amount"`
	PaymentMode     *string       `db:"payment_mode"     json:"payment_mode"`
	BillingDate     core.Date     `db:"billing_date"     json:"billing_date"`
}
