// AngelaMos | 2026
// entity.go

package letter

import (
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

// Letter is an issued letterhead, immutable once written.
type Letter struct {
	ID        int64     `db:"id"         json:"id"`
	Date      core.Date `db:"date"       json:"date"`
	RefNumber string    `db:"ref_number" json:"ref_number"`
	IssuedTo  string    `db:"issued_to"  json:"issued_to"`
	IssuedBy  string    `db:"issued_by"  json:"issued_by"`
	Subject   string    `db:"subject"    json:"subject"`
	Content   string    `db:"content"    json:"content"`
}
