// AngelaMos | 2026
// dto.go

package letter

import (
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type CreateLetterRequest struct {
	Date      core.Date `json:"date"       validate:"required"`
	RefNumber string    `json:"ref_number" validate:"required,max=100"`
	IssuedTo  string    `json:"issued_to"  validate:"required,max=255"`
	IssuedBy  string    `json:"issued_by"  validate:"required,max=255"`
	Subject   string    `json:"subject"    validate:"required,max=500"`
	Content   string    `json:"content"    validate:"required"`
}
