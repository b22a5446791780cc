// AngelaMos | 2026
// dto.go

package quickcontact

import (
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type CreateQuickContactRequest struct {
	Name    string  `json:"name"    validate:"required,max=255"`
	Phone   string  `json:"phone"   validate:"required,max=50"`
	Subject *string `json:"subject" validate:"omitempty,max=500"`
	Message *string `json:"message"`
}

// ApproveQuickContactRequest supplies only the project fields; the contact's
// name and phone are re-read from storage at approval time, not trusted from
// the request. The optional reference is carried onto the new project.
type ApproveQuickContactRequest struct {
	ProjectTitle       string    `json:"project_title"       validate:"required,max=255"`
	ProjectDescription string    `json:"project_description" validate:"required"`
	DeliveryDate       core.Date `json:"delivery_date"       validate:"required"`
	BillingDetails     string    `json:"billing_details"     validate:"required"`
	ProjectManager     string    `json:"project_manager"     validate:"required,max=255"`
	Reference          *string   `json:"reference"`
}
