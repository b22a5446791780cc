// AngelaMos | 2026
// dto.go

package enquiry

import (
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type CreateEnquiryRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Email       string  `json:"email"       validate:"required,email,max=255"`
	Phone       *string `json:"phone"       validate:"omitempty,max=50"`
	Service     *string `json:"service"     validate:"omitempty,max=255"`
	Budget      string  `json:"budget"      validate:"required,max=100"`
	Timeline    string  `json:"timeline"    validate:"required,max=100"`
	Idea        string  `json:"idea"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Reference   *string `json:"reference"   validate:"omitempty,max=255"`
	Consent     bool    `json:"consent"`
}

// ApproveEnquiryRequest carries the submission's contact fields back from the
// admin frontend together with the project fields set at approval time.
type ApproveEnquiryRequest struct {
	Name               *string   `json:"name"`
	Email              *string   `json:"email"`
	Phone              *string   `json:"phone"`
	DeliveryDate       core.Date `json:"delivery_date"       validate:"required"`
	BillingDetails     string    `json:"billing_details"     validate:"required"`
	ProjectTitle       string    `json:"project_title"       validate:"required,max=255"`
	ProjectDescription string    `json:"project_description" validate:"required"`
	ProjectManager     string    `json:"project_manager"     validate:"required,max=255"`
	ProjectReference   *string   `json:"project_reference"`
}
