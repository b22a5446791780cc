// AngelaMos | 2026
// entity.go

package client

import (
	"time"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// ActiveClient is a project under management. Rows are created only by the
// approval workflow and are never deleted; status moves active -> completed.
type ActiveClient struct {
	ID                 int64      `db:"id"                  json:"id"`
	ClientName         string     `db:"client_name"         json:"client_name"`
	ContactEmail       *string    `db:"contact_email"       json:"-"`
	ContactPhone       *string    `db:"contact_phone"       json:"contact_phone"`
	ProjectTitle       string     `db:"project_title"       json:"project_title"`
	ProjectDescription *string    `db:"project_description" json:"project_description"`
	DeliveryDate       *core.Date `db:"delivery_date"       json:"delivery_date"`
	AdvanceToken       *string    `db:"advance_token"       json:"advance_token"`
	ProjectManager     *string    `db:"project_manager"     json:"project_manager"`
	ProjectReference   *string    `db:"project_reference"   json:"project_reference"`
	Status             string     `db:"status"              json:"status"`
	CreatedAt          time.Time  `db:"created_at"          json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"          json:"updated_at"`
}

// NewProject is the row the approval workflow inserts: contact fields carried
// over from the submission plus the project fields supplied at approval.
type NewProject struct {
	ClientName         string
	ContactEmail       *string
	ContactPhone       *string
	ProjectTitle       string
	ProjectDescription string
	DeliveryDate       core.Date
	AdvanceToken       string
	ProjectManager     string
	ProjectReference   *string
}
