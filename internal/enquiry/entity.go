// AngelaMos | 2026
// entity.go

package enquiry

import (
	"time"
)

// Enquiry is a public lead submission awaiting triage. It is destroyed on
// deny, or converted into an active client (and deleted) on approve; an
// enquiry and its derived project never coexist.
type Enquiry struct {
	ID          int64     `db:"id"           json:"id"`
	Name        string    `db:"name"         json:"name"`
	Email       string    `db:"email"        json:"email"`
	Phone       *string   `db:"phone"        json:"phone"`
	Service     *string   `db:"service"      json:"service"`
	Budget      string    `db:"budget"       json:"budget"`
	Timeline    string    `db:"timeline"     json:"timeline"`
	Idea        string    `db:"idea"         json:"idea"`
	Description string    `db:"description"  json:"description"`
	Reference   *string   `db:"reference"    json:"reference"`
	Consent     bool      `db:"consent"      json:"consent"`
	SubmittedAt time.Time `db:"submitted_at" json:"submitted_at"`
}
