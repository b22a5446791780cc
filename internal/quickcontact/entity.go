// AngelaMos | 2026
// entity.go

package quickcontact

import (
	"time"
)

// QuickContact is the short-form lead submission: a name and phone number
// with an optional subject and message. Same lifecycle as an enquiry.
type QuickContact struct {
	ID        int64     `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Phone     string    `db:"phone"      json:"phone"`
	Subject   *string   `db:"subject"    json:"subject"`
	Message   *string   `db:"message"    json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
