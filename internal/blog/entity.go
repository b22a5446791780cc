// AngelaMos | 2026
// entity.go

package blog

import (
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

// Blog is a published post. The image_url column is the one field whose wire
// name differs from its column name.
type Blog struct {
	ID       int64     `db:"id"        json:"id"`
	Title    string    `db:"title"     json:"title"`
	Slug     string    `db:"slug"      json:"slug"`
	Excerpt  string    `db:"excerpt"   json:"excerpt"`
	Content  string    `db:"content"   json:"content"`
	ImageURL string    `db:"image_url" json:"imageUrl"`
	Date     core.Date `db:"date"      json:"date"`
}
