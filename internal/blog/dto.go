// AngelaMos | 2026
// dto.go

package blog

import (
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

// UpsertBlogRequest covers both create and edit; both endpoints accept the
// same body, with image_url arriving snake_cased.
type UpsertBlogRequest struct {
	Title    string    `json:"title"     validate:"required,max=255"`
	Slug     string    `json:"slug"      validate:"required,max=255"`
	Excerpt  string    `json:"excerpt"   validate:"required"`
	Content  string    `json:"content"   validate:"required"`
	ImageURL string    `json:"image_url" validate:"required,max=2048"`
	Date     core.Date `json:"date"      validate:"required"`
}
