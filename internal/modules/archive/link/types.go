package link

import "github.com/linkmoa/core/internal/models"

// CreateLinkDTO is the body of POST /links.
type CreateLinkDTO struct {
	URL    string `json:"url"     binding:"required"`
	UserID string `json:"user_id"`
}

// UpdateLinkDTO is the body of PUT /links/:id. Memo is a pointer so an
// explicit empty string still clears the memo, while title/category are
// applied only when non-empty.
type UpdateLinkDTO struct {
	Title    string  `json:"title"`
	Memo     *string `json:"memo"`
	Category string  `json:"category"`
}

type listResponse struct {
	Total int64              `json:"total"`
	Links []models.LinkModel `json:"links"`
}
