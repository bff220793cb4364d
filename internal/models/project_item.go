package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectItem is a labeled reference to an external platform: either a URL
// (Link) or an account handle (Username), never both.
type ProjectItem struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Platform  string    `json:"platform"`
	Username  string    `json:"username,omitempty"`
	Link      string    `json:"link,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *ProjectItem) Validate() error {
	if i.ProjectID == uuid.Nil {
		return ErrItemProjectRequired
	}
	if i.Platform == "" {
		return ErrItemPlatformRequired
	}
	if i.Link == "" && i.Username == "" && i.Notes == "" {
		return ErrItemValueRequired
	}
	return nil
}

// IsLink reports whether the item points at a URL rather than a username.
func (i *ProjectItem) IsLink() bool {
	return i.Link != ""
}

var (
	ErrItemProjectRequired  = &ValidationError{Field: "project_id", Message: "Project ID is required"}
	ErrItemPlatformRequired = &ValidationError{Field: "platform", Message: "Platform is required"}
	ErrItemValueRequired    = &ValidationError{Field: "value", Message: "A link, username or note is required"}
)
