package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
)

// resourceRow mirrors the resources table. A row stores a single generic
// value; is_link records whether that value is a URL or a username.
type resourceRow struct {
	ID        string
	ProjectID string
	Platform  string
	Label     string
	Value     string
	IsLink    bool
	Notes     string
	CreatedAt time.Time
}

// newResourceRow shapes a domain item for writing. When both link and
// username are set the link wins, keeping the two mutually exclusive on read.
func newResourceRow(item *models.ProjectItem) *resourceRow {
	value := item.Link
	if value == "" {
		value = item.Username
	}

	return &resourceRow{
		ID:        item.ID.String(),
		ProjectID: item.ProjectID.String(),
		Platform:  item.Platform,
		Value:     value,
		IsLink:    item.IsLink(),
		Notes:     item.Notes,
		CreatedAt: item.CreatedAt,
	}
}

// toItem maps a stored row back to the domain shape. Malformed rows produce
// items with zero-value fields, never an error.
func (r *resourceRow) toItem() *models.ProjectItem {
	item := &models.ProjectItem{
		Platform:  r.Platform,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}

	item.ID, _ = uuid.Parse(r.ID)
	item.ProjectID, _ = uuid.Parse(r.ProjectID)

	if r.IsLink {
		item.Link = r.Value
	} else {
		item.Username = r.Value
	}

	// Rows written before notes had its own column kept the note text in label
	if item.Notes == "" {
		item.Notes = r.Label
	}

	return item
}
