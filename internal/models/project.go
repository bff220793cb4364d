package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	StatusOngoing   ProjectStatus = "ongoing"
	StatusCompleted ProjectStatus = "completed"
	StatusArchived  ProjectStatus = "archived"
)

// ParseProjectStatus maps a stored status string to a ProjectStatus.
// Unknown or missing values default to ongoing.
func ParseProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(s) {
	case StatusOngoing, StatusCompleted, StatusArchived:
		return ProjectStatus(s)
	default:
		return StatusOngoing
	}
}

type Project struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrProjectTitleRequired
	}
	return nil
}

// Common errors
var (
	ErrProjectTitleRequired = &ValidationError{Field: "title", Message: "Project title is required"}
)
