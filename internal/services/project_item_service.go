package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/mertkaya/platformhub/internal/repositories"
	"github.com/mertkaya/platformhub/pkg/logger"
)

type ProjectItemService struct {
	itemRepo *repositories.ProjectItemRepository
	demoMode bool
}

func NewProjectItemService(itemRepo *repositories.ProjectItemRepository, demoMode bool) *ProjectItemService {
	return &ProjectItemService{
		itemRepo: itemRepo,
		demoMode: demoMode,
	}
}

// ItemUpdate carries the fields of a partial item update; nil fields are
// left unchanged.
type ItemUpdate struct {
	Platform *string
	Username *string
	Link     *string
	Notes    *string
}

// ListItems returns a project's items, newest first. Errors yield an empty
// list rather than propagating; there is no sample fallback for items.
func (s *ProjectItemService) ListItems(projectID string) []*models.ProjectItem {
	if s.demoMode {
		return SampleItems(projectID)
	}

	items, err := s.itemRepo.GetByProjectID(projectID)
	if err != nil {
		logger.WithError(err).WithField("project_id", projectID).Error("Failed to list project items")
		return nil
	}

	return items
}

// GetItem retrieves an item by ID, nil on any error
func (s *ProjectItemService) GetItem(id string) *models.ProjectItem {
	if s.demoMode {
		for _, project := range SampleProjects() {
			for _, item := range SampleItems(project.ID.String()) {
				if item.ID.String() == id {
					return item
				}
			}
		}
		return nil
	}

	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil
	}

	return item
}

// CreateItem creates a new item under a project
func (s *ProjectItemService) CreateItem(projectID string, platform, username, link, notes string) (*models.ProjectItem, error) {
	if s.demoMode {
		return nil, ErrDemoReadOnly
	}

	project, err := uuid.Parse(projectID)
	if err != nil {
		return nil, errors.New("invalid project ID format")
	}

	item := &models.ProjectItem{
		ProjectID: project,
		Platform:  strings.TrimSpace(platform),
		Username:  strings.TrimSpace(username),
		Link:      strings.TrimSpace(link),
		Notes:     strings.TrimSpace(notes),
	}

	// Link wins when both are supplied, matching what the store keeps
	if item.Link != "" {
		item.Username = ""
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem applies a partial update to an item. Setting a link clears the
// username and the other way around, keeping the two mutually exclusive.
func (s *ProjectItemService) UpdateItem(id string, update ItemUpdate) (*models.ProjectItem, error) {
	if s.demoMode {
		return nil, ErrDemoReadOnly
	}

	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, errors.New("item not found")
	}

	if update.Platform != nil {
		item.Platform = strings.TrimSpace(*update.Platform)
	}
	if update.Link != nil {
		item.Link = strings.TrimSpace(*update.Link)
		if item.Link != "" && update.Username == nil {
			item.Username = ""
		}
	}
	if update.Username != nil {
		item.Username = strings.TrimSpace(*update.Username)
		if item.Username != "" && update.Link == nil {
			item.Link = ""
		}
	}
	if update.Notes != nil {
		item.Notes = strings.TrimSpace(*update.Notes)
	}

	// When both fields arrive populated, the link wins as it does in the store
	if item.Link != "" {
		item.Username = ""
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes an item, reporting success
func (s *ProjectItemService) DeleteItem(id string) bool {
	if s.demoMode {
		return false
	}

	if err := s.itemRepo.Delete(id); err != nil {
		logger.WithError(err).WithField("item_id", id).Error("Failed to delete project item")
		return false
	}

	return true
}
