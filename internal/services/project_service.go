package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/mertkaya/platformhub/internal/repositories"
	"github.com/mertkaya/platformhub/pkg/logger"
)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	demoMode    bool
}

func NewProjectService(projectRepo *repositories.ProjectRepository, demoMode bool) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		demoMode:    demoMode,
	}
}

// ProjectUpdate carries the fields of a partial project update; nil fields
// are left unchanged.
type ProjectUpdate struct {
	Title       *string
	Description *string
	Status      *string
}

// ListProjects returns the owner's projects, newest first. Store failures
// fall back to the sample set; a missing owner yields an empty list.
func (s *ProjectService) ListProjects(ownerID string) []*models.Project {
	if ownerID == "" {
		return nil
	}

	if s.demoMode {
		return SampleProjects()
	}

	projects, err := s.projectRepo.GetByOwnerID(ownerID)
	if err != nil {
		logger.WithError(err).Error("Failed to list projects, serving sample data")
		return SampleProjects()
	}

	return projects
}

// GetProject retrieves a project by ID, nil on any error
func (s *ProjectService) GetProject(id string) *models.Project {
	if s.demoMode {
		for _, project := range SampleProjects() {
			if project.ID.String() == id {
				return project
			}
		}
		return nil
	}

	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		return nil
	}

	return project
}

// CreateProject creates a project owned by ownerID with status ongoing
func (s *ProjectService) CreateProject(ownerID, title, description string) (*models.Project, error) {
	if s.demoMode {
		return nil, ErrDemoReadOnly
	}

	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, errors.New("invalid owner ID format")
	}

	project := &models.Project{
		OwnerID:     owner,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      models.StatusOngoing,
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	return project, nil
}

// UpdateProject applies a partial update and bumps updated_at
func (s *ProjectService) UpdateProject(id string, update ProjectUpdate) (*models.Project, error) {
	if s.demoMode {
		return nil, ErrDemoReadOnly
	}

	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		return nil, errors.New("project not found")
	}

	if update.Title != nil {
		project.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		project.Description = strings.TrimSpace(*update.Description)
	}
	if update.Status != nil {
		project.Status = models.ParseProjectStatus(*update.Status)
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject removes a project and all of its items, reporting success
func (s *ProjectService) DeleteProject(id string) bool {
	if s.demoMode {
		return false
	}

	if err := s.projectRepo.Delete(id); err != nil {
		logger.WithError(err).WithField("project_id", id).Error("Failed to delete project")
		return false
	}

	return true
}

// FilterProjects filters by case-insensitive substring match on title or
// description. An empty query returns the input unchanged.
func FilterProjects(projects []*models.Project, query string) []*models.Project {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return projects
	}

	filtered := make([]*models.Project, 0, len(projects))
	for _, project := range projects {
		if strings.Contains(strings.ToLower(project.Title), query) ||
			strings.Contains(strings.ToLower(project.Description), query) {
			filtered = append(filtered, project)
		}
	}

	return filtered
}
