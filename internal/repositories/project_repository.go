package repositories

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	query := `
		INSERT INTO projects (id, user_id, name, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	project.ID = uuid.New()
	if project.Status == "" {
		project.Status = models.StatusOngoing
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.db.Exec(query,
		project.ID.String(),
		project.OwnerID.String(),
		project.Title,
		project.Description,
		string(project.Status),
		project.CreatedAt,
		project.UpdatedAt,
	)

	return err
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id string) (*models.Project, error) {
	query := `
		SELECT id, user_id, name, description, status, created_at, updated_at
		FROM projects
		WHERE id = ?
	`

	return scanProject(r.db.QueryRow(query, id))
}

// GetByOwnerID retrieves all projects for an owner, newest first
func (r *ProjectRepository) GetByOwnerID(ownerID string) ([]*models.Project, error) {
	query := `
		SELECT id, user_id, name, description, status, created_at, updated_at
		FROM projects
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// Update updates a project's title, description and status. The updated_at
// timestamp is always bumped.
func (r *ProjectRepository) Update(project *models.Project) error {
	query := `
		UPDATE projects
		SET name = ?, description = ?, status = ?, updated_at = ?
		WHERE id = ?
	`

	project.UpdatedAt = time.Now().UTC()

	result, err := r.db.Exec(query,
		project.Title,
		project.Description,
		string(project.Status),
		project.UpdatedAt,
		project.ID.String(),
	)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete removes a project together with all of its items. Both deletes run
// in a single transaction so a failure leaves neither orphaned rows nor a
// half-deleted project.
func (r *ProjectRepository) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM resources WHERE project_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// scanner matches both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(s scanner) (*models.Project, error) {
	project := &models.Project{}
	var projectID, ownerID, status string

	err := s.Scan(
		&projectID,
		&ownerID,
		&project.Title,
		&project.Description,
		&status,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.ID, err = uuid.Parse(projectID)
	if err != nil {
		return nil, err
	}

	project.OwnerID, err = uuid.Parse(ownerID)
	if err != nil {
		return nil, err
	}

	project.Status = models.ParseProjectStatus(status)

	return project, nil
}
