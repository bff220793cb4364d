package repositories

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
)

type ProjectItemRepository struct {
	db *sql.DB
}

func NewProjectItemRepository(db *sql.DB) *ProjectItemRepository {
	return &ProjectItemRepository{
		db: db,
	}
}

// Create creates a new project item
func (r *ProjectItemRepository) Create(item *models.ProjectItem) error {
	query := `
		INSERT INTO resources (id, project_id, platform, label, value, is_link, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()

	row := newResourceRow(item)

	_, err := r.db.Exec(query,
		row.ID,
		row.ProjectID,
		row.Platform,
		row.Label,
		row.Value,
		row.IsLink,
		row.Notes,
		row.CreatedAt,
	)

	return err
}

// GetByID retrieves a project item by ID
func (r *ProjectItemRepository) GetByID(id string) (*models.ProjectItem, error) {
	query := `
		SELECT id, project_id, platform, label, value, is_link, notes, created_at
		FROM resources
		WHERE id = ?
	`

	return scanItem(r.db.QueryRow(query, id))
}

// GetByProjectID retrieves all items for a project, newest first
func (r *ProjectItemRepository) GetByProjectID(projectID string) ([]*models.ProjectItem, error) {
	query := `
		SELECT id, project_id, platform, label, value, is_link, notes, created_at
		FROM resources
		WHERE project_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.ProjectItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Update updates a project item's platform, value and notes. The legacy
// label column is left untouched.
func (r *ProjectItemRepository) Update(item *models.ProjectItem) error {
	query := `
		UPDATE resources
		SET platform = ?, value = ?, is_link = ?, notes = ?
		WHERE id = ?
	`

	row := newResourceRow(item)

	result, err := r.db.Exec(query,
		row.Platform,
		row.Value,
		row.IsLink,
		row.Notes,
		row.ID,
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

// Delete removes a project item
func (r *ProjectItemRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM resources WHERE id = ?`, id)
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

// ListGitHubUsernames returns the distinct GitHub usernames stored across
// all projects. Used to warm the profile preview cache.
func (r *ProjectItemRepository) ListGitHubUsernames() ([]string, error) {
	query := `
		SELECT DISTINCT value
		FROM resources
		WHERE is_link = 0 AND value != '' AND LOWER(platform) = 'github'
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		usernames = append(usernames, username)
	}

	return usernames, rows.Err()
}

func scanItem(s scanner) (*models.ProjectItem, error) {
	row := &resourceRow{}

	err := s.Scan(
		&row.ID,
		&row.ProjectID,
		&row.Platform,
		&row.Label,
		&row.Value,
		&row.IsLink,
		&row.Notes,
		&row.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return row.toItem(), nil
}
