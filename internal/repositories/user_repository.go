package repositories

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, email_confirmed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		user.ID.String(),
		user.Email,
		user.Name,
		user.PasswordHash,
		user.EmailConfirmed,
		user.CreatedAt,
	)
	return err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := `SELECT id, email, name, password_hash, email_confirmed, created_at, last_sign_in_at FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRow(query, id))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, name, password_hash, email_confirmed, created_at, last_sign_in_at FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRow(query, email))
}

// UpdateLastSignIn records the time of the user's latest successful sign-in
func (r *UserRepository) UpdateLastSignIn(id string, signedInAt time.Time) error {
	query := `UPDATE users SET last_sign_in_at = ? WHERE id = ?`

	result, err := r.db.Exec(query, signedInAt, id)
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

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var userID string
	var lastSignIn sql.NullTime

	err := row.Scan(
		&userID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.EmailConfirmed,
		&user.CreatedAt,
		&lastSignIn,
	)
	if err != nil {
		return nil, err
	}

	user.ID, err = uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	if lastSignIn.Valid {
		user.LastSignInAt = &lastSignIn.Time
	}

	return &user, nil
}
