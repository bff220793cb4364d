package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID
	Email          string
	Name           string
	PasswordHash   string
	EmailConfirmed bool
	CreatedAt      time.Time
	LastSignInAt   *time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmailRequired
	}
	return nil
}

var (
	ErrEmailRequired = &ValidationError{Field: "email", Message: "Email is required"}
)
