package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/mertkaya/platformhub/internal/repositories"
	"github.com/mertkaya/platformhub/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidEmail       = errors.New("a valid email address is required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

type AuthService struct {
	userRepo *repositories.UserRepository
	demoMode bool
}

func NewAuthService(userRepo *repositories.UserRepository, demoMode bool) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		demoMode: demoMode,
	}
}

// SignUp registers a new account with an email and password
func (s *AuthService) SignUp(email, password string) (*models.User, error) {
	if s.demoMode {
		return nil, ErrDemoReadOnly
	}

	email = normalizeEmail(email)
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn verifies credentials and records the sign-in time. In demo mode any
// credentials resolve to the sample user.
func (s *AuthService) SignIn(email, password string) (*models.User, error) {
	if s.demoMode {
		return SampleUser(), nil
	}

	user, err := s.userRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastSignIn(user.ID.String(), now); err != nil {
		logger.WithError(err).Warn("Failed to record sign-in time")
	} else {
		user.LastSignInAt = &now
	}

	return user, nil
}

// CurrentUser resolves the user behind a session, returning nil rather than
// an error when no such user exists.
func (s *AuthService) CurrentUser(userID string) *models.User {
	if s.demoMode {
		return SampleUser()
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil
	}

	return user
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
