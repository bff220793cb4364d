package services

import (
	"testing"

	"github.com/mertkaya/platformhub/internal/repositories"
	"github.com/mertkaya/platformhub/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSignUpAndSignIn(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), false)

	user, err := service.SignUp("Alice@Example.com ", "correct-horse")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	signedIn, err := service.SignIn("alice@example.com", "correct-horse")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, signedIn.ID)
	assert.NotNil(t, signedIn.LastSignInAt)
}

func TestSignUpValidation(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), false)

	_, err := service.SignUp("not-an-email", "longenough")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = service.SignUp("short@example.com", "2short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = service.SignUp("taken@example.com", "longenough")
	assert.NoError(t, err)
	_, err = service.SignUp("taken@example.com", "longenough")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInWrongCredentials(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), false)

	_, err := service.SignUp("bob@example.com", "rightpassword")
	assert.NoError(t, err)

	_, err = service.SignIn("bob@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.SignIn("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthDemoMode(t *testing.T) {
	service := NewAuthService(nil, true)

	_, err := service.SignUp("demo@example.com", "longenough")
	assert.ErrorIs(t, err, ErrDemoReadOnly)

	user, err := service.SignIn("anything@example.com", "anything")
	assert.NoError(t, err)
	assert.Equal(t, SampleUser().ID, user.ID)

	current := service.CurrentUser("ignored")
	assert.NotNil(t, current)
	assert.Equal(t, SampleUser().Email, current.Email)
}

func TestCurrentUserMissing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), false)

	assert.Nil(t, service.CurrentUser("no-such-id"))
}
