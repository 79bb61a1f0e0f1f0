package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/domain/apperr"
	"taskhub/internal/domain/entity"
	"taskhub/pkg/helpers"
)

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-access", "test-refresh", 15*time.Minute, 168*time.Hour)
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active bool) entity.User {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	u := entity.User{
		ID:           "u-" + email,
		Email:        email,
		Name:         "Ada",
		LastName:     "Lovelace",
		PasswordHash: hash,
		IsActive:     active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	repo.put(u)
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "ada@example.com", "secret1", true)
	uc := NewLoginUseCase(repo, testJWT(), nil)

	res, err := uc.Execute(context.Background(), LoginInput{Email: "Ada@Example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, u.ID, res.User.ID)
	assert.Equal(t, "ada@example.com", res.User.Email)

	claims, err := testJWT().ParseAccessToken(res.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "Lovelace", claims.LastName)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)

	rclaims, err := testJWT().ParseRefreshToken(res.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, rclaims.Subject)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), rclaims.ExpiresAt.Time, 5*time.Second)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ada@example.com", "secret1", true)
	uc := NewLoginUseCase(repo, testJWT(), nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrongpw"})
	require.Error(t, err)
	assert.True(t, apperr.IsAuth(err, apperr.InvalidCredentials))
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewLoginUseCase(repo, testJWT(), nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "ghost@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, apperr.IsAuth(err, apperr.InvalidCredentials))
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "gone@example.com", "secret1", false)
	uc := NewLoginUseCase(repo, testJWT(), nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "gone@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, apperr.IsAuth(err, apperr.InactiveAccount))
	assert.EqualError(t, err, "inactive user")
}

func TestLoginInactiveWithWrongPassword(t *testing.T) {
	// The active flag must not be probeable with guessed passwords: a wrong
	// password on an inactive account reads as invalid credentials.
	repo := newFakeUserRepo()
	seedUser(t, repo, "gone@example.com", "secret1", false)
	uc := NewLoginUseCase(repo, testJWT(), nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "gone@example.com", Password: "wrongpw"})
	require.Error(t, err)
	assert.True(t, apperr.IsAuth(err, apperr.InvalidCredentials))
}

func TestLoginInvalidEmailFormat(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewLoginUseCase(repo, testJWT(), nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "not-an-email", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err, apperr.InvalidEmail))
}
