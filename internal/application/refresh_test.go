package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/domain/apperr"
	"taskhub/pkg/helpers"
)

func TestRefreshSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "ada@example.com", "secret1", true)
	jwt := testJWT()
	uc := NewRefreshTokenUseCase(repo, jwt, nil)

	refresh, _, err := jwt.GenerateRefreshToken(u.ID)
	require.NoError(t, err)

	pair, err := uc.Execute(context.Background(), refresh)
	require.NoError(t, err)

	claims, err := jwt.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)

	rclaims, err := jwt.ParseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, rclaims.Subject)
}

func TestRefreshRotationProducesDistinctTokens(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "ada@example.com", "secret1", true)
	jwt := testJWT()
	uc := NewRefreshTokenUseCase(repo, jwt, nil)

	refresh, _, err := jwt.GenerateRefreshToken(u.ID)
	require.NoError(t, err)

	first, err := uc.Execute(context.Background(), refresh)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, refresh, first.RefreshToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "ada@example.com", "secret1", true)
	jwt := testJWT()
	uc := NewRefreshTokenUseCase(repo, jwt, nil)

	access, _, err := jwt.GenerateAccessToken(u.ID, u.Email, u.Name, u.LastName)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), access)
	assert.ErrorIs(t, err, apperr.ErrInvalidRefreshToken)
	assert.Equal(t, 0, repo.findByIDCalls, "token must be rejected before any lookup")
}

func TestRefreshRejectsGarbage(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRefreshTokenUseCase(repo, testJWT(), nil)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := uc.Execute(context.Background(), token)
		assert.ErrorIs(t, err, apperr.ErrInvalidRefreshToken, token)
	}
	assert.Equal(t, 0, repo.findByIDCalls)
}

func TestRefreshRejectsExpired(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "ada@example.com", "secret1", true)
	short := helpers.NewJWTManager("test-access", "test-refresh", time.Minute, -time.Minute)
	uc := NewRefreshTokenUseCase(repo, short, nil)

	expired, _, err := short.GenerateRefreshToken(u.ID)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), expired)
	assert.ErrorIs(t, err, apperr.ErrInvalidRefreshToken)
}

func TestRefreshUnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	jwt := testJWT()
	uc := NewRefreshTokenUseCase(repo, jwt, nil)

	refresh, _, err := jwt.GenerateRefreshToken("no-such-user")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), refresh)
	assert.ErrorIs(t, err, apperr.ErrInvalidRefreshToken)
}

func TestRefreshInactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "gone@example.com", "secret1", false)
	jwt := testJWT()
	uc := NewRefreshTokenUseCase(repo, jwt, nil)

	refresh, _, err := jwt.GenerateRefreshToken(u.ID)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), refresh)
	assert.ErrorIs(t, err, apperr.ErrInvalidRefreshToken,
		"inactive accounts collapse into the same opaque error")
}
