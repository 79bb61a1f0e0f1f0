package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/domain/apperr"
	"taskhub/internal/domain/entity"
)

// Exercises the full account lifecycle against the in-memory repository:
// register, login, refresh, deactivate, then watch both login and refresh
// reject the account.
func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	jwt := testJWT()

	register := NewRegisterUseCase(repo, entity.NewUserFactory(), nil, nil, nil)
	login := NewLoginUseCase(repo, jwt, nil)
	refresh := NewRefreshTokenUseCase(repo, jwt, nil)
	users := NewUserService(repo, nil, nil, nil)

	out, err := register.Execute(ctx, RegisterInput{
		Email:    "flow@example.com",
		Name:     "Flow",
		LastName: "Test",
		Password: "secret1",
	})
	require.NoError(t, err)

	res, err := login.Execute(ctx, LoginInput{Email: "flow@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, out.ID, res.User.ID)

	pair, err := refresh.Execute(ctx, res.Tokens.RefreshToken)
	require.NoError(t, err)
	claims, err := jwt.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.ID, claims.Subject)

	require.NoError(t, users.Deactivate(ctx, out.ID))

	_, err = login.Execute(ctx, LoginInput{Email: "flow@example.com", Password: "secret1"})
	assert.True(t, apperr.IsAuth(err, apperr.InactiveAccount))

	_, err = refresh.Execute(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, apperr.ErrInvalidRefreshToken)
}
