package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/domain/repository"
)

func newUserService(repo *fakeUserRepo) *UserService {
	return NewUserService(repo, nil, nil, nil)
}

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "ada@example.com", "secret1", true)
	svc := newUserService(repo)

	p, err := svc.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)

	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, "ada@example.com", p.Email)
	assert.Equal(t, "Ada Lovelace", p.FullName)
	assert.True(t, p.IsActive)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := newUserService(newFakeUserRepo())
	_, err := svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "ada@example.com", "secret1", true)
	svc := newUserService(repo)

	p, err := svc.UpdateProfile(context.Background(), u.ID, "Grace", "Hopper")
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", p.FullName)
	assert.True(t, p.UpdatedAt.After(u.UpdatedAt))

	stored, err := repo.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", stored.Name)
	assert.Equal(t, u.PasswordHash, stored.PasswordHash, "credentials must be untouched")
}

func TestDeactivateThenActivate(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "ada@example.com", "secret1", true)
	svc := newUserService(repo)

	require.NoError(t, svc.Deactivate(context.Background(), u.ID))
	stored, err := repo.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	require.NoError(t, svc.Activate(context.Background(), u.ID))
	stored, err = repo.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestSearchWithoutIndexer(t *testing.T) {
	svc := newUserService(newFakeUserRepo())
	hits, err := svc.Search(context.Background(), "ada", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
