package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"
	"taskhub/pkg/helpers"
)

const profileCacheTTL = 10 * time.Minute

// Profile is the authenticated user's own view of their account.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func profileOf(u entity.User) Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserService covers the profile surface around the auth core. Redis is a
// read cache only; Postgres stays the source of truth.
type UserService struct {
	Repo    repository.UserRepository
	Redis   *redis.Client
	Logger  *logrus.Logger
	Indexer *UserIndexer
}

func NewUserService(repo repository.UserRepository, rdb *redis.Client, logger *logrus.Logger, indexer *UserIndexer) *UserService {
	return &UserService{Repo: repo, Redis: rdb, Logger: logger, Indexer: indexer}
}

func profileKey(userID string) string { return "user:profile:" + userID }

func (s *UserService) GetProfile(ctx context.Context, userID string) (Profile, error) {
	if s.Redis != nil {
		var cached Profile
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, profileKey(userID), &cached); err == nil && ok {
			return cached, nil
		}
	}

	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	p := profileOf(u)

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, profileKey(userID), p, profileCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("profile cache write failed")
		}
	}
	return p, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID, name, lastName string) (Profile, error) {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	updated := u.UpdateProfile(name, lastName)
	if err := s.Repo.Update(ctx, updated); err != nil {
		return Profile{}, err
	}

	s.invalidate(ctx, userID)
	s.Indexer.Index(ctx, updated)
	return profileOf(updated), nil
}

// Deactivate flips the account inactive. Login and refresh reject inactive
// accounts, so this ends the user's ability to start or extend sessions;
// outstanding access tokens still run to expiry.
func (s *UserService) Deactivate(ctx context.Context, userID string) error {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	deactivated := u.Deactivate()
	if err := s.Repo.Update(ctx, deactivated); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", userID).Info("account deactivated")
	}

	s.invalidate(ctx, userID)
	s.Indexer.Index(ctx, deactivated)
	return nil
}

// Activate re-enables an account. Not reachable from the HTTP surface: an
// inactive user cannot authenticate, so reactivation is an operator action
// (seed command, admin tooling).
func (s *UserService) Activate(ctx context.Context, userID string) error {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	activated := u.Activate()
	if err := s.Repo.Update(ctx, activated); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	s.Indexer.Index(ctx, activated)
	return nil
}

func (s *UserService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return s.Indexer.Search(ctx, q, size)
}

func (s *UserService) invalidate(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, profileKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("profile cache invalidation failed")
	}
}
