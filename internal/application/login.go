package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"taskhub/internal/domain/apperr"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/valueobject"
	"taskhub/pkg/helpers"
)

type LoginInput struct {
	Email    string
	Password string
}

// TokenPair is a freshly-signed access/refresh pair with expiries for cookie
// Max-Age calculation.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type LoginResult struct {
	Tokens TokenPair
	User   UserProjection
}

// LoginUseCase verifies credentials and issues the session token pair. No
// server-side session record is created: token validity is signature plus
// expiry, nothing else.
type LoginUseCase struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewLoginUseCase(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *LoginUseCase {
	return &LoginUseCase{Repo: repo, JWT: jwt, Logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (LoginResult, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return LoginResult{}, err
	}

	u, err := uc.Repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		// Same error as a wrong password, and a dummy comparison so the two
		// paths take comparable time.
		helpers.FakeVerifyDelay()
		return LoginResult{}, &apperr.AuthError{Kind: apperr.InvalidCredentials}
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !helpers.VerifyPassword(u.PasswordHash, in.Password) {
		return LoginResult{}, &apperr.AuthError{Kind: apperr.InvalidCredentials}
	}

	// Checked only after the password verified, so the active flag cannot be
	// probed with guessed passwords.
	if !u.IsActive {
		return LoginResult{}, &apperr.AuthError{Kind: apperr.InactiveAccount}
	}

	pair, err := issuePair(uc.JWT, u.ID, u.Email, u.Name, u.LastName)
	if err != nil {
		if uc.Logger != nil {
			uc.Logger.WithError(err).WithField("user_id", u.ID).Error("token issuance failed")
		}
		return LoginResult{}, err
	}

	if uc.Logger != nil {
		uc.Logger.WithField("user_id", u.ID).Info("user logged in")
	}
	return LoginResult{Tokens: pair, User: projectUser(u)}, nil
}

func issuePair(jwt *helpers.JWTManager, id, email, name, lastName string) (TokenPair, error) {
	access, aexp, err := jwt.GenerateAccessToken(id, email, name, lastName)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := jwt.GenerateRefreshToken(id)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
	}, nil
}
