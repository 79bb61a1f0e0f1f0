package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"taskhub/internal/domain/apperr"
	"taskhub/internal/domain/repository"
	"taskhub/pkg/helpers"
)

// RefreshTokenUseCase rotates the token pair: verify, look up, check the
// active flag, reissue. Every failure collapses into
// apperr.ErrInvalidRefreshToken so callers learn nothing about the cause;
// internals go to the debug log only. The previous refresh token is not
// tracked and stays valid until its own expiry.
type RefreshTokenUseCase struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewRefreshTokenUseCase(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{Repo: repo, JWT: jwt, Logger: logger}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (TokenPair, error) {
	// Signature, expiry and the type discriminator are all checked here,
	// before any repository access.
	claims, err := uc.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, uc.collapse(err, "refresh token rejected")
	}

	u, err := uc.Repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return TokenPair{}, uc.collapse(err, "refresh lookup failed")
	}
	if !u.IsActive {
		return TokenPair{}, uc.collapse(nil, "refresh for inactive user")
	}

	pair, err := issuePair(uc.JWT, u.ID, u.Email, u.Name, u.LastName)
	if err != nil {
		return TokenPair{}, uc.collapse(err, "refresh reissue failed")
	}
	return pair, nil
}

func (uc *RefreshTokenUseCase) collapse(cause error, msg string) error {
	if uc.Logger != nil {
		entry := uc.Logger.WithField("reason", msg)
		if cause != nil {
			entry = entry.WithError(cause)
		}
		entry.Debug("refresh token rejected")
	}
	return apperr.ErrInvalidRefreshToken
}
