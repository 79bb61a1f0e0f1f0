package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"taskhub/internal/domain/apperr"
	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/valueobject"
	"taskhub/pkg/helpers"
	"taskhub/pkg/mailer"
)

type RegisterInput struct {
	Email    string
	Name     string
	LastName string
	Password string
}

// UserProjection is the public view of a user. Password hash, timestamps and
// the active flag never cross this boundary.
type UserProjection struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

func projectUser(u entity.User) UserProjection {
	return UserProjection{ID: u.ID, Email: u.Email, Name: u.Name, LastName: u.LastName}
}

// RegisterUseCase creates a new account: uniqueness check, factory, persist.
// Publisher and indexer are optional side channels.
type RegisterUseCase struct {
	Repo    repository.UserRepository
	Factory *entity.UserFactory
	Logger  *logrus.Logger
	Pub     *helpers.RabbitPublisher
	Indexer *UserIndexer
}

func NewRegisterUseCase(repo repository.UserRepository, factory *entity.UserFactory, logger *logrus.Logger, pub *helpers.RabbitPublisher, indexer *UserIndexer) *RegisterUseCase {
	return &RegisterUseCase{Repo: repo, Factory: factory, Logger: logger, Pub: pub, Indexer: indexer}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, in RegisterInput) (UserProjection, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return UserProjection{}, err
	}

	exists, err := uc.Repo.Exists(ctx, email)
	if err != nil {
		return UserProjection{}, err
	}
	if exists {
		return UserProjection{}, &apperr.AlreadyExistsError{Email: email.String()}
	}

	pwd, err := valueobject.NewPassword(in.Password)
	if err != nil {
		return UserProjection{}, err
	}
	hash, err := helpers.HashPassword(pwd.Value())
	if err != nil {
		return UserProjection{}, err
	}

	u, err := uc.Factory.Create(email.String(), in.Name, in.LastName, hash)
	if err != nil {
		return UserProjection{}, err
	}

	// The unique index on users.email backs this up: a concurrent register
	// losing the race surfaces here as AlreadyExistsError.
	if err := uc.Repo.Save(ctx, u); err != nil {
		return UserProjection{}, err
	}

	if uc.Logger != nil {
		uc.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	}

	if uc.Pub != nil {
		if err := uc.Pub.PublishJSON(ctx, mailer.WelcomeJob(u.Email, u.FullName())); err != nil && uc.Logger != nil {
			uc.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome mail enqueue failed")
		}
	}
	uc.Indexer.Index(ctx, u)

	return projectUser(u), nil
}
