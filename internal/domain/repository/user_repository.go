package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/valueobject"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("not found")

// UserRepository defines the persistence contract the use cases depend on.
// Save must enforce email uniqueness and return apperr.AlreadyExistsError on
// a duplicate.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (entity.User, error)
	FindByEmail(ctx context.Context, email valueobject.Email) (entity.User, error)
	Save(ctx context.Context, u entity.User) error
	Update(ctx context.Context, u entity.User) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]entity.User, error)
	Exists(ctx context.Context, email valueobject.Email) (bool, error)
}
