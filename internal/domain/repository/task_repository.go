package repository

import (
	"context"

	"taskhub/internal/domain/entity"
)

// TaskRepository is the persistence contract for task records.
type TaskRepository interface {
	FindByID(ctx context.Context, id string) (entity.Task, error)
	FindByUser(ctx context.Context, userID string) ([]entity.Task, error)
	Save(ctx context.Context, t entity.Task) error
	Update(ctx context.Context, t entity.Task) error
	Delete(ctx context.Context, id string) error
}
