package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"
)

const taskColumns = `id, user_id, title, description, completed, attachment_url, created_at, updated_at`

// TaskRepository is the pgx implementation of the task persistence contract.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = $1
	`, id)
	return scanTask(row)
}

func (r *TaskRepository) FindByUser(ctx context.Context, userID string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Save(ctx context.Context, t entity.Task) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, user_id, title, description, completed, attachment_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.ID, t.UserID, t.Title, t.Description, t.Completed, t.AttachmentURL, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *TaskRepository) Update(ctx context.Context, t entity.Task) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, attachment_url = $4, updated_at = $5
		WHERE id = $6
	`, t.Title, t.Description, t.Completed, t.AttachmentURL, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (entity.Task, error) {
	var t entity.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed,
		&t.AttachmentURL, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return entity.Task{}, err
	}
	return t, nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
