package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskhub/internal/domain/apperr"
	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/valueobject"
)

const (
	pgUniqueViolation   = "23505"
	emailConstraintName = "users_email_key"
)

const userColumns = `id, email, password_hash, name, last_name, is_active, created_at, updated_at`

// UserRepository is the pgx implementation of the user persistence contract.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email.String())
	return scanUser(row)
}

// Save inserts a fully-constructed aggregate. The unique index on email is
// the authoritative uniqueness guard; a violation maps to the same
// AlreadyExistsError the pre-save check produces.
func (r *UserRepository) Save(ctx context.Context, u entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, last_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.Email, u.PasswordHash, u.Name, u.LastName, u.IsActive, u.CreatedAt, u.UpdatedAt)
	return mapUniqueViolation(err, u.Email)
}

func (r *UserRepository) Update(ctx context.Context, u entity.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, last_name = $2, is_active = $3, updated_at = $4
		WHERE id = $5
	`, u.Name, u.LastName, u.IsActive, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Exists(ctx context.Context, email valueobject.Email) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email.String()).Scan(&exists)
	return exists, err
}

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.LastName,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.User{}, repository.ErrNotFound
	}
	if err != nil {
		return entity.User{}, err
	}
	return u, nil
}

func mapUniqueViolation(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == emailConstraintName {
		return &apperr.AlreadyExistsError{Email: email}
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
