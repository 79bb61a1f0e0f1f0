package entity

import (
	"time"

	"github.com/google/uuid"

	"taskhub/internal/domain/valueobject"
)

// UserFactory builds valid User aggregates. It is stateless apart from the
// injected id and clock functions, which exist for tests.
type UserFactory struct {
	newID func() string
	now   func() time.Time
}

func NewUserFactory() *UserFactory {
	return &UserFactory{newID: uuid.NewString, now: time.Now}
}

// NewUserFactoryWith allows tests to pin the generated id and timestamps.
func NewUserFactoryWith(newID func() string, now func() time.Time) *UserFactory {
	return &UserFactory{newID: newID, now: now}
}

// Create validates rawEmail through the Email value object and returns a new
// active User. passwordHash must already be hashed; the factory never sees
// plaintext.
func (f *UserFactory) Create(rawEmail, name, lastName, passwordHash string) (User, error) {
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return User{}, err
	}
	now := f.now()
	return User{
		ID:           f.newID(),
		Email:        email.String(),
		Name:         name,
		LastName:     lastName,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UserData is the fully-specified record shape used when reconstructing a
// User from storage.
type UserData struct {
	ID           string
	Email        string
	Name         string
	LastName     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateFromData reconstructs a User from persisted data without
// re-validation. Storage is trusted: the record was validated when it was
// first created.
func (f *UserFactory) CreateFromData(data UserData) User {
	return User(data)
}
