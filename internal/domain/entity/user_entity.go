package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the account domain. PasswordHash holds a
// bcrypt hash.
//
// The aggregate is immutable: every state change returns a fresh copy with a
// bumped UpdatedAt. ID, Email, PasswordHash and CreatedAt never change after
// construction.
type User struct {
	ID           string
	Email        string
	Name         string
	LastName     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the non-empty name parts with a single space.
func (u User) FullName() string {
	parts := make([]string, 0, 2)
	if u.Name != "" {
		parts = append(parts, u.Name)
	}
	if u.LastName != "" {
		parts = append(parts, u.LastName)
	}
	return strings.Join(parts, " ")
}

// Activate returns a copy with IsActive set.
func (u User) Activate() User {
	u.IsActive = true
	u.UpdatedAt = u.nextUpdatedAt()
	return u
}

// Deactivate returns a copy with IsActive cleared. An inactive user can
// neither log in nor refresh.
func (u User) Deactivate() User {
	u.IsActive = false
	u.UpdatedAt = u.nextUpdatedAt()
	return u
}

// UpdateProfile returns a copy with the non-empty fields replaced.
func (u User) UpdateProfile(name, lastName string) User {
	if name != "" {
		u.Name = name
	}
	if lastName != "" {
		u.LastName = lastName
	}
	u.UpdatedAt = u.nextUpdatedAt()
	return u
}

// UpdatedAt must strictly increase even when the clock has not advanced
// between two successive updates.
func (u User) nextUpdatedAt() time.Time {
	now := time.Now()
	if now.After(u.UpdatedAt) {
		return now
	}
	return u.UpdatedAt.Add(time.Nanosecond)
}
