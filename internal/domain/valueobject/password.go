package valueobject

import "taskhub/internal/domain/apperr"

const minPasswordLength = 6

// Password wraps either a plaintext password awaiting hashing or an
// already-hashed value loaded from storage. Unlike Email it is never trimmed
// and equality is case-sensitive.
type Password struct {
	value  string
	hashed bool
}

// NewPassword validates a plaintext password.
func NewPassword(raw string) (Password, error) {
	if len(raw) < minPasswordLength {
		return Password{}, apperr.NewWeakPassword()
	}
	return Password{value: raw}, nil
}

// NewHashedPassword wraps an already-hashed value without validation.
func NewHashedPassword(hash string) Password {
	return Password{value: hash, hashed: true}
}

func (p Password) Value() string { return p.value }

func (p Password) IsHashed() bool { return p.hashed }

func (p Password) Equals(other Password) bool {
	return p.value == other.value && p.hashed == other.hashed
}

// String masks the value so passwords never leak into logs.
func (p Password) String() string { return "***" }
