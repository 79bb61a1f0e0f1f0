package valueobject

import (
	"regexp"
	"strings"

	"taskhub/internal/domain/apperr"
)

// Deliberately permissive: non-whitespace local part, non-whitespace domain
// with at least one dot. Stricter RFC validation belongs to the HTTP binding
// layer, not the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is an immutable, normalized email address. It doubles as the
// repository lookup key, so normalization (trim + lowercase) happens exactly
// once, here.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(v) {
		return Email{}, apperr.NewInvalidEmail(raw)
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }
