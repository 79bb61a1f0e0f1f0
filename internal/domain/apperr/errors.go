package apperr

import "errors"

// ValidationKind identifies which value-object rule was violated.
type ValidationKind string

const (
	InvalidEmail ValidationKind = "invalid_email"
	WeakPassword ValidationKind = "weak_password"
)

// ValidationError is raised at value-object construction time.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewInvalidEmail(raw string) *ValidationError {
	return &ValidationError{Kind: InvalidEmail, Message: "invalid email: " + raw}
}

func NewWeakPassword() *ValidationError {
	return &ValidationError{Kind: WeakPassword, Message: "password must be at least 6 characters"}
}

// AlreadyExistsError is returned when registration hits an existing email,
// either from the pre-save existence check or the unique index on users.email.
type AlreadyExistsError struct {
	Email string
}

func (e *AlreadyExistsError) Error() string { return "email already exists: " + e.Email }

// AuthKind distinguishes the two login failure modes. Both InvalidCredentials
// causes (unknown email, wrong password) share one kind so the caller cannot
// tell which part was wrong.
type AuthKind string

const (
	InvalidCredentials AuthKind = "invalid_credentials"
	InactiveAccount    AuthKind = "inactive_account"
)

type AuthError struct {
	Kind AuthKind
}

func (e *AuthError) Error() string {
	if e.Kind == InactiveAccount {
		return "inactive user"
	}
	return "invalid credentials"
}

// ErrInvalidRefreshToken is the single outward error for every refresh
// failure: bad signature, expiry, wrong token type, missing or inactive user,
// repository or signing failure. The collapsing is an information-hiding
// boundary and must not be widened.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// IsValidation reports whether err is a ValidationError of the given kind.
func IsValidation(err error, kind ValidationKind) bool {
	var verr *ValidationError
	return errors.As(err, &verr) && verr.Kind == kind
}

// IsAuth reports whether err is an AuthError of the given kind.
func IsAuth(err error, kind AuthKind) bool {
	var aerr *AuthError
	return errors.As(err, &aerr) && aerr.Kind == kind
}
