package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RefreshTokenType is the type discriminator carried by refresh tokens.
// Access tokens carry no type claim; the two token kinds are additionally
// separated by distinct signing secrets which must never be interchangeable.
const RefreshTokenType = "refresh"

var (
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
	errInvalidToken            = errors.New("invalid token")
	errUnexpectedTokenType     = errors.New("unexpected token type")
)

// AccessClaims is the access-token payload: subject id plus the public
// profile fields.
type AccessClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	jwt.RegisteredClaims
}

// RefreshClaims is the refresh-token payload: subject id plus the type
// discriminator.
type RefreshClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// JWTManager handles generation and validation of the access/refresh token
// pair. The two secrets are independent configuration values.
type JWTManager struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func NewJWTManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		AccessSecret:  []byte(accessSecret),
		RefreshSecret: []byte(refreshSecret),
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}

// GenerateAccessToken signs a short-lived access token for the user. The jti
// guarantees consecutive tokens for the same user differ even within one
// second.
func (m *JWTManager) GenerateAccessToken(userID, email, name, lastName string) (string, time.Time, error) {
	exp := time.Now().Add(m.AccessTTL)
	claims := &AccessClaims{
		Email:    email,
		Name:     name,
		LastName: lastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.AccessSecret)
	return s, exp, err
}

// GenerateRefreshToken signs a long-lived refresh token carrying only the
// subject id and the "refresh" type discriminator.
func (m *JWTManager) GenerateRefreshToken(userID string) (string, time.Time, error) {
	exp := time.Now().Add(m.RefreshTTL)
	claims := &RefreshClaims{
		TokenType: RefreshTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.RefreshSecret)
	return s, exp, err
}

func (m *JWTManager) ParseAccessToken(tokenStr string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := parseToken(tokenStr, claims, m.AccessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken validates signature and expiry against the refresh
// secret and rejects tokens whose type discriminator is not "refresh".
func (m *JWTManager) ParseRefreshToken(tokenStr string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := parseToken(tokenStr, claims, m.RefreshSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != RefreshTokenType {
		return nil, errUnexpectedTokenType
	}
	return claims, nil
}

func parseToken(tokenStr string, claims jwt.Claims, secret []byte) error {
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	if !tkn.Valid {
		return errInvalidToken
	}
	return nil
}
