package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/domain/apperr"
)

func TestNewPassword(t *testing.T) {
	p, err := NewPassword("secret1")
	require.NoError(t, err)
	assert.Equal(t, "secret1", p.Value())
	assert.False(t, p.IsHashed())
}

func TestNewPasswordTooShort(t *testing.T) {
	for _, raw := range []string{"", "12345", "abc"} {
		_, err := NewPassword(raw)
		require.Error(t, err, raw)
		assert.True(t, apperr.IsValidation(err, apperr.WeakPassword), raw)
	}
}

func TestNewPasswordKeepsWhitespaceAndCase(t *testing.T) {
	p, err := NewPassword("  Pass  ")
	require.NoError(t, err)
	assert.Equal(t, "  Pass  ", p.Value())

	lower, err := NewPassword("secret")
	require.NoError(t, err)
	upper, err := NewPassword("SECRET")
	require.NoError(t, err)
	assert.False(t, lower.Equals(upper))
}

func TestNewHashedPasswordSkipsValidation(t *testing.T) {
	p := NewHashedPassword("x")
	assert.True(t, p.IsHashed())
	assert.Equal(t, "x", p.Value())
}

func TestPasswordStringMasks(t *testing.T) {
	p, err := NewPassword("supersecret")
	require.NoError(t, err)
	assert.Equal(t, "***", p.String())
}
