package authutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectAccessToken(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u-42",
		"role": "driver",
		"exp":  exp.Unix(),
	}).SignedString([]byte("whatever"))
	require.NoError(t, err)

	claims, err := InspectAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-42", claims.Subject)
	assert.Equal(t, "driver", claims.Role)
	assert.True(t, exp.Equal(claims.ExpiresAt))
}

func TestInspectAccessToken_NoRole(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u-1"}).SignedString([]byte("k"))
	require.NoError(t, err)

	claims, err := InspectAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Empty(t, claims.Role)
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestInspectAccessToken_Invalid(t *testing.T) {
	_, err := InspectAccessToken("  ")
	assert.ErrorIs(t, err, ErrEmptyToken)

	_, err = InspectAccessToken("definitely.not.ajwt")
	assert.Error(t, err)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "bu***@example.com", MaskEmail("budi@example.com"))
	assert.Equal(t, "b***@example.com", MaskEmail("b@example.com"))
	assert.Equal(t, "bud***", MaskEmail("budisantoso"))
	assert.Equal(t, "***", MaskEmail("ab"))
}

func TestShortToken(t *testing.T) {
	assert.Equal(t, "***", ShortToken("short"))
	assert.Equal(t, "abcd...wxyz", ShortToken("abcdefghijklmnopqrstuvwxyz"))
}
