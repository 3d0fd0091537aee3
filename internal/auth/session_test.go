package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestSession_Lifecycle(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	token := signed(t, jwt.RegisteredClaims{
		Subject:   "admin@studio.com.br",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	s := NewSession()
	assert.False(t, s.IsAuthenticated(now))
	assert.Empty(t, s.Token())

	require.NoError(t, s.Start(token))
	assert.True(t, s.IsAuthenticated(now))
	assert.False(t, s.IsAuthenticated(now.Add(2*time.Hour)))
	assert.Equal(t, token, s.Token())
	assert.Equal(t, "admin@studio.com.br", s.Subject())
	assert.True(t, s.ExpiresAt().Equal(now.Add(time.Hour)))

	s.End()
	assert.False(t, s.IsAuthenticated(now))
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Subject())
}

func TestSession_TokenWithoutExpiry(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Start(signed(t, jwt.RegisteredClaims{Subject: "svc"})))

	assert.True(t, s.IsAuthenticated(time.Now().AddDate(10, 0, 0)))
	assert.True(t, s.ExpiresAt().IsZero())
}

func TestSession_MalformedToken(t *testing.T) {
	s := NewSession()

	err := s.Start("not-a-jwt")

	assert.ErrorIs(t, err, ErrMalformedToken)
	assert.False(t, s.IsAuthenticated(time.Now()))
}
