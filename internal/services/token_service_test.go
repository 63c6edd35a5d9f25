package services_test

import (
	"testing"
	"time"

	"podhub/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret"

func newTokenService(t *testing.T) *services.TokenService {
	t.Helper()
	tokens, err := services.NewTokenService(testJWTSecret, 0)
	require.NoError(t, err)
	return tokens
}

func TestNewTokenService_RejectsEmptySecret(t *testing.T) {
	_, err := services.NewTokenService("", time.Minute)
	assert.Error(t, err)
}

func TestTokenService_DefaultTTL(t *testing.T) {
	tokens := newTokenService(t)

	before := time.Now()
	_, expiresAt, err := tokens.Issue("p@example.com", 0)
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(30*time.Minute), expiresAt, 2*time.Second)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := newTokenService(t)

	token, _, err := tokens.Issue("p@example.com", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "p@example.com", subject)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := newTokenService(t)

	token, _, err := tokens.Issue("p@example.com", -time.Second)
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	other, err := services.NewTokenService("another_secret", 0)
	require.NoError(t, err)
	token, _, err := other.Issue("p@example.com", time.Hour)
	require.NoError(t, err)

	_, err = newTokenService(t).Verify(token)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	_, err := newTokenService(t).Verify("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_MissingExpiry(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{Subject: "p@example.com"})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	_, err = newTokenService(t).Verify(signed)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.StandardClaims{
		Subject:   "p@example.com",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTokenService(t).Verify(signed)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
