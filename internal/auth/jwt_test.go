package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSecret(t *testing.T, secret string) {
	t.Helper()
	t.Setenv("JWT_SECRET", secret)
	require.NoError(t, InitJWTSecret())
}

func TestInitJWTSecretRequiresEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWTSecret())
}

func TestGenerateAndVerifyRoundtrip(t *testing.T) {
	initSecret(t, "test-secret")

	token, err := GenerateJWT(42, "alice@example.com")
	require.NoError(t, err)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "orderdesk", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	initSecret(t, "first-secret")

	token, err := GenerateJWT(42, "alice@example.com")
	require.NoError(t, err)

	initSecret(t, "second-secret")

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	initSecret(t, "test-secret")

	claims := Claims{
		UserID: 42,
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = VerifyJWT(expired)
	assert.Error(t, err)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	initSecret(t, "test-secret")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 42}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyJWT(unsigned)
	assert.Error(t, err)
}
