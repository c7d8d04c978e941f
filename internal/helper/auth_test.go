package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken("student@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Greater(t, claims.Expiry, float64(time.Now().Unix()))
}

func TestVerifyTokenAcceptsBearerPrefix(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken("student@example.com")
	require.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", claims.Email)
}

func TestGenerateTokenRequiresEmail(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.GenerateToken("")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsBadInput(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.VerifyToken("")
	assert.Error(t, err)

	_, err = auth.VerifyToken("not-a-jwt")
	assert.Error(t, err)

	_, err = auth.VerifyToken("Bearer ")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := SetupAuth("secret-one").GenerateToken("student@example.com")
	require.NoError(t, err)

	_, err = SetupAuth("secret-two").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	secret := "test-secret"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "student@example.com",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-1 * time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = SetupAuth(secret).VerifyToken(token)
	assert.Error(t, err)
}
