package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	token, err := GenerateJWT("user-1", []string{"admin"}, secret, time.Hour, "debt-tracker-test")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "debt-tracker-test", claims.Issuer)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWT("user-1", nil, secret, time.Hour, "iss")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, "another-secret")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateJWT("user-1", nil, secret, -time.Minute, "iss")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, secret)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseAndValidateJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret", ""))

	_, err = HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
