package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService("test-secret", 30)

	token, expiresAt, err := service.GenerateToken(42, "tech@example.com", "technician")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "tech@example.com", claims.Email)
	assert.Equal(t, "technician", claims.Role)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := NewJWTService("test-secret", 30)
	other := NewJWTService("other-secret", 30)

	token, _, err := service.GenerateToken(1, "admin@example.com", "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := NewJWTService("test-secret", -1)

	token, _, err := service.GenerateToken(1, "admin@example.com", "admin")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	service := NewJWTService("test-secret", 30)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.Verify(hash, "s3cret-password"))
	assert.Error(t, hasher.Verify(hash, "wrong-password"))
}
