package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateToken("u-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "clothesguard", claims.Issuer)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.GenerateToken("u-1")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).GenerateToken("u-1")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	_, err := manager.ValidateToken("not-a-token")
	assert.Error(t, err)
}
