package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenHash(t *testing.T) {
	hash := HashRefreshToken("token-a")

	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashRefreshToken("token-a"))
	assert.True(t, CompareRefreshTokenHash("token-a", hash))
	assert.False(t, CompareRefreshTokenHash("token-b", hash))
	assert.False(t, CompareRefreshTokenHash("token-a", ""))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("p")
	require.NoError(t, err)

	assert.NotEqual(t, "p", hash)
	assert.True(t, CheckPasswordHash("p", hash))
	assert.False(t, CheckPasswordHash("q", hash))
	assert.False(t, CheckPasswordHash("p", ""))
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}
