package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CompareHashAndPassword(hash, "correct horse battery staple"))
	assert.False(t, CompareHashAndPassword(hash, "correct horse battery stapl"))
	assert.False(t, CompareHashAndPassword(hash, ""))
}

func TestCompareHashAndPasswordMalformedHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "whatever"))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("password123")
	require.NoError(t, err)
	h2, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "each hash embeds a fresh salt")
}
