package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordDeterministic(t *testing.T) {
	digest := HashPassword("secret123")

	assert.Equal(t, digest, HashPassword("secret123"))
	assert.NotEqual(t, digest, HashPassword("secret124"))
	assert.NotContains(t, digest, "secret123")
	assert.Len(t, digest, 64)
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("secret123")

	assert.True(t, VerifyPassword("secret123", digest))
	assert.False(t, VerifyPassword("wrong", digest))
	assert.False(t, VerifyPassword("secret123", "not-a-digest"))
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(BearerTokenLength)
	require.NoError(t, err)
	assert.Len(t, token, BearerTokenLength)

	for _, r := range token {
		assert.True(t, strings.ContainsRune(tokenAlphabet, r), "unexpected character %q", r)
	}

	short, err := GenerateToken(ResetKeyLength)
	require.NoError(t, err)
	assert.Len(t, short, ResetKeyLength)

	other, err := GenerateToken(BearerTokenLength)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
