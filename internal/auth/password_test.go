package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPassword("admin123", hash))
	assert.False(t, CheckPassword("admin124", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("admin123", "not-a-bcrypt-hash"))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("gizli-parola")
	require.NoError(t, err)
	second, err := HashPassword("gizli-parola")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("gizli-parola", first))
	assert.True(t, CheckPassword("gizli-parola", second))
}
