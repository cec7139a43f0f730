package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltedOutputDiffers(t *testing.T) {
	h1, err := HashPassword("Secr3t!", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("Secr3t!", bcrypt.MinCost)
	require.NoError(t, err)

	// Each call embeds a fresh random salt, so the outputs differ.
	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, "Secr3t!", h1)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secr3t!", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "Secr3t!"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	// A corrupted stored record must reject the login, not blow up.
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "Secr3t!"))
	assert.False(t, VerifyPassword("", "Secr3t!"))
}
