package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, CheckPassword("hunter2", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("hunter2")
	require.NoError(t, err)
	h2, err := HashPassword("hunter2")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, h1, h2)
}
