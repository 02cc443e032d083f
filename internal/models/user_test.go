package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHashesPassword(t *testing.T) {
	user, err := Register("alice", "secret123", "alice@example.com", "Alice", "Anderson")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password, "password must not be stored in the clear")
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrongpass"))
}

func TestRegisterDistinctHashes(t *testing.T) {
	a, err := Register("alice", "secret123", "alice@example.com", "Alice", "Anderson")
	require.NoError(t, err)

	b, err := Register("bob", "secret123", "bob@example.com", "Bob", "Brown")
	require.NoError(t, err)

	// Salted hashing never repeats even for identical passwords.
	assert.NotEqual(t, a.Password, b.Password)
}
