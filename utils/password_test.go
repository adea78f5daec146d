package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordSaltsEachCall(t *testing.T) {
	first, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	second, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("hunter2hunter2", first))
	assert.True(t, CheckPassword("hunter2hunter2", second))
}

func TestCheckPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.False(t, CheckPassword("battery staple", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	// A malformed stored hash is a mismatch, not a panic.
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", ""))
}
