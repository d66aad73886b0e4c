package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := NewManager("test-secret", 24)

	signed, expiresAt, err := manager.Generate("user@example.com", "User")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := manager.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "User", claims.Role)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, _, err := NewManager("secret-a", 24).Generate("user@example.com", "User")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 24).Verify(signed)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExpired)
}

func TestVerifyExpired(t *testing.T) {
	// Negative expiry issues a token that is already expired
	manager := NewManager("test-secret", -1)

	signed, _, err := manager.Generate("user@example.com", "User")
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := NewManager("test-secret", 24).Verify("not-a-token")
	assert.Error(t, err)
}
