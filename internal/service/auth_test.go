package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthServiceLogin(t *testing.T) {
	svc, err := NewAuthService("speakeasy", "test-secret")
	require.NoError(t, err)

	t.Run("correct password yields valid token", func(t *testing.T) {
		token, err := svc.Login("speakeasy")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "bar-owner", claims.Subject)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Login("password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthServiceAcceptsBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("speakeasy"), bcrypt.DefaultCost)
	require.NoError(t, err)

	svc, err := NewAuthService(string(hash), "test-secret")
	require.NoError(t, err)

	_, err = svc.Login("speakeasy")
	assert.NoError(t, err)
	_, err = svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, err := NewAuthService("speakeasy", "test-secret")
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret
	other, err := NewAuthService("speakeasy", "other-secret")
	require.NoError(t, err)
	token, err := other.Login("speakeasy")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
