package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.Generate(42, []string{"ADMIN", "CLERK"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, []string{"ADMIN", "CLERK"}, claims.Roles)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 15).Generate(1, nil)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 15).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Generate(1, nil)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
