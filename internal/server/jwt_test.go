package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 24)

	token, err := svc.GenerateToken("ops")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", subject)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 24).GenerateToken("ops")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 24).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	_, err := NewJWTService("secret", 24).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTEmptySecretDisabled(t *testing.T) {
	svc := NewJWTService("", 24)

	_, err := svc.GenerateToken("ops")
	assert.Error(t, err)

	_, err = svc.ValidateToken("anything")
	assert.Error(t, err)
}

func TestJWTExpirationFloor(t *testing.T) {
	svc := NewJWTService("secret", 0)
	assert.Equal(t, 24, svc.expirationHours)
}
