package jwt

import (
	"testing"

	"recipe-room-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndResolveToken(t *testing.T) {
	service := NewJWTService()
	userID := uuid.New().String()

	token := service.GenerateTokenUser(userID, "user")
	require.NotEmpty(t, token)

	resolvedID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolvedID)
	assert.Equal(t, "user", role)
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenRejectsTamperedToken(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser(uuid.New().String(), "user")
	tampered := token + "xx"

	_, _, err := service.GetUserIDByToken(tampered)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
