//go:build unit

package jwt

import (
	"testing"
	"time"

	"samhotel-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
	userID := uuid.New()

	pair, err := svc.GeneratePair(userID, user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	claims, err = svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestTokenUseIsEnforced(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, 7*24*time.Hour)

	pair, err := svc.GeneratePair(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongUse)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrWrongUse)
}

func TestExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -time.Minute, -time.Minute)

	pair, err := svc.GeneratePair(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", 15*time.Minute, time.Hour)
	verifier := NewService("secret-b", 15*time.Minute, time.Hour)

	pair, err := issuer.GeneratePair(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageToken(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, time.Hour)

	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
