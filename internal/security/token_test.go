package security_test

import (
	"testing"

	"library-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret-0123456789abcdefghij"

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 60*24)

	token, err := tm.GenerateAccessToken("u-1", "m@example.com", "MEMBER")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "m@example.com", claims.Email)
	assert.Equal(t, "MEMBER", claims.Role)
	assert.Equal(t, security.TokenTypeAccess, claims.Type)
}

func TestTokenManager_RefreshTokenType(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 60*24)

	token, err := tm.GenerateRefreshToken("u-1")
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, security.TokenTypeRefresh, claims.Type)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 60)
	other := security.NewTokenManager("a-different-secret-0123456789abcdef", 60, 60)

	token, err := tm.GenerateAccessToken("u-1", "m@example.com", "MEMBER")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	// Zero-minute TTL produces an already-expired token.
	tm := security.NewTokenManager(testSecret, 0, 0)

	token, err := tm.GenerateAccessToken("u-1", "m@example.com", "MEMBER")
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 60)

	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
