package auth

import (
	"testing"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(role user.Role) *user.User {
	return &user.User{ID: "u-1", FullName: "Ana Lima", Email: "ana@empresa.com", Role: role}
}

func TestNewJWTServiceRequiresKey(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingJWTKey)

	s, err := NewJWTService("segredo", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, s.expiration)
}

func TestGenerateAndValidateToken(t *testing.T) {
	s, err := NewJWTService("segredo", time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := s.GenerateToken(testUser(user.RoleSeller))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "vendedor", claims.Role)
	assert.Equal(t, "Ana Lima", claims.Name)
	assert.NotEmpty(t, claims.ID)

	other, _, err := s.GenerateToken(testUser(user.RoleSeller))
	require.NoError(t, err)
	otherClaims, err := s.ValidateToken(other)
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, otherClaims.ID)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	s, _ := NewJWTService("segredo", time.Hour)
	other, _ := NewJWTService("outro-segredo", time.Hour)

	token, _, err := other.GenerateToken(testUser(user.RoleUser))
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateToken("nao-e-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenCanStillBeParsedForRefresh(t *testing.T) {
	s, _ := NewJWTService("segredo", time.Hour)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := s.GenerateToken(testUser(user.RoleManager))
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	claims, err := s.ParseAllowExpired(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}
