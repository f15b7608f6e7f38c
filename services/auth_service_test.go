package services

import (
	"testing"

	"github.com/DesaiVishal-16/Longevix/config"
	"github.com/DesaiVishal-16/Longevix/models"
	"github.com/DesaiVishal-16/Longevix/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUserAndIssuesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	token, user, err := svc.Register("vishal", "vishal@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", user.Password))

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(config.Env.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(user.ID), claims["sub"])
	assert.Equal(t, models.RoleUser, claims["role"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	_, _, err := svc.Register("vishal", "vishal@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, _, err = svc.Register("someone", "vishal@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_RejectsMissingFields(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	_, _, err := svc.Register("", "a@b.com", "pass")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, _, err = svc.Register("a", "", "pass")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, _, err = svc.Register("a", "a@b.com", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_BadCredentialsLookIdentical(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	_, _, err := svc.Register("vishal", "vishal@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, _, wrongPass := svc.Login("vishal@example.com", "nope")
	_, _, unknownEmail := svc.Login("ghost@example.com", "s3cret-pass")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
}

func TestLogin_Succeeds(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	_, registered, err := svc.Register("vishal", "vishal@example.com", "s3cret-pass")
	require.NoError(t, err)

	token, user, err := svc.Login("vishal@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
}
