package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/internal/apperror"
	"socialnet/internal/auth"
	"socialnet/internal/config"
	"socialnet/internal/models"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "0123456789abcdef0123456789abcdef",
		AccessTokenTTL: time.Hour,
	}
}

func TestRegister(t *testing.T) {
	t.Run("CreatesUserWithProfileTransactionally", func(t *testing.T) {
		users := &mockUserRepo{}
		svc := NewAuthService(users, testAuthConfig())

		user, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret-password")

		require.NoError(t, err)
		require.Len(t, users.created, 1)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "s3cret-password", user.Password, "password must be stored hashed")
		require.NotNil(t, user.Profile)
		assert.Equal(t, user.ID, user.Profile.UserID)
	})

	t.Run("DuplicateUsernameIsConflict", func(t *testing.T) {
		users := &mockUserRepo{usersByUsername: map[string]*models.User{
			"alice": {ID: "id-1", Username: "alice"},
		}}
		svc := NewAuthService(users, testAuthConfig())

		_, err := svc.Register(context.Background(), "alice", "new@example.com", "s3cret-password")

		assert.True(t, errors.Is(err, apperror.ErrConflict))
	})

	t.Run("DuplicateEmailIsConflict", func(t *testing.T) {
		users := &mockUserRepo{usersByEmail: map[string]*models.User{
			"alice@example.com": {ID: "id-1"},
		}}
		svc := NewAuthService(users, testAuthConfig())

		_, err := svc.Register(context.Background(), "newname", "alice@example.com", "s3cret-password")

		assert.True(t, errors.Is(err, apperror.ErrConflict))
	})

	t.Run("ShortPasswordRejected", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepo{}, testAuthConfig())

		_, err := svc.Register(context.Background(), "alice", "alice@example.com", "short")

		assert.True(t, errors.Is(err, apperror.ErrValidation))
	})
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)

	users := &mockUserRepo{usersByUsername: map[string]*models.User{
		"alice": {ID: "id-1", Username: "alice", Password: hash},
	}}
	svc := NewAuthService(users, testAuthConfig())

	t.Run("Success", func(t *testing.T) {
		token, user, err := svc.Login(context.Background(), "alice", "s3cret-password")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "id-1", user.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody", "s3cret-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)

	users := &mockUserRepo{usersByUsername: map[string]*models.User{
		"alice": {ID: "id-1", Username: "alice", Password: hash},
	}}
	svc := NewAuthService(users, testAuthConfig())

	t.Run("RoundTrip", func(t *testing.T) {
		token, _, err := svc.Login(context.Background(), "alice", "s3cret-password")
		require.NoError(t, err)

		userID, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "id-1", userID)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewAuthService(users, &config.Config{
			JWTSecret:      "ffffffffffffffffffffffffffffffff",
			AccessTokenTTL: time.Hour,
		})
		token, _, err := other.Login(context.Background(), "alice", "s3cret-password")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
