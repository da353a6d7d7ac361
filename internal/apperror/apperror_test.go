package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	t.Run("NotFoundUnwraps", func(t *testing.T) {
		err := NotFound("user", "abc")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrConflict))
	})

	t.Run("ConflictUnwraps", func(t *testing.T) {
		err := Conflict("follow", "edge already exists")
		assert.True(t, errors.Is(err, ErrConflict))
		assert.Contains(t, err.Error(), "edge already exists")
	})

	t.Run("ValidationCarriesField", func(t *testing.T) {
		err := ValidationFailed("username", "username is required")
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Equal(t, "username", err.Field)
	})

	t.Run("UnavailableKeepsCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Unavailable("redis", cause)
		assert.True(t, errors.Is(err, ErrUnavailable))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("SurvivesWrapping", func(t *testing.T) {
		err := fmt.Errorf("follow user: %w", Conflict("follow", "duplicate"))
		assert.True(t, errors.Is(err, ErrConflict))

		var appErr *AppError
		assert.True(t, errors.As(err, &appErr))
	})
}
