package errorutil_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/pkg/util/errorutil"
)

func TestToDomainError(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, errorutil.ToDomainError(nil))
	})

	t.Run("validation keeps message", func(t *testing.T) {
		t.Parallel()
		de := errorutil.ToDomainError(errorutil.NewValidationError("name is required"))
		require.NotNil(t, de)
		assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
		assert.Equal(t, "VALIDATION_FAILED", de.Code)
		assert.Equal(t, "name is required", de.Message)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		de := errorutil.ToDomainError(errorutil.NewNotFound("Employee"))
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
		assert.Equal(t, "Employee not found", de.Message)
	})

	t.Run("wrapped domain error", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("handler: %w", errorutil.NewNotFound("Employee"))
		de := errorutil.ToDomainError(wrapped)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	})

	t.Run("fiber error keeps status", func(t *testing.T) {
		t.Parallel()
		de := errorutil.ToDomainError(fiber.NewError(http.StatusMethodNotAllowed, "Method Not Allowed"))
		assert.Equal(t, http.StatusMethodNotAllowed, de.HTTPStatus)
		assert.Equal(t, "Method Not Allowed", de.Message)
	})

	t.Run("unknown error surfaces its message", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("server selection timeout")
		de := errorutil.ToDomainError(cause)
		assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
		assert.Equal(t, "server selection timeout", de.Message)
		assert.ErrorIs(t, de, cause)
		assert.Equal(t, "server selection timeout", de.Error())
	})
}

func TestNewInternalErrorWithoutCause(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInternalError(nil)
	assert.Equal(t, "internal server error", err.Error())
}
