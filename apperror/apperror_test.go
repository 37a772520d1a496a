package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		errType ErrorType
		want    int
	}{
		{ValidationError, http.StatusBadRequest},
		{ConflictError, http.StatusConflict},
		{AuthError, http.StatusUnauthorized},
		{NotFoundError, http.StatusNotFound},
		{DatabaseError, http.StatusInternalServerError},
		{ConfigError, http.StatusInternalServerError},
		{InternalError, http.StatusInternalServerError},
		{UnknownError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		err := NewAppError(tc.errType, "boom", nil)
		assert.Equal(t, tc.want, err.StatusCode())
	}
}

func TestError_IncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("Failed to load posts.", cause)

	assert.Equal(t, "Failed to load posts.: connection refused", err.Error())
	assert.Equal(t, "Failed to load posts.", NewDatabaseError("Failed to load posts.", nil).Error())
	assert.ErrorIs(t, err, cause)
}

func TestToResponse_HidesCause(t *testing.T) {
	err := NewInternalError("Something went wrong.", errors.New("bcrypt: secret details"))

	body, marshalErr := json.Marshal(err.ToResponse())
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"message":"Something went wrong."}`, string(body))
}

func TestFromError(t *testing.T) {
	appErr, ok := FromError(NewNotFoundError("Post not found.", nil))
	require.True(t, ok)
	assert.Equal(t, NotFoundError, appErr.Type)

	// Works through fmt.Errorf wrapping.
	wrapped := fmt.Errorf("toggling like: %w", NewAuthError("Invalid or expired token", nil))
	appErr, ok = FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, AuthError, appErr.Type)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("Comment text is required.", nil)))
	assert.True(t, IsConflictError(NewConflictError("Email is already registered.", nil)))
	assert.True(t, IsAuthError(NewAuthError("Invalid credentials.", nil)))
	assert.True(t, IsNotFound(NewNotFoundError("Post not found.", nil)))

	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("Post not found.", nil))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsAuthError(wrapped))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}
