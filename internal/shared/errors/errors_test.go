package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := NewNotFoundError("order not found")
	assert.Equal(t, "not_found: order not found", err.Error())

	err = NewValidationError("invalid grouping field", "field size not declared on order")
	assert.Equal(t, "validation_error: invalid grouping field (field size not declared on order)", err.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("gone"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("dup"), ErrorTypeConflict, http.StatusConflict},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("nope"), ErrorTypeBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestGetAppError_Wrapped(t *testing.T) {
	inner := NewConflictError("project already exists")
	wrapped := fmt.Errorf("commit failed: %w", inner)

	require.True(t, IsAppError(wrapped))
	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeConflict, got.Type)
	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
}

func TestGetAppError_Plain(t *testing.T) {
	plain := fmt.Errorf("some low level failure")

	assert.False(t, IsAppError(plain))
	assert.Nil(t, GetAppError(plain))
	assert.False(t, IsValidationError(plain))
	assert.False(t, IsNotFoundError(nil))
}
