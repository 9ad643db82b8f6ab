package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation failed: Age - must be a positive integer",
		NewValidationError("Age", "must be a positive integer").Error())
	assert.Equal(t, "validation failed: bad", NewValidationError("", "bad").Error())
	assert.Equal(t, "email already exists", ErrDuplicateEmail.Error())
	assert.Equal(t, "user already exists", NewAlreadyExistsError("user", "").Error())

	cause := stderrors.New("disk full")
	ie := NewInternalError("failed to add user", cause)
	assert.Equal(t, "failed to add user: disk full", ie.Error())
	assert.ErrorIs(t, ie, cause)
}

func TestGRPCStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"validation", NewValidationError("Email", "is required"), codes.InvalidArgument},
		{"already exists", ErrDuplicateEmail, codes.AlreadyExists},
		{"internal", NewInternalError("boom", stderrors.New("secret")), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(tt.err)
			assert.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.NotContains(t, st.Message(), "secret")
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(fmt.Errorf("add: %w", NewValidationError("email", "invalid email"))))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrDuplicateEmail))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(NewInternalError("db down", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("plain")))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", NewValidationError("x", "y"))))
	assert.False(t, IsValidation(ErrDuplicateEmail))
	assert.True(t, IsAlreadyExists(fmt.Errorf("wrapped: %w", ErrDuplicateEmail)))
	assert.False(t, IsAlreadyExists(NewInternalError("db down", nil)))
}
