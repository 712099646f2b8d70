package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nigellippett2/nrml/internal/logger"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without internal error",
			err:      New(http.StatusNotFound, "not_found", "Page not found"),
			expected: "not_found: Page not found",
		},
		{
			name:     "with internal error",
			err:      NewInternal("Something went wrong", errors.New("backend down")),
			expected: "internal_error: Something went wrong (backend down)",
		},
		{
			name:     "empty message",
			err:      New(http.StatusBadRequest, "bad_request", ""),
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorCopies(t *testing.T) {
	cause := errors.New("cause")

	withInternal := ErrUnavailable.WithInternal(cause)
	assert.Nil(t, ErrUnavailable.Internal, "sentinel must not be mutated")
	assert.ErrorIs(t, withInternal, cause)
	assert.ErrorIs(t, withInternal, ErrUnavailable)

	withMessage := ErrValidation.WithMessage("Enter a valid email address")
	assert.Equal(t, "Validation failed", ErrValidation.Message)
	assert.Equal(t, "Enter a valid email address", withMessage.Message)
	assert.ErrorIs(t, withMessage, ErrValidation)
	assert.NotErrorIs(t, withMessage, ErrUnavailable)

	withDetails := ErrBadRequest.WithDetails(map[string]any{"field": "email"})
	assert.Empty(t, ErrBadRequest.Details)
	assert.Equal(t, "email", withDetails.Details["field"])
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("signup: %w", ErrTooManyRequests)
	assert.Equal(t, http.StatusTooManyRequests, As(wrapped).HTTPStatus)

	plain := errors.New("boom")
	got := As(plain)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
	assert.ErrorIs(t, got, plain)
}

func TestToHTTPError(t *testing.T) {
	code, body := ToHTTPError(NewValidation("bad email").WithDetails(map[string]any{"field": "email"}))
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "validation_error", errBody["code"])
	assert.Equal(t, "bad email", errBody["message"])
	assert.NotNil(t, errBody["details"])

	code, body = ToHTTPError(errors.New("unknown"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal_error", body["error"].(map[string]any)["code"])
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	WriteJSON(rec, req, logger.Discard(), ErrUnavailable)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unavailable", body["error"]["code"])
}

func TestWriteJSON_Head(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodHead, "/api/health", nil)

	WriteJSON(rec, req, logger.Discard(), ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
