package apperrors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	plain := New(CodeNotFound, "trips", "Trip not found", http.StatusNotFound)
	assert.Equal(t, "[trips:NOT_FOUND] Trip not found", plain.Error())

	wrapped := Wrap(fmt.Errorf("sql: no rows"), CodeDatabaseError, "trips", "Lookup failed", http.StatusInternalServerError)
	assert.Equal(t, "[trips:DATABASE_ERROR] Lookup failed (sql: no rows)", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "sql: no rows")
}

func TestAsAppError(t *testing.T) {
	appErr := NewBadRequestError("Bad input")

	got, ok := AsAppError(fmt.Errorf("outer: %w", appErr))
	require.True(t, ok)
	assert.Equal(t, appErr, got)

	_, ok = AsAppError(fmt.Errorf("plain failure"))
	assert.False(t, ok)
}

func TestMarshalJSONHidesInternals(t *testing.T) {
	appErr := Wrap(fmt.Errorf("dial tcp: refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError).
		WithDetails(map[string]string{"hint": "retry"})

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "INTERNAL_ERROR", decoded["code"])
	assert.Equal(t, "system", decoded["domain"])
	assert.Equal(t, "Internal server error", decoded["message"])
	assert.Contains(t, decoded, "details")
	assert.NotContains(t, string(raw), "dial tcp")
	assert.NotContains(t, decoded, "HTTPCode")
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name     string
		err      *AppError
		code     ErrorCode
		httpCode int
	}{
		{"unauthorized", NewUnauthorizedError("No token"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("Not allowed"), CodeForbidden, http.StatusForbidden},
		{"bad request", NewBadRequestError("Bad input"), CodeValidationFailed, http.StatusBadRequest},
		{"not found", NewNotFoundError("trips", "Trip not found"), CodeNotFound, http.StatusNotFound},
		{"validation", ValidationError(map[string]string{"email": "required"}), CodeValidationFailed, http.StatusBadRequest},
		{"internal", InternalError(fmt.Errorf("boom")), CodeInternalError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.httpCode, tc.err.HTTPCode)
		})
	}
}
