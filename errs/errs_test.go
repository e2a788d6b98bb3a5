package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "idx_title"`), http.StatusConflict},
		{"foreign key", errors.New(`insert violates foreign key constraint "fk_project"`), http.StatusBadRequest},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"generic", errors.New("syntax error"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "project", tt.cause)
			assert.Equal(t, tt.wantStatus, err.StatusCode)
		})
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := NewValidationError("title", "title is required")

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "title", err.Field)
	assert.True(t, IsBadRequest(err))
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewDatabaseError("find", "tasks", inner)

	full := err.GetFullError()
	assert.Contains(t, full, "connection refused")
	assert.Contains(t, full, err.Error())
}

func TestUnauthorizedSentinel(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, Unauthorized.StatusCode)
	assert.Equal(t, "unauthorized", Unauthorized.Error())
}
