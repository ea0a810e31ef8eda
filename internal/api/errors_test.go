package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/directory-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "user_not_found",
			err:      store.ErrUserNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "post_not_found",
			err:      store.ErrPostNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped_not_found",
			err:      fmt.Errorf("lookup: %w", store.ErrNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "invalid_entity_is_referential_miss",
			err:      fmt.Errorf("%w: user with ID u1 not found", store.ErrInvalidEntity),
			expected: http.StatusNotFound,
		},
		{
			name:     "duplicate",
			err:      store.ErrDuplicate,
			expected: http.StatusConflict,
		},
		{
			name:     "unknown_error_is_internal",
			err:      errors.New("connection refused"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "not_persisted_is_internal",
			err:      store.NewStoreError("post", "create", "insert failed", store.ErrNotPersisted),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil_error",
			err:      nil,
			expected: "Internal server error",
		},
		{
			name:     "user_not_found",
			err:      store.ErrUserNotFound,
			expected: "User not found",
		},
		{
			name:     "post_not_found",
			err:      store.ErrPostNotFound,
			expected: "Post not found",
		},
		{
			name:     "invalid_entity_reports_missing_user",
			err:      fmt.Errorf("%w: user with ID u1 not found", store.ErrInvalidEntity),
			expected: "User not found",
		},
		{
			name:     "storage_fault_stays_generic",
			err:      errors.New("pq: connection refused host=10.0.0.1"),
			expected: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := GetSafeErrorMessage(tt.err)
			assert.Equal(t, tt.expected, msg)

			// Safe messages never echo internal detail
			assert.NotContains(t, msg, "10.0.0.1")
		})
	}
}
