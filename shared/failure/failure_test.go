package failure_test

import (
	"docai/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("upstream said no")

	tests := []struct {
		name     string
		build    func(err error) error
		wantCode int
	}{
		{"bad request", failure.BadRequest, http.StatusBadRequest},
		{"internal", failure.InternalError, http.StatusInternalServerError},
		{"bad gateway", failure.BadGateway, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(cause)

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, tt.wantCode, fail.Code)
			assert.Equal(t, "upstream said no", fail.Message)

			assert.NoError(t, tt.build(nil))
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	err := failure.BadRequestFromString("No symptoms found for patient.")

	assert.EqualError(t, err, "No symptoms found for patient.")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestForbiddenError(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, failure.GetCode(failure.ForbiddenError))
}

type teapotError struct{}

func (teapotError) Error() string   { return "teapot" }
func (teapotError) StatusCode() int { return http.StatusTeapot }

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{"failure", failure.New(http.StatusConflict, "taken"), http.StatusConflict},
		{"wrapped failure", fmt.Errorf("booking: %w", failure.BadRequestFromString("date is required")), http.StatusBadRequest},
		{"status coder", fmt.Errorf("wrapped: %w", teapotError{}), http.StatusTeapot},
		{"plain error", errors.New("regular error"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}
