package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"comfort/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidIDError",
			failure: failure.InvalidIDError,
			code:    http.StatusBadRequest,
			message: "invalid id",
		},
		{
			name:    "UnauthenticatedError",
			failure: failure.UnauthenticatedError,
			code:    http.StatusUnauthorized,
			message: "authentication required",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "StoreUnavailableError",
			failure: failure.StoreUnavailableError,
			code:    http.StatusInternalServerError,
			message: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "bad request failure",
			err:  failure.BadRequestFromString("missing required fields"),
			code: http.StatusBadRequest,
		},
		{
			name: "not found failure",
			err:  failure.NotFound("booking not found"),
			code: http.StatusNotFound,
		},
		{
			name: "unauthorized failure",
			err:  failure.Unauthorized("invalid username or password"),
			code: http.StatusUnauthorized,
		},
		{
			name: "wrapped failure keeps its code",
			err:  fmt.Errorf("handling request: %w", failure.InvalidIDError),
			code: http.StatusBadRequest,
		},
		{
			name: "plain error defaults to internal server error",
			err:  errors.New("connection refused"),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
		})
	}
}
