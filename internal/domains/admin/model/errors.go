package model

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthError is the base error of admin authentication
type AuthError struct {
	Code    string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeLoginDisabled      = "ADMIN_LOGIN_DISABLED"
	CodeTokenGeneration    = "TOKEN_GENERATION_ERROR"
)

var ErrInvalidCredentials = &AuthError{
	Code:    CodeInvalidCredentials,
	Message: "Invalid email or password",
}

var ErrLoginDisabled = &AuthError{
	Code:    CodeLoginDisabled,
	Message: "Admin login is disabled: ADMIN_PASSWORD_HASH is not set",
}

func NewTokenGenerationError(err error) *AuthError {
	return &AuthError{Code: CodeTokenGeneration, Message: "Failed to issue access token", Err: err}
}

// GetErrorResponse maps an error to status, message and code
func GetErrorResponse(err error) (int, string, string) {
	var aErr *AuthError
	if !errors.As(err, &aErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch aErr.Code {
	case CodeInvalidCredentials:
		return http.StatusUnauthorized, aErr.Message, aErr.Code
	case CodeLoginDisabled:
		return http.StatusServiceUnavailable, aErr.Message, aErr.Code
	default:
		return http.StatusInternalServerError, aErr.Message, aErr.Code
	}
}
