package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceContentError is the base error of the service content domain
type ServiceContentError struct {
	Code    string
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *ServiceContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ServiceContentError) Unwrap() error {
	return e.Err
}

const (
	CodeServiceNotFound = "SERVICE_NOT_FOUND"
	CodeLoadService     = "LOAD_SERVICE_ERROR"
	CodeSaveService     = "SAVE_SERVICE_ERROR"

	// ServicesBackLink is where the not found screen points visitors
	ServicesBackLink = "/services"
)

func NewServiceNotFound(id string) *ServiceContentError {
	return &ServiceContentError{
		Code:    CodeServiceNotFound,
		Message: "Service Not Found",
		Details: map[string]interface{}{
			"id":       id,
			"backLink": ServicesBackLink,
		},
	}
}

func NewLoadServiceError(id string, err error) *ServiceContentError {
	return &ServiceContentError{
		Code:    CodeLoadService,
		Message: fmt.Sprintf("Failed to load service %s", id),
		Err:     err,
	}
}

func NewSaveServiceError(id string, err error) *ServiceContentError {
	return &ServiceContentError{
		Code:    CodeSaveService,
		Message: fmt.Sprintf("Failed to save service %s", id),
		Err:     err,
	}
}

func IsServiceNotFound(err error) bool {
	var svcErr *ServiceContentError
	return errors.As(err, &svcErr) && svcErr.Code == CodeServiceNotFound
}

// GetErrorResponse maps an error to status, message, code and details
func GetErrorResponse(err error) (int, string, string, interface{}) {
	var svcErr *ServiceContentError
	if !errors.As(err, &svcErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", nil
	}

	switch svcErr.Code {
	case CodeServiceNotFound:
		return http.StatusNotFound, svcErr.Message, svcErr.Code, svcErr.Details
	default:
		return http.StatusInternalServerError, svcErr.Message, svcErr.Code, nil
	}
}
