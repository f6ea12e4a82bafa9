package model

import (
	"errors"
	"fmt"
	"net/http"
)

// SiteContentError is the base error of the site content domain
type SiteContentError struct {
	Code    string
	Message string
	Err     error
}

func (e *SiteContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SiteContentError) Unwrap() error {
	return e.Err
}

const (
	CodeInvalidProblemIndex = "INVALID_PROBLEM_INDEX"
	CodeLoadContent         = "LOAD_CONTENT_ERROR"
	CodeSaveContent         = "SAVE_CONTENT_ERROR"
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewInvalidProblemIndex(index, length int) *SiteContentError {
	return &SiteContentError{
		Code:    CodeInvalidProblemIndex,
		Message: fmt.Sprintf("Problem index %d is out of range (%d problems)", index, length),
	}
}

func NewLoadContentError(key string, err error) *SiteContentError {
	return &SiteContentError{
		Code:    CodeLoadContent,
		Message: fmt.Sprintf("Failed to load %s", key),
		Err:     err,
	}
}

func NewSaveContentError(key string, err error) *SiteContentError {
	return &SiteContentError{
		Code:    CodeSaveContent,
		Message: fmt.Sprintf("Failed to save %s", key),
		Err:     err,
	}
}

// ============================================
// HTTP MAPPING
// ============================================

// GetErrorResponse maps an error to status, message and code
func GetErrorResponse(err error) (int, string, string) {
	var scErr *SiteContentError
	if !errors.As(err, &scErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch scErr.Code {
	case CodeInvalidProblemIndex:
		return http.StatusBadRequest, scErr.Message, scErr.Code
	default:
		return http.StatusInternalServerError, scErr.Message, scErr.Code
	}
}
