package model

import (
	"errors"
	"fmt"
	"net/http"
)

// PortfolioError is the base error of the portfolio domain
type PortfolioError struct {
	Code    string
	Message string
	Err     error
}

func (e *PortfolioError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PortfolioError) Unwrap() error {
	return e.Err
}

const (
	CodeProjectNotFound  = "PROJECT_NOT_FOUND"
	CodeInvalidProjectID = "INVALID_PROJECT_ID"
	CodeInvalidProject   = "INVALID_PROJECT"
	CodeInvalidCategory  = "INVALID_CATEGORY"
	CodeListProjects     = "LIST_PROJECTS_ERROR"
	CodeSaveProject      = "SAVE_PROJECT_ERROR"
	CodeDeleteProject    = "DELETE_PROJECT_ERROR"
	CodeExportProjects   = "EXPORT_PROJECTS_ERROR"
)

func NewProjectNotFound(id string) *PortfolioError {
	return &PortfolioError{Code: CodeProjectNotFound, Message: fmt.Sprintf("Project %s not found", id)}
}

func NewInvalidProjectID(id string) *PortfolioError {
	return &PortfolioError{Code: CodeInvalidProjectID, Message: fmt.Sprintf("Invalid project ID: %s", id)}
}

func NewInvalidProject(err error) *PortfolioError {
	return &PortfolioError{Code: CodeInvalidProject, Message: "Project is invalid", Err: err}
}

func NewInvalidCategory(category string) *PortfolioError {
	return &PortfolioError{Code: CodeInvalidCategory, Message: fmt.Sprintf("Unknown category: %s", category)}
}

func NewListProjectsError(err error) *PortfolioError {
	return &PortfolioError{Code: CodeListProjects, Message: "Failed to list projects", Err: err}
}

func NewSaveProjectError(err error) *PortfolioError {
	return &PortfolioError{Code: CodeSaveProject, Message: "Failed to save project", Err: err}
}

func NewDeleteProjectError(err error) *PortfolioError {
	return &PortfolioError{Code: CodeDeleteProject, Message: "Failed to delete project", Err: err}
}

func NewExportProjectsError(err error) *PortfolioError {
	return &PortfolioError{Code: CodeExportProjects, Message: "Failed to export projects", Err: err}
}

func IsProjectNotFound(err error) bool {
	var pErr *PortfolioError
	return errors.As(err, &pErr) && pErr.Code == CodeProjectNotFound
}

// GetErrorResponse maps an error to status, message, code and details
func GetErrorResponse(err error) (int, string, string, interface{}) {
	var pErr *PortfolioError
	if !errors.As(err, &pErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", nil
	}

	switch pErr.Code {
	case CodeProjectNotFound:
		return http.StatusNotFound, pErr.Message, pErr.Code, nil
	case CodeInvalidProject:
		var details interface{}
		if pErr.Err != nil {
			details = pErr.Err
		}
		return http.StatusBadRequest, pErr.Message, pErr.Code, details
	case CodeInvalidProjectID, CodeInvalidCategory:
		return http.StatusBadRequest, pErr.Message, pErr.Code, nil
	default:
		return http.StatusInternalServerError, pErr.Message, pErr.Code, nil
	}
}
