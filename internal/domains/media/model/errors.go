package model

import (
	"errors"
	"fmt"
	"net/http"
)

// MediaError is the base error of the media domain
type MediaError struct {
	Code    string
	Message string
	Err     error
}

func (e *MediaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *MediaError) Unwrap() error {
	return e.Err
}

const (
	CodeStorageNotConfigured = "STORAGE_NOT_CONFIGURED"
	CodeFileTooLarge         = "FILE_TOO_LARGE"
	CodeEmptyFile            = "EMPTY_FILE"
	CodeMissingFile          = "MISSING_FILE"
	CodeUploadFailed         = "UPLOAD_FAILED"
)

var ErrStorageNotConfigured = &MediaError{
	Code:    CodeStorageNotConfigured,
	Message: "File storage is not configured: set STORAGE_BUCKET",
}

var ErrEmptyFile = &MediaError{
	Code:    CodeEmptyFile,
	Message: "Uploaded file is empty",
}

var ErrMissingFile = &MediaError{
	Code:    CodeMissingFile,
	Message: "Multipart field 'file' is required",
}

func NewFileTooLarge(size, limit int64) *MediaError {
	return &MediaError{
		Code:    CodeFileTooLarge,
		Message: fmt.Sprintf("File is %d bytes, limit is %d bytes", size, limit),
	}
}

func NewUploadFailed(err error) *MediaError {
	return &MediaError{
		Code:    CodeUploadFailed,
		Message: "Upload failed",
		Err:     err,
	}
}

func IsStorageNotConfigured(err error) bool {
	var mErr *MediaError
	return errors.As(err, &mErr) && mErr.Code == CodeStorageNotConfigured
}

// GetErrorResponse maps an error to status, message and code
func GetErrorResponse(err error) (int, string, string) {
	var mErr *MediaError
	if !errors.As(err, &mErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch mErr.Code {
	case CodeStorageNotConfigured:
		return http.StatusServiceUnavailable, mErr.Message, mErr.Code
	case CodeFileTooLarge:
		return http.StatusRequestEntityTooLarge, mErr.Message, mErr.Code
	case CodeEmptyFile, CodeMissingFile:
		return http.StatusBadRequest, mErr.Message, mErr.Code
	case CodeUploadFailed:
		return http.StatusBadGateway, mErr.Message, mErr.Code
	default:
		return http.StatusInternalServerError, mErr.Message, mErr.Code
	}
}
