// Package apperrors defines the error kinds the conversion pipeline can
// surface and their mapping onto HTTP responses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an error with a stable code and an HTTP status.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a wrapped AppError against its predefined kind.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Predefined error kinds.
var (
	ErrNoFileUploaded = &AppError{
		Code:    "NO_FILE_UPLOADED",
		Message: "No file uploaded",
		Status:  http.StatusBadRequest,
	}

	ErrFileTooLarge = &AppError{
		Code:    "FILE_TOO_LARGE",
		Message: "Uploaded file exceeds the size limit",
		Status:  http.StatusRequestEntityTooLarge,
	}

	ErrMalformedDocument = &AppError{
		Code:    "MALFORMED_DOCUMENT",
		Message: "Failed to read PDF file",
		Status:  http.StatusInternalServerError,
	}

	ErrEmptyDocument = &AppError{
		Code:    "EMPTY_DOCUMENT",
		Message: "PDF contains no readable text",
		Status:  http.StatusInternalServerError,
	}

	ErrDocumentWrite = &AppError{
		Code:    "DOCUMENT_WRITE_ERROR",
		Message: "Failed to write output document",
		Status:  http.StatusInternalServerError,
	}

	ErrInternal = &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal Server Error",
		Status:  http.StatusInternalServerError,
	}
)

// Wrap attaches a cause to a predefined kind without mutating the original.
func Wrap(base *AppError, err error) *AppError {
	return &AppError{
		Code:    base.Code,
		Message: base.Message,
		Status:  base.Status,
		Err:     err,
	}
}

// From classifies an arbitrary error as an AppError, falling back to the
// internal catch-all.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(ErrInternal, err)
}

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Response builds the JSON error body for an AppError.
func Response(e *AppError) ErrorResponse {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return ErrorResponse{Error: e.Code, Message: msg}
}
