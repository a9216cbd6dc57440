package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error for clients and logs.
type Code string

const (
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeRateLimited  Code = "RATE_LIMITED"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// AppError carries a code, a client-safe message and the HTTP status
// the handler layer should answer with. Handlers attach one to the gin
// context and the error middleware writes the response.
type AppError struct {
	Code    Code
	Message string
	Status  int
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Wrap attaches a code and status to an underlying error, keeping it
// reachable through errors.Is and errors.As.
func Wrap(err error, code Code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status, Cause: err}
}

func InvalidInput(message string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: message, Status: http.StatusBadRequest}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found", Status: http.StatusNotFound}
}

func Conflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message, Status: http.StatusConflict}
}

func RateLimited() *AppError {
	return &AppError{Code: CodeRateLimited, Message: "rate limit exceeded", Status: http.StatusTooManyRequests}
}

func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Status: http.StatusInternalServerError}
}

// From extracts an AppError from anywhere in the chain, or nil when
// the error carries no application classification.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
