package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Error codes for the booking core. Callers branch on these: Conflict means
// "re-query slots and pick another time", the input errors are not retryable,
// and StorageFailure is the only code that may warrant a generic retry.
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrInvalidInput
	ErrInvalidAssignment
	ErrConflict
	ErrStorageFailure
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
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

// Error constructors
func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func InvalidInput(message string, err error) *AppError {
	return &AppError{
		Code:    ErrInvalidInput,
		Message: message,
		Err:     err,
	}
}

func InvalidAssignment(message string, err error) *AppError {
	return &AppError{
		Code:    ErrInvalidAssignment,
		Message: message,
		Err:     err,
	}
}

func Conflict(message string, err error) *AppError {
	return &AppError{
		Code:    ErrConflict,
		Message: message,
		Err:     err,
	}
}

func Storage(err error) *AppError {
	return &AppError{
		Code:    ErrStorageFailure,
		Message: "storage failure",
		Err:     err,
	}
}

// CodeOf extracts the error code from err, or ErrStorageFailure when err is
// not an AppError. Unknown failures are never reclassified as client errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrStorageFailure
}

// IsConflict reports whether err is a slot-collision error.
func IsConflict(err error) bool {
	return CodeOf(err) == ErrConflict
}
