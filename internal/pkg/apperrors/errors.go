package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrValidationFailed      = errors.New("validation failed")
	ErrBadRequest            = errors.New("bad request")
)

// Snapshot errors
var (
	ErrCatalogNotFound  = errors.New("catalog snapshot not found")
	ErrProgressNotFound = errors.New("progress snapshot not found")
	ErrCatalogInvalid   = errors.New("catalog data is invalid")
	ErrProgressInvalid  = errors.New("progress data is invalid")
)

// Advising errors
var (
	ErrStudentNotFound       = errors.New("student not found in progress snapshot")
	ErrPeriodNotFound        = errors.New("advising period not found")
	ErrPeriodAlreadyExists   = errors.New("advising period with this name already exists")
	ErrSelectionNotFound     = errors.New("advising selection not found")
	ErrBypassNotFound        = errors.New("bypass not found")
	ErrSnapshotMismatch      = errors.New("progress snapshot does not belong to this catalog")
	ErrInvalidForecastParams = errors.New("invalid forecast parameters")
)

// Is reports whether err matches any of the targets
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrResourceAlreadyExists, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
