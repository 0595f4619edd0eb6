package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidCode     = errors.New("no student found for this code")
	ErrCodeExists      = errors.New("access code already issued")
)

// Access request errors
var (
	// ErrDeviceMismatch is returned when a code that is already bound to a
	// device is used from a different one. Only an admin reset releases the
	// binding.
	ErrDeviceMismatch = errors.New("code already linked to another device")
	// ErrRequestNotFound is returned by admin approve/reject when the student
	// never attempted a login.
	ErrRequestNotFound = errors.New("access request not found")
	// ErrRequestExists signals that the conditional first-login insert lost
	// the race to a concurrent request.
	ErrRequestExists = errors.New("access request already exists for this student")
)

// Roster import errors
var (
	ErrEmptyRoster       = errors.New("roster file contains no student rows")
	ErrUnsupportedRoster = errors.New("unsupported roster file format")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
