package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrRecordNotFound        = errors.New("record not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrStorageFailure = errors.New("file storage operation failed")
)

// Student record errors
var (
	ErrStudentNotFound        = errors.New("student record not found")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
	ErrStudentIDImmutable     = errors.New("student ID cannot be changed after creation")
)

// Course registration errors
var (
	ErrRegistrationNotFound = errors.New("course registration not found")
	ErrCreditLimitExceeded  = errors.New("total credit hours exceed the allowed maximum")
	ErrCreditSumMismatch    = errors.New("total credits do not match the selected courses")
)

// Attachment errors
var (
	ErrUnknownSlot   = errors.New("unknown attachment slot for this record type")
	ErrDraftNotFound = errors.New("submission draft not found or expired")
)

// Admin errors
var (
	ErrAdminNotFound = errors.New("admin not found")
)

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

// NewValidationError creates a validation error carrying the specific reason.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewStorageError wraps a file storage failure with the operation context.
func NewStorageError(err error, message string) error {
	return &CustomError{
		Err:     errors.Join(ErrStorageFailure, err),
		Message: message,
	}
}
