package apperrors

import "errors"

// Request errors
var (
	ErrBadRequest           = errors.New("bad request")
	ErrValidationFailed     = errors.New("validation failed")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// Infrastructure errors
var (
	// ErrDatabase marks any failure of the record store (connection, query, constraint)
	ErrDatabase = errors.New("database error")
	// ErrFileStorage marks any failure writing or removing a stored document
	ErrFileStorage = errors.New("file storage error")
)

// Resource errors
var (
	ErrResourceNotFound = errors.New("resource not found")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying per-field details
func NewValidationError(message string, details map[string]interface{}) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: details,
	}
}

// NewDatabaseError wraps a store failure so callers can match ErrDatabase
func NewDatabaseError(message string, cause error) error {
	return &CustomError{
		Err:     ErrDatabase,
		Message: message,
		Cause:   cause,
	}
}

// NewFileStorageError wraps a stash failure so callers can match ErrFileStorage
func NewFileStorageError(message string, cause error) error {
	return &CustomError{
		Err:     ErrFileStorage,
		Message: message,
		Cause:   cause,
	}
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
	// Cause is the lower-level error, kept for logging
	Cause error
}

// Error implements error interface
func (e *CustomError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As
func (e *CustomError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
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

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
