package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Lifecycle errors
	ErrInvalidState = errors.New("action not allowed in current state")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already registered")
	ErrStudentIDExists    = errors.New("student ID already registered")
	ErrInvalidStudentID   = errors.New("invalid student ID format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrStudentIDBanned    = errors.New("student ID is banned from the platform")
)

// Ban ledger errors
var (
	ErrAlreadyBanned = errors.New("student ID is already banned")
	ErrBanNotFound   = errors.New("ban record not found")
)

// Posting errors
var (
	ErrJobPostNotFound = errors.New("job posting not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrNotAuthor       = errors.New("caller is not the author of this posting")
)

// Announcement errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
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

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithField records which input field violated a rule
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewConflictError creates a new custom error for uniqueness violations
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for a missing entity
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewStateError creates a new custom error for lifecycle violations
func NewStateError(message string) error {
	return &CustomError{
		Err:     ErrInvalidState,
		Message: message,
	}
}

// Is reports whether err matches target or any error in errList
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

// Field extracts the offending field name from a validation error, if any
func Field(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}
