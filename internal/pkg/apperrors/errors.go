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
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Member errors
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidEmailDomain = errors.New("email must be from KEMU student domain (@stu.kemu.ac.ke)")
	ErrMemberNotApproved  = errors.New("membership is pending admin approval")
)

// Message errors
var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrMessageNotInTrash = errors.New("can only delete messages from viewed folder")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
)

// Executive / class leader errors
var (
	ErrExecutiveNotFound   = errors.New("executive not found")
	ErrClassLeaderNotFound = errors.New("class leader not found")
)

// Content errors
var (
	ErrResourceFileNotFound = errors.New("resource not found")
	ErrCarouselNotFound     = errors.New("carousel image not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrUsernameTaken        = errors.New("username already taken")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
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
