package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates option validation failed.
	ValidationFailed AppErrorType = iota
	// BlueprintResolveFailed indicates blueprint resolution failed.
	BlueprintResolveFailed
	// GenerateFailed indicates project generation failed.
	GenerateFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewBlueprintResolveError creates a blueprint resolution error.
func NewBlueprintResolveError(message string, cause error) *AppError {
	return NewAppError(BlueprintResolveFailed, message, cause)
}

// NewGenerateError creates a generation error.
func NewGenerateError(message string, cause error) *AppError {
	return NewAppError(GenerateFailed, message, cause)
}
