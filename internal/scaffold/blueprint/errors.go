package blueprint

import "fmt"

// BlueprintErrorType categorizes blueprint errors.
type BlueprintErrorType int

const (
	// BlueprintUnknown indicates the requested blueprint is not registered.
	BlueprintUnknown BlueprintErrorType = iota
	// BlueprintLoadFailed indicates embedded assets could not be read.
	BlueprintLoadFailed
	// BlueprintRenderFailed indicates variable substitution failed.
	BlueprintRenderFailed
)

// BlueprintError represents blueprint-specific errors.
type BlueprintError struct {
	// Type categorizes the error.
	Type BlueprintErrorType
	// Name is the blueprint name related to the error.
	Name string
	// Message is the error message.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *BlueprintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (blueprint: %s): %v", e.Message, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s (blueprint: %s)", e.Message, e.Name)
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *BlueprintError) Unwrap() error {
	return e.Cause
}

// newBlueprintError creates a new BlueprintError.
func newBlueprintError(typ BlueprintErrorType, name, message string, cause error) *BlueprintError {
	return &BlueprintError{
		Type:    typ,
		Name:    name,
		Message: message,
		Cause:   cause,
	}
}
