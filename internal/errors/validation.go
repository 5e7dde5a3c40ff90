package errors

import "fmt"

// RegistrationError represents an error while registering a component
type RegistrationError struct {
	*BaseError
	Module   string // dotted module name of the rejected component
	Category string // actuator or sensor, when known
	Reason   string
}

// NewRegistrationError creates a new registration error
func NewRegistrationError(module, category, reason string) *RegistrationError {
	message := fmt.Sprintf("failed to register component '%s': %s", module, reason)

	err := &RegistrationError{
		BaseError: New(RegistrationErrorCode, message),
		Module:    module,
		Category:  category,
		Reason:    reason,
	}
	err.WithContext("module", module)
	if category != "" {
		err.WithContext("category", category)
	}
	return err
}

// ValidationError represents a failed check on configuration or metadata
type ValidationError struct {
	*BaseError
	Field string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{
		BaseError: New(ValidationErrorCode, fmt.Sprintf("invalid %s: %s", field, reason)).
			WithContext("field", field),
		Field: field,
	}
}

// GenerationError represents a failure while producing a page
type GenerationError struct {
	*BaseError
	Component  string // display name of the component being rendered
	TargetFile string
	Stage      string // render, write
}

// NewGenerationError creates a generation error
func NewGenerationError(component, targetFile, stage string, cause error) *GenerationError {
	message := fmt.Sprintf("failed to %s page for %s", stage, component)
	return &GenerationError{
		BaseError:  Wrap(GenerationErrorCode, message, cause).WithContext("target_file", targetFile),
		Component:  component,
		TargetFile: targetFile,
		Stage:      stage,
	}
}
