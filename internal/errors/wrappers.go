package errors

import "fmt"

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName).
		WithContext("operation", operation)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(source, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, source)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("source", source).
		WithContext("operation", operation)
}

// DuplicateComponentError reports two components claiming the same name or module
func DuplicateComponentError(module, category, what, existingModule string) *RegistrationError {
	reason := fmt.Sprintf("%s is already registered by module '%s'", what, existingModule)
	err := NewRegistrationError(module, category, reason)
	err.WithContext("existing_module", existingModule)
	err.WithSuggestions(
		"Give one of the components a distinct display name",
		"Check that the module is not registered twice",
	)
	return err
}
