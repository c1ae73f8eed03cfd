// Package errors provides typed errors for ci-tools
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfigNotFound indicates the configuration file does not exist
	ErrConfigNotFound ErrorType = iota
	// ErrConfigParse indicates the configuration file is not valid YAML
	ErrConfigParse
	// ErrWrite indicates an output write failure
	ErrWrite
	// ErrPlatform indicates a source-hosting platform API error
	ErrPlatform
	// ErrLLM indicates a completion service error
	ErrLLM
	// ErrValidation indicates missing or invalid input configuration
	ErrValidation
)

// ToolError is the base error type for all ci-tools errors
type ToolError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error returns the error message
func (e *ToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// New creates a new ToolError
func New(errType ErrorType, message string, cause error) *ToolError {
	return &ToolError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var toolErr *ToolError
	if err == nil {
		return false
	}
	if errors.As(err, &toolErr) {
		return toolErr.Type == errType
	}
	return false
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfigNotFound:
		return "CONFIG_NOT_FOUND"
	case ErrConfigParse:
		return "CONFIG_PARSE"
	case ErrWrite:
		return "WRITE"
	case ErrPlatform:
		return "PLATFORM"
	case ErrLLM:
		return "LLM"
	case ErrValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigNotFoundError creates a configuration-not-found error
func ConfigNotFoundError(message string, cause error) *ToolError {
	return New(ErrConfigNotFound, message, cause)
}

// ConfigParseError creates a configuration parse error
func ConfigParseError(message string, cause error) *ToolError {
	return New(ErrConfigParse, message, cause)
}

// WriteError creates an output write error
func WriteError(message string, cause error) *ToolError {
	return New(ErrWrite, message, cause)
}

// PlatformError creates a platform API error
func PlatformError(message string, cause error) *ToolError {
	return New(ErrPlatform, message, cause)
}

// LLMError creates a completion service error
func LLMError(message string, cause error) *ToolError {
	return New(ErrLLM, message, cause)
}

// ValidationError creates an input validation error
func ValidationError(message string, cause error) *ToolError {
	return New(ErrValidation, message, cause)
}
