// Package errors provides standardized error handling for the action runner
// boundary.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Boundary validation errors: fatal, abort before dispatch.
	ErrCodeMissingRequiredInput ErrorCode = "MISSING_REQUIRED_INPUT"
	ErrCodeInvalidInputSchema   ErrorCode = "INVALID_INPUT_SCHEMA"

	// Infrastructure errors around the dispatch call.
	ErrCodeOutputWriteFailed  ErrorCode = "OUTPUT_WRITE_FAILED"
	ErrCodeRegistryLoadFailed ErrorCode = "REGISTRY_LOAD_FAILED"
	ErrCodeConfigInvalid      ErrorCode = "CONFIG_INVALID"

	// WarnCodeUnknownOperation is never a failure: the dispatcher degrades
	// to its fallback operation and the boundary emits a visible warning.
	WarnCodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewMissingRequiredInputError creates the fatal error raised when a
// mandatory input value is absent or empty.
func NewMissingRequiredInputError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingRequiredInput,
		Message:   "Required input is missing or empty",
		Details:   fmt.Sprintf("input: %s", field),
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputSchemaError creates the error raised when resolved inputs
// do not satisfy the operation's input schema.
func NewInvalidInputSchemaError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInputSchema,
		Message:   "Resolved inputs failed schema validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewOutputWriteFailedError creates the error raised when the output record
// cannot be appended to the caller-provided sink.
func NewOutputWriteFailedError(sink string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOutputWriteFailed,
		Message:   "Failed to write output record",
		Details:   fmt.Sprintf("sink: %s, error: %s", sink, err.Error()),
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryLoadFailedError creates the error raised when the operation
// registry file cannot be read or parsed.
func NewRegistryLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryLoadFailed,
		Message:   "Failed to load operation registry",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigInvalidError creates the error raised when configuration fails
// validation at startup.
func NewConfigInvalidError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Invalid configuration",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Exit Status Mapping
// ==========================

// ExitCode maps an error code to the process exit status surfaced to the
// invoking host. Missing input uses the distinguished status the isolated
// host expects.
func ExitCode(code ErrorCode) int {
	switch code {
	case ErrCodeMissingRequiredInput:
		return 2
	case WarnCodeUnknownOperation:
		return 0
	default:
		return 1
	}
}

// IsFatal reports whether the code aborts the invocation. Unknown operation
// degrades instead of failing.
func IsFatal(code ErrorCode) bool {
	return code != WarnCodeUnknownOperation
}

// ==========================
// 4. Utility Functions
// ==========================

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "INPUT"):
		return "INPUT"
	case strings.Contains(codeStr, "OUTPUT"):
		return "OUTPUT"
	case strings.Contains(codeStr, "REGISTRY") || strings.Contains(codeStr, "CONFIG"):
		return "SETUP"
	case strings.Contains(codeStr, "OPERATION"):
		return "DISPATCH"
	default:
		return "OTHER"
	}
}
