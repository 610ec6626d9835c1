package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"

	// Manifest errors
	ErrManifestLoad  ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrManifestValid ErrorCode = "MANIFEST_INVALID"

	// Build-model errors
	ErrProjectInvalid    ErrorCode = "PROJECT_INVALID"
	ErrSourceSetsMissing ErrorCode = "SOURCE_SETS_MISSING"
	ErrDependencyInvalid ErrorCode = "DEPENDENCY_INVALID"

	// Remapper errors
	ErrRemapperNotFound ErrorCode = "REMAPPER_NOT_FOUND"
	ErrRemapperInvalid  ErrorCode = "REMAPPER_INVALID"
	ErrRemapFailed      ErrorCode = "REMAP_FAILED"

	// POM artifact errors
	ErrNoArtifacts       ErrorCode = "NO_ARTIFACTS"
	ErrAmbiguousArtifact ErrorCode = "AMBIGUOUS_ARTIFACT"
	ErrPomRender         ErrorCode = "POM_RENDER"
)

// DeobfError represents a structured error with code and details
type DeobfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DeobfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DeobfError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DeobfError) Is(target error) bool {
	var targetErr *DeobfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DeobfError with the given code and message
func New(code ErrorCode, message string) *DeobfError {
	return &DeobfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DeobfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DeobfError {
	return &DeobfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DeobfError
func Wrap(err error, code ErrorCode, message string) *DeobfError {
	if err == nil {
		return nil
	}
	return &DeobfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DeobfError {
	if err == nil {
		return nil
	}
	return &DeobfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DeobfError) WithDetail(key string, value interface{}) *DeobfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var deobfErr *DeobfError
	if errors.As(err, &deobfErr) {
		return deobfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DeobfError
func GetErrorCode(err error) ErrorCode {
	var deobfErr *DeobfError
	if errors.As(err, &deobfErr) {
		return deobfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DeobfError
func GetErrorDetails(err error) map[string]interface{} {
	var deobfErr *DeobfError
	if errors.As(err, &deobfErr) {
		return deobfErr.Details
	}
	return nil
}
