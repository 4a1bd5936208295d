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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Link errors
	ErrMissingSource   ErrorCode = "MISSING_SOURCE"
	ErrAmbiguousTarget ErrorCode = "AMBIGUOUS_TARGET"
	ErrSymlinkCreate   ErrorCode = "SYMLINK_CREATE"
	ErrBackupMove      ErrorCode = "BACKUP_MOVE"

	// Bootstrap errors
	ErrExternalTool ErrorCode = "EXTERNAL_TOOL"
	ErrToolNotFound ErrorCode = "TOOL_NOT_FOUND"
	ErrDownload     ErrorCode = "DOWNLOAD"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// ShellkitError represents a structured error with code and details
type ShellkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShellkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShellkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShellkitError) Is(target error) bool {
	var targetErr *ShellkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShellkitError with the given code and message
func New(code ErrorCode, message string) *ShellkitError {
	return &ShellkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShellkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShellkitError {
	return &ShellkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShellkitError
func Wrap(err error, code ErrorCode, message string) *ShellkitError {
	if err == nil {
		return nil
	}
	return &ShellkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShellkitError {
	if err == nil {
		return nil
	}
	return &ShellkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShellkitError) WithDetail(key string, value interface{}) *ShellkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the ErrorCode from an error, returning ErrUnknown for
// errors that are not ShellkitErrors.
func GetCode(err error) ErrorCode {
	var skErr *ShellkitError
	if errors.As(err, &skErr) {
		return skErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
