// Package errors provides structured error types for the bayplan application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the preview server, and exports
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - HEIGHT_MISMATCH, DEGENERATE_BIN: model consistency failures
//   - *_NOT_FOUND: Resource not found
//   - EXPORT_FAILED: Export pipeline failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDimension, "bay width must be positive, got %.1f", w)
//	if errors.Is(err, errors.ErrCodeInvalidDimension) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeExportFailed, origErr, "deck page for group %q", name)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidCount     Code = "INVALID_COUNT"     // bay/row/column counts below 1
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION" // non-positive widths or thicknesses
	ErrCodeInvalidLevels    Code = "INVALID_LEVELS"    // level slices malformed or mismatched
	ErrCodeInvalidProject   Code = "INVALID_PROJECT"   // design file cannot be parsed
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"    // unknown output format
	ErrCodeInvalidStyle     Code = "INVALID_STYLE"     // unknown drawing style

	// Model consistency errors
	ErrCodeHeightMismatch Code = "HEIGHT_MISMATCH" // total height disagrees with level sum
	ErrCodeDegenerateBin  Code = "DEGENERATE_BIN"  // computed bin width is zero or negative

	// Resource not found errors
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeGroupNotFound Code = "GROUP_NOT_FOUND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Export errors
	ErrCodeExportFailed Code = "EXPORT_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// List collects multiple validation failures into a single error value.
// The validator reports every violation, not just the first, so callers
// can surface the complete set of messages to the user.
type List []*Error

// Error implements the error interface, joining all messages.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Messages returns the user-facing message of every error in the list.
func (l List) Messages() []string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Message
	}
	return msgs
}

// Has reports whether any error in the list carries the given code.
func (l List) Has(code Code) bool {
	for _, e := range l {
		if e.Code == code {
			return true
		}
	}
	return false
}
