// Package errors provides structured error types for depviz.
//
// Error codes let the CLI decide between fatal and non-fatal failures
// without string matching:
//   - INVALID_*: configuration and response validation failures
//   - *_NOT_FOUND: missing files or packages
//   - NETWORK_ERROR, REGISTRY_STATUS: registry communication failures
//   - INTERNAL_ERROR: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "package_name is required")
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // report and exit
//	}
//
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidResponse Code = "INVALID_RESPONSE"

	// Resource not found errors
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodePackageNotFound Code = "PACKAGE_NOT_FOUND"

	// Registry errors
	ErrCodeNetwork        Code = "NETWORK_ERROR"
	ErrCodeRegistryStatus Code = "REGISTRY_STATUS"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Is reports whether any *Error in err's chain carries code. Unlike
// [GetCode], which only looks at the outermost coded error, Is sees codes
// below a re-coded wrapper, e.g. INVALID_INPUT under INVALID_CONFIG.
func Is(err error, code Code) bool {
	return errors.Is(err, codeTarget(code))
}

// codeTarget lets errors.Is match an *Error by code alone.
type codeTarget Code

func (c codeTarget) Error() string { return string(c) }

// Is implements the errors.Is hook for code matching.
func (e *Error) Is(target error) bool {
	c, ok := target.(codeTarget)
	return ok && e.Code == Code(c)
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err for the terminal: the outermost *Error loses its
// code prefix and keeps its cause; other errors print as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
