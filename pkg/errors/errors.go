// Package errors provides structured error types for metriclines.
//
// This package defines error codes and types that enable:
//   - Per-graph failures that the stream driver can skip and report
//   - Fatal usage failures that abort before any input is consumed
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
//   - INVALID_FORMAT: a graph token is malformed (bad sentinel, bad length,
//     byte out of range, too many vertices)
//   - DISCONNECTED_GRAPH: line computation was requested on a graph with an
//     unreachable vertex pair
//   - USAGE: invalid command-line flags or arguments
//   - INTERNAL_ERROR: a checked invariant failed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "token %q: bad length", tok)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // skip this graph
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUsage, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Per-graph errors: the offending graph is skipped.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeDisconnected  Code = "DISCONNECTED_GRAPH"

	// Fatal errors.
	ErrCodeUsage    Code = "USAGE"
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsFormat reports whether err is a FormatError (malformed graph encoding).
func IsFormat(err error) bool { return Is(err, ErrCodeInvalidFormat) }

// IsDisconnected reports whether err is a DisconnectedGraphError.
func IsDisconnected(err error) bool { return Is(err, ErrCodeDisconnected) }

// IsUsage reports whether err is a UsageError.
func IsUsage(err error) bool { return Is(err, ErrCodeUsage) }

// IsPerGraph reports whether err only invalidates the graph that caused it,
// so a stream driver may skip that graph and continue.
func IsPerGraph(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidFormat, ErrCodeDisconnected:
		return true
	}
	return false
}
