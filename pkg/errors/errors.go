// Package errors provides structured error types for GraphInsight.
//
// This package defines error codes and types that enable:
//   - A clear split between malformed JSON and well-formed JSON of the wrong shape
//   - Machine-readable error codes for programmatic handling
//   - User-friendly messages that name the offending JSON path
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// A shape failure is any of INVALID_SHAPE, INVALID_REFERENCE or DEPTH_EXCEEDED;
// use [IsShapeError] rather than comparing codes individually.
//
// # Usage
//
//	err := errors.AtPath(errors.ErrCodeInvalidShape, "nodes[3].id", "must be a number")
//	if errors.IsShapeError(err) {
//	    // valid JSON, wrong graph shape
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidJSON, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidJSON      Code = "INVALID_JSON"
	ErrCodeInvalidShape     Code = "INVALID_SHAPE"
	ErrCodeInvalidReference Code = "INVALID_REFERENCE"
	ErrCodeDepthExceeded    Code = "DEPTH_EXCEEDED"

	// Resource not found errors
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeSampleNotFound Code = "SAMPLE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Path    string // JSON path of the offending value (optional)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
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

// AtPath creates a new Error located at a JSON path such as "edges[2].target_id".
// An empty path refers to the document root.
func AtPath(code Code, path string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
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

// IsShapeError reports whether err describes well-formed JSON that does not
// match a supported graph shape. Dangling edge references and excessive
// nesting are shape errors too.
func IsShapeError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidShape, ErrCodeInvalidReference, ErrCodeDepthExceeded:
		return true
	}
	return false
}

// IsParseError reports whether err describes input that is not well-formed JSON.
func IsParseError(err error) bool {
	return Is(err, ErrCodeInvalidJSON)
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

// GetPath extracts the JSON path from an error, if available.
func GetPath(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Path
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (prefixed by its path) without the code.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Path != "" {
			return e.Path + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}
