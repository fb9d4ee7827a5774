// Package errors provides structured error types for jarindex.
//
// Every failure the scanner can observe carries a machine-readable [Code] so
// the CLI can decide between aborting the run and reporting a single file:
//
//   - INVALID_*: argument and configuration failures, fatal before scanning
//   - *_FAILURE: per-file failures, recorded in the run report
//   - MISSING_COORDINATE: a jar without a matching pom
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "not a directory: %s", dir)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // exit 1
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeArchiveOpen, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Fatal input errors
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Per-file scan errors
	ErrCodeXMLParse      Code = "XML_PARSE_FAILURE"
	ErrCodeFileRead      Code = "FILE_READ_FAILURE"
	ErrCodeDirectoryRead Code = "DIRECTORY_READ_FAILURE"
	ErrCodeArchiveOpen   Code = "ARCHIVE_OPEN_FAILURE"
	ErrCodeArchiveRead   Code = "ARCHIVE_READ_FAILURE"
	ErrCodeMissingCoord  Code = "MISSING_COORDINATE"

	// Output errors
	ErrCodeOutputWrite Code = "OUTPUT_WRITE_FAILURE"
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

// Fatal reports whether errors with this code abort the whole run
// rather than a single file.
func (c Code) Fatal() bool {
	switch c {
	case ErrCodeInvalidArgument, ErrCodeInvalidConfig, ErrCodeOutputWrite:
		return true
	}
	return false
}
