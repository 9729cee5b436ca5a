// Package errors provides coded error values for hexclusters.
//
// Codes let the CLI and the interactive board tell recoverable conditions
// (a malformed input row, a stale drag reference, a failed export) apart
// without string matching:
//
//	err := errors.New(errors.ErrCodeInputFormat, "line %d: want 2 columns, got %d", line, n)
//	if errors.Is(err, errors.ErrCodeInputFormat) {
//	    // abort startup
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeInputFormat marks a malformed input row (InputFormatError).
	ErrCodeInputFormat Code = "INPUT_FORMAT"
	// ErrCodeStaleReference marks a drag naming a tile that is gone (StaleReferenceError).
	ErrCodeStaleReference Code = "STALE_REFERENCE"
	// ErrCodeExportIO marks a failed snapshot or page write (ExportIOError).
	ErrCodeExportIO Code = "EXPORT_IO"
	// ErrCodeInvalidConfig marks a config file that cannot be decoded or validated.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	// ErrCodeFileNotFound marks a missing input file.
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

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

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error wrapping cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from err, or "" if err is not coded.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix.
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
