// Package clierr defines structured error types for choremate.
// Errors carry a machine-readable code, a human-readable message,
// and optional details for JSON consumers.
package clierr

import (
	"errors"
	"fmt"
	"strconv"
)

// Error codes are stable across minor versions.
const (
	ChoreNotFound    = "CHORE_NOT_FOUND"
	IntervalNotFound = "INTERVAL_NOT_FOUND"
	TagNotFound      = "TAG_NOT_FOUND"
	DuplicateName    = "DUPLICATE_NAME"
	InvalidName      = "INVALID_NAME"
	InvalidDuration  = "INVALID_DURATION"
	InvalidDate      = "INVALID_DATE"
	InvalidInput     = "INVALID_INPUT"
	ConfirmationReq  = "CONFIRMATION_REQUIRED"
	ConfigNotFound   = "CONFIG_NOT_FOUND"
	InternalError    = "INTERNAL_ERROR"
)

// Error represents a structured CLI error with a machine-readable code.
type Error struct {
	Code    string
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithDetails returns the error with the given details map attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// ExitCode returns 2 for InternalError, 1 for all others.
func (e *Error) ExitCode() int {
	if e.Code == InternalError {
		return 2 //nolint:mnd // exit code 2 for internal errors
	}
	return 1
}

// HasCode reports whether any error in err's chain is an *Error with the given code.
func HasCode(err error, code string) bool {
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.Code == code
	}
	return false
}

// IsNotFound reports whether err refers to a chore, interval, or tag with no live record.
func IsNotFound(err error) bool {
	return HasCode(err, ChoreNotFound) || HasCode(err, IntervalNotFound) || HasCode(err, TagNotFound)
}

// SilentError signals an exit code without additional output.
// Used when the command has already reported its outcome.
type SilentError struct {
	Code int
}

// Error implements the error interface.
func (e *SilentError) Error() string { return "exit " + strconv.Itoa(e.Code) }
