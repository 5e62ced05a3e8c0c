// Package errors provides standardized error handling for quickcheck.
// It defines sentinel errors and utilities for error wrapping with context.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrCommandNotFound indicates a required command is not on PATH
	ErrCommandNotFound = stderrors.New("command not found")

	// ErrCommandFailed indicates a command ran but exited non-zero
	ErrCommandFailed = stderrors.New("command failed")

	// ErrCommandNotAllowed indicates a command is outside the read-only allow-list
	ErrCommandNotAllowed = stderrors.New("command not allowed")

	// ErrTimeoutExceeded indicates a command exceeded its timeout
	ErrTimeoutExceeded = stderrors.New("timeout exceeded")

	// ErrPermissionDenied indicates insufficient permissions
	ErrPermissionDenied = stderrors.New("permission denied")

	// ErrInvalidConfig indicates configuration is invalid or incomplete
	ErrInvalidConfig = stderrors.New("invalid configuration")

	// ErrInvalidInput indicates caller input is invalid
	ErrInvalidInput = stderrors.New("invalid input")

	// ErrNotFound indicates a requested file or resource was not found
	ErrNotFound = stderrors.New("not found")

	// ErrFileOperation indicates a file operation failed
	ErrFileOperation = stderrors.New("file operation failed")
)

// Wrap wraps an error with context message and preserves the underlying error chain.
// Use this to add context while maintaining error identity for stderrors.Is checks.
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// New creates a new error with formatted message.
func New(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
