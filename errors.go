// Package riemann structured error types for better error handling
package riemann

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Invalid argument errors
	ErrTypeInvalidArg ErrorType = iota
	// Execution errors
	ErrTypeExecution
	// Numerical errors
	ErrTypeNumerical
	// Lookup errors
	ErrTypeNotFound
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("riemann %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("riemann %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeExecution:
		return "Execution"
	case ErrTypeNumerical:
		return "Numerical"
	case ErrTypeNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &Error{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewExecutionError creates an execution error
func NewExecutionError(op string, message string, err error) error {
	return &Error{
		Type:    ErrTypeExecution,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewNumericalError creates a numerical error
func NewNumericalError(op string, message string) error {
	return &Error{
		Type:    ErrTypeNumerical,
		Op:      op,
		Message: message,
	}
}

// NewNotFoundError creates a lookup error
func NewNotFoundError(op string, message string) error {
	return &Error{
		Type:    ErrTypeNotFound,
		Op:      op,
		Message: message,
	}
}

// Common pre-defined errors

var (
	// ErrInvalidSamples indicates a sample count below one
	ErrInvalidSamples = NewInvalidArgError("Integrate", "sample count must be at least 1")

	// ErrInvalidTrials indicates a harness configured with no trials
	ErrInvalidTrials = NewInvalidArgError("Harness", "trial count must be at least 1")

	// ErrNoKernels indicates a harness run with nothing to time
	ErrNoKernels = NewInvalidArgError("Harness", "no kernels to run")
)

func errorType(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}
	return 0, false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeInvalidArg
}

// IsExecutionError checks if an error is an execution error
func IsExecutionError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeExecution
}

// IsNumericalError checks if an error is a numerical error
func IsNumericalError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeNumerical
}

// IsNotFoundError checks if an error is a lookup error
func IsNotFoundError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeNotFound
}
