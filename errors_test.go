package riemann

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantOp   string
		checkFn  func(error) bool
	}{
		{"Invalid Samples", ErrInvalidSamples, ErrTypeInvalidArg, "Integrate", IsInvalidArgError},
		{"Invalid Trials", ErrInvalidTrials, ErrTypeInvalidArg, "Harness", IsInvalidArgError},
		{"No Kernels", ErrNoKernels, ErrTypeInvalidArg, "Harness", IsInvalidArgError},
		{"Execution", NewExecutionError("Run", "cancelled", errors.New("boom")), ErrTypeExecution, "Run", IsExecutionError},
		{"Numerical", NewNumericalError("Run", "drift"), ErrTypeNumerical, "Run", IsNumericalError},
		{"Not Found", NewNotFoundError("Lookup", "unknown kernel"), ErrTypeNotFound, "Lookup", IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e *Error
			if !errors.As(tt.err, &e) {
				t.Fatalf("expected *Error, got %T", tt.err)
			}
			if e.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", e.Type, tt.wantType)
			}
			if e.Op != tt.wantOp {
				t.Errorf("Op = %s, want %s", e.Op, tt.wantOp)
			}
			if !tt.checkFn(tt.err) {
				t.Errorf("predicate rejected %v", tt.err)
			}
			if !strings.Contains(tt.err.Error(), tt.wantType.String()) {
				t.Errorf("message %q lacks type", tt.err.Error())
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := NewExecutionError("Record", "write failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause")
	}
	if !strings.Contains(err.Error(), "caused by: disk full") {
		t.Errorf("message %q lacks cause", err.Error())
	}

	wrapped := fmt.Errorf("bench: %w", ErrInvalidSamples)
	if !IsInvalidArgError(wrapped) {
		t.Error("predicate did not see through fmt.Errorf wrapping")
	}
	if IsExecutionError(wrapped) || IsNotFoundError(errors.New("plain")) {
		t.Error("predicate matched the wrong error")
	}
}

func TestErrorTypeString(t *testing.T) {
	want := map[ErrorType]string{
		ErrTypeInvalidArg: "InvalidArgument",
		ErrTypeExecution:  "Execution",
		ErrTypeNumerical:  "Numerical",
		ErrTypeNotFound:   "NotFound",
		ErrorType(99):     "Unknown",
	}
	for typ, s := range want {
		if typ.String() != s {
			t.Errorf("%d.String() = %s, want %s", typ, typ.String(), s)
		}
	}
}
