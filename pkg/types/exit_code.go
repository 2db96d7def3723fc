// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

const (
	// ExitSuccess reports a completed command.
	ExitSuccess ExitCode = 0
	// ExitFailure reports a failed operation.
	ExitFailure ExitCode = 1
	// ExitInvalidInput reports input the command cannot classify or accept,
	// such as an install type without a target.
	ExitInvalidInput ExitCode = 2
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is the status smm exits with. Scripts branch on it, so only
	// the declared codes are ever returned.
	//
	//enumswitch:closed
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is not one of the
	// declared codes.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface for InvalidExitCodeError.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (want 0, 1 or 2)", int(e.Value))
}

// Unwrap returns ErrInvalidExitCode for errors.Is() compatibility.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// IsValid returns whether the ExitCode is one of the declared codes,
// and a list of validation errors if it is not.
func (c ExitCode) IsValid() (bool, []error) {
	switch c {
	case ExitSuccess, ExitFailure, ExitInvalidInput:
		return true, nil
	default:
		return false, []error{&InvalidExitCodeError{Value: c}}
	}
}

// IsSuccess reports whether the code means the command completed.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the code name followed by its number, e.g. "invalid-input (2)".
func (c ExitCode) String() string {
	var name string
	switch c {
	case ExitSuccess:
		name = "success"
	case ExitFailure:
		name = "failure"
	case ExitInvalidInput:
		name = "invalid-input"
	default:
		name = "unknown"
	}
	return fmt.Sprintf("%s (%d)", name, int(c))
}
