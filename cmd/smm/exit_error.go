// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"smm-cli/pkg/types"
)

// ExitError attaches a process exit code to a command error. RunE handlers
// return it and Execute turns it into the exit status; everything else
// exits with types.ExitFailure.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// invalidInput marks err as rejected input, for scripts that branch on
// exit code 2.
func invalidInput(err error) *ExitError {
	return &ExitError{Code: types.ExitInvalidInput, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit " + e.Code.String()
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitCodeFor maps a command error to the process exit code. A failed
// command never exits with success, so undeclared and zero codes
// become types.ExitFailure.
func exitCodeFor(err error) types.ExitCode {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return types.ExitFailure
	}
	if valid, _ := exitErr.Code.IsValid(); !valid || exitErr.Code.IsSuccess() {
		return types.ExitFailure
	}
	return exitErr.Code
}
