// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

type (
	// Runner starts a planned command.
	Runner interface {
		Run(ctx context.Context, argv []string) (output []byte, err error)
	}

	// ExecRunner runs commands as child processes.
	ExecRunner struct{}
)

// ErrEmptyCommand is returned when Run is given no argv.
var ErrEmptyCommand = errors.New("empty command")

// Run executes argv and returns its combined stdout and stderr.
func (ExecRunner) Run(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("run %s: %w", FormatCommand(argv), err)
	}
	return out, nil
}
