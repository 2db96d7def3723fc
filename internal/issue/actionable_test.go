// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load configuration"},
			expected: "failed to load configuration",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "add custom installation", Resource: "/games/sf"},
			expected: "failed to add custom installation: /games/sf",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "classify install type", Cause: errors.New("unknown tag")},
			expected: "failed to classify install type: unknown tag",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "launch game",
				Resource:  "/games/sf",
				Cause:     errors.New("executable not found"),
			},
			expected: "failed to launch game: /games/sf: executable not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("permission denied")
	err := &ActionableError{
		Operation:   "save configuration",
		Resource:    "/home/u/.config/smm/config.cue",
		Suggestions: []string{"Check directory permissions", "Use --config to write elsewhere"},
		Cause:       fmt.Errorf("write file: %w", root),
	}

	short := err.Format(false)
	if !strings.Contains(short, "  • Check directory permissions") {
		t.Errorf("Format(false) missing suggestion bullet:\n%s", short)
	}
	if strings.Contains(short, "Error chain:") {
		t.Errorf("Format(false) should not include error chain:\n%s", short)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Fatalf("Format(true) missing error chain:\n%s", verbose)
	}
	if !strings.Contains(verbose, "1. write file: permission denied") || !strings.Contains(verbose, "2. permission denied") {
		t.Errorf("Format(true) chain incomplete:\n%s", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	err := NewErrorContext().
		WithOperation("add custom installation").
		WithResource("/nowhere").
		WithSuggestion("Check the path").
		Wrap(cause).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() should return *ActionableError, got %T", err)
	}
	if ae.Resource != "/nowhere" || len(ae.Suggestions) != 1 {
		t.Errorf("unexpected ActionableError: %+v", ae)
	}
	if !errors.Is(err, cause) {
		t.Error("BuildError() should wrap its cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if ae := NewErrorContext().WithResource("x").Build(); ae != nil {
		t.Errorf("Build() without operation = %+v, want nil", ae)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want untyped nil", err)
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should be nil")
	}
	err := WrapWithContext(errors.New("boom"), "inspect installation", "/games")
	if err.Error() != "failed to inspect installation: /games: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}
