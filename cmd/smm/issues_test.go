// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"smm-cli/internal/issue"
	"smm-cli/pkg/types"
)

func TestIssues_List(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	stdout, _, err := env.run(t, "issues", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	got := decodeJSON[issueListView](t, stdout)
	if len(got.Issues) != len(issue.Values()) {
		t.Fatalf("listed %d issues, want %d", len(got.Issues), len(issue.Values()))
	}
	first := got.Issues[0]
	if first.Id != int(issue.ConfigLoadFailedId) || first.Title != "Failed to load configuration" {
		t.Errorf("first issue = %+v", first)
	}

	stdout, _, err = env.run(t, "issues")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Unknown install type") {
		t.Errorf("text listing = %q", stdout)
	}
}

func TestIssues_Show(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	stdout, _, err := env.run(t, "issues", "5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "No launch command") {
		t.Errorf("rendered page should carry its heading, got %q", stdout)
	}

	for _, arg := range []string{"99", "abc"} {
		_, _, err := env.run(t, "issues", arg)
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != types.ExitInvalidInput {
			t.Errorf("issues %s error = %v, want invalid input", arg, err)
		}
	}
}
