// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MustMkdirAll creates a directory and all parents.
// The test fails immediately if the operation fails.
func MustMkdirAll(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// MustWriteFile writes content to the file at root joined with parts,
// creating parent directories as needed, and returns the file path.
func MustWriteFile(t testing.TB, content []byte, root string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	MustMkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// Touch creates an empty file at root joined with parts and returns its path.
func Touch(t testing.TB, root string, parts ...string) string {
	t.Helper()
	return MustWriteFile(t, nil, root, parts...)
}

// GameDir creates a temporary installation directory holding one empty
// executable at parts. It returns the directory and the executable path.
func GameDir(t testing.TB, parts ...string) (root, exe string) {
	t.Helper()
	root = t.TempDir()
	return root, Touch(t, root, parts...)
}
