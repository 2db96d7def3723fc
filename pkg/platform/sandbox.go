// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"slices"
	"sync"
)

const (
	// SandboxNone means the process runs directly on the host.
	SandboxNone SandboxType = ""
	// SandboxFlatpak means the process runs inside a Flatpak.
	SandboxFlatpak SandboxType = "flatpak"
	// SandboxSnap means the process runs inside a Snap.
	SandboxSnap SandboxType = "snap"
)

// SandboxType names the application sandbox smm was started in.
type SandboxType string

// hostSpawn maps a sandbox to the argv prefix that escapes it. Sandboxes
// missing from the map start commands unchanged.
var hostSpawn = map[SandboxType][]string{
	SandboxFlatpak: {"flatpak-spawn", "--host"},
	SandboxSnap:    {"snap", "run", "--shell"},
}

// sandboxOnce must not panic: sync.OnceValue re-panics on every later call.
var sandboxOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(os.Getenv, statFile)
})

// DetectSandbox reports the sandbox of the running process. Detection
// runs once per process.
func DetectSandbox() SandboxType { return sandboxOnce() }

func (st SandboxType) spawnPrefix() []string {
	return slices.Clone(hostSpawn[st])
}

// detectSandboxFrom takes its environment and filesystem lookups as
// arguments. A Flatpak marker file wins over Snap variables.
func detectSandboxFrom(getenv func(string) string, stat func(string) error) SandboxType {
	switch {
	case stat("/.flatpak-info") == nil:
		return SandboxFlatpak
	case getenv("SNAP_NAME") != "":
		return SandboxSnap
	default:
		return SandboxNone
	}
}

func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}
