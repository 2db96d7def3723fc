// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Host is the operating system and sandbox a command will be started from.
type Host struct {
	// GOOS is a runtime.GOOS value.
	GOOS string
	// Sandbox is the application sandbox the process runs in, if any.
	Sandbox SandboxType
}

// CurrentHost returns the Host of the running process.
func CurrentHost() Host {
	return Host{GOOS: runtime.GOOS, Sandbox: DetectSandbox()}
}

// IsWindows reports whether the host runs Windows.
func (h Host) IsWindows() bool { return h.GOOS == Windows }

// SpawnPrefix returns the argv prefix that runs a command on the host
// system from inside the sandbox, or nil when not sandboxed.
func (h Host) SpawnPrefix() []string { return h.Sandbox.spawnPrefix() }
