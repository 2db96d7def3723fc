// SPDX-License-Identifier: MPL-2.0

// Package target maps installations to the canonical build target names the
// rest of the application is written against.
//
// Two entry points are provided. FromInstallType is strict: an install type
// without a target is an error. ForInstallation is lenient: it never fails,
// applies a Windows fallback to installations added by hand, and reports
// "no target" as a NotFound Result instead of an error.
package target

import (
	"errors"
	"fmt"

	"smm-cli/pkg/installation"
)

const (
	// Windows is the Windows game client build. Generic Windows installs map here too.
	Windows Name = "Windows"
	// WindowsServer is the Windows dedicated server build.
	WindowsServer Name = "WindowsServer"
	// LinuxServer is the Linux dedicated server build.
	LinuxServer Name = "LinuxServer"
)

var (
	// ErrInvalidInstallType is the sentinel error wrapped by InvalidInstallTypeError.
	ErrInvalidInstallType = errors.New("install type has no target")
	// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid target name")

	// NotFound is the Result for an installation whose target cannot be determined.
	NotFound = Result{}
)

type (
	// Name is a canonical build target name.
	Name string

	// InvalidNameError is returned when a Name value is not one of the canonical targets.
	InvalidNameError struct {
		Value Name
	}

	// InvalidInstallTypeError is returned by FromInstallType when the install
	// type has no corresponding target.
	InvalidInstallTypeError struct {
		Value installation.InstallType
	}

	// Result is the outcome of lenient classification: either a target Name
	// or NotFound. The zero value is NotFound.
	Result struct {
		name  Name
		found bool
	}
)

// AllNames returns every canonical target name.
func AllNames() []Name {
	return []Name{Windows, WindowsServer, LinuxServer}
}

// String returns the string representation of the Name.
func (n Name) String() string { return string(n) }

// IsValid returns whether the Name is one of the canonical targets.
func (n Name) IsValid() (bool, []error) {
	switch n {
	case Windows, WindowsServer, LinuxServer:
		return true, nil
	default:
		return false, []error{&InvalidNameError{Value: n}}
	}
}

// Error implements the error interface for InvalidNameError.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid target name %q (valid: Windows, WindowsServer, LinuxServer)", e.Value)
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// Error implements the error interface for InvalidInstallTypeError.
func (e *InvalidInstallTypeError) Error() string {
	return fmt.Sprintf("install type %q has no target", e.Value)
}

// Unwrap returns ErrInvalidInstallType for errors.Is() compatibility.
func (e *InvalidInstallTypeError) Unwrap() error { return ErrInvalidInstallType }

// Found returns a Result holding n.
func Found(n Name) Result {
	return Result{name: n, found: true}
}

// Name returns the target name and whether one was found.
func (r Result) Name() (Name, bool) {
	return r.name, r.found
}

// IsFound reports whether the Result holds a target name.
func (r Result) IsFound() bool { return r.found }

// String returns the target name, or "unknown" for NotFound.
func (r Result) String() string {
	if !r.found {
		return "unknown"
	}
	return string(r.name)
}

// FromInstallType returns the target for an install type.
// Install types outside the known set fail with *InvalidInstallTypeError.
func FromInstallType(t installation.InstallType) (Name, error) {
	switch t {
	case installation.InstallTypeWindows:
		return Windows, nil
	case installation.InstallTypeWindowsClient:
		return Windows, nil
	case installation.InstallTypeWindowsServer:
		return WindowsServer, nil
	case installation.InstallTypeLinuxServer:
		return LinuxServer, nil
	default:
		return "", &InvalidInstallTypeError{Value: t}
	}
}

// ForInstallation returns the target for an installation, or NotFound.
//
// Installations with the Custom launcher always resolve: an unrecognized
// type falls back to Windows, since hand-added installs are predominantly
// Windows clients. All other installations resolve through FromInstallType
// and yield NotFound when it fails. A nil installation yields NotFound.
func ForInstallation(inst *installation.Installation) Result {
	if inst == nil {
		return NotFound
	}

	if inst.Launcher == installation.LauncherCustom {
		return Found(customTarget(inst.Type))
	}

	name, err := FromInstallType(inst.Type)
	if err != nil {
		return NotFound
	}
	return Found(name)
}

func customTarget(t installation.InstallType) Name {
	switch t {
	case installation.InstallTypeWindows, installation.InstallTypeWindowsClient:
		return Windows
	case installation.InstallTypeWindowsServer:
		return WindowsServer
	case installation.InstallTypeLinuxServer:
		return LinuxServer
	default:
		return Windows
	}
}
