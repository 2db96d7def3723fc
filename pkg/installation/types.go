// SPDX-License-Identifier: MPL-2.0

package installation

import (
	"errors"
	"fmt"
)

const (
	// InstallTypeWindows is a Windows build whose client/server edition was not recorded.
	InstallTypeWindows InstallType = "windows"
	// InstallTypeWindowsClient is the Windows game client.
	InstallTypeWindowsClient InstallType = "windows-client"
	// InstallTypeWindowsServer is the Windows dedicated server.
	InstallTypeWindowsServer InstallType = "windows-server"
	// InstallTypeLinuxServer is the Linux dedicated server.
	InstallTypeLinuxServer InstallType = "linux-server"

	// LocationTypeLocal is an installation on this machine's filesystem.
	LocationTypeLocal LocationType = "local"
	// LocationTypeRemote is an installation reached over a remote protocol (FTP, SFTP, SMB).
	LocationTypeRemote LocationType = "remote"

	// BranchStable is the stable release branch.
	BranchStable Branch = "stable"
	// BranchExperimental is the experimental release branch.
	BranchExperimental Branch = "experimental"
)

var (
	// ErrInvalidInstallType is the sentinel error wrapped by InvalidInstallTypeError.
	ErrInvalidInstallType = errors.New("invalid install type")
	// ErrInvalidLocationType is the sentinel error wrapped by InvalidLocationTypeError.
	ErrInvalidLocationType = errors.New("invalid location type")
	// ErrInvalidBranch is the sentinel error wrapped by InvalidBranchError.
	ErrInvalidBranch = errors.New("invalid branch")
)

type (
	// InstallType identifies the platform and edition of a game build.
	// The set is closed: every switch over it must name every member.
	//
	//enumswitch:closed
	InstallType string

	// InvalidInstallTypeError is returned when an InstallType value is not recognized.
	// It wraps ErrInvalidInstallType for errors.Is() compatibility.
	InvalidInstallTypeError struct {
		Value InstallType
	}

	// LocationType tells whether an installation lives on the local filesystem.
	LocationType string

	// InvalidLocationTypeError is returned when a LocationType value is not recognized.
	InvalidLocationTypeError struct {
		Value LocationType
	}

	// Branch is the game release branch an installation tracks.
	Branch string

	// InvalidBranchError is returned when a Branch value is not recognized.
	InvalidBranchError struct {
		Value Branch
	}
)

// AllInstallTypes returns every known InstallType in declaration order.
func AllInstallTypes() []InstallType {
	return []InstallType{
		InstallTypeWindows,
		InstallTypeWindowsClient,
		InstallTypeWindowsServer,
		InstallTypeLinuxServer,
	}
}

// String returns the string representation of the InstallType.
func (t InstallType) String() string { return string(t) }

// IsValid returns whether the InstallType is one of the defined install types,
// and a list of validation errors if it is not.
func (t InstallType) IsValid() (bool, []error) {
	switch t {
	case InstallTypeWindows, InstallTypeWindowsClient, InstallTypeWindowsServer, InstallTypeLinuxServer:
		return true, nil
	default:
		return false, []error{&InvalidInstallTypeError{Value: t}}
	}
}

// Error implements the error interface for InvalidInstallTypeError.
func (e *InvalidInstallTypeError) Error() string {
	return fmt.Sprintf("invalid install type %q (valid: windows, windows-client, windows-server, linux-server)", e.Value)
}

// Unwrap returns ErrInvalidInstallType for errors.Is() compatibility.
func (e *InvalidInstallTypeError) Unwrap() error { return ErrInvalidInstallType }

// String returns the string representation of the LocationType.
func (l LocationType) String() string { return string(l) }

// IsValid returns whether the LocationType is local or remote.
func (l LocationType) IsValid() (bool, []error) {
	switch l {
	case LocationTypeLocal, LocationTypeRemote:
		return true, nil
	default:
		return false, []error{&InvalidLocationTypeError{Value: l}}
	}
}

// Error implements the error interface for InvalidLocationTypeError.
func (e *InvalidLocationTypeError) Error() string {
	return fmt.Sprintf("invalid location type %q (valid: local, remote)", e.Value)
}

// Unwrap returns ErrInvalidLocationType for errors.Is() compatibility.
func (e *InvalidLocationTypeError) Unwrap() error { return ErrInvalidLocationType }

// String returns the string representation of the Branch.
func (b Branch) String() string { return string(b) }

// IsValid returns whether the Branch is stable or experimental.
func (b Branch) IsValid() (bool, []error) {
	switch b {
	case BranchStable, BranchExperimental:
		return true, nil
	default:
		return false, []error{&InvalidBranchError{Value: b}}
	}
}

// Error implements the error interface for InvalidBranchError.
func (e *InvalidBranchError) Error() string {
	return fmt.Sprintf("invalid branch %q (valid: stable, experimental)", e.Value)
}

// Unwrap returns ErrInvalidBranch for errors.Is() compatibility.
func (e *InvalidBranchError) Unwrap() error { return ErrInvalidBranch }
