// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"smm-cli/internal/launch"
	"smm-cli/pkg/installation"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// OutputText prints styled, human readable output.
	OutputText OutputFormat = "text"
	// OutputJSON prints JSON documents.
	OutputJSON OutputFormat = "json"
	// OutputTOML prints TOML documents.
	OutputTOML OutputFormat = "toml"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrDuplicatePath is returned when two entries register the same installation path.
	ErrDuplicatePath = errors.New("duplicate installation path")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	//
	//enumswitch:closed
	//enumswitch:cue=#UIConfig.color_scheme
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// OutputFormat selects how commands print their results.
	//
	//enumswitch:closed
	//enumswitch:cue=#Config.output
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	// It wraps ErrInvalidOutputFormat for errors.Is() compatibility.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// DuplicatePathError reports the second occurrence of a path in a list.
	DuplicatePathError struct {
		Field      string
		Index      int
		FirstIndex int
		Path       string
	}

	// Config holds the application configuration.
	Config struct {
		// UI configures the user interface
		UI UIConfig `json:"ui" toml:"ui" mapstructure:"ui"`
		// Output is the default output format
		Output OutputFormat `json:"output" toml:"output" mapstructure:"output"`
		// Steam configures how hand-added installations are started
		Steam SteamConfig `json:"steam" toml:"steam" mapstructure:"steam"`
		// CustomInstalls lists game directories added by hand. They are inspected on every run.
		CustomInstalls []string `json:"custom_installs" toml:"custom_installs" mapstructure:"custom_installs"`
		// Installations lists fully described installations.
		Installations []InstallationEntry `json:"installations" toml:"installations" mapstructure:"installations"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" toml:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" toml:"verbose" mapstructure:"verbose"`
	}

	// SteamConfig configures the Steam launcher.
	SteamConfig struct {
		// AppID is the Steam app started for Custom installations.
		AppID string `json:"app_id" toml:"app_id" mapstructure:"app_id"`
	}

	// InstallationEntry is an installation as written in the config file.
	// Type stays a plain string so tags unknown to this version still load.
	InstallationEntry struct {
		Path       string   `json:"path" toml:"path" mapstructure:"path"`
		Type       string   `json:"type" toml:"type" mapstructure:"type"`
		Launcher   string   `json:"launcher" toml:"launcher" mapstructure:"launcher"`
		Branch     string   `json:"branch,omitempty" toml:"branch,omitempty" mapstructure:"branch"`
		Version    int      `json:"version,omitempty" toml:"version,omitempty" mapstructure:"version"`
		Location   string   `json:"location,omitempty" toml:"location,omitempty" mapstructure:"location"`
		LaunchPath []string `json:"launch_path,omitempty" toml:"launch_path,omitempty" mapstructure:"launch_path"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, toml)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error {
	return ErrInvalidOutputFormat
}

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats,
// and a list of validation errors if it is not.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case OutputText, OutputJSON, OutputTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for DuplicatePathError.
func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("%s[%d]: duplicate path %q (same as %s[%d])", e.Field, e.Index, e.Path, e.Field, e.FirstIndex)
}

// Unwrap returns ErrDuplicatePath for errors.Is() compatibility.
func (e *DuplicatePathError) Unwrap() error { return ErrDuplicatePath }

// ToInstallation converts the entry to an installation record. Missing
// location and branch default to local and stable.
func (e InstallationEntry) ToInstallation() *installation.Installation {
	inst := &installation.Installation{
		Path:       e.Path,
		Version:    e.Version,
		Type:       installation.InstallType(e.Type),
		Location:   installation.LocationType(e.Location),
		Branch:     installation.Branch(e.Branch),
		Launcher:   e.Launcher,
		LaunchPath: append([]string(nil), e.LaunchPath...),
	}
	if inst.Location == "" {
		inst.Location = installation.LocationTypeLocal
	}
	if inst.Branch == "" {
		inst.Branch = installation.BranchStable
	}
	return inst
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Output: OutputText,
		Steam: SteamConfig{
			AppID: launch.DefaultSteamAppID,
		},
		CustomInstalls: []string{},
		Installations:  []InstallationEntry{},
	}
}
