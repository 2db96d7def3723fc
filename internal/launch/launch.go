// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"os"
	"path/filepath"

	"smm-cli/pkg/installation"
	"smm-cli/pkg/platform"
)

// DefaultSteamAppID is the Steam app used to start Custom installations.
const DefaultSteamAppID = "1895860"

var (
	// ErrExecutableNotFound is returned when a Custom installation has no game executable.
	ErrExecutableNotFound = errors.New("game executable not found")
	// ErrNoLaunchPath is returned when an installation declares no launch command.
	ErrNoLaunchPath = errors.New("installation has no launch path")

	customExecutables = [][]string{
		{"FactoryGame", "Binaries", "Win64", "FactoryGame-Win64-Shipping.exe"},
		{"FactoryGame", "Binaries", "Win64", "FactoryGame.exe"},
		{"FactoryGame.exe"},
		{"FactoryGameSteam.exe"},
	}
)

// Planner turns installations into argv slices for the given host.
type Planner struct {
	host       platform.Host
	steamAppID string
}

// NewPlanner creates a Planner. An empty steamAppID selects DefaultSteamAppID.
func NewPlanner(host platform.Host, steamAppID string) *Planner {
	if steamAppID == "" {
		steamAppID = DefaultSteamAppID
	}
	return &Planner{host: host, steamAppID: steamAppID}
}

// SteamAppID returns the Steam app id used for Custom installations.
func (p *Planner) SteamAppID() string { return p.steamAppID }

// Command returns the argv that launches inst.
//
// Custom installations are started through Steam with the located game
// executable, falling back to the first LaunchPath entry when it names an
// existing file. Every other installation uses its LaunchPath as is.
func (p *Planner) Command(inst *installation.Installation) ([]string, error) {
	if inst == nil {
		return nil, ErrNoLaunchPath
	}

	var argv []string
	if inst.IsCustom() {
		exe, err := findCustomExecutable(inst.Path)
		if err != nil && len(inst.LaunchPath) > 0 && isFile(inst.LaunchPath[0]) {
			exe, err = inst.LaunchPath[0], nil
		}
		if err != nil {
			return nil, installation.InstallFindError{Path: inst.Path, Inner: err}
		}
		launchURL := "steam://launch/" + p.steamAppID
		if p.host.IsWindows() {
			argv = []string{"cmd", "/C", "start", launchURL, exe}
		} else {
			argv = []string{"steam", launchURL, exe}
		}
	} else {
		if len(inst.LaunchPath) == 0 {
			return nil, installation.InstallFindError{Path: inst.Path, Inner: ErrNoLaunchPath}
		}
		argv = append([]string(nil), inst.LaunchPath...)
	}

	if prefix := p.host.SpawnPrefix(); len(prefix) > 0 {
		argv = append(prefix, argv...)
	}
	return argv, nil
}

func findCustomExecutable(installPath string) (string, error) {
	for _, parts := range customExecutables {
		candidate := filepath.Join(append([]string{installPath}, parts...)...)
		if isFile(candidate) {
			return candidate, nil
		}
	}
	return "", ErrExecutableNotFound
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
