// SPDX-License-Identifier: MPL-2.0

// Package custom registers game installations that no store launcher
// manages, such as copies added by hand or cracked builds. The install type
// and version are inferred from the files found in the game directory.
package custom

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"smm-cli/internal/finder"
	"smm-cli/pkg/installation"
)

// LauncherName is the launcher label given to every installation found here.
const LauncherName = installation.LauncherCustom

// ErrInstallPathNotFound is returned when the installation path does not
// exist or is not a directory.
var ErrInstallPathNotFound = errors.New("installation path does not exist")

var (
	// executableCandidates are checked in order, relative to the install root.
	executableCandidates = [][]string{
		{"FactoryGame.exe"},
		{"Binaries", "Win64", "FactoryGame.exe"},
		{"Engine", "Binaries", "Win64", "FactoryGame.exe"},
		{"FactoryGameSteam.exe"},
		{"FactoryGameEGS.exe"},
		{"Binaries", "Win64", "FactoryGameSteam.exe"},
		{"Binaries", "Win64", "FactoryGameEGS.exe"},
		{"FactoryGame", "Binaries", "Win64", "FactoryGame.exe"},
		{"FactoryGame", "Binaries", "Win64", "FactoryGame-Win64-Shipping.exe"},
		{"FactoryServer.exe"},
		{"FactoryServer.sh"},
	}

	// executableNames are matched case-insensitively when walking the tree.
	executableNames = map[string]bool{
		"factorygame.exe":                     true,
		"factorygamesteam.exe":                true,
		"factorygameegs.exe":                  true,
		"factorygame-win64-shipping.exe":      true,
		"factorygamesteam-win64-shipping.exe": true,
		"factorygameegs-win64-shipping.exe":   true,
		"factoryserver.exe":                   true,
		"factoryserver.sh":                    true,
	}

	versionFileCandidates = [][]string{
		{"Engine", "Binaries", "Win64", "FactoryGame-Win64-Shipping.version"},
		{"Engine", "Binaries", "Win64", "FactoryGameSteam-Win64-Shipping.version"},
		{"Engine", "Binaries", "Win64", "FactoryGameEGS-Win64-Shipping.version"},
		{"FactoryGame", "Engine", "Binaries", "Win64", "FactoryGame-Win64-Shipping.version"},
		{"FactoryGame", "Engine", "Binaries", "Win64", "FactoryGameSteam-Win64-Shipping.version"},
		{"FactoryGame", "Engine", "Binaries", "Win64", "FactoryGameEGS-Win64-Shipping.version"},
		{"Engine", "Build", "Build.version"},
	}
)

// Inspector inspects a game directory and builds a Custom installation from it.
type Inspector struct {
	logger *log.Logger
}

// NewInspector creates an Inspector that reports fallbacks to logger.
func NewInspector(logger *log.Logger) *Inspector {
	return &Inspector{logger: logger}
}

// Inspect builds the installation rooted at installPath. It fails only when
// installPath is not an existing directory; a directory without a known
// executable is still accepted, with installPath as its launch path.
func (p *Inspector) Inspect(ctx context.Context, installPath string) (*installation.Installation, error) {
	info, err := os.Stat(installPath)
	if err != nil || !info.IsDir() {
		return nil, installation.InstallFindError{Path: installPath, Inner: ErrInstallPathNotFound}
	}

	exePath, err := p.findExecutable(ctx, installPath)
	if err != nil {
		return nil, installation.InstallFindError{Path: installPath, Inner: err}
	}

	install := &installation.Installation{
		Path:     installPath,
		Type:     installation.InstallTypeWindowsClient,
		Location: installation.LocationTypeLocal,
		Branch:   installation.BranchStable,
		Launcher: LauncherName,
	}

	if exePath == "" {
		p.logger.Warn("could not find game executable in common locations", "installPath", installPath)
		install.LaunchPath = []string{installPath}
		return install, nil
	}

	install.LaunchPath = []string{exePath}
	install.Type = installTypeFor(installPath, exePath)
	install.Version = p.gameVersion(installPath)

	p.logger.Debug("inspected custom installation",
		"installPath", installPath,
		"executable", exePath,
		"type", install.Type,
		"version", install.Version,
	)
	return install, nil
}

// findExecutable returns the first candidate executable, then falls back to
// walking the tree. Returns "" when nothing matches.
func (p *Inspector) findExecutable(ctx context.Context, installPath string) (string, error) {
	for _, parts := range executableCandidates {
		candidate := filepath.Join(append([]string{installPath}, parts...)...)
		if isFile(candidate) {
			return candidate, nil
		}
	}

	var found string
	err := filepath.WalkDir(installPath, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			p.logger.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if executableNames[strings.ToLower(d.Name())] {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return found, nil
}

// installTypeFor infers the install type from the executable location.
// Only the part of the path below installPath is considered.
func installTypeFor(installPath, exePath string) installation.InstallType {
	name := strings.ToLower(filepath.Base(exePath))
	if name == "factoryserver.sh" {
		return installation.InstallTypeLinuxServer
	}

	rel, err := filepath.Rel(installPath, exePath)
	if err != nil {
		rel = name
	}
	if strings.Contains(name, "server") || strings.Contains(strings.ToLower(rel), "server") {
		return installation.InstallTypeWindowsServer
	}
	return installation.InstallTypeWindowsClient
}

// gameVersion returns the changelist of the first usable version file, or 0.
func (p *Inspector) gameVersion(installPath string) int {
	for _, parts := range versionFileCandidates {
		path := filepath.Join(append([]string{installPath}, parts...)...)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		versionFile, err := installation.ParseGameVersionFile(data)
		if err != nil {
			p.logger.Debug("ignoring unreadable version file", "path", path, "error", err)
			continue
		}
		if versionFile.Changelist > 0 {
			return versionFile.Changelist
		}
	}
	return 0
}

// Finder returns a finder that inspects each of paths. Paths that fail to
// inspect are reported as errors and skipped.
func Finder(p *Inspector, paths []string) finder.Func {
	return func(ctx context.Context) ([]*installation.Installation, []error) {
		var (
			installs []*installation.Installation
			errs     []error
		)
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
				break
			}
			install, err := p.Inspect(ctx, path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			installs = append(installs, install)
		}
		return installs, errs
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
