// SPDX-License-Identifier: MPL-2.0

package installation

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// LauncherCustom is the launcher label of installations added by hand.
// Their Type is inferred from the files on disk and may be unreliable.
const LauncherCustom = "Custom"

// ErrInvalidVersionFile is returned when a version file is not valid JSON.
var ErrInvalidVersionFile = errors.New("invalid version file")

type (
	// Installation is a game installation as reported by a finder.
	Installation struct {
		// Path is the installation root directory.
		Path string `json:"path" toml:"path"`
		// Version is the game changelist; 0 means unknown.
		Version int `json:"version" toml:"version"`
		// Type is the platform and edition of the build.
		Type InstallType `json:"type" toml:"type"`
		// Location tells whether Path is on the local filesystem.
		Location LocationType `json:"location" toml:"location"`
		// Branch is the release branch the installation tracks.
		Branch Branch `json:"branch" toml:"branch"`
		// Launcher names the store or tool that manages the installation
		// (e.g. "Steam", "Epic Games", LauncherCustom).
		Launcher string `json:"launcher" toml:"launcher"`
		// LaunchPath is the argv that starts the game.
		LaunchPath []string `json:"launchPath" toml:"launch_path"`
	}

	// GameVersionFile is the Unreal Engine Build.version record shipped next
	// to the game binaries.
	GameVersionFile struct {
		MajorVersion         int    `json:"MajorVersion"`
		MinorVersion         int    `json:"MinorVersion"`
		PatchVersion         int    `json:"PatchVersion"`
		Changelist           int    `json:"Changelist"`
		CompatibleChangelist int    `json:"CompatibleChangelist"`
		IsLicenseeVersion    int    `json:"IsLicenseeVersion"`
		IsPromotedBuild      int    `json:"IsPromotedBuild"`
		BranchName           string `json:"BranchName"`
		BuildID              string `json:"BuildId"`
	}

	// InstallFindError is reported by finders for a path that could not be
	// turned into an Installation.
	InstallFindError struct {
		Path  string
		Inner error
	}
)

// IsCustom reports whether the installation was added by hand.
func (i *Installation) IsCustom() bool {
	return i != nil && i.Launcher == LauncherCustom
}

// ParseGameVersionFile decodes an Unreal Build.version document.
// Unknown fields are ignored; missing fields stay zero.
func ParseGameVersionFile(data []byte) (*GameVersionFile, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidVersionFile
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrInvalidVersionFile)
	}

	return &GameVersionFile{
		MajorVersion:         int(doc.Get("MajorVersion").Int()),
		MinorVersion:         int(doc.Get("MinorVersion").Int()),
		PatchVersion:         int(doc.Get("PatchVersion").Int()),
		Changelist:           int(doc.Get("Changelist").Int()),
		CompatibleChangelist: int(doc.Get("CompatibleChangelist").Int()),
		IsLicenseeVersion:    int(doc.Get("IsLicenseeVersion").Int()),
		IsPromotedBuild:      int(doc.Get("IsPromotedBuild").Int()),
		BranchName:           doc.Get("BranchName").String(),
		BuildID:              doc.Get("BuildId").String(),
	}, nil
}

// Error implements the error interface for InstallFindError.
func (e InstallFindError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Inner)
}

// Unwrap returns the underlying cause.
func (e InstallFindError) Unwrap() error { return e.Inner }
