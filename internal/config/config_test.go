// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smm-cli/internal/issue"
	"smm-cli/internal/launch"
	"smm-cli/pkg/installation"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputText)
	}
	if cfg.Steam.AppID != launch.DefaultSteamAppID {
		t.Errorf("Steam.AppID = %q, want %q", cfg.Steam.AppID, launch.DefaultSteamAppID)
	}
	if len(cfg.Installations) != 0 || len(cfg.CustomInstalls) != 0 {
		t.Errorf("expected no installations, got %v / %v", cfg.Installations, cfg.CustomInstalls)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
ui: {
	color_scheme: "dark"
	verbose: true
}
output: "json"
steam: app_id: "526870"
custom_installs: ["/games/cracked"]
installations: [
	{
		path: "/games/steam/Satisfactory"
		type: "windows-client"
		launcher: "Steam"
		branch: "experimental"
		version: 365306
		launch_path: ["steam", "steam://rungameid/526870"]
	},
	{
		path: "/srv/sf"
		type: "mac-client"
		launcher: "Custom"
	},
]
`)

	cfg, resolved, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark || !cfg.UI.Verbose {
		t.Errorf("UI = %+v", cfg.UI)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Steam.AppID != "526870" {
		t.Errorf("Steam.AppID = %q", cfg.Steam.AppID)
	}
	if len(cfg.CustomInstalls) != 1 || cfg.CustomInstalls[0] != "/games/cracked" {
		t.Errorf("CustomInstalls = %v", cfg.CustomInstalls)
	}
	if len(cfg.Installations) != 2 {
		t.Fatalf("Installations = %v, want 2 entries", cfg.Installations)
	}

	first := cfg.Installations[0].ToInstallation()
	if first.Type != installation.InstallTypeWindowsClient || first.Branch != installation.BranchExperimental {
		t.Errorf("first installation = %+v", first)
	}
	if first.Version != 365306 {
		t.Errorf("first.Version = %d, want 365306", first.Version)
	}
	if len(first.LaunchPath) != 2 || first.LaunchPath[1] != "steam://rungameid/526870" {
		t.Errorf("first.LaunchPath = %v", first.LaunchPath)
	}
	if first.Location != installation.LocationTypeLocal {
		t.Errorf("first.Location = %q, want local default", first.Location)
	}

	// Unknown tags load unchanged.
	if cfg.Installations[1].Type != "mac-client" {
		t.Errorf("second.Type = %q, want mac-client", cfg.Installations[1].Type)
	}
}

func TestLoad_ExplicitFileNotFound(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *issue.ActionableError, got %T", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want %q", ae.Resource, missing)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad output", `output: "yaml"`, "output"},
		{"bad color scheme", `ui: color_scheme: "neon"`, "color_scheme"},
		{"non numeric app id", `steam: app_id: "abc"`, "app_id"},
		{"unknown field", `editor: "vim"`, "editor"},
		{"empty type", `installations: [{path: "/a", type: "", launcher: "Steam"}]`, "installations[0].type"},
		{"syntax error", `ui: {`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, t.TempDir(), tt.content)
			_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: path})
			if err == nil {
				t.Fatalf("expected error for %s", tt.content)
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("expected *issue.ActionableError, got %T", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad_DuplicatePaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{"installations", `installations: [
	{path: "/games/sf", type: "windows", launcher: "Steam"},
	{path: "/games/sf/", type: "windows-server", launcher: "Steam"},
]`, "installations"},
		{"custom installs", `custom_installs: ["/games/a", "/games/./a"]`, "custom_installs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, t.TempDir(), tt.content)
			_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: path})
			if !errors.Is(err, ErrDuplicatePath) {
				t.Fatalf("error = %v, want ErrDuplicatePath", err)
			}
			var dupErr *DuplicatePathError
			if !errors.As(err, &dupErr) {
				t.Fatalf("expected *DuplicatePathError, got %T", err)
			}
			if dupErr.Field != tt.wantField || dupErr.Index != 1 || dupErr.FirstIndex != 0 {
				t.Errorf("DuplicatePathError = %+v", dupErr)
			}
		})
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := loadWithOptions(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SMM_OUTPUT", "toml")
	t.Setenv("SMM_STEAM_APP_ID", "42")
	t.Setenv("SMM_UI_VERBOSE", "true")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output != OutputTOML {
		t.Errorf("Output = %q, want toml", cfg.Output)
	}
	if cfg.Steam.AppID != "42" {
		t.Errorf("Steam.AppID = %q, want 42", cfg.Steam.AppID)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
}

func TestLoad_EnvOverrideValidated(t *testing.T) {
	t.Setenv("SMM_OUTPUT", "yaml")

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidOutputFormat) {
		t.Errorf("error = %v, want ErrInvalidOutputFormat", err)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.cue")

	cfg := DefaultConfig()
	cfg.UI.ColorScheme = ColorSchemeLight
	cfg.CustomInstalls = []string{`C:\Games\Satisfactory "EA"`}
	cfg.Installations = []InstallationEntry{{
		Path:       "/srv/satisfactory",
		Type:       string(installation.InstallTypeLinuxServer),
		Launcher:   "SteamCMD",
		Version:    211839,
		Location:   string(installation.LocationTypeRemote),
		LaunchPath: []string{"/srv/satisfactory/FactoryServer.sh", "-log"},
	}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error: %v\n%s", err, GenerateCUE(cfg))
	}
	if got.UI.ColorScheme != ColorSchemeLight {
		t.Errorf("ColorScheme = %q", got.UI.ColorScheme)
	}
	if len(got.CustomInstalls) != 1 || got.CustomInstalls[0] != cfg.CustomInstalls[0] {
		t.Errorf("CustomInstalls = %q", got.CustomInstalls)
	}
	if len(got.Installations) != 1 {
		t.Fatalf("Installations = %v", got.Installations)
	}
	inst := got.Installations[0].ToInstallation()
	if inst.Type != installation.InstallTypeLinuxServer || inst.Location != installation.LocationTypeRemote || inst.Version != 211839 {
		t.Errorf("installation = %+v", inst)
	}
	if inst.Branch != installation.BranchStable {
		t.Errorf("Branch = %q, want stable default", inst.Branch)
	}
}

func TestSave_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.CustomInstalls = []string{"/a", "/a"}
	path := filepath.Join(t.TempDir(), "config.cue")
	if err := Save(path, cfg); !errors.Is(err, ErrDuplicatePath) {
		t.Errorf("Save() error = %v, want ErrDuplicatePath", err)
	}
	if fileExists(path) {
		t.Error("Save() wrote a file despite invalid config")
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "smm", "config.cue")
	created, err := CreateDefaultConfig(path)
	if err != nil || !created {
		t.Fatalf("CreateDefaultConfig() = %v, %v; want true, nil", created, err)
	}

	if err := os.WriteFile(path, []byte(`output: "json"`), 0o644); err != nil {
		t.Fatal(err)
	}
	created, err = CreateDefaultConfig(path)
	if err != nil || created {
		t.Fatalf("second CreateDefaultConfig() = %v, %v; want false, nil", created, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `output: "json"` {
		t.Error("CreateDefaultConfig() overwrote an existing file")
	}
}

func TestLoadOptions_FilePath(t *testing.T) {
	t.Parallel()

	got, err := LoadOptions{ConfigFilePath: "/etc/smm.cue", ConfigDirPath: "/ignored"}.FilePath()
	if err != nil || got != "/etc/smm.cue" {
		t.Errorf("FilePath() = %q, %v", got, err)
	}

	dir := t.TempDir()
	got, err = LoadOptions{ConfigDirPath: dir}.FilePath()
	if err != nil || got != filepath.Join(dir, "config.cue") {
		t.Errorf("FilePath() = %q, %v", got, err)
	}
}

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
}

func TestFormatCUEPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"output"}, "output"},
		{[]string{"installations", "0", "type"}, "installations[0].type"},
		{[]string{"custom_installs", "2"}, "custom_installs[2]"},
		{[]string{"0"}, "0"},
	}
	for _, tt := range tests {
		if got := formatCUEPath(tt.path); got != tt.want {
			t.Errorf("formatCUEPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func appendInstall(path string) func(*Config) error {
	return func(cfg *Config) error {
		cfg.CustomInstalls = append(cfg.CustomInstalls, path)
		return nil
	}
}

func TestFileProvider_Update(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	opts := LoadOptions{ConfigDirPath: dir}

	path, err := NewProvider().Update(context.Background(), opts, appendInstall("/games/sf"))
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if want := filepath.Join(dir, "config.cue"); path != want {
		t.Errorf("Update() path = %q, want %q", path, want)
	}

	loaded, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(loaded.CustomInstalls) != 1 || loaded.CustomInstalls[0] != "/games/sf" {
		t.Errorf("CustomInstalls = %v, want [/games/sf]", loaded.CustomInstalls)
	}
}

func TestFileProvider_UpdateRejectsInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	opts := LoadOptions{ConfigDirPath: dir}
	mutate := func(cfg *Config) error {
		cfg.CustomInstalls = []string{"/games/sf", "/games/sf/"}
		return nil
	}

	if _, err := NewProvider().Update(context.Background(), opts, mutate); !errors.Is(err, ErrDuplicatePath) {
		t.Fatalf("Update() error = %v, want ErrDuplicatePath", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.cue")); !os.IsNotExist(err) {
		t.Errorf("invalid config should not be written, stat error = %v", err)
	}
}

func TestFileProvider_UpdateMutateError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	boom := errors.New("boom")
	_, err := NewProvider().Update(context.Background(), LoadOptions{ConfigDirPath: dir}, func(*Config) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Update() error = %v, want %v", err, boom)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.cue")); !os.IsNotExist(err) {
		t.Errorf("config should not be written when mutate fails, stat error = %v", err)
	}
}

func TestFileProvider_UpdateWritesLocalFile(t *testing.T) {
	workDir := t.TempDir()
	cfgDir := t.TempDir()
	t.Chdir(workDir)
	t.Setenv(EnvConfigDir, cfgDir)
	writeConfig(t, workDir, `output: "toml"`)

	path, err := NewProvider().Update(context.Background(), LoadOptions{}, appendInstall("/games/sf"))
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if path != "config.cue" {
		t.Errorf("Update() path = %q, want the local config.cue", path)
	}
	if _, err := os.Stat(filepath.Join(cfgDir, "config.cue")); !os.IsNotExist(err) {
		t.Errorf("platform config file should not be created, stat error = %v", err)
	}

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Output != OutputTOML {
		t.Errorf("Output = %q, want %q", loaded.Output, OutputTOML)
	}
	if len(loaded.CustomInstalls) != 1 || loaded.CustomInstalls[0] != "/games/sf" {
		t.Errorf("CustomInstalls = %v, want [/games/sf]", loaded.CustomInstalls)
	}
}

func TestLoadOptions_FilePathPrefersExistingLocalFile(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)
	writeConfig(t, workDir, `output: "json"`)

	got, err := LoadOptions{ConfigDirPath: t.TempDir()}.FilePath()
	if err != nil || got != "config.cue" {
		t.Errorf("FilePath() = %q, %v; want config.cue", got, err)
	}
}

func TestFileProvider_UpdateIgnoresEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SMM_OUTPUT", "json")
	t.Setenv("SMM_STEAM_APP_ID", "42")
	t.Setenv("SMM_UI_VERBOSE", "true")
	opts := LoadOptions{ConfigDirPath: dir}

	path, err := NewProvider().Update(context.Background(), opts, appendInstall("/games/sf"))
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, leaked := range []string{`output: "json"`, `"42"`, "verbose: true"} {
		if strings.Contains(string(data), leaked) {
			t.Errorf("stored config contains env-only value %s:\n%s", leaked, data)
		}
	}

	fileOnly, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir, FileOnly: true})
	if err != nil {
		t.Fatalf("Load(FileOnly) error: %v", err)
	}
	if fileOnly.Output != OutputText || fileOnly.Steam.AppID != launch.DefaultSteamAppID || fileOnly.UI.Verbose {
		t.Errorf("FileOnly load applied env overrides: %+v", fileOnly)
	}
}
