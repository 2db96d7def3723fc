// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"smm-cli/internal/issue"
	"smm-cli/pkg/platform"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "smm"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment variables that override config values,
	// e.g. SMM_UI_VERBOSE or SMM_STEAM_APP_ID.
	EnvPrefix = "SMM"
	// EnvConfigDir names the environment variable that replaces the
	// platform config directory.
	EnvConfigDir = EnvPrefix + "_CONFIG_DIR"

	// maxConfigFileSize bounds the config file read into memory.
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the smm configuration directory. SMM_CONFIG_DIR wins when
// set; otherwise Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. It returns the file that was read, or "" when only
// defaults and environment overrides apply.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("steam.app_id", defaults.Steam.AppID)

	if !opts.FileOnly {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	// If a config file is given with --config, use it exclusively.
	if opts.ConfigFilePath != "" && !fileExists(opts.ConfigFilePath) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Use 'smm config init' to create a default configuration").
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}

	resolvedPath, err := resolveFile(opts)
	if err != nil {
		return nil, "", err
	}
	// No config file found: defaults apply.
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", loadError(resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Register each installation path only once").
			WithSuggestion("Check SMM_* environment variables for invalid values").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

func loadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithSuggestion("See 'smm config --help' for configuration options").
		Wrap(err).
		BuildError()
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// resolveFile returns the config file that opts select: ConfigFilePath when
// set, otherwise the first existing file among <config dir>/config.cue and
// ./config.cue. Returns "" when neither exists.
func resolveFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}
	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	for _, candidate := range []string{defaultFilePath(cfgDir), ConfigFileName + "." + ConfigFileExt} {
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

func defaultFilePath(cfgDir string) string {
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Concrete(false) is used because every top-level field is optional.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxConfigFileSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, len(data), maxConfigFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err, path)
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// validate checks constraints that CUE cannot express and values that may
// have arrived through environment overrides.
func validate(cfg *Config) error {
	if valid, errs := cfg.UI.ColorScheme.IsValid(); !valid {
		return errs[0]
	}
	if valid, errs := cfg.Output.IsValid(); !valid {
		return errs[0]
	}

	installPaths := make([]string, len(cfg.Installations))
	for i, entry := range cfg.Installations {
		installPaths[i] = entry.Path
	}
	if err := validateUniquePaths("installations", installPaths); err != nil {
		return err
	}
	return validateUniquePaths("custom_installs", cfg.CustomInstalls)
}

// validateUniquePaths rejects paths that are equal after filepath.Clean.
func validateUniquePaths(field string, paths []string) error {
	seen := make(map[string]int, len(paths))
	for i, path := range paths {
		clean := filepath.Clean(path)
		if first, exists := seen[clean]; exists {
			return &DuplicatePathError{Field: field, Index: i, FirstIndex: first, Path: path}
		}
		seen[clean] = i
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes a default config file to path unless one
// already exists. It reports whether a file was created.
func CreateDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := Save(path, DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes cfg to path as CUE, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// smm configuration file\n")
	sb.WriteString("// Run 'smm config --help' for documentation.\n\n")

	sb.WriteString("ui: {\n")
	sb.WriteString(fmt.Sprintf("\tcolor_scheme: %q\n", cfg.UI.ColorScheme))
	sb.WriteString(fmt.Sprintf("\tverbose: %v\n", cfg.UI.Verbose))
	sb.WriteString("}\n")

	sb.WriteString(fmt.Sprintf("\noutput: %q\n", cfg.Output))

	sb.WriteString("\nsteam: {\n")
	sb.WriteString(fmt.Sprintf("\tapp_id: %q\n", cfg.Steam.AppID))
	sb.WriteString("}\n")

	if len(cfg.CustomInstalls) > 0 {
		sb.WriteString("\ncustom_installs: [\n")
		for _, path := range cfg.CustomInstalls {
			sb.WriteString(fmt.Sprintf("\t%q,\n", path))
		}
		sb.WriteString("]\n")
	}

	if len(cfg.Installations) > 0 {
		sb.WriteString("\ninstallations: [\n")
		for _, entry := range cfg.Installations {
			sb.WriteString("\t{\n")
			sb.WriteString(fmt.Sprintf("\t\tpath: %q\n", entry.Path))
			sb.WriteString(fmt.Sprintf("\t\ttype: %q\n", entry.Type))
			sb.WriteString(fmt.Sprintf("\t\tlauncher: %q\n", entry.Launcher))
			if entry.Branch != "" {
				sb.WriteString(fmt.Sprintf("\t\tbranch: %q\n", entry.Branch))
			}
			if entry.Version != 0 {
				sb.WriteString(fmt.Sprintf("\t\tversion: %d\n", entry.Version))
			}
			if entry.Location != "" {
				sb.WriteString(fmt.Sprintf("\t\tlocation: %q\n", entry.Location))
			}
			if len(entry.LaunchPath) > 0 {
				quoted := make([]string, len(entry.LaunchPath))
				for i, arg := range entry.LaunchPath {
					quoted[i] = fmt.Sprintf("%q", arg)
				}
				sb.WriteString(fmt.Sprintf("\t\tlaunch_path: [%s]\n", strings.Join(quoted, ", ")))
			}
			sb.WriteString("\t},\n")
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
