// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects which configuration file is read and written.
	LoadOptions struct {
		// ConfigFilePath forces a specific config file when set.
		ConfigFilePath string
		// ConfigDirPath replaces the platform config directory when set.
		ConfigDirPath string
		// FileOnly skips SMM_* environment overrides, leaving defaults and
		// the file contents.
		FileOnly bool
	}

	// Provider reads and writes the configuration selected by LoadOptions.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
		Update(ctx context.Context, opts LoadOptions, mutate func(*Config) error) (string, error)
	}

	// FileProvider keeps the configuration in a CUE file on disk.
	FileProvider struct{}
)

// NewProvider returns the on-disk configuration provider.
func NewProvider() *FileProvider {
	return &FileProvider{}
}

// Load reads, validates and decodes the configuration. A missing file
// yields the defaults.
func (FileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	return cfg, err
}

// Update rewrites the configuration file through mutate and returns the
// path written. The file is re-read without environment overrides, so
// values that only come from SMM_* variables are never persisted. It is
// written back to the file it was read from.
func (FileProvider) Update(ctx context.Context, opts LoadOptions, mutate func(*Config) error) (string, error) {
	opts.FileOnly = true
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return "", err
	}
	if err := mutate(cfg); err != nil {
		return "", err
	}
	return store(ctx, opts, cfg)
}

// store validates cfg and writes it to the file selected by opts, returning
// that file's path.
func store(ctx context.Context, opts LoadOptions, cfg *Config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := opts.FilePath()
	if err != nil {
		return "", err
	}
	return path, Save(path, cfg)
}

// FilePath returns the file that Load reads and Update writes. When no
// config file exists yet it is config.cue in the config directory.
func (o LoadOptions) FilePath() (string, error) {
	path, err := resolveFile(o)
	if err != nil || path != "" {
		return path, err
	}
	dir, err := configDirWithOverride(o.ConfigDirPath)
	if err != nil {
		return "", err
	}
	return defaultFilePath(dir), nil
}
