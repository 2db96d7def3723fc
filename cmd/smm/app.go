// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"smm-cli/internal/config"
	"smm-cli/internal/finder"
	"smm-cli/internal/finder/custom"
	"smm-cli/internal/issue"
	"smm-cli/internal/launch"
	"smm-cli/pkg/installation"
	"smm-cli/pkg/platform"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and delegate
	// through its services.
	App struct {
		Config    ConfigProvider
		Processes launch.ProcessLister
		Runner    launch.Runner
		Host      platform.Host

		configDir string
		flags     globalFlags
		logger    *log.Logger
		stdout    io.Writer
		stderr    io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp. Tests supply fakes to avoid touching
	// the real process table or starting the game.
	Dependencies struct {
		Config    ConfigProvider
		Processes launch.ProcessLister
		Runner    launch.Runner
		// Host defaults to platform.CurrentHost().
		Host *platform.Host
		// ConfigDir overrides the platform config directory when set.
		ConfigDir string
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads and stores configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Update(ctx context.Context, opts config.LoadOptions, mutate func(*config.Config) error) (string, error)
	}

	// globalFlags holds the persistent flags of the root command.
	globalFlags struct {
		verbose    bool
		configPath string
		output     string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Processes == nil {
		deps.Processes = launch.SystemProcesses{}
	}
	if deps.Runner == nil {
		deps.Runner = launch.ExecRunner{}
	}
	host := platform.CurrentHost()
	if deps.Host != nil {
		host = *deps.Host
	}

	return &App{
		Config:    deps.Config,
		Processes: deps.Processes,
		Runner:    deps.Runner,
		Host:      host,
		configDir: deps.ConfigDir,
		logger:    newLogger(deps.Stderr, false),
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadOptions returns the config load options selected by the global flags.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: a.flags.configPath,
		ConfigDirPath:  a.configDir,
	}
}

// loadConfig loads configuration and applies its verbose setting to the logger.
// The issue page for config failures is printed to stderr.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		a.printIssue(issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		return nil, err
	}
	if cfg.UI.Verbose && !a.flags.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	return cfg, nil
}

// outputFormat returns the --output flag value, falling back to the config.
func (a *App) outputFormat(cfg *config.Config) (config.OutputFormat, error) {
	format := cfg.Output
	if a.flags.output != "" {
		format = config.OutputFormat(a.flags.output)
	}
	if valid, errs := format.IsValid(); !valid {
		return "", errs[0]
	}
	return format, nil
}

// finders builds the registry of every installation source known to the config.
func (a *App) finders(cfg *config.Config) *finder.Registry {
	configured := make([]*installation.Installation, 0, len(cfg.Installations))
	for _, entry := range cfg.Installations {
		configured = append(configured, entry.ToInstallation())
	}

	reg := finder.NewRegistry()
	reg.Add("config", finder.Static(configured))
	reg.Add(custom.LauncherName, custom.Finder(custom.NewInspector(a.logger), cfg.CustomInstalls))
	return reg
}

// findInstallations runs every finder. Finder errors are printed as
// warnings, not returned.
func (a *App) findInstallations(ctx context.Context, cfg *config.Config) []*installation.Installation {
	reg := a.finders(cfg)
	installs, errs := reg.FindAll(ctx)
	for _, err := range errs {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
	}
	a.logger.Debug("found installations", "finders", reg.Names(), "count", len(installs), "errors", len(errs))
	return installs
}

// printIssue renders an issue page to stderr. Rendering failures are ignored.
func (a *App) printIssue(id issue.Id, scheme config.ColorScheme) {
	page := issue.Get(id)
	if page == nil {
		return
	}
	rendered, err := page.Render(glamourStyle(scheme))
	if err != nil {
		a.logger.Debug("failed to render issue", "id", id, "error", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeAuto:
		return "auto"
	default:
		return "notty"
	}
}
