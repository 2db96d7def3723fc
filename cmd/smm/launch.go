// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"smm-cli/internal/config"
	"smm-cli/internal/issue"
	"smm-cli/internal/launch"
	"smm-cli/pkg/installation"
)

var (
	// ErrInstallationNotRegistered is returned when launching an unknown path.
	ErrInstallationNotRegistered = errors.New("installation not registered")
	// ErrGameAlreadyRunning is returned when the game is started twice.
	ErrGameAlreadyRunning = errors.New("game is already running")
)

type launchView struct {
	Path    string   `json:"path" toml:"path"`
	Command []string `json:"command" toml:"command"`
	DryRun  bool     `json:"dry_run" toml:"dry_run"`
}

func newLaunchCommand(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "launch <installation-path>",
		Short: "Start the game for a registered installation",
		Long: `Start the game for a registered installation.

Installations added by hand are started through Steam with the located
game executable. All other installations use their configured launch path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchGame(cmd.Context(), app, args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the launch command without running it")

	return cmd
}

func launchGame(ctx context.Context, app *App, path string, dryRun bool) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}
	format, err := app.outputFormat(cfg)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	inst := findByPath(app.findInstallations(ctx, cfg), absPath)
	if inst == nil {
		app.printIssue(issue.InstallationNotRegisteredId, cfg.UI.ColorScheme)
		return issue.NewErrorContext().
			WithOperation("launch game").
			WithResource(absPath).
			WithSuggestion("Register the installation with 'smm install add <path>'").
			Wrap(ErrInstallationNotRegistered).
			BuildError()
	}

	argv, err := launch.NewPlanner(app.Host, cfg.Steam.AppID).Command(inst)
	if err != nil {
		return app.planError(cfg, absPath, err)
	}

	view := launchView{Path: inst.Path, Command: argv, DryRun: dryRun}
	if !dryRun {
		running, err := launch.IsGameRunning(ctx, app.Processes)
		if err != nil {
			app.logger.Warn("could not check for a running game", "error", err)
		}
		if running {
			return issue.NewErrorContext().
				WithOperation("launch game").
				WithResource(inst.Path).
				WithSuggestion("Close the running game first, or check with 'smm status'").
				Wrap(ErrGameAlreadyRunning).
				BuildError()
		}

		app.logger.Info("launching game", "path", inst.Path, "command", launch.FormatCommand(argv))
		out, err := app.Runner.Run(ctx, argv)
		if err != nil {
			return issue.WrapWithContext(err, "launch game", inst.Path)
		}
		if len(out) > 0 {
			app.logger.Debug("launcher output", "output", string(out))
		}
	}

	return writeOutput(app.stdout, format, view, func(w io.Writer) error {
		if dryRun {
			_, err := fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("Would run:"), CmdStyle.Render(launch.FormatCommand(argv)))
			return err
		}
		_, err := fmt.Fprintf(w, "%s Started %s\n", SuccessStyle.Render("✓"), installPathStyle.Render(inst.Path))
		return err
	})
}

func (a *App) planError(cfg *config.Config, path string, err error) error {
	ec := issue.NewErrorContext().
		WithOperation("plan launch command").
		WithResource(path).
		Wrap(err)

	switch {
	case errors.Is(err, launch.ErrExecutableNotFound):
		a.printIssue(issue.ExecutableNotFoundId, cfg.UI.ColorScheme)
		ec.WithSuggestion("Verify the game files are complete")
	case errors.Is(err, launch.ErrNoLaunchPath):
		a.printIssue(issue.NoLaunchPathId, cfg.UI.ColorScheme)
		ec.WithSuggestion("Add a launch_path to the installation in the config file")
	}
	return ec.BuildError()
}

func findByPath(installs []*installation.Installation, path string) *installation.Installation {
	clean := filepath.Clean(path)
	for _, inst := range installs {
		if filepath.Clean(inst.Path) == clean {
			return inst
		}
	}
	return nil
}
