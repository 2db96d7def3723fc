// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"smm-cli/internal/config"
	"smm-cli/internal/finder/custom"
	"smm-cli/internal/issue"
	"smm-cli/pkg/installation"
	"smm-cli/pkg/target"
)

// ErrAlreadyRegistered is returned when adding a path that is already known.
var ErrAlreadyRegistered = errors.New("installation already registered")

type (
	// installView is the machine readable form of an installation.
	installView struct {
		Path       string   `json:"path" toml:"path"`
		Type       string   `json:"type" toml:"type"`
		Launcher   string   `json:"launcher" toml:"launcher"`
		Target     string   `json:"target" toml:"target"`
		Version    int      `json:"version" toml:"version"`
		Branch     string   `json:"branch" toml:"branch"`
		Location   string   `json:"location" toml:"location"`
		LaunchPath []string `json:"launch_path" toml:"launch_path"`
	}

	installListView struct {
		Installations []installView `json:"installations" toml:"installations"`
	}

	clearView struct {
		Removed int `json:"removed" toml:"removed"`
	}
)

func newInstallView(inst *installation.Installation) installView {
	return installView{
		Path:       inst.Path,
		Type:       inst.Type.String(),
		Launcher:   inst.Launcher,
		Target:     target.ForInstallation(inst).String(),
		Version:    inst.Version,
		Branch:     inst.Branch.String(),
		Location:   inst.Location.String(),
		LaunchPath: inst.LaunchPath,
	}
}

func newInstallCommand(app *App) *cobra.Command {
	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Manage game installations",
		Long: `Manage the game installations known to smm.

Installations come from the 'installations' list of the config file and
from directories registered with 'smm install add', which are inspected for
the game executable and version on every run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	installCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known installations and their build targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listInstallations(cmd.Context(), app)
		},
	})

	installCmd.AddCommand(&cobra.Command{
		Use:   "add <path>",
		Short: "Register a manually installed copy of the game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addInstallation(cmd.Context(), app, args[0])
		},
	})

	installCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all registered installations from the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearInstallations(cmd.Context(), app)
		},
	})

	return installCmd
}

func listInstallations(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}
	format, err := app.outputFormat(cfg)
	if err != nil {
		return err
	}

	view := installListView{Installations: []installView{}}
	for _, inst := range app.findInstallations(ctx, cfg) {
		view.Installations = append(view.Installations, newInstallView(inst))
	}

	return writeOutput(app.stdout, format, view, func(w io.Writer) error {
		if len(view.Installations) == 0 {
			_, err := fmt.Fprintln(w, SubtitleStyle.Render("No installations found. Register one with 'smm install add <path>'."))
			return err
		}
		fmt.Fprintln(w, TitleStyle.Render("Installations"))
		for _, iv := range view.Installations {
			fmt.Fprintln(w)
			writeInstallText(w, iv)
		}
		return nil
	})
}

func writeInstallText(w io.Writer, iv installView) {
	targetText := targetStyle.Render(iv.Target)
	if iv.Target == target.NotFound.String() {
		targetText = unknownTargetStyle.Render(iv.Target)
	}
	version := SubtitleStyle.Render("(unknown)")
	if iv.Version > 0 {
		version = VerboseStyle.Render(strconv.Itoa(iv.Version))
	}

	fmt.Fprintln(w, installPathStyle.Render(iv.Path))
	fmt.Fprintf(w, "  %s %s\n", detailLabelStyle.Render("target"), targetText)
	fmt.Fprintf(w, "  %s %s\n", detailLabelStyle.Render("type"), iv.Type)
	fmt.Fprintf(w, "  %s %s\n", detailLabelStyle.Render("launcher"), iv.Launcher)
	fmt.Fprintf(w, "  %s %s\n", detailLabelStyle.Render("version"), version)
	fmt.Fprintf(w, "  %s %s\n", detailLabelStyle.Render("branch"), VerboseStyle.Render(iv.Branch))
}

func addInstallation(ctx context.Context, app *App, path string) error {
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

	if isRegistered(cfg, absPath) {
		return issue.NewErrorContext().
			WithOperation("add installation").
			WithResource(absPath).
			WithSuggestion("Run 'smm install list' to see registered installations").
			Wrap(ErrAlreadyRegistered).
			BuildError()
	}

	inst, err := custom.NewInspector(app.logger).Inspect(ctx, absPath)
	if err != nil {
		app.printIssue(issue.InstallPathNotFoundId, cfg.UI.ColorScheme)
		return issue.NewErrorContext().
			WithOperation("add installation").
			WithResource(absPath).
			WithSuggestion("Check that the path exists and is a directory").
			Wrap(err).
			BuildError()
	}

	cfgPath, err := app.Config.Update(ctx, app.loadOptions(), func(stored *config.Config) error {
		stored.CustomInstalls = append(stored.CustomInstalls, absPath)
		return nil
	})
	if err != nil {
		return issue.WrapWithContext(err, "save configuration", cfgPath)
	}
	app.logger.Info("registered installation", "path", absPath, "config", cfgPath)

	view := newInstallView(inst)
	return writeOutput(app.stdout, format, view, func(w io.Writer) error {
		fmt.Fprintf(w, "%s Added installation\n\n", SuccessStyle.Render("✓"))
		writeInstallText(w, view)
		return nil
	})
}

// isRegistered reports whether path is already listed in the config.
func isRegistered(cfg *config.Config, path string) bool {
	clean := filepath.Clean(path)
	for _, p := range cfg.CustomInstalls {
		if filepath.Clean(p) == clean {
			return true
		}
	}
	for _, entry := range cfg.Installations {
		if filepath.Clean(entry.Path) == clean {
			return true
		}
	}
	return false
}

func clearInstallations(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}
	format, err := app.outputFormat(cfg)
	if err != nil {
		return err
	}

	var view clearView
	cfgPath, err := app.Config.Update(ctx, app.loadOptions(), func(stored *config.Config) error {
		view.Removed = len(stored.CustomInstalls) + len(stored.Installations)
		stored.CustomInstalls = nil
		stored.Installations = nil
		return nil
	})
	if err != nil {
		return issue.WrapWithContext(err, "save configuration", cfgPath)
	}
	app.logger.Debug("cleared installations", "removed", view.Removed, "config", cfgPath)

	return writeOutput(app.stdout, format, view, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s Removed %d installation(s)\n", SuccessStyle.Render("✓"), view.Removed)
		return err
	})
}
