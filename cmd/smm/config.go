// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"smm-cli/internal/config"
	"smm-cli/internal/issue"
)

type configPathView struct {
	Dir  string `json:"dir" toml:"dir"`
	File string `json:"file" toml:"file"`
}

// newConfigCommand creates the `smm config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage smm configuration",
		Long: `Manage smm configuration.

Configuration is stored in:
  - Linux: ~/.config/smm/config.cue
  - macOS: ~/Library/Application Support/smm/config.cue
  - Windows: %APPDATA%\smm\config.cue

Values can be overridden with SMM_* environment variables, for example
SMM_OUTPUT=json or SMM_STEAM_APP_ID=526870.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}
	format, err := app.outputFormat(cfg)
	if err != nil {
		return err
	}

	return writeOutput(app.stdout, format, cfg, func(w io.Writer) error {
		keyStyle := CmdStyle
		valueStyle := SuccessStyle

		fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
		fmt.Fprintln(w)

		cfgPath, pathErr := app.loadOptions().FilePath()
		if pathErr == nil && fileExistsCheck(cfgPath) {
			fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
		} else {
			fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
		fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
		fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("output"), valueStyle.Render(cfg.Output.String()))
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("steam.app_id"), valueStyle.Render(cfg.Steam.AppID))

		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", keyStyle.Render("custom_installs"))
		if len(cfg.CustomInstalls) == 0 {
			fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
		}
		for _, path := range cfg.CustomInstalls {
			fmt.Fprintf(w, "  - %s\n", valueStyle.Render(path))
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", keyStyle.Render("installations"))
		if len(cfg.Installations) == 0 {
			fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
		}
		for _, entry := range cfg.Installations {
			details := []string{"type: " + entry.Type, "launcher: " + entry.Launcher}
			if entry.Branch != "" {
				details = append(details, "branch: "+entry.Branch)
			}
			fmt.Fprintf(w, "  - %s (%s)\n", valueStyle.Render(entry.Path), strings.Join(details, ", "))
		}
		return nil
	})
}

func initConfig(app *App) error {
	cfgPath, err := app.loadOptions().FilePath()
	if err != nil {
		return err
	}

	created, err := config.CreateDefaultConfig(cfgPath)
	if err != nil {
		return issue.WrapWithContext(err, "create default configuration", cfgPath)
	}
	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), cfgPath)
		return nil
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(app *App) error {
	cfgPath, err := app.loadOptions().FilePath()
	if err != nil {
		return err
	}
	view := configPathView{Dir: filepath.Dir(cfgPath), File: cfgPath}

	format := config.OutputFormat(app.flags.output)
	if format == "" {
		format = config.OutputText
	}
	if valid, errs := format.IsValid(); !valid {
		return errs[0]
	}

	return writeOutput(app.stdout, format, view, func(w io.Writer) error {
		fmt.Fprintf(w, "Config directory: %s\n", view.Dir)
		fmt.Fprintf(w, "Config file: %s\n", view.File)
		return nil
	})
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
