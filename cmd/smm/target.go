// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"smm-cli/internal/issue"
	"smm-cli/pkg/installation"
	"smm-cli/pkg/target"
)

// targetView is the machine readable result of `smm target`.
type targetView struct {
	InstallType string `json:"install_type" toml:"install_type"`
	Launcher    string `json:"launcher,omitempty" toml:"launcher,omitempty"`
	Target      string `json:"target" toml:"target"`
	Found       bool   `json:"found" toml:"found"`
}

func newTargetCommand(app *App) *cobra.Command {
	var launcher string

	cmd := &cobra.Command{
		Use:   "target <install-type>",
		Short: "Show the build target of an install type",
		Long: `Show the build target (one of ` + targetNameList() + `) of an install type.

Without --launcher the install type must be one of: ` + installTypeList() + `.
Any other value fails with exit code 2.

With --launcher the lookup never fails. Installations managed by the
Custom launcher fall back to Windows; for other launchers an unknown
install type prints "unknown".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTarget(cmd.Context(), app, args[0], launcher, cmd.Flags().Changed("launcher"))
		},
	}

	cmd.Flags().StringVar(&launcher, "launcher", "", "resolve leniently for an installation managed by this launcher (e.g. Custom, Steam)")

	return cmd
}

func runTarget(ctx context.Context, app *App, installType, launcher string, lenient bool) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}
	format, err := app.outputFormat(cfg)
	if err != nil {
		return err
	}

	it := installation.InstallType(installType)
	view := targetView{InstallType: installType}

	if lenient {
		result := target.ForInstallation(&installation.Installation{Type: it, Launcher: launcher})
		view.Launcher = launcher
		view.Target = result.String()
		view.Found = result.IsFound()
		app.logger.Debug("resolved target leniently", "installType", installType, "launcher", launcher, "target", view.Target)
	} else {
		name, err := target.FromInstallType(it)
		if err != nil {
			app.printIssue(issue.UnknownInstallTypeId, cfg.UI.ColorScheme)
			return invalidInput(issue.NewErrorContext().
				WithOperation("resolve build target").
				WithResource(installType).
				WithSuggestion("Use one of: " + installTypeList()).
				WithSuggestion("Pass --launcher to resolve without failing").
				Wrap(err).
				BuildError())
		}
		view.Target = name.String()
		view.Found = true
	}

	return writeOutput(app.stdout, format, view, func(w io.Writer) error {
		rendered := unknownTargetStyle.Render(view.Target)
		if view.Found {
			rendered = targetStyle.Render(view.Target)
		}
		_, err := fmt.Fprintf(w, "%s → %s\n", CmdStyle.Render(installType), rendered)
		return err
	})
}

func installTypeList() string {
	all := installation.AllInstallTypes()
	names := make([]string, len(all))
	for i, it := range all {
		names[i] = it.String()
	}
	return strings.Join(names, ", ")
}

func targetNameList() string {
	all := target.AllNames()
	names := make([]string, len(all))
	for i, n := range all {
		names[i] = n.String()
	}
	return strings.Join(names, ", ")
}
