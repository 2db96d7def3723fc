// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"smm-cli/internal/issue"
	"smm-cli/internal/launch"
)

type statusView struct {
	Running bool `json:"running" toml:"running"`
}

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the game is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStatus(cmd.Context(), app)
		},
	}
}

func showStatus(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}
	format, err := app.outputFormat(cfg)
	if err != nil {
		return err
	}

	running, err := launch.IsGameRunning(ctx, app.Processes)
	if err != nil {
		return issue.WrapWithContext(err, "check game status", "")
	}

	view := statusView{Running: running}
	return writeOutput(app.stdout, format, view, func(w io.Writer) error {
		if running {
			_, err := fmt.Fprintf(w, "%s Game is running\n", SuccessStyle.Render("●"))
			return err
		}
		_, err := fmt.Fprintf(w, "%s Game is not running\n", SubtitleStyle.Render("○"))
		return err
	})
}
