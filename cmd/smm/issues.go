// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"smm-cli/internal/issue"
)

type (
	issueView struct {
		Id    int    `json:"id" toml:"id"`
		Title string `json:"title" toml:"title"`
	}

	issueListView struct {
		Issues []issueView `json:"issues" toml:"issues"`
	}
)

func newIssuesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "issues [id]",
		Short: "List troubleshooting pages or show one",
		Long: `List every troubleshooting page smm can print.

With an id the page is rendered the same way it is when the matching
error occurs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showIssue(cmd.Context(), app, args[0])
			}
			return listIssues(cmd.Context(), app)
		},
	}
}

func listIssues(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}
	format, err := app.outputFormat(cfg)
	if err != nil {
		return err
	}

	var view issueListView
	for _, i := range issue.Values() {
		view.Issues = append(view.Issues, issueView{Id: int(i.Id()), Title: i.Title()})
	}

	return writeOutput(app.stdout, format, view, func(w io.Writer) error {
		for _, iv := range view.Issues {
			if _, err := fmt.Fprintf(w, "%s %s\n", CmdStyle.Render(fmt.Sprintf("%2d", iv.Id)), iv.Title); err != nil {
				return err
			}
		}
		return nil
	})
}

func showIssue(ctx context.Context, app *App, arg string) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(arg)
	page := issue.Get(issue.Id(n))
	if err != nil || page == nil {
		return invalidInput(issue.NewErrorContext().
			WithOperation("show issue").
			WithResource(arg).
			WithSuggestion("Run 'smm issues' to list the known ids").
			BuildError())
	}

	rendered, err := page.Render(glamourStyle(cfg.UI.ColorScheme))
	if err != nil {
		return issue.WrapWithContext(err, "render issue", arg)
	}
	_, err = fmt.Fprint(app.stdout, rendered)
	return err
}
