// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"stistools-cli/internal/config"
	"stistools-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newIssueCommand creates the `stistools issue` command, which prints the
// help page for a known problem.
func newIssueCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "issue [name]",
		Short: "Explain an error and how to fix it",
		Long: `Explain an error and how to fix it.

Without a name, every known issue is listed.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, iss := range issue.Values() {
				if strings.HasPrefix(iss.Name(), toComplete) {
					names = append(names, iss.Name())
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				listIssues(app)
				return nil
			}
			return showIssue(cmd, app, args[0])
		},
	}
}

func listIssues(app *App) {
	fmt.Fprintln(app.stdout, TitleStyle.Render("Known issues"))
	fmt.Fprintln(app.stdout)
	for _, iss := range issue.Values() {
		fmt.Fprintf(app.stdout, "  %s\n", CmdStyle.Render(iss.Name()))
	}
}

func showIssue(cmd *cobra.Command, app *App, name string) error {
	iss, ok := issue.Lookup(name)
	if !ok {
		return app.fail(cmd, nil, fmt.Errorf("unknown issue %q; run 'stistools issue' for the list", name))
	}

	scheme := config.ColorSchemeAuto
	if cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: app.cfgFile}); err == nil {
		scheme = cfg.UI.ColorScheme
	}

	out, err := iss.Render(scheme.GlamourStyle())
	if err != nil {
		return err
	}
	fmt.Fprint(app.stdout, out)
	return nil
}
