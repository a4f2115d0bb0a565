// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"stistools-cli/internal/config"

	"github.com/spf13/cobra"
)

// newTaskCommand creates the `stistools task` command, which runs inttag with
// parameters read from a file.
func newTaskCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "task <file>",
		Short: "Run inttag with parameters from a task file",
		Long: `Run inttag with parameters from a task file.

The file holds the keys input, output, starttime, increment, rcount, verbose,
highres and allevents. CUE files are checked against the task schema; YAML,
TOML and JSON files are accepted with the same keys.`,
		Example: `  stistools task run.cue
  stistools task run.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.session(cmd.Context())

			params, err := config.LoadTask(args[0])
			if err != nil {
				return app.fail(cmd, s, err)
			}
			params.Verbose = params.Verbose || s.verbose

			res, err := app.integrator(s).RunParams(cmd.Context(), params)
			if err != nil {
				return app.fail(cmd, s, err)
			}
			return exitWithStatus(cmd, res)
		},
	}
}
