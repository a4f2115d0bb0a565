// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"stistools-cli/internal/inttag"
	"stistools-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stistools",
		Short: "Wrappers for the STIS calibration tools",
		Long: TitleStyle.Render("stistools") + SubtitleStyle.Render(" - Wrappers for the STIS calibration tools") + `

stistools validates parameters for the compiled STIS tools, builds their
command lines and reports a normalized exit status.

` + SubtitleStyle.Render("Exit status:") + `
  0  the tool succeeded
  1  the tool failed, or the parameters were rejected
  2  no file name matched the input

` + SubtitleStyle.Render("Examples:") + `
  stistools inttag od8k51igq_tag.fits od8k51igq_out.fits
  stistools inttag --starttime 10 --increment 5 -r 3 in_tag.fits out.fits
  stistools task run.cue
  stistools issue rcount-requires-increment`,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&app.timestamps, "timestamps", "t", false, "print timestamps in log output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/stistools/config.cue)")

	rootCmd.AddCommand(newInttagCommand(app))
	rootCmd.AddCommand(newTaskCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newIssueCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process with the command's status.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors render their suggestions, and in verbose mode the chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueFor returns the catalog entry explaining err, if there is one.
func issueFor(err error) (*issue.Issue, bool) {
	var invalid *inttag.InvalidValueError
	switch {
	case errors.Is(err, inttag.ErrConfiguration):
		return issue.Get(issue.RepeatCountRequiresIncrementId), true
	case errors.As(err, &invalid) && invalid.Field == "repeat_count":
		return issue.Get(issue.InvalidRepeatCountId), true
	case errors.Is(err, inttag.ErrInvalidValue):
		return issue.Get(issue.InvalidTimeId), true
	case errors.Is(err, inttag.ErrExecutableNotFound):
		return issue.Get(issue.ExecutableNotFoundId), true
	default:
		return nil, false
	}
}

// fail prints err with a pointer to its issue page and returns exit status 1.
// The error chain is expanded when -v was given or, once a session exists,
// when the configuration turns verbose output on.
func (a *App) fail(cmd *cobra.Command, s *session, err error) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	verbose := a.verbose
	if s != nil {
		verbose = s.verbose
	}

	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	if iss, ok := issueFor(err); ok {
		fmt.Fprintln(a.stderr, SubtitleStyle.Render("Run ")+CmdStyle.Render("stistools issue "+iss.Name())+SubtitleStyle.Render(" for details."))
	}

	return &ExitError{Code: inttag.StatusToolFailed.ExitCode(), Err: err}
}

// exitWithStatus converts a run result into the process exit status.
func exitWithStatus(cmd *cobra.Command, res inttag.Result) error {
	if res.Status == inttag.StatusOK {
		return nil
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: res.Status.ExitCode()}
}
