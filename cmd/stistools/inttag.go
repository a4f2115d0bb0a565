// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"stistools-cli/internal/inttag"

	"github.com/spf13/cobra"
)

type inttagOptions struct {
	startTime float64
	increment float64
	rcount    int
	highRes   bool
	allEvents bool
	saveTemp  bool
	wavecal   string
}

// newInttagCommand creates the `stistools inttag` command.
func newInttagCommand(app *App) *cobra.Command {
	opts := &inttagOptions{}

	cmd := &cobra.Command{
		Use:   "inttag [flags] <input> <output>",
		Short: "Integrate a TIMETAG event list into an ACCUME image",
		Long: `Integrate a STIS TIMETAG event list into an ACCUME image by running inttag.e.

Without --starttime the integration begins at the first GTI START time.
With a repeat count above 1 an --increment is required.`,
		Example: `  stistools inttag od8k51igq_tag.fits od8k51igq_out.fits
  stistools inttag --starttime 10 --increment 5 -r 3 -v in_tag.fits out.fits`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := opts.request(cmd, args[0], args[1])
			return runInttag(cmd, app, opts, req)
		},
	}

	cmd.Flags().Float64Var(&opts.startTime, "starttime", 0, "start time of the first image in seconds (default: first GTI START)")
	cmd.Flags().Float64Var(&opts.increment, "increment", 0, "time per image in seconds (default: up to the last GTI STOP)")
	cmd.Flags().IntVarP(&opts.rcount, "rcount", "r", inttag.DefaultRepeatCount, "number of images to write (requires --increment above 1)")
	cmd.Flags().BoolVar(&opts.highRes, "highres", false, "integrate at high resolution")
	cmd.Flags().BoolVarP(&opts.allEvents, "allevents", "a", false, "include events outside the good time intervals")
	cmd.Flags().BoolVarP(&opts.saveTemp, "save-temp", "s", false, "keep temporary files (accepted for compatibility)")
	cmd.Flags().StringVarP(&opts.wavecal, "wavecal", "w", "", "wavecal file (accepted for compatibility)")

	return cmd
}

// request builds a Request from the parsed flags. Times are only set when the
// flag was given, so an explicit 0 reaches validation instead of meaning unset.
func (o *inttagOptions) request(cmd *cobra.Command, input, output string) inttag.Request {
	req := inttag.NewRequest(input, output)
	if cmd.Flags().Changed("starttime") {
		req.StartTime = inttag.SecondsOf(o.startTime)
	}
	if cmd.Flags().Changed("increment") {
		req.Increment = inttag.SecondsOf(o.increment)
	}
	req.RepeatCount = o.rcount
	req.HighRes = o.highRes
	req.AllEvents = o.allEvents
	return req
}

func runInttag(cmd *cobra.Command, app *App, opts *inttagOptions, req inttag.Request) error {
	s := app.session(cmd.Context())
	req.Verbose = req.Verbose || s.verbose

	if opts.saveTemp {
		s.logger.Debug("inttag.e writes no temporary files; ignoring --save-temp")
	}
	if opts.wavecal != "" {
		s.logger.Debug("inttag.e takes no wavecal; ignoring --wavecal", "wavecal", opts.wavecal)
	}

	res, err := app.integrator(s).Run(cmd.Context(), req)
	if err != nil {
		return app.fail(cmd, s, err)
	}
	return exitWithStatus(cmd, res)
}
