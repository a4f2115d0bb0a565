// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"time"

	"stistools-cli/internal/config"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger. Verbose lowers the level to debug
// whatever the configured level is.
func newLogger(w io.Writer, level config.LogLevel, verbose, timestamps bool) *log.Logger {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose && lvl > log.DebugLevel {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          "inttag",
		Level:           lvl,
		ReportTimestamp: timestamps,
		TimeFormat:      time.DateTime,
	})
}
