// SPDX-License-Identifier: MPL-2.0

package inttag

import (
	"strconv"
	"strings"
)

const (
	// DefaultExecutable is the name of the compiled integration tool.
	DefaultExecutable = "inttag.e"

	// firstGTIStart is the start-time token inttag.e reads as
	// "use the first START time in the GTI table".
	firstGTIStart = "first"

	flagVerbose   = "-v"
	flagHighRes   = "-h"
	flagAllEvents = "-a"
)

// BuildArgs validates req and returns the argument vector for executable,
// including executable itself as the first element.
//
// inttag.e parses start time, increment and repeat count by position, so
// optional values are omitted rather than passed empty: the argument count
// is part of the contract.
func BuildArgs(executable string, req Request) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if executable == "" {
		executable = DefaultExecutable
	}

	args := []string{executable, req.Input, req.Output}

	if req.StartTime.IsSet() {
		args = append(args, req.StartTime.String())
	} else {
		args = append(args, firstGTIStart)
	}

	if req.Increment.IsSet() {
		args = append(args, req.Increment.String())
	}

	// Validate guarantees Increment is present here.
	if req.RepeatCount > 1 {
		args = append(args, strconv.Itoa(req.RepeatCount))
	}

	if req.Verbose {
		args = append(args, flagVerbose)
	}
	if req.HighRes {
		args = append(args, flagHighRes)
	}
	if req.AllEvents {
		args = append(args, flagAllEvents)
	}

	return args, nil
}

// formatSeconds renders v as the shortest decimal that round-trips, always
// with a fractional part ("10.0", "0.25") and switching to exponent notation
// below 1e-4 and from 1e16 up ("1e-05", "1e+16").
func formatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	_, expPart, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil || exp < -4 || exp >= 16 {
		return s
	}

	s = strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
