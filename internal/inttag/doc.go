// SPDX-License-Identifier: MPL-2.0

// Package inttag wraps the compiled inttag.e executable, which integrates a STIS
// TIMETAG event list into an ACCUME image.
//
// The package owns the invocation contract only: a Request is validated, turned
// into the positional argument vector inttag.e parses, and handed to an Executor.
// The integration itself happens inside inttag.e and is opaque here.
//
// Validation order matters and is observable by callers:
//  1. a missing input file yields StatusInputMissing without an error
//  2. RepeatCount > 1 without an Increment fails with ErrConfiguration
//  3. RepeatCount < 1 fails with ErrInvalidValue
//
// A non-zero exit from inttag.e is never returned as an error; it is folded into
// StatusToolFailed so existing callers that branch on a status code keep working.
package inttag
