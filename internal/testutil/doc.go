// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on error instead
// of returning it, plus a stand-in for the inttag.e executable.
package testutil
