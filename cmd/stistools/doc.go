// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for stistools.
//
// The command tree is built by NewRootCommand around an App, which carries the
// configuration provider, the process executor and the output streams, so tests
// can run commands against a recording executor without spawning inttag.e.
package cmd
