// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration and task parameter files
// using Viper, with CUE as the primary file format.
//
// The configuration file lives at $XDG_CONFIG_HOME/stistools/config.cue on
// Linux (~/.config when unset), ~/Library/Application Support/stistools on
// macOS and %APPDATA%\stistools on Windows. Every key can be overridden from
// the environment with a STISTOOLS_ prefix, dots replaced by underscores
// (STISTOOLS_INTTAG_EXECUTABLE).
//
// CUE files are validated against embedded schemas before they reach Viper, so
// type errors are reported with the offending path.
package config
