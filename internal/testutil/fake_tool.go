// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// FakeTool is a shell script standing in for inttag.e. Each run appends its
// arguments, one per line, to ArgsFile and exits with the configured code.
type FakeTool struct {
	// Path is the absolute path of the script.
	Path string
	// ArgsFile receives the recorded arguments.
	ArgsFile string
}

// NewFakeTool writes an executable script named name into dir. The script
// prints a line to stdout and one to stderr, then exits with exitCode.
// Tests using it are skipped on Windows.
func NewFakeTool(t testing.TB, dir, name string, exitCode int) *FakeTool {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake inttag.e is a POSIX shell script")
	}

	argsFile := filepath.Join(dir, name+".args")
	script := fmt.Sprintf(`#!/bin/sh
for a in "$@"; do
	printf '%%s\n' "$a" >> '%s'
done
echo "integrating $1"
echo "inttag diagnostics" >&2
exit %d
`, argsFile, exitCode)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake tool %s: %v", path, err)
	}
	return &FakeTool{Path: path, ArgsFile: argsFile}
}

// Args returns the arguments of every recorded run, concatenated, or nil if
// the tool never ran.
func (f *FakeTool) Args(t testing.TB) []string {
	t.Helper()
	data, err := os.ReadFile(f.ArgsFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to read %s: %v", f.ArgsFile, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// Ran reports whether the tool was started at least once.
func (f *FakeTool) Ran() bool {
	_, err := os.Stat(f.ArgsFile)
	return err == nil
}
