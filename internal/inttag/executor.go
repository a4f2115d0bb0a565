// SPDX-License-Identifier: MPL-2.0

package inttag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
)

// ErrExecutableNotFound is returned when the integration tool cannot be
// located or started.
var ErrExecutableNotFound = errors.New("inttag executable not found")

type (
	// Executor starts an external program in dir (empty means the caller's
	// directory) and waits for it.
	//
	// Run blocks until the program exits. A program that ran and exited
	// non-zero is reported through the ExitCode with a nil error; the error is
	// reserved for failures to start or wait on the program, and the ExitCode
	// returned with it is always 0 and carries no meaning.
	Executor interface {
		Run(ctx context.Context, dir string, argv []string, out io.Writer) (ExitCode, error)
	}

	// ProcessExecutor runs programs as host processes with stdout and stderr
	// merged into one stream.
	ProcessExecutor struct{}
)

// NewProcessExecutor creates an executor for host processes.
func NewProcessExecutor() *ProcessExecutor {
	return &ProcessExecutor{}
}

// Run executes argv[0] with the remaining elements as arguments.
// A relative program path such as "bin/inttag.e" is resolved against dir,
// like the arguments the program itself receives; bare names go through PATH.
// There is no timeout; ctx only ends the process on cancellation.
func (e *ProcessExecutor) Run(ctx context.Context, dir string, argv []string, out io.Writer) (ExitCode, error) {
	if len(argv) == 0 {
		return 0, fmt.Errorf("empty argument vector")
	}

	path, err := exec.LookPath(resolveProgram(dir, argv[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrExecutableNotFound, argv[0], err)
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Args[0] = argv[0]
	cmd.Dir = dir

	if out == nil {
		out = io.Discard
	}
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExitCode(exitErr.ExitCode()), nil
		}
		return 0, fmt.Errorf("failed to execute %s: %w", argv[0], err)
	}

	return 0, nil
}

// resolveProgram joins a relative program path containing a directory
// component onto dir. Absolute paths and bare names are returned unchanged.
func resolveProgram(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) || filepath.Base(name) == name {
		return name
	}
	return filepath.Join(dir, name)
}
