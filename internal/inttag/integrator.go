// SPDX-License-Identifier: MPL-2.0

package inttag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"stistools-cli/internal/issue"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// Result is the outcome of one integration run.
	Result struct {
		// Status is the normalized outcome.
		Status Status
		// ToolExitCode is the raw inttag.e exit code. It is only meaningful
		// when the tool was started and is surfaced for diagnostics.
		ToolExitCode ExitCode
		// Args is the argument vector inttag.e was started with, or nil when
		// nothing was started.
		Args []string
	}

	// Integrator validates requests and runs inttag.e.
	Integrator struct {
		// Executable is argv[0]; empty means DefaultExecutable.
		Executable string
		// Executor starts the tool; nil means a ProcessExecutor.
		Executor Executor
		// Workdir is the directory inttag.e runs in; empty means the caller's.
		// Relative Input and Output paths are interpreted against it.
		Workdir string
		// Output receives the merged stdout/stderr of the tool; nil discards it.
		Output io.Writer
		// Logger receives wrapper diagnostics; nil discards them.
		Logger *log.Logger
	}
)

// NewIntegrator creates an Integrator that runs the default executable as a
// host process and forwards its output to out.
func NewIntegrator(out io.Writer, logger *log.Logger) *Integrator {
	return &Integrator{
		Executable: DefaultExecutable,
		Executor:   NewProcessExecutor(),
		Output:     out,
		Logger:     logger,
	}
}

// Run integrates req.Input into req.Output.
//
// A missing input file is reported as StatusInputMissing with a nil error.
// Invalid parameters are returned as errors wrapping ErrConfiguration or
// ErrInvalidValue, and in both cases inttag.e is not started. A non-zero exit
// of inttag.e is StatusToolFailed with a nil error. The only other error is a
// failure to start the tool at all.
func (in *Integrator) Run(ctx context.Context, req Request) (Result, error) {
	logger := in.logger()

	if !req.InputExists(in.Workdir) {
		logger.Error("no file name matched the input", "input", req.Input, "workdir", in.Workdir)
		return Result{Status: StatusInputMissing}, nil
	}

	args, err := BuildArgs(in.Executable, req)
	if err != nil {
		return Result{}, err
	}

	if req.Verbose {
		logger.Info("running inttag", "input", req.Input)
		logger.Info("  " + quoteArgs(args))
	}

	code, err := in.executor().Run(ctx, in.Workdir, args, in.Output)
	if err != nil {
		ec := issue.NewErrorContext().
			WithOperation("run inttag").
			WithResource(args[0])
		if errors.Is(err, ErrExecutableNotFound) {
			ec = ec.WithSuggestion("Make sure the STIS calibration binaries are installed and inttag.e is on PATH").
				WithSuggestion("Point 'inttag.executable' in the configuration file at the binary")
		}
		return Result{Args: args}, ec.Wrap(err).BuildError()
	}

	// A process killed by a signal has no exit status and reports -1.
	if valid, errs := code.IsValid(); !valid {
		logger.Warn("inttag.e did not exit normally", "executable", args[0], "error", errs[0])
	}

	status := statusFromExitCode(code)
	if status != StatusOK && req.Verbose {
		logger.Warn(fmt.Sprintf("status = %d", int(code)), "executable", args[0])
	}

	return Result{Status: status, ToolExitCode: code, Args: args}, nil
}

// RunParams converts p into a Request and runs it. It is the entry point for
// configuration-driven callers and shares every rule with Run.
func (in *Integrator) RunParams(ctx context.Context, p Params) (Result, error) {
	return in.Run(ctx, p.Request())
}

func (in *Integrator) executor() Executor {
	if in.Executor == nil {
		return NewProcessExecutor()
	}
	return in.Executor
}

func (in *Integrator) logger() *log.Logger {
	if in.Logger == nil {
		return log.New(io.Discard)
	}
	return in.Logger
}

// quoteArgs renders args as a copy-pasteable shell command line.
func quoteArgs(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		q, err := syntax.Quote(a, syntax.LangBash)
		if err != nil {
			q = fmt.Sprintf("%q", a)
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " ")
}
