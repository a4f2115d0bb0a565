// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"stistools-cli/internal/config"
	"stistools-cli/internal/inttag"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. Every Cobra handler
	// receives an App and reaches configuration and the tool through it.
	App struct {
		Config   ConfigProvider
		Executor inttag.Executor
		stdout   io.Writer
		stderr   io.Writer

		// persistent flag values
		verbose    bool
		timestamps bool
		cfgFile    string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		// Executor starts inttag.e; nil means a ProcessExecutor.
		Executor inttag.Executor
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// session is the per-invocation view of configuration and flags.
	session struct {
		cfg     *config.Config
		logger  *log.Logger
		verbose bool
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config:   deps.Config,
		Executor: deps.Executor,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// session loads the configuration and builds the logger for one command run.
// A configuration that fails to load is reported and replaced by defaults.
func (a *App) session(ctx context.Context) *session {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		cfg = config.DefaultConfig()
	}

	verbose := a.verbose || cfg.UI.Verbose
	timestamps := a.timestamps || cfg.UI.Timestamps

	return &session{
		cfg:     cfg,
		logger:  newLogger(a.stderr, cfg.Log.Level, verbose, timestamps),
		verbose: verbose,
	}
}

// integrator builds an Integrator for the session's configuration.
func (a *App) integrator(s *session) *inttag.Integrator {
	executor := a.Executor
	if executor == nil {
		executor = inttag.NewProcessExecutor()
	}

	return &inttag.Integrator{
		Executable: s.cfg.Inttag.Executable.String(),
		Executor:   executor,
		Workdir:    s.cfg.Inttag.Workdir,
		Output:     a.stdout,
		Logger:     s.logger,
	}
}
