// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"stistools-cli/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `stistools config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stistools configuration",
		Long: `Manage stistools configuration.

Configuration is stored in:
  - Linux: ~/.config/stistools/config.cue
  - macOS: ~/Library/Application Support/stistools/config.cue
  - Windows: %APPDATA%\stistools\config.cue

Every key can be overridden with a ` + config.EnvPrefix + `_ environment variable,
for example ` + config.EnvPrefix + `_INTTAG_EXECUTABLE.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE or TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpConfig(cmd.Context(), app, format)
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", "cue", "output format (cue, toml)")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: app.cfgFile})
	if err != nil {
		return app.fail(cmd, nil, err)
	}

	w := app.stdout
	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, SubtitleStyle.Render("inttag:"))
	fmt.Fprintf(w, "  %s %s\n", CmdStyle.Render("executable:"), cfg.Inttag.Executable)
	workdir := cfg.Inttag.Workdir
	if workdir == "" {
		workdir = SubtitleStyle.Render("(current directory)")
	}
	fmt.Fprintf(w, "  %s %s\n", CmdStyle.Render("workdir:"), workdir)

	fmt.Fprintln(w, SubtitleStyle.Render("ui:"))
	fmt.Fprintf(w, "  %s %s\n", CmdStyle.Render("color_scheme:"), cfg.UI.ColorScheme)
	fmt.Fprintf(w, "  %s %v\n", CmdStyle.Render("verbose:"), cfg.UI.Verbose)
	fmt.Fprintf(w, "  %s %v\n", CmdStyle.Render("timestamps:"), cfg.UI.Timestamps)

	fmt.Fprintln(w, SubtitleStyle.Render("log:"))
	fmt.Fprintf(w, "  %s %s\n", CmdStyle.Render("level:"), cfg.Log.Level)

	return nil
}

func initConfig(app *App) error {
	path, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return err
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s %s\n", WarningStyle.Render("Config file already exists:"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created config file:"), path)
	return nil
}

func showConfigPath(app *App) error {
	if app.cfgFile != "" {
		fmt.Fprintln(app.stdout, app.cfgFile)
		return nil
	}

	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Fprintln(app.stdout, path)
	return nil
}

func dumpConfig(ctx context.Context, app *App, format string) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: app.cfgFile})
	if err != nil {
		return err
	}

	switch format {
	case "cue":
		fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
	case "toml":
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(app.stdout, out)
	default:
		return fmt.Errorf("unknown format %q (use cue or toml)", format)
	}
	return nil
}
