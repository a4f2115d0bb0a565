// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"stistools-cli/internal/inttag"
	"stistools-cli/internal/issue"

	"github.com/spf13/viper"
)

//go:embed task_schema.cue
var taskSchema string

// LoadTask reads an inttag parameter file. CUE files are validated against the
// #Task schema; YAML, TOML and JSON files are read by Viper directly. Unknown
// keys are rejected in every format. Parameter ranges are not checked here:
// the integrator applies the same rules to task files and to the CLI.
func LoadTask(path string) (inttag.Params, error) {
	wrap := func(err error) error {
		return issue.NewErrorContext().
			WithOperation("load task file").
			WithResource(path).
			WithSuggestion("Run 'stistools issue task-file-invalid' for an example task file").
			Wrap(err).
			BuildError()
	}

	if !fileExists(path) {
		return inttag.Params{}, wrap(fmt.Errorf("task file not found"))
	}

	v := viper.New()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		if err := loadCUEIntoViper(v, taskSchema, "#Task", path); err != nil {
			return inttag.Params{}, wrap(err)
		}
	case ".yaml", ".yml", ".toml", ".json":
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return inttag.Params{}, wrap(err)
		}
	default:
		return inttag.Params{}, wrap(fmt.Errorf("unsupported task file extension %q (use .cue, .yaml, .toml or .json)", ext))
	}

	var params inttag.Params
	if err := v.UnmarshalExact(&params); err != nil {
		return inttag.Params{}, wrap(err)
	}

	if strings.TrimSpace(params.Input) == "" || strings.TrimSpace(params.Output) == "" {
		return inttag.Params{}, wrap(fmt.Errorf("both 'input' and 'output' are required"))
	}

	return params, nil
}
