// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSchema = `
#Run: {
	input:      string & =~"\\S"
	output:     string & =~"\\S"
	rcount?:    int
	increment?: number
	mode?:      "fast" | "slow"
}
`

type testRun struct {
	Input     string  `json:"input"`
	Output    string  `json:"output"`
	RCount    int     `json:"rcount,omitempty"`
	Increment float64 `json:"increment,omitempty"`
	Mode      string  `json:"mode,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid file decodes into a struct", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
input:     "od8k51igq_tag.fits"
output:    "od8k51igq_out.fits"
rcount:    3
increment: 5.0
`)
		result, err := ParseAndDecode[testRun]([]byte(testSchema), data, "#Run")
		if err != nil {
			t.Fatalf("ParseAndDecode failed: %v", err)
		}

		if result.Value.Input != "od8k51igq_tag.fits" {
			t.Errorf("expected input 'od8k51igq_tag.fits', got %q", result.Value.Input)
		}
		if result.Value.RCount != 3 {
			t.Errorf("expected rcount=3, got %d", result.Value.RCount)
		}
		if result.Value.Increment != 5.0 {
			t.Errorf("expected increment=5.0, got %v", result.Value.Increment)
		}
	})

	t.Run("decodes into a map", func(t *testing.T) {
		t.Parallel()

		data := []byte(`input: "a", output: "b", mode: "slow"`)
		result, err := ParseAndDecode[map[string]any]([]byte(testSchema), data, "#Run")
		if err != nil {
			t.Fatalf("ParseAndDecode failed: %v", err)
		}

		if result.Value["mode"] != "slow" {
			t.Errorf("expected mode 'slow', got %v", result.Value["mode"])
		}
		if _, ok := result.Value["rcount"]; ok {
			t.Error("absent optional fields should not be decoded")
		}
	})

	tests := []struct {
		name string
		data string
	}{
		{name: "wrong type", data: `input: "a", output: "b", rcount: "three"`},
		{name: "missing required field", data: `input: "a"`},
		{name: "blank required field", data: `input: "  ", output: "b"`},
		{name: "unknown field", data: `input: "a", output: "b", wavecal: "w.fits"`},
		{name: "enum mismatch", data: `input: "a", output: "b", mode: "medium"`},
		{name: "syntax error", data: `input: "a" output:`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseAndDecode[testRun]([]byte(testSchema), []byte(tt.data), "#Run", WithFilename("run.cue"))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.HasPrefix(err.Error(), "run.cue: ") {
				t.Errorf("error should start with the filename, got: %v", err)
			}
		})
	}

	t.Run("missing definition is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testRun]([]byte(testSchema), []byte(`{}`), "#Nope")
		if err == nil || !strings.Contains(err.Error(), "#Nope") {
			t.Errorf("expected a missing definition error, got %v", err)
		}
	})
}

func TestParseAndDecode_Concrete(t *testing.T) {
	t.Parallel()

	schema := `
#Settings: {
	level?: "debug" | "info"
	name:   string | *"stistools"
}
`
	type settings struct {
		Level string `json:"level,omitempty"`
		Name  string `json:"name"`
	}

	result, err := ParseAndDecode[settings]([]byte(schema), []byte(`{}`), "#Settings", WithConcrete(false))
	if err != nil {
		t.Fatalf("ParseAndDecode failed: %v", err)
	}
	if result.Value.Name != "stistools" {
		t.Errorf("expected the schema default, got %q", result.Value.Name)
	}
	if result.Value.Level != "" {
		t.Errorf("expected empty level, got %q", result.Value.Level)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.cue")
	if err := os.WriteFile(path, []byte(`log: level: "debug"`), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != `log: level: "debug"` {
		t.Errorf("unexpected content %q", data)
	}

	big := filepath.Join(dir, "big.cue")
	if err := os.WriteFile(big, make([]byte, MaxFileSize+1), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ReadFile(big)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.cue"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
