// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "run inttag"},
			expected: "failed to run inttag",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "run inttag", Resource: "inttag.e"},
			expected: "failed to run inttag: inttag.e",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "load task file", Cause: errors.New("unexpected EOF")},
			expected: "failed to load task file: unexpected EOF",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "run inttag",
				Resource:  "inttag.e",
				Cause:     errors.New("executable file not found in $PATH"),
			},
			expected: "failed to run inttag: inttag.e: executable file not found in $PATH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := NewErrorContext().
		WithOperation("run inttag").
		Wrap(fmt.Errorf("wrapped: %w", sentinel)).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the sentinel through the cause chain")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find *ActionableError")
	}
	if ae.Operation != "run inttag" {
		t.Errorf("Operation = %q, want %q", ae.Operation, "run inttag")
	}
}

func TestActionableError_Format(t *testing.T) {
	root := errors.New("permission denied")
	err := &ActionableError{
		Operation:   "run inttag",
		Resource:    "inttag.e",
		Suggestions: []string{"Check the file mode", "Check PATH"},
		Cause:       fmt.Errorf("exec: %w", root),
	}

	quiet := err.Format(false)
	if !strings.Contains(quiet, "\n  • Check the file mode") || !strings.Contains(quiet, "\n  • Check PATH") {
		t.Errorf("Format(false) = %q, want bulleted suggestions", quiet)
	}
	if strings.Contains(quiet, "Error chain") {
		t.Errorf("Format(false) should not include the error chain: %q", quiet)
	}

	loud := err.Format(true)
	if !strings.Contains(loud, "Error chain:") {
		t.Fatalf("Format(true) = %q, want an error chain", loud)
	}
	if !strings.Contains(loud, "1. exec: permission denied") || !strings.Contains(loud, "2. permission denied") {
		t.Errorf("Format(true) = %q, want numbered chain entries", loud)
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapWithContext(t *testing.T) {
	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}

	cause := errors.New("boom")
	ae := WrapWithContext(cause, "load configuration", "config.cue")
	if ae.Error() != "failed to load configuration: config.cue: boom" {
		t.Errorf("Error() = %q", ae.Error())
	}
}
