// SPDX-License-Identifier: MPL-2.0

package inttag

import (
	"errors"
	"testing"
)

func TestStatus_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		code   ExitCode
		name   string
	}{
		{StatusOK, 0, "OK"},
		{StatusToolFailed, 1, "TOOL_FAILED"},
		{StatusInputMissing, 2, "INPUT_MISSING"},
		{Status(9), 9, "Status(9)"},
	}

	for _, tt := range tests {
		if got := tt.status.ExitCode(); got != tt.code {
			t.Errorf("%v.ExitCode() = %d, want %d", tt.status, got, tt.code)
		}
		if got := tt.status.String(); got != tt.name {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.name)
		}
	}
}

func TestStatusFromExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code ExitCode
		want Status
	}{
		{0, StatusOK},
		{1, StatusToolFailed},
		{2, StatusToolFailed},
		{255, StatusToolFailed},
		{-1, StatusToolFailed},
	}

	for _, tt := range tests {
		if got := statusFromExitCode(tt.code); got != tt.want {
			t.Errorf("statusFromExitCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestExitCodeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value     ExitCode
		wantValid bool
	}{
		{0, true},
		{1, true},
		{255, true},
		{-1, false},
		{256, false},
	}

	for _, tt := range tests {
		valid, errs := tt.value.IsValid()
		if valid != tt.wantValid {
			t.Errorf("ExitCode(%d).IsValid() = %v, want %v", tt.value, valid, tt.wantValid)
		}
		if !tt.wantValid && (len(errs) == 0 || !errors.Is(errs[0], ErrInvalidExitCode)) {
			t.Errorf("ExitCode(%d).IsValid() errors = %v, want ErrInvalidExitCode", tt.value, errs)
		}
	}

	if got := ExitCode(42).String(); got != "42" {
		t.Errorf("ExitCode(42).String() = %q, want %q", got, "42")
	}
}
