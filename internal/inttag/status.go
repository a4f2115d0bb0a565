// SPDX-License-Identifier: MPL-2.0

package inttag

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// StatusOK means inttag.e exited with status 0.
	StatusOK Status = 0
	// StatusToolFailed means inttag.e exited with a non-zero status.
	// The raw code is not passed through; see Result.ToolExitCode.
	StatusToolFailed Status = 1
	// StatusInputMissing means the input path did not name an existing file
	// and inttag.e was never started.
	StatusInputMissing Status = 2
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// Status is the normalized outcome of an integration run. Its numeric value
	// is also the process exit status of the CLI.
	Status int

	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// String returns the symbolic name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusToolFailed:
		return "TOOL_FAILED"
	case StatusInputMissing:
		return "INPUT_MISSING"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ExitCode returns the process exit status the CLI reports for s.
func (s Status) ExitCode() ExitCode { return ExitCode(s) }

// statusFromExitCode folds a raw inttag.e exit code into a Status.
func statusFromExitCode(code ExitCode) Status {
	if code.IsSuccess() {
		return StatusOK
	}
	return StatusToolFailed
}

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// IsValid returns whether the ExitCode is in the valid range (0-255),
// and a list of validation errors if it is not.
func (c ExitCode) IsValid() (bool, []error) {
	if c < 0 || c > 255 {
		return false, []error{&InvalidExitCodeError{Value: c}}
	}
	return true, nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
