// SPDX-License-Identifier: MPL-2.0

package inttag

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/soniakeys/unit"
)

// DefaultRepeatCount is the implicit repeat count; inttag.e assumes it when
// the positional value is omitted.
const DefaultRepeatCount = 1

var (
	// ErrConfiguration is the sentinel error wrapped by ConfigurationError.
	ErrConfiguration = errors.New("invalid inttag configuration")
	// ErrInvalidValue is the sentinel error wrapped by InvalidValueError.
	ErrInvalidValue = errors.New("invalid inttag parameter value")
)

type (
	// Seconds is an optional time in seconds. The zero value is unset, which
	// lets inttag.e fall back to its GTI-derived default.
	Seconds struct {
		t  unit.Time
		ok bool
	}

	// Request describes one integration run. It is a value type: copies are
	// independent and a Request is consumed by a single Run.
	Request struct {
		// Input is the TIMETAG event list; it must be an existing file.
		Input string
		// Output is where inttag.e writes the ACCUME image.
		Output string
		// StartTime is measured from the beginning of the exposure.
		// Unset means the first START time in the GTI table.
		StartTime Seconds
		// Increment is the integration interval. Unset means integrate up to
		// the last STOP time in the GTI table.
		Increment Seconds
		// RepeatCount is the number of output image sets.
		RepeatCount int
		// HighRes requests a native-resolution output image.
		HighRes bool
		// AllEvents accumulates every event and ignores the GTI table.
		AllEvents bool
		// Verbose makes both the wrapper and inttag.e chatty.
		Verbose bool
	}

	// ConfigurationError is returned when request fields are individually
	// valid but inconsistent with each other.
	ConfigurationError struct {
		Reason string
	}

	// InvalidValueError is returned when a single request field is out of range.
	InvalidValueError struct {
		Field  string
		Value  string
		Reason string
	}
)

// SecondsOf returns a set Seconds value.
func SecondsOf(sec float64) Seconds {
	return Seconds{t: unit.Time(sec), ok: true}
}

// IsSet reports whether s carries a value.
func (s Seconds) IsSet() bool { return s.ok }

// Time returns the value as a unit.Time. It is zero when s is unset.
func (s Seconds) Time() unit.Time { return s.t }

// Sec returns the value in seconds. It is zero when s is unset.
func (s Seconds) Sec() float64 { return s.t.Sec() }

// String renders the value the way inttag.e expects it on the command line.
func (s Seconds) String() string {
	if !s.ok {
		return ""
	}
	return formatSeconds(s.Sec())
}

// NewRequest returns a Request for input and output with every optional
// parameter at its default.
func NewRequest(input, output string) Request {
	return Request{
		Input:       input,
		Output:      output,
		RepeatCount: DefaultRepeatCount,
	}
}

// Validate checks the cross-field rules in the order callers rely on.
// It does not look at the filesystem; see InputExists.
func (r Request) Validate() error {
	if r.RepeatCount > 1 && !r.Increment.IsSet() {
		return &ConfigurationError{Reason: "repeat_count requires increment"}
	}
	if r.RepeatCount < 1 {
		return &InvalidValueError{
			Field:  "repeat_count",
			Value:  fmt.Sprint(r.RepeatCount),
			Reason: "repeat_count must be positive",
		}
	}
	if err := validateSeconds("starttime", r.StartTime); err != nil {
		return err
	}
	return validateSeconds("increment", r.Increment)
}

// InputExists reports whether Input names an existing regular file. A
// relative Input is resolved against dir, the directory inttag.e runs in;
// an empty dir means the current directory.
func (r Request) InputExists(dir string) bool {
	path := r.Input
	if dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return e.Reason
}

// Unwrap returns ErrConfiguration for errors.Is() compatibility.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s = %s, %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidValue for errors.Is() compatibility.
func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

func validateSeconds(field string, s Seconds) error {
	if !s.IsSet() {
		return nil
	}
	v := s.Sec()
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &InvalidValueError{
			Field:  field,
			Value:  fmt.Sprint(v),
			Reason: field + " must be a positive number of seconds",
		}
	}
	return nil
}
