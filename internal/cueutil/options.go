// SPDX-License-Identifier: MPL-2.0

package cueutil

// MaxFileSize is the largest CUE file ReadFile accepts (1MB).
// Configuration and task files are a few hundred bytes.
const MaxFileSize int64 = 1 << 20

type (
	// parseOptions holds configuration for CUE parsing.
	parseOptions struct {
		concrete bool
		filename string
	}

	// Option configures parsing behavior.
	Option func(*parseOptions)
)

func defaultOptions() parseOptions {
	return parseOptions{
		concrete: true,
	}
}

// WithConcrete sets whether all values must be concrete after unification.
// Default is true.
//
// Set to false for files whose schema has optional fields with no default.
func WithConcrete(concrete bool) Option {
	return func(o *parseOptions) {
		o.concrete = concrete
	}
}

// WithFilename sets the filename used in error messages.
func WithFilename(name string) Option {
	return func(o *parseOptions) {
		o.filename = name
	}
}
