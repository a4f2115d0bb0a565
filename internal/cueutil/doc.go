// SPDX-License-Identifier: MPL-2.0

// Package cueutil compiles user CUE files against an embedded schema
// definition and decodes the unified value.
package cueutil
