// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help pages
// for the problems users hit when running the STIS tools.
package issue
