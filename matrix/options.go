// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator is written between two elements of the same row.
	DefaultSeparator = " "

	// DefaultVerb is the fmt verb used to render each element.
	DefaultVerb = "%v"
)

// Stable panic messages for invalid option values.
const (
	panicVerbInvalid = "matrix: WithVerb requires a fmt verb containing '%'"
)

// Options holds rendering policy. Zero value is not meaningful; use gatherOptions.
type Options struct {
	sep  string // element separator inside a row
	verb string // fmt verb applied to each element
}

// Option mutates Options. Last writer wins.
type Option func(*Options)

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{sep: DefaultSeparator, verb: DefaultVerb}
}

// gatherOptions applies opts over the defaults in order.
// nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSeparator sets the string written between elements of a row.
// An empty separator is legal and glues elements together.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.sep = sep }
}

// WithVerb sets the fmt verb used for each element, e.g. "%d", "%.2f", "%5v".
// Panics when verb has no '%': such a verb would print the literal instead of the value.
func WithVerb(verb string) Option {
	if !strings.Contains(verb, "%") {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}
