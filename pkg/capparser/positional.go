// positional.go - positional descriptor.
// SPDX-License-Identifier: GPL-3.0-or-later

package capparser

import "github.com/tidycli/cap/pkg/value"

// PositionalDescriptor describes one registered positional argument slot.
// Positionals are consumed strictly in registration order; at most the last
// one registered may be variadic.
type PositionalDescriptor struct {
	// Name is the positional's key in the resulting
	// github.com/tidycli/cap/pkg/store.Store. It never starts with a
	// registered prefix character and is unique among positionals (but
	// may coincide with a flag name, since the two live in separate
	// namespaces).
	Name string

	// Type is the [value.Kind] this positional parses its text into.
	// Never [value.Presence]: a bare positional carries no notion of
	// "present with no value".
	Type value.Kind

	// Required indicates that the positional must be supplied at least
	// once (for a variadic positional, at least one value).
	Required bool

	// Variadic indicates that this positional absorbs every remaining
	// non-flag argument. Only the last registered positional may set
	// this.
	Variadic bool

	// MetaName is the placeholder shown in generated help text (e.g.
	// "FILE" in "cmd [FILE...]").
	MetaName string

	// Description is a one-line, human-readable explanation, used when
	// rendering help text.
	Description string
}
