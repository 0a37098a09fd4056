// flag.go - flag descriptor.
// SPDX-License-Identifier: GPL-3.0-or-later

package capparser

import "github.com/tidycli/cap/pkg/value"

// FlagDescriptor describes one registered flag: its canonical name, its
// value type, its repetition bounds, and the metadata used to render help
// text. A [Config] owns its FlagDescriptor values; callers obtain a
// *FlagDescriptor from [Config.AddFlag] only to attach further aliases via
// [Config.AddFlagAlias] or to read it back while rendering help.
type FlagDescriptor struct {
	// Name is the canonical flag name, including its prefix character
	// (e.g. "-c" or "--count"). It never changes after registration.
	Name string

	// Aliases holds every alternate name registered for this flag via
	// [Config.AddFlagAlias], in registration order.
	Aliases []string

	// Type is the [value.Kind] of every value this flag accepts. A flag
	// of [value.Presence] type never consumes an argument.
	Type value.Kind

	// MinCount is the minimum number of times the flag must appear.
	// Zero means the flag is optional.
	MinCount int

	// MaxCount is the maximum number of times the flag may appear, or -1
	// for no upper bound.
	MaxCount int

	// MetaName is the placeholder shown in generated help text for the
	// flag's value (e.g. "N" in "-c N"). Ignored for Presence flags.
	MetaName string

	// Description is a one-line, human-readable explanation of the flag,
	// used when rendering help text.
	Description string
}

// Repeatable reports whether the flag may legitimately appear more than
// once, i.e. whether its MaxCount is -1 or greater than one.
func (fd FlagDescriptor) Repeatable() bool {
	return fd.MaxCount < 0 || fd.MaxCount > 1
}

// Required reports whether the flag must appear at least once.
func (fd FlagDescriptor) Required() bool {
	return fd.MinCount > 0
}
