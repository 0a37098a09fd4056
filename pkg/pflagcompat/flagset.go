// flagset.go - definition of FlagSet.
// SPDX-License-Identifier: GPL-3.0-or-later

package pflagcompat

import (
	"github.com/tidycli/cap"
	"github.com/tidycli/cap/pkg/assert"
	"github.com/tidycli/cap/pkg/value"
)

// binding remembers where to copy a flag's parsed value once Parse
// succeeds, since this package hands out pointers at registration time
// rather than requiring callers to read back from a store afterwards.
type binding struct {
	name    string
	kind    value.Kind
	boolp   *bool
	stringp *string
	int64p  *int64
	doublep *float64
}

// FlagSet is a tiny wrapper around [*cap.Parser]. [NewFlagSet] registers a
// trailing variadic positional named "args" once, so that [*FlagSet.Args]
// behaves like pflag's.
type FlagSet struct {
	// Parser is the underlying parser. You can still reach the full
	// registration surface by using it directly.
	Parser *cap.Parser

	bindings []binding
}

// NewFlagSet constructs a [*FlagSet] with the default prefix '-', help
// flag "-h", and separator "--" already registered, plus a trailing
// catch-all positional for [*FlagSet.Args].
func NewFlagSet(progname string, handling cap.ErrorHandling) *FlagSet {
	px := cap.NewParser(progname, handling)
	assert.NotError(px.AddPositional("args", value.String, false, true, "ARGS", ""))
	return &FlagSet{Parser: px}
}

// Parse parses args and, on success, copies every registered flag's value
// into the pointer supplied at registration time.
func (fx *FlagSet) Parse(args []string) error {
	if err := fx.Parser.Parse(args); err != nil {
		return err
	}
	for _, b := range fx.bindings {
		switch b.kind {
		case value.Presence:
			if fx.Parser.Flags().Has(b.name) {
				*b.boolp = true
			}
		case value.String:
			if v, ok := fx.Parser.Flags().Get(b.name); ok {
				*b.stringp = v.AsString()
			}
		case value.Int:
			if v, ok := fx.Parser.Flags().Get(b.name); ok {
				*b.int64p = v.AsInt()
			}
		case value.Double:
			if v, ok := fx.Parser.Flags().Get(b.name); ok {
				*b.doublep = v.AsDouble()
			}
		}
	}
	return nil
}

// Args returns the positional arguments collected by [*FlagSet.Parse].
func (fx *FlagSet) Args() []string {
	entry, ok := fx.Parser.Positionals().Entry("args")
	if !ok {
		return nil
	}
	out := make([]string, len(entry.Values))
	for i, v := range entry.Values {
		out[i] = v.AsString()
	}
	return out
}

func (fx *FlagSet) registerAlias(longName string, shortName byte) {
	if shortName != 0 {
		assert.NotError(fx.Parser.AddFlagAlias("--"+longName, "-"+string(shortName)))
	}
}
