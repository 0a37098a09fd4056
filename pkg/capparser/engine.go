// engine.go - the parse-time state machine: the other half of the
// component pair described in config.go.
// SPDX-License-Identifier: GPL-3.0-or-later

package capparser

import (
	"github.com/tidycli/cap/pkg/assert"
	"github.com/tidycli/cap/pkg/store"
	"github.com/tidycli/cap/pkg/value"
)

// Parse consumes argv against the receiver's registered flags and
// positionals. argv[0] is conventionally the program name and is never
// itself inspected as a flag or positional; callers usually pass os.Args
// unmodified.
//
// On success it returns a [*Result] and a nil error. If the configured
// help flag is present before any separator, it returns (nil,
// [ErrHelpRequested]). Otherwise it returns (nil, err) for the first
// violation encountered, in argument order, with missing-required-flag and
// missing-required-positional checks running only after every argument has
// been consumed.
func (cfg *Config) Parse(argv []string) (*Result, error) {
	assert.True(len(argv) >= 1, "capparser: Parse: argv must include a program name at index 0")

	if cfg.HelpEnabled && cfg.HelpFlag != nil && cfg.scanForHelp(argv) {
		return nil, ErrHelpRequested
	}

	tally := make([]int, len(cfg.Flags))
	flagStore := store.Empty()
	positionalStore := store.Empty()

	positionalCursor := 0
	inPositionalOnly := false

	for i := 1; i < len(argv); i++ {
		tok := argv[i]
		if tok == "" {
			return nil, ErrEmptyArgument{Index: i}
		}

		if !inPositionalOnly && cfg.hasPrefix(tok) {
			entry, known := cfg.names[tok]

			if known && entry.kind == nameKindSeparator {
				inPositionalOnly = true
				continue
			}
			if !known || entry.kind != nameKindFlag {
				return nil, ErrUnknownFlag{Token: tok}
			}

			fd := &cfg.Flags[entry.flagIndex]
			var v value.Value
			if fd.Type == value.Presence {
				v = value.MakePresence()
			} else {
				i++
				if i >= len(argv) {
					return nil, ErrMissingFlagValue{Flag: fd.Name}
				}
				raw := argv[i]
				parsed, err := parseTyped(raw, fd.Type)
				if err != nil {
					return nil, ErrCannotParseFlag{Flag: fd.Name, Raw: raw, Cause: err}
				}
				v = parsed
			}

			tally[entry.flagIndex]++
			if fd.MaxCount >= 0 && tally[entry.flagIndex] > fd.MaxCount {
				return nil, ErrTooManyFlags{Flag: fd.Name}
			}
			assert.NotError(flagStore.Append(fd.Name, v))
			continue
		}

		if positionalCursor >= len(cfg.Positionals) {
			return nil, ErrTooManyPositionals{Token: tok}
		}
		p := &cfg.Positionals[positionalCursor]
		parsed, err := parseTyped(tok, p.Type)
		if err != nil {
			return nil, ErrCannotParsePositional{Name: p.Name, Raw: tok, Cause: err}
		}
		if p.Variadic {
			assert.NotError(positionalStore.Append(p.Name, parsed))
		} else {
			positionalStore.Set(p.Name, parsed)
			positionalCursor++
		}
	}

	for idx := range cfg.Flags {
		if tally[idx] < cfg.Flags[idx].MinCount {
			return nil, ErrNotEnoughFlags{Flag: cfg.Flags[idx].Name}
		}
	}
	for idx := positionalCursor; idx < len(cfg.Positionals); idx++ {
		p := &cfg.Positionals[idx]
		if p.Required && positionalStore.Count(p.Name) < 1 {
			return nil, ErrNotEnoughPositionals{Name: p.Name}
		}
	}

	return &Result{Flags: flagStore, Positionals: positionalStore}, nil
}

// scanForHelp looks ahead through argv for the configured help flag,
// stopping at the first separator token (help is never recognized once
// positional-only mode would begin). This runs before the main loop so
// that an eventual help request wins even when an earlier token would
// otherwise have produced a parse error: a user who tacks "-h" onto an
// otherwise-broken command line still gets help instead of an error.
func (cfg *Config) scanForHelp(argv []string) bool {
	for i := 1; i < len(argv); i++ {
		tok := argv[i]
		if tok == "" || !cfg.hasPrefix(tok) {
			continue
		}
		entry, known := cfg.names[tok]
		if !known {
			continue
		}
		if entry.kind == nameKindSeparator {
			return false
		}
		if entry.kind == nameKindHelp {
			return true
		}
	}
	return false
}

// parseTyped converts raw text into a [value.Value] of the given kind.
func parseTyped(raw string, kind value.Kind) (value.Value, error) {
	switch kind {
	case value.Int:
		n, err := value.ParseInt(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.MakeInt(n), nil
	case value.Double:
		d, err := value.ParseDouble(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.MakeDouble(d), nil
	case value.String:
		return value.MakeString(raw), nil
	default:
		assert.Unreachable("capparser: parseTyped: unexpected kind")
		panic("unreachable")
	}
}
