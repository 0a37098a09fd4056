// render.go - help and usage text rendering.
// SPDX-License-Identifier: GPL-3.0-or-later

package capusage

import (
	"fmt"
	"io"

	"github.com/tidycli/cap/pkg/assert"
	"github.com/tidycli/cap/pkg/capparser"
	"github.com/tidycli/cap/pkg/textwrap"
	"github.com/tidycli/cap/pkg/value"
)

const wrapWidth = 72

// PrintUsage writes a one-line synopsis of cfg's grammar to w, e.g.:
//
//	Usage: cmd [options] word [count]
//
// This method panics in case of I/O error, mirroring the rest of this
// module's no-exit-status-to-check convention for writes to an
// in-memory or already-validated sink.
func PrintUsage(cfg *capparser.Config, w io.Writer) {
	prog := cfg.ProgramName
	if prog == "" {
		prog = "program"
	}
	assert.NotError1(fmt.Fprintf(w, "Usage: %s", prog))
	if len(cfg.Flags) > 0 || cfg.HelpFlag != nil || cfg.SeparatorName != "" {
		assert.NotError1(fmt.Fprint(w, " [options]"))
	}
	for _, p := range cfg.Positionals {
		assert.NotError1(fmt.Fprintf(w, " %s", positionalSynopsis(p)))
	}
	assert.NotError1(fmt.Fprint(w, "\n"))
}

// PrintHelp writes full help text to w: the usage synopsis (unless disabled
// via [capparser.Config.EnableUsage]), the description, one entry per flag
// and positional, and the epilogue. If cfg.CustomHelp is non-empty, it is
// written verbatim instead and nothing else is rendered.
func PrintHelp(cfg *capparser.Config, w io.Writer) {
	if cfg.CustomHelp != "" {
		assert.NotError1(fmt.Fprint(w, cfg.CustomHelp))
		return
	}

	if cfg.UsageEnabled {
		PrintUsage(cfg, w)
		assert.NotError1(fmt.Fprint(w, "\n"))
	}

	if cfg.Description != "" {
		assert.NotError1(fmt.Fprintf(w, "%s\n\n", textwrap.Do(cfg.Description, wrapWidth, "")))
	}

	if len(cfg.Positionals) > 0 {
		assert.NotError1(fmt.Fprint(w, "Arguments:\n"))
		for _, p := range cfg.Positionals {
			printEntry(w, positionalSynopsis(p), p.Description)
		}
		assert.NotError1(fmt.Fprint(w, "\n"))
	}

	if len(cfg.Flags) > 0 || cfg.HelpFlag != nil {
		assert.NotError1(fmt.Fprint(w, "Options:\n"))
		for _, f := range cfg.Flags {
			printEntry(w, flagSynopsis(f.Name, f.Aliases, f.Type, f.MetaName), f.Description)
		}
		if cfg.HelpFlag != nil {
			printEntry(w, flagSynopsis(cfg.HelpFlag.Name, cfg.HelpFlag.Aliases, cfg.HelpFlag.Type, ""), cfg.HelpFlag.Description)
		}
		assert.NotError1(fmt.Fprint(w, "\n"))
	}

	if cfg.Epilogue != "" {
		assert.NotError1(fmt.Fprintf(w, "%s\n", textwrap.Do(cfg.Epilogue, wrapWidth, "")))
	}
}

func printEntry(w io.Writer, synopsis, description string) {
	assert.NotError1(fmt.Fprintf(w, "  %s\n", synopsis))
	if description != "" {
		assert.NotError1(fmt.Fprintf(w, "%s\n", textwrap.Do(description, wrapWidth, "      ")))
	}
}

func positionalSynopsis(p capparser.PositionalDescriptor) string {
	name := p.MetaName
	if name == "" {
		name = p.Name
	}
	switch {
	case p.Variadic && p.Required:
		return fmt.Sprintf("%s [%s...]", name, name)
	case p.Variadic:
		return fmt.Sprintf("[%s...]", name)
	case p.Required:
		return name
	default:
		return fmt.Sprintf("[%s]", name)
	}
}

func flagSynopsis(name string, aliases []string, typ value.Kind, metaName string) string {
	s := name
	for _, a := range aliases {
		s += ", " + a
	}
	if typ != value.Presence {
		meta := metaName
		if meta == "" {
			meta = "VALUE"
		}
		s += " " + meta
	}
	return s
}
