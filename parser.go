// parser.go - the ergonomic facade over pkg/capparser.
// SPDX-License-Identifier: GPL-3.0-or-later

package cap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidycli/cap/pkg/assert"
	"github.com/tidycli/cap/pkg/capparser"
	"github.com/tidycli/cap/pkg/capusage"
	"github.com/tidycli/cap/pkg/store"
	"github.com/tidycli/cap/pkg/value"
)

// Parser wraps a [*capparser.Config] with exit-on-error ergonomics: a
// configurable Exit function and output streams, and a Parse method that
// knows how to turn a help request or a parse error into printed text plus
// a process exit, depending on ErrorHandling.
//
// The zero value is not ready to use; construct one with [NewParser] or
// [NewEmptyParser].
type Parser struct {
	// Config is the underlying parser configuration. Every registration
	// method on [*Parser] is a thin forwarding call onto this value;
	// callers may also use it directly for anything this facade does not
	// wrap.
	Config *capparser.Config

	// ErrorHandling controls what [*Parser.Parse] does on failure.
	ErrorHandling ErrorHandling

	// Env supplies Exit and the output streams. [NewParser] and
	// [NewEmptyParser] initialize it with [NewStdlibExecEnv].
	Env ExecEnv

	// Result holds the outcome of the most recent successful
	// [*Parser.Parse] call.
	Result *capparser.Result
}

// NewParser returns a [*Parser] built on [capparser.DefaultConfig]: prefix
// '-', help flag "-h", and separator "--" are already registered.
func NewParser(progname string, handling ErrorHandling) *Parser {
	assert.True(progname != "", "cap: NewParser: program name must not be empty")
	cfg := capparser.DefaultConfig()
	cfg.SetProgramName(progname)
	return &Parser{
		Config:        cfg,
		ErrorHandling: handling,
		Env:           NewStdlibExecEnv(),
	}
}

// NewEmptyParser returns a [*Parser] built on [capparser.NewConfig]: only
// the default prefix '-' is registered. Use this when you want full
// control over (or want to disable) the help flag and separator.
func NewEmptyParser(progname string, handling ErrorHandling) *Parser {
	assert.True(progname != "", "cap: NewEmptyParser: program name must not be empty")
	cfg := capparser.NewConfig()
	cfg.SetProgramName(progname)
	return &Parser{
		Config:        cfg,
		ErrorHandling: handling,
		Env:           NewStdlibExecEnv(),
	}
}

// --- registration forwarding ---

// AddFlag forwards to [capparser.Config.AddFlag].
func (px *Parser) AddFlag(name string, typ value.Kind, minCount, maxCount int, metaName, description string) (*capparser.FlagDescriptor, error) {
	return px.Config.AddFlag(name, typ, minCount, maxCount, metaName, description)
}

// AddFlagAlias forwards to [capparser.Config.AddFlagAlias].
func (px *Parser) AddFlagAlias(name, alias string) error {
	return px.Config.AddFlagAlias(name, alias)
}

// AddPositional forwards to [capparser.Config.AddPositional].
func (px *Parser) AddPositional(name string, typ value.Kind, required, variadic bool, metaName, description string) error {
	return px.Config.AddPositional(name, typ, required, variadic, metaName, description)
}

// SetHelpFlag forwards to [capparser.Config.SetHelpFlag].
func (px *Parser) SetHelpFlag(name, description string) error {
	return px.Config.SetHelpFlag(name, description)
}

// SetFlagSeparator forwards to [capparser.Config.SetFlagSeparator].
func (px *Parser) SetFlagSeparator(name, description string) error {
	return px.Config.SetFlagSeparator(name, description)
}

// SetFlagPrefix forwards to [capparser.Config.SetFlagPrefix].
func (px *Parser) SetFlagPrefix(chars []byte) error {
	return px.Config.SetFlagPrefix(chars)
}

// SetDescription forwards to [capparser.Config.SetDescription].
func (px *Parser) SetDescription(text string) { px.Config.SetDescription(text) }

// SetEpilogue forwards to [capparser.Config.SetEpilogue].
func (px *Parser) SetEpilogue(text string) { px.Config.SetEpilogue(text) }

// SetCustomHelp forwards to [capparser.Config.SetCustomHelp].
func (px *Parser) SetCustomHelp(text string) { px.Config.SetCustomHelp(text) }

// EnableHelp forwards to [capparser.Config.EnableHelp].
func (px *Parser) EnableHelp(enabled bool) { px.Config.EnableHelp(enabled) }

// EnableUsage forwards to [capparser.Config.EnableUsage].
func (px *Parser) EnableUsage(enabled bool) { px.Config.EnableUsage(enabled) }

// --- parsing ---

// Parse parses args (which must NOT include the program name) against the
// receiver's configuration.
//
// On success it stores the outcome in px.Result and returns nil. On a help
// request or a parse error, behavior depends on px.ErrorHandling:
//
//   - [ContinueOnError] returns the error (possibly
//     [capparser.ErrHelpRequested]) unchanged.
//   - [ExitOnError] prints help to Stdout and exits 0 for a help request,
//     or prints the error plus a help hint to Stderr and exits 2 otherwise.
//   - [PanicOnError] panics with the error.
func (px *Parser) Parse(args []string) error {
	argv := make([]string, 0, 1+len(args))
	argv = append(argv, px.Config.ProgramName)
	argv = append(argv, args...)

	result, err := px.Config.Parse(argv)
	if err == nil {
		px.Result = result
	}
	return px.maybeHandleError(err)
}

func (px *Parser) maybeHandleError(err error) error {
	switch {
	case err == nil:
		return nil

	case px.ErrorHandling == ContinueOnError:
		return err

	case px.ErrorHandling == ExitOnError && errors.Is(err, capparser.ErrHelpRequested):
		var sb strings.Builder
		capusage.PrintHelp(px.Config, &sb)
		fmt.Fprint(px.Env.Stdout(), sb.String())
		px.Env.Exit(0)

	case px.ErrorHandling == ExitOnError:
		fmt.Fprintf(px.Env.Stderr(), "%s: %s\n", px.Config.ProgramName, err.Error())
		if px.Config.HelpFlag != nil {
			fmt.Fprintf(px.Env.Stderr(), "Try '%s %s' for more help.\n", px.Config.ProgramName, px.Config.HelpFlag.Name)
		}
		px.Env.Exit(2)
	}

	panic(err)
}

// --- result access ---

// Flags returns the flag store from the most recent successful Parse, or
// an empty store if Parse has not yet succeeded.
func (px *Parser) Flags() *store.Store {
	if px.Result == nil {
		return store.Empty()
	}
	return px.Result.Flags
}

// Positionals returns the positional store from the most recent successful
// Parse, or an empty store if Parse has not yet succeeded.
func (px *Parser) Positionals() *store.Store {
	if px.Result == nil {
		return store.Empty()
	}
	return px.Result.Positionals
}
