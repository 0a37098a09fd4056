// errors.go - configuration-time and parse-time error taxonomies.
// SPDX-License-Identifier: GPL-3.0-or-later

package capparser

import (
	"errors"
	"fmt"

	"github.com/kballard/go-shellquote"
)

// quote renders a single argv fragment the way a shell would need it typed,
// so that error messages never swallow embedded spaces or quoting.
func quote(s string) string {
	return shellquote.Join(s)
}

// --- configuration-time errors --------------------------------------------
//
// Every method on [Config] that can be misused by caller-supplied
// registration arguments returns one of these instead of panicking. A panic
// (via the assert helpers) is reserved for violations of this package's own
// internal invariants, never for caller input.

// ErrNameAlreadyExists indicates that a name or alias is already registered,
// whether as a flag, an alias, the help flag, or the separator flag.
type ErrNameAlreadyExists struct {
	Name string
}

var _ error = ErrNameAlreadyExists{}

func (err ErrNameAlreadyExists) Error() string {
	return fmt.Sprintf("capparser: name %s is already registered", quote(err.Name))
}

// ErrInvalidPrefix indicates that a flag, help-flag, or separator name does
// not begin with one of the configuration's registered prefix characters.
type ErrInvalidPrefix struct {
	Name string
}

var _ error = ErrInvalidPrefix{}

func (err ErrInvalidPrefix) Error() string {
	return fmt.Sprintf("capparser: name %s does not start with a registered prefix character", quote(err.Name))
}

// ErrPrefixChangeAfterFlags indicates an attempt to call
// [Config.SetFlagPrefix] after at least one flag, help flag, or separator
// flag has already been registered.
type ErrPrefixChangeAfterFlags struct{}

var _ error = ErrPrefixChangeAfterFlags{}

func (err ErrPrefixChangeAfterFlags) Error() string {
	return "capparser: cannot change the prefix character set once a flag has been registered"
}

// ErrPresenceForPositional indicates an attempt to register a positional
// with [value.Presence] type, which positionals cannot carry.
type ErrPresenceForPositional struct {
	Name string
}

var _ error = ErrPresenceForPositional{}

func (err ErrPresenceForPositional) Error() string {
	return fmt.Sprintf("capparser: positional %s cannot have presence type", quote(err.Name))
}

// ErrInvalidPositionalName indicates that a positional's name is empty or
// begins with a registered prefix character.
type ErrInvalidPositionalName struct {
	Name string
}

var _ error = ErrInvalidPositionalName{}

func (err ErrInvalidPositionalName) Error() string {
	return fmt.Sprintf("capparser: invalid positional name %s", quote(err.Name))
}

// ErrRequiredAfterOptional indicates an attempt to register a required
// positional after an optional one.
type ErrRequiredAfterOptional struct {
	Name string
}

var _ error = ErrRequiredAfterOptional{}

func (err ErrRequiredAfterOptional) Error() string {
	return fmt.Sprintf("capparser: required positional %s cannot follow an optional positional", quote(err.Name))
}

// ErrAnythingAfterVariadic indicates an attempt to register a positional
// after a variadic one, which must be last.
type ErrAnythingAfterVariadic struct {
	Name string
}

var _ error = ErrAnythingAfterVariadic{}

func (err ErrAnythingAfterVariadic) Error() string {
	return fmt.Sprintf("capparser: positional %s cannot follow a variadic positional", quote(err.Name))
}

// ErrInvalidCount indicates that a flag's MinCount/MaxCount pair is
// inconsistent: MinCount is negative, or MaxCount is non-negative and less
// than MinCount.
type ErrInvalidCount struct {
	Min, Max int
}

var _ error = ErrInvalidCount{}

func (err ErrInvalidCount) Error() string {
	return fmt.Sprintf("capparser: invalid count bounds min=%d max=%d", err.Min, err.Max)
}

// ErrAliasForUnknownFlag indicates that [Config.AddFlagAlias] was called
// with a name that is not currently registered as a flag, help flag, or
// separator flag.
type ErrAliasForUnknownFlag struct {
	Name string
}

var _ error = ErrAliasForUnknownFlag{}

func (err ErrAliasForUnknownFlag) Error() string {
	return fmt.Sprintf("capparser: %s is not a registered flag", quote(err.Name))
}

// --- parse-time errors -----------------------------------------------------
//
// [Config.Parse] returns exactly one of these (or [ErrHelpRequested], or
// nil) per call.

// ErrHelpRequested is returned by [Config.Parse] when the argument vector
// contains the configured help flag. It is not a failure: callers typically
// render help text and exit zero upon seeing it, mirroring how flag.ErrHelp
// is treated in the standard library's own flag package.
var ErrHelpRequested = errors.New("capparser: help requested")

// ErrUnknownFlag indicates that a prefixed token does not match any
// registered flag, alias, help flag, or separator.
type ErrUnknownFlag struct {
	Token string
}

var _ error = ErrUnknownFlag{}

func (err ErrUnknownFlag) Error() string {
	return fmt.Sprintf("capparser: unknown flag %s", quote(err.Token))
}

// ErrMissingFlagValue indicates that a flag requiring a value was the last
// token in the argument vector.
type ErrMissingFlagValue struct {
	Flag string
}

var _ error = ErrMissingFlagValue{}

func (err ErrMissingFlagValue) Error() string {
	return fmt.Sprintf("capparser: flag %s requires a value", quote(err.Flag))
}

// ErrCannotParseFlag indicates that a flag's value text could not be parsed
// as the flag's declared type. Cause holds the underlying
// github.com/tidycli/cap/pkg/value parse error.
type ErrCannotParseFlag struct {
	Flag  string
	Raw   string
	Cause error
}

var _ error = ErrCannotParseFlag{}

func (err ErrCannotParseFlag) Error() string {
	return fmt.Sprintf("capparser: cannot parse value %s for flag %s: %s",
		quote(err.Raw), quote(err.Flag), err.Cause)
}

func (err ErrCannotParseFlag) Unwrap() error {
	return err.Cause
}

// ErrCannotParsePositional is the positional analogue of
// [ErrCannotParseFlag].
type ErrCannotParsePositional struct {
	Name  string
	Raw   string
	Cause error
}

var _ error = ErrCannotParsePositional{}

func (err ErrCannotParsePositional) Error() string {
	return fmt.Sprintf("capparser: cannot parse value %s for positional %s: %s",
		quote(err.Raw), quote(err.Name), err.Cause)
}

func (err ErrCannotParsePositional) Unwrap() error {
	return err.Cause
}

// ErrTooManyFlags indicates that a flag appeared more times than its
// MaxCount allows.
type ErrTooManyFlags struct {
	Flag string
}

var _ error = ErrTooManyFlags{}

func (err ErrTooManyFlags) Error() string {
	return fmt.Sprintf("capparser: flag %s given more times than allowed", quote(err.Flag))
}

// ErrNotEnoughFlags indicates that a flag appeared fewer times than its
// MinCount requires.
type ErrNotEnoughFlags struct {
	Flag string
}

var _ error = ErrNotEnoughFlags{}

func (err ErrNotEnoughFlags) Error() string {
	return fmt.Sprintf("capparser: flag %s given fewer times than required", quote(err.Flag))
}

// ErrTooManyPositionals indicates that a non-flag token appeared after
// every registered positional slot (including any variadic tail) was
// already satisfied.
type ErrTooManyPositionals struct {
	Token string
}

var _ error = ErrTooManyPositionals{}

func (err ErrTooManyPositionals) Error() string {
	return fmt.Sprintf("capparser: unexpected extra argument %s", quote(err.Token))
}

// ErrNotEnoughPositionals indicates that a required positional (or a
// required variadic positional's minimum of one value) was never supplied.
type ErrNotEnoughPositionals struct {
	Name string
}

var _ error = ErrNotEnoughPositionals{}

func (err ErrNotEnoughPositionals) Error() string {
	return fmt.Sprintf("capparser: missing required positional %s", quote(err.Name))
}

// ErrEmptyArgument indicates that argv contained an empty string at Index.
// An empty argument can never be a meaningful flag or positional value, so
// it is rejected outright rather than silently treated as a zero-length
// positional.
type ErrEmptyArgument struct {
	Index int
}

var _ error = ErrEmptyArgument{}

func (err ErrEmptyArgument) Error() string {
	return fmt.Sprintf("capparser: empty argument at position %d", err.Index)
}
