// doc.go - documentation
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package capparser implements the command-line argument grammar and the
state machine that consumes an argument vector against it.

A [Config] is built up during a registration phase using [Config.AddFlag],
[Config.AddFlagAlias], [Config.AddPositional], [Config.SetHelpFlag],
[Config.SetFlagSeparator], and the plain accessors ([Config.SetProgramName]
and friends). Every registration call that can fail returns one of the
typed configuration-time errors declared in errors.go (such as
[ErrNameAlreadyExists]); none of them panic on caller-supplied input. Once built, [Config.Parse] consumes an argument
vector and returns a [Result] holding two independent
[github.com/tidycli/cap/pkg/store.Store] values (one for flags, one for
positionals), or a typed parse-time error, or the [ErrHelpRequested]
sentinel.

[Config] itself never mutates after a successful call to [Config.Parse];
nothing in this package prevents further registration calls afterwards, but
doing so is the caller's responsibility to avoid — see the package-level
contract described in the root-level "cap" package, which is the facade
most callers should use instead of this package directly.

[NewConfig] returns a bare configuration with only the default prefix
character `'-'`; [DefaultConfig] additionally preregisters the conventional
`-h` help flag and `--` separator, mirroring the "empty" vs. "default"
constructor pair common in argument-parsing libraries.
*/
package capparser
