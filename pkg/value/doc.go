// doc.go - documentation
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package value implements the tagged cell used to store a single parsed
command-line value.

A [Value] always carries a [Kind] tag identifying which of four shapes it
holds: [Presence] (a flag occurred but carries no payload), [Int], [Double],
or [String]. Unlike a Go interface holding one of several concrete types, a
[Value] is a small, comparable struct: constructing one with [MakePresence],
[MakeInt], [MakeDouble], or [MakeString] never allocates beyond copying the
string payload, and comparing two values with [Value.Equal] never needs a
type switch at the call site.

# Constructing and Reading

	v := value.MakeInt(42)
	if v.Kind() == value.Int {
		fmt.Println(v.AsInt()) // 42
	}

Accessors such as [Value.AsInt] panic if the [Kind] does not match; callers
are expected to branch on [Value.Kind] (or on one of the Is* helpers) first,
exactly as the [Value] received from a command-line parse always matches the
declared type of the flag or positional it came from.

# Parsing Raw Tokens

[ParseInt] and [ParseDouble] implement the strict decimal grammars used to
turn a raw command-line token into a [Value]: the entire token must be
consumed, with no partial matches and no locale-dependent formatting.
*/
package value
