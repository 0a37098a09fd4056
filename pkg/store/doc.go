// doc.go - documentation
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package store implements the ordered, name-keyed value container produced
by a command-line parse.

A [Store] holds zero or more [Entry] values, each a name paired with an
ordered, non-empty sequence of [value.Value]. All the values within one
[Entry] share a single [value.Kind]: [Store.Append] enforces this at
insertion time, returning [ErrTypeMismatch] rather than silently storing a
mixed-type entry. [Store.Set] instead always produces a single-value entry,
replacing whatever entry previously existed under that name regardless of
its type — this is the shape a positional argument needs, since a later
positional registered under the same configuration never writes to the same
name twice except when accumulating a variadic tail (which uses [Store.Append]
for exactly that reason).

Lookups by name ([Store.Has], [Store.Count], [Store.Get], [Store.GetAt]) are
linear scans over a small slice: argument grammars have at most a few dozen
names, so the simplicity of a slice beats the overhead of a map, and it
keeps iteration order equal to registration order for free — useful for a
[Store] that a caller might range over when building its own summary.
*/
package store
