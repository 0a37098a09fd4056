// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pflagcompat provides a pflag-flavored, pointer-returning
// convenience layer on top of the root "github.com/tidycli/cap" package:
// BoolVarP, StringVarP, Int64VarP, and Float64VarP register a flag by long
// name with an optional single-character short alias and arrange for
// [*FlagSet.Parse] to populate a caller-supplied pointer.
//
// This is an ergonomic subset, not a drop-in replacement for
// [github.com/spf13/pflag]: bundled short options (-fsL) and "--flag=value"
// syntax are out of scope here, matching the rest of this module.
package pflagcompat
