// entry.go - a single named sequence of values.
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/tidycli/cap/pkg/value"

// Entry associates a name with an ordered, non-empty sequence of
// [value.Value], all sharing the same [value.Kind].
type Entry struct {
	// Name is the entry's key. It is never empty.
	Name string

	// Values holds the entry's payload in insertion order.
	Values []value.Value
}

// Kind returns the [value.Kind] shared by every value in the entry.
//
// The caller must only invoke this on an [Entry] obtained from a [Store];
// a zero-value [Entry] has no values and Kind panics in that case.
func (e Entry) Kind() value.Kind {
	return e.Values[0].Kind()
}
