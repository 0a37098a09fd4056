// store.go - the named-value store.
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"

	"github.com/tidycli/cap/pkg/value"
)

// Store is an ordered sequence of [Entry] values with pairwise distinct
// names. The zero value is ready to use; [Empty] is provided for parity
// with the rest of the component family and for readability at call sites.
type Store struct {
	entries []Entry
}

// Empty returns a new, empty [Store].
func Empty() *Store {
	return &Store{}
}

// ErrTypeMismatch indicates that [Store.Append] was asked to add a value
// whose [value.Kind] differs from the kind already stored under Name.
type ErrTypeMismatch struct {
	// Name is the entry's key.
	Name string

	// Have is the kind already stored under Name.
	Have value.Kind

	// Want is the kind of the value that was rejected.
	Want value.Kind
}

var _ error = ErrTypeMismatch{}

// Error implements the error interface.
func (err ErrTypeMismatch) Error() string {
	return fmt.Sprintf("store: cannot append a %s value to entry %q holding %s values",
		err.Want, err.Name, err.Have)
}

// Has reports whether the store has an entry for name.
func (s *Store) Has(name string) bool {
	return s.indexOf(name) >= 0
}

// Count returns the number of values stored under name, or zero if name is
// absent.
func (s *Store) Count(name string) int {
	if idx := s.indexOf(name); idx >= 0 {
		return len(s.entries[idx].Values)
	}
	return 0
}

// Get returns the first value stored under name. It is shorthand for
// [Store.GetAt] with index zero.
func (s *Store) Get(name string) (value.Value, bool) {
	return s.GetAt(name, 0)
}

// GetAt returns the i-th (0-based) value stored under name, or false if
// name is absent or i is out of range.
func (s *Store) GetAt(name string, i int) (value.Value, bool) {
	idx := s.indexOf(name)
	if idx < 0 || i < 0 || i >= len(s.entries[idx].Values) {
		return value.Value{}, false
	}
	return s.entries[idx].Values[i], true
}

// Entry returns the full [Entry] stored under name, if any.
func (s *Store) Entry(name string) (Entry, bool) {
	if idx := s.indexOf(name); idx >= 0 {
		return s.entries[idx], true
	}
	return Entry{}, false
}

// Entries returns every [Entry] in the store, in insertion order. The
// returned slice is owned by the caller but its elements must not be used
// to mutate the store; use [Store.Append]/[Store.Set] for that.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Append appends v to the entry for name, creating the entry if absent.
//
// It returns [ErrTypeMismatch] if an entry already exists for name and its
// [value.Kind] differs from v.Kind(). This is the accumulation mode used
// for repeatable flags and for the tail of a variadic positional.
func (s *Store) Append(name string, v value.Value) error {
	if idx := s.indexOf(name); idx >= 0 {
		entry := &s.entries[idx]
		if have := entry.Kind(); have != v.Kind() {
			return ErrTypeMismatch{Name: name, Have: have, Want: v.Kind()}
		}
		entry.Values = append(entry.Values, v)
		return nil
	}
	s.entries = append(s.entries, Entry{Name: name, Values: []value.Value{v}})
	return nil
}

// Set creates or replaces the entry for name so that it holds exactly one
// value, v. Unlike [Store.Append], the [value.Kind] may change across
// calls. This is the single-value mode used for non-variadic positionals.
func (s *Store) Set(name string, v value.Value) {
	if idx := s.indexOf(name); idx >= 0 {
		s.entries[idx].Values = []value.Value{v}
		return
	}
	s.entries = append(s.entries, Entry{Name: name, Values: []value.Value{v}})
}

// Destroy releases resources held by the store.
//
// Go's garbage collector reclaims every value reachable only from s once s
// is unreferenced, so this method is a documented no-op; it exists so
// callers that model resource ownership explicitly have a single place to
// call when they are done with a [Store].
func (s *Store) Destroy() {}

func (s *Store) indexOf(name string) int {
	for i := range s.entries {
		if s.entries[i].Name == name {
			return i
		}
	}
	return -1
}
