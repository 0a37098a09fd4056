// value.go - the typed value cell.
// SPDX-License-Identifier: GPL-3.0-or-later

package value

import "github.com/tidycli/cap/pkg/assert"

// Value is a tagged cell holding exactly one of: presence, a signed
// integer, a double, or an owned string. The zero value is a [Presence]
// value, which is also the result of [MakePresence].
type Value struct {
	kind Kind
	i    int64
	d    float64
	s    string
}

// MakePresence returns a [Value] of [Kind] [Presence].
func MakePresence() Value {
	return Value{kind: Presence}
}

// MakeInt returns a [Value] of [Kind] [Int] wrapping i.
func MakeInt(i int64) Value {
	return Value{kind: Int, i: i}
}

// MakeDouble returns a [Value] of [Kind] [Double] wrapping d.
func MakeDouble(d float64) Value {
	return Value{kind: Double, d: d}
}

// MakeString returns a [Value] of [Kind] [String] wrapping a copy of s.
//
// Go strings are already immutable, so "copying" s is simply assigning it;
// the resulting [Value] never aliases a caller-owned mutable buffer.
func MakeString(s string) Value {
	return Value{kind: String, s: s}
}

// Kind returns the [Kind] of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsPresence reports whether v has [Kind] [Presence].
func (v Value) IsPresence() bool { return v.kind == Presence }

// IsInt reports whether v has [Kind] [Int].
func (v Value) IsInt() bool { return v.kind == Int }

// IsDouble reports whether v has [Kind] [Double].
func (v Value) IsDouble() bool { return v.kind == Double }

// IsString reports whether v has [Kind] [String].
func (v Value) IsString() bool { return v.kind == String }

// AsInt returns the wrapped integer. It panics if v is not [Int].
func (v Value) AsInt() int64 {
	assert.True(v.kind == Int, "value: AsInt called on a non-Int value")
	return v.i
}

// AsDouble returns the wrapped double. It panics if v is not [Double].
func (v Value) AsDouble() float64 {
	assert.True(v.kind == Double, "value: AsDouble called on a non-Double value")
	return v.d
}

// AsString returns the wrapped string. It panics if v is not [String].
func (v Value) AsString() string {
	assert.True(v.kind == String, "value: AsString called on a non-String value")
	return v.s
}

// Destroy releases any resources owned by v.
//
// Go values of this shape are garbage collected automatically and own no
// external handle, so this method is a documented no-op. It exists so the
// [Value] API mirrors the ownership-transfer shape of the rest of this
// component family (see [github.com/tidycli/cap/pkg/store.Store.Destroy]).
func (v Value) Destroy() {}

// Equal reports whether v and other hold the same [Kind] and, for
// non-Presence kinds, the same payload. Every pair of [Presence] values is
// equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Presence:
		return true
	case Int:
		return v.i == other.i
	case Double:
		return v.d == other.d
	case String:
		return v.s == other.s
	default:
		return false
	}
}
