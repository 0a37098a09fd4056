// store_test.go - tests for the named-value store.
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidycli/cap/pkg/value"
)

func TestEmptyStoreHasNothing(t *testing.T) {
	s := Empty()
	if s.Has("x") {
		t.Fatal("expected Has to be false on an empty store")
	}
	if got := s.Count("x"); got != 0 {
		t.Fatalf("Count() = %d, want 0", got)
	}
	if _, ok := s.Get("x"); ok {
		t.Fatal("expected Get to report absence")
	}
}

func TestAppendAccumulates(t *testing.T) {
	s := Empty()
	if err := s.Append("-c", value.MakeString("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Append("-c", value.MakeString("b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s.Count("-c"); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	v0, ok := s.GetAt("-c", 0)
	if !ok || v0.AsString() != "a" {
		t.Fatalf("GetAt(0) = %v, %v, want \"a\", true", v0, ok)
	}
	v1, ok := s.GetAt("-c", 1)
	if !ok || v1.AsString() != "b" {
		t.Fatalf("GetAt(1) = %v, %v, want \"b\", true", v1, ok)
	}
	if _, ok := s.GetAt("-c", 2); ok {
		t.Fatal("expected GetAt(2) to report absence")
	}
}

func TestAppendRejectsTypeMismatch(t *testing.T) {
	s := Empty()
	if err := s.Append("-b", value.MakeDouble(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := s.Append("-b", value.MakeInt(1))
	if err == nil {
		t.Fatal("expected a type mismatch error")
	}
	mismatch, ok := err.(ErrTypeMismatch)
	if !ok {
		t.Fatalf("expected ErrTypeMismatch, got %T", err)
	}
	if mismatch.Have != value.Double || mismatch.Want != value.Int {
		t.Fatalf("unexpected mismatch details: %+v", mismatch)
	}
	if got := s.Count("-b"); got != 1 {
		t.Fatalf("Count() = %d, want 1 (rejected append must not mutate)", got)
	}
}

func TestSetReplacesAndAllowsTypeChange(t *testing.T) {
	s := Empty()
	s.Set("word", value.MakeString("abcd"))
	if got := s.Count("word"); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
	s.Set("word", value.MakeInt(100))
	if got := s.Count("word"); got != 1 {
		t.Fatalf("Count() after re-Set = %d, want 1", got)
	}
	v, ok := s.Get("word")
	if !ok || !v.Equal(value.MakeInt(100)) {
		t.Fatalf("Get() = %v, %v, want MakeInt(100), true", v, ok)
	}
}

func TestEntriesPreservesInsertionOrder(t *testing.T) {
	s := Empty()
	s.Set("second", value.MakeInt(2))
	s.Set("first", value.MakeInt(1))
	s.Append("second", value.MakeInt(22))

	got := s.Entries()
	want := []Entry{
		{Name: "second", Values: []value.Value{value.MakeInt(2), value.MakeInt(22)}},
		{Name: "first", Values: []value.Value{value.MakeInt(1)}},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(value.Value{})); diff != "" {
		t.Fatalf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreOwnsCopiedStrings(t *testing.T) {
	buf := []byte("mutable")
	s := Empty()
	s.Set("name", value.MakeString(string(buf)))
	buf[0] = 'X'

	got, ok := s.Get("name")
	if !ok || got.AsString() != "mutable" {
		t.Fatalf("mutating the source buffer must not affect the store, got %q", got.AsString())
	}
}
