// config_test.go - tests for registration-time validation.
// SPDX-License-Identifier: GPL-3.0-or-later

package capparser

import (
	"testing"

	"github.com/tidycli/cap/pkg/value"
)

func TestDefaultConfigPreregisters(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HelpFlag == nil || cfg.HelpFlag.Name != "-h" {
		t.Fatalf("expected default help flag -h, got %+v", cfg.HelpFlag)
	}
	if cfg.SeparatorName != "--" {
		t.Fatalf("expected default separator --, got %q", cfg.SeparatorName)
	}
}

func TestAddFlagRejectsBadPrefix(t *testing.T) {
	cfg := NewConfig()
	_, err := cfg.AddFlag("c", value.Int, 0, -1, "N", "count")
	if _, ok := err.(ErrInvalidPrefix); !ok {
		t.Fatalf("expected ErrInvalidPrefix, got %#v", err)
	}
}

func TestAddFlagRejectsDuplicateName(t *testing.T) {
	cfg := NewConfig()
	if _, err := cfg.AddFlag("-c", value.Int, 0, -1, "N", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := cfg.AddFlag("-c", value.String, 0, -1, "", "")
	if _, ok := err.(ErrNameAlreadyExists); !ok {
		t.Fatalf("expected ErrNameAlreadyExists, got %#v", err)
	}
}

func TestAddFlagRejectsInvalidCount(t *testing.T) {
	cfg := NewConfig()
	if _, err := cfg.AddFlag("-c", value.Int, -1, 5, "", ""); err == nil {
		t.Fatal("expected error for negative min")
	}
	if _, err := cfg.AddFlag("-d", value.Int, 5, 2, "", ""); err == nil {
		t.Fatal("expected error for max < min")
	}
	if _, err := cfg.AddFlag("-e", value.Int, 0, -1, "", ""); err != nil {
		t.Fatalf("unexpected error for unbounded max: %v", err)
	}
	if _, err := cfg.AddFlag("-f", value.Int, 0, 0, "", ""); err != nil {
		t.Fatalf("min=0 max=0 must be legal at registration time: %v", err)
	}
}

func TestSetFlagPrefixLocksAfterAnyRegistration(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.SetFlagPrefix([]byte{'+'}); err != nil {
		t.Fatalf("unexpected error on bare config: %v", err)
	}
	if _, err := cfg.AddFlag("+c", value.Int, 0, -1, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.SetFlagPrefix([]byte{'-'}); err == nil {
		t.Fatal("expected ErrPrefixChangeAfterFlags")
	} else if _, ok := err.(ErrPrefixChangeAfterFlags); !ok {
		t.Fatalf("expected ErrPrefixChangeAfterFlags, got %#v", err)
	}
}

func TestSetFlagPrefixLockedByDefaultHelpFlag(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.SetFlagPrefix([]byte{'+'}); err == nil {
		t.Fatal("expected the default help flag to lock the prefix set")
	}
}

func TestAddFlagAliasAccumulatesUnderCanonicalName(t *testing.T) {
	cfg := NewConfig()
	if _, err := cfg.AddFlag("--file", value.String, 0, -1, "F", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.AddFlagAlias("--file", "--fi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.AddFlagAlias("--file", "-f"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.AddFlagAlias("--file", "-f"); err == nil {
		t.Fatal("expected re-registering an alias to fail")
	}
	if got := cfg.Flags[0].Aliases; len(got) != 2 || got[0] != "--fi" || got[1] != "-f" {
		t.Fatalf("expected aliases [--fi -f] on the canonical --file descriptor, got %v", got)
	}
	if err := cfg.AddFlagAlias("--missing", "-x"); err == nil {
		t.Fatal("expected aliasing an unknown flag to fail")
	} else if _, ok := err.(ErrAliasForUnknownFlag); !ok {
		t.Fatalf("expected ErrAliasForUnknownFlag, got %#v", err)
	}
}

func TestAddFlagAliasWorksForHelpAndSeparator(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.AddFlagAlias("-h", "--help"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HelpFlag.Aliases[0] != "--help" {
		t.Fatalf("expected --help to be registered as a help alias, got %+v", cfg.HelpFlag.Aliases)
	}
	if err := cfg.AddFlagAlias("--", "-end"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.SeparatorAliases) != 1 || cfg.SeparatorAliases[0] != "-end" {
		t.Fatalf("expected -end to be registered as a separator alias, got %+v", cfg.SeparatorAliases)
	}
}

func TestSetHelpFlagDisableAndReplace(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.SetHelpFlag("", ""); err != nil {
		t.Fatalf("unexpected error disabling help: %v", err)
	}
	if cfg.HelpFlag != nil {
		t.Fatal("expected help flag to be nil after disabling")
	}
	// -h is now free to reuse as a regular flag.
	if _, err := cfg.AddFlag("-h", value.Presence, 0, 1, "", ""); err != nil {
		t.Fatalf("expected -h to be reusable after disabling help: %v", err)
	}
}

func TestAddPositionalOrderingRules(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.AddPositional("word", value.String, true, false, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.AddPositional("maybe", value.String, false, false, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := cfg.AddPositional("oops", value.String, true, false, "", "")
	if _, ok := err.(ErrRequiredAfterOptional); !ok {
		t.Fatalf("expected ErrRequiredAfterOptional, got %#v", err)
	}

	cfg2 := NewConfig()
	if err := cfg2.AddPositional("rest", value.String, false, true, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = cfg2.AddPositional("more", value.String, false, false, "", "")
	if _, ok := err.(ErrAnythingAfterVariadic); !ok {
		t.Fatalf("expected ErrAnythingAfterVariadic, got %#v", err)
	}
}

func TestAddPositionalRejectsPresenceAndBadName(t *testing.T) {
	cfg := NewConfig()
	err := cfg.AddPositional("x", value.Presence, true, false, "", "")
	if _, ok := err.(ErrPresenceForPositional); !ok {
		t.Fatalf("expected ErrPresenceForPositional, got %#v", err)
	}
	err = cfg.AddPositional("-bad", value.String, true, false, "", "")
	if _, ok := err.(ErrInvalidPositionalName); !ok {
		t.Fatalf("expected ErrInvalidPositionalName, got %#v", err)
	}
	err = cfg.AddPositional("", value.String, true, false, "", "")
	if _, ok := err.(ErrInvalidPositionalName); !ok {
		t.Fatalf("expected ErrInvalidPositionalName for empty name, got %#v", err)
	}
}
