// render_test.go - tests for help and usage rendering.
// SPDX-License-Identifier: GPL-3.0-or-later

package capusage

import (
	"strings"
	"testing"

	"github.com/tidycli/cap/pkg/capparser"
	"github.com/tidycli/cap/pkg/value"
)

func testConfig(t *testing.T) *capparser.Config {
	t.Helper()
	cfg := capparser.DefaultConfig()
	cfg.SetProgramName("demo")
	cfg.SetDescription("Demonstrates the library.")
	if _, err := cfg.AddFlag("-c", value.Int, 0, -1, "N", "repeat count"); err != nil {
		t.Fatalf("AddFlag: %v", err)
	}
	if err := cfg.AddPositional("word", value.String, true, false, "", "a word to echo"); err != nil {
		t.Fatalf("AddPositional: %v", err)
	}
	return cfg
}

func TestPrintUsageIncludesSynopsis(t *testing.T) {
	cfg := testConfig(t)
	var sb strings.Builder
	PrintUsage(cfg, &sb)
	out := sb.String()
	if !strings.HasPrefix(out, "Usage: demo [options]") {
		t.Fatalf("unexpected synopsis: %q", out)
	}
	if !strings.Contains(out, "word") {
		t.Fatalf("expected positional name in synopsis: %q", out)
	}
}

func TestPrintHelpListsFlagsAndPositionals(t *testing.T) {
	cfg := testConfig(t)
	var sb strings.Builder
	PrintHelp(cfg, &sb)
	out := sb.String()

	for _, want := range []string{"Usage: demo", "Demonstrates the library.", "Arguments:", "word", "a word to echo", "Options:", "-c N", "repeat count", "-h"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help text missing %q, got:\n%s", want, out)
		}
	}
}

func TestPrintHelpRespectsCustomHelp(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetCustomHelp("totally custom\n")
	var sb strings.Builder
	PrintHelp(cfg, &sb)
	if sb.String() != "totally custom\n" {
		t.Fatalf("got %q, want verbatim custom help", sb.String())
	}
}

func TestPrintHelpHonorsUsageToggle(t *testing.T) {
	cfg := testConfig(t)
	cfg.EnableUsage(false)
	var sb strings.Builder
	PrintHelp(cfg, &sb)
	if strings.Contains(sb.String(), "Usage:") {
		t.Fatalf("expected usage synopsis to be suppressed, got:\n%s", sb.String())
	}
}
