// stdlib_test.go - tests for the standard-library execution environment.
// SPDX-License-Identifier: GPL-3.0-or-later

package cap

import (
	"bytes"
	"os"
	"testing"
)

func TestNewStdlibExecEnvDefaults(t *testing.T) {
	ee := NewStdlibExecEnv()
	if ee.Stdout() != os.Stdout {
		t.Fatal("expected Stdout to default to os.Stdout")
	}
	if ee.Stderr() != os.Stderr {
		t.Fatal("expected Stderr to default to os.Stderr")
	}
	if len(ee.Args()) == 0 {
		t.Fatal("expected Args to default to a non-empty os.Args")
	}
}

func TestStdlibExecEnvExitIsOverridable(t *testing.T) {
	ee := NewStdlibExecEnv()
	var got int
	var called bool
	ee.OSExit = func(code int) { got, called = code, true }
	ee.Exit(3)
	if !called || got != 3 {
		t.Fatalf("Exit(3) -> called=%v code=%d", called, got)
	}
}

func TestStdlibExecEnvBuffersAreUsable(t *testing.T) {
	var out, errw bytes.Buffer
	ee := &StdlibExecEnv{OSArgs: []string{"prog"}, OSExit: func(int) {}, OSStdout: &out, OSStderr: &errw}
	ee.Stdout().Write([]byte("hi"))
	if out.String() != "hi" {
		t.Fatalf("got %q", out.String())
	}
	_ = errw
}
