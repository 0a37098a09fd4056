// stdlib.go - standard library execution environment.
// SPDX-License-Identifier: GPL-3.0-or-later

package cap

import (
	"io"
	"os"
)

// StdlibExecEnv is the [ExecEnv] every real program uses: it reads
// [os.Args] and writes to [os.Stdout]/[os.Stderr]/[os.Exit]. The zero
// value is not ready to use; construct one with [NewStdlibExecEnv] and
// customize fields afterwards if needed (tests typically replace OSExit
// and the two writers).
type StdlibExecEnv struct {
	// OSArgs is initialized with [os.Args].
	OSArgs []string

	// OSExit is initialized with [os.Exit].
	OSExit func(exitcode int)

	// OSStdout is initialized with [os.Stdout].
	OSStdout io.Writer

	// OSStderr is initialized with [os.Stderr].
	OSStderr io.Writer
}

var _ ExecEnv = &StdlibExecEnv{}

// NewStdlibExecEnv creates a new [*StdlibExecEnv].
func NewStdlibExecEnv() *StdlibExecEnv {
	return &StdlibExecEnv{
		OSArgs:   os.Args,
		OSExit:   os.Exit,
		OSStdout: os.Stdout,
		OSStderr: os.Stderr,
	}
}

// Args implements [ExecEnv].
func (ee *StdlibExecEnv) Args() []string { return ee.OSArgs }

// Exit implements [ExecEnv].
func (ee *StdlibExecEnv) Exit(exitcode int) { ee.OSExit(exitcode) }

// Stdout implements [ExecEnv].
func (ee *StdlibExecEnv) Stdout() io.Writer { return ee.OSStdout }

// Stderr implements [ExecEnv].
func (ee *StdlibExecEnv) Stderr() io.Writer { return ee.OSStderr }
