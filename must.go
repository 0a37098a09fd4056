// must.go - the must function.
// SPDX-License-Identifier: GPL-3.0-or-later

package cap

// Must calls env.Exit(1) if err is not nil. It is meant for call sites
// after a [ContinueOnError] [*Parser.Parse] where any failure past parsing
// itself (e.g. opening a file named by a positional) should still abort
// the program uniformly.
func Must(env ExecEnv, err error) {
	if err != nil {
		env.Exit(1)
	}
}
