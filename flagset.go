// flagset.go - error handling policy shared by the root-level facade.
// SPDX-License-Identifier: GPL-3.0-or-later

package cap

// ErrorHandling controls what [*Parser.Parse] does when parsing fails or
// the configured help flag is seen.
type ErrorHandling int

const (
	// ContinueOnError causes [*Parser.Parse] to return the error (or
	// [github.com/tidycli/cap/pkg/capparser.ErrHelpRequested]) unchanged.
	ContinueOnError = ErrorHandling(iota)

	// ExitOnError causes [*Parser.Parse] to print a message (help text to
	// Stdout on a help request, an error plus a help hint to Stderr otherwise)
	// and call Exit with 0 or 2 respectively.
	ExitOnError

	// PanicOnError causes [*Parser.Parse] to panic with the error.
	PanicOnError
)
