// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package cap is an ergonomic, exit-on-error-aware facade over
github.com/tidycli/cap/pkg/capparser.

Most programs only need this package:

	px := cap.NewParser("mytool", cap.ExitOnError)
	px.SetDescription("Does a thing, repeatedly, to some words.")
	px.AddFlag("-c", value.Int, 0, -1, "N", "how many times")
	px.AddPositional("word", value.String, true, false, "", "the word")

	if err := px.Parse(os.Args[1:]); err != nil {
		return
	}
	for _, entry := range px.Flags().Entries() {
		_ = entry
	}

# ErrorHandling

[ErrorHandling] controls what [*Parser.Parse] does with a parse-time
failure or a help request: [ContinueOnError] returns the error unchanged,
[ExitOnError] prints a message (or help text, for a help request) and
calls Exit, and [PanicOnError] panics. This mirrors the standard library's
own flag package, with a help request treated as exit code 0 and every
other error as exit code 2.

# Relationship to capparser

[*Parser] wraps a [*github.com/tidycli/cap/pkg/capparser.Config] value
directly (exposed as [Parser.Config]) and forwards every registration
call to it; nothing here changes the parsing semantics implemented there.
Callers who want the configuration/engine split without exit-on-error
ergonomics can use capparser directly instead.
*/
package cap
