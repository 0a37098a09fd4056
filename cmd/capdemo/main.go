// main.go - example program exercising the cap facade end to end.
// SPDX-License-Identifier: GPL-3.0-or-later

// Command capdemo is a small example program built on top of the root
// "github.com/tidycli/cap" package. It accepts ordinary command-line
// arguments, or a single quoted command line passed via --command-line,
// which it tokenizes with [github.com/kballard/go-shellquote.Split] before
// feeding the result back through the same parser.
package main

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"

	"github.com/tidycli/cap"
	"github.com/tidycli/cap/pkg/capparser"
	"github.com/tidycli/cap/pkg/value"
)

func buildParser() *cap.Parser {
	px := cap.NewParser("capdemo", cap.ExitOnError)
	px.SetDescription("capdemo greets a target and optionally repeats itself.")
	px.SetEpilogue("Pass --command-line to parse a single shell-quoted string instead of the real argv.")

	addFlag(px, "--name", value.String, 0, 1, "NAME", "name to use in the greeting (default: world)")
	addFlag(px, "--count", value.Int, 0, 1, "N", "number of times to repeat the greeting (default: 1)")
	addFlag(px, "--verbose", value.Presence, 0, 1, "", "print one line per repetition instead of joining them")
	addFlag(px, "--command-line", value.String, 0, 1, "LINE", "parse LINE, a single shell-quoted string, in place of argv")

	if err := px.AddFlagAlias("--name", "-n"); err != nil {
		panic(err)
	}
	if err := px.AddFlagAlias("--count", "-c"); err != nil {
		panic(err)
	}
	if err := px.AddFlagAlias("--verbose", "-v"); err != nil {
		panic(err)
	}
	if err := px.AddPositional("target", value.String, false, false, "TARGET", "who to greet, alternative to --name"); err != nil {
		panic(err)
	}
	return px
}

func addFlag(px *cap.Parser, name string, typ value.Kind, minCount, maxCount int, metaName, description string) *capparser.FlagDescriptor {
	fd, err := px.AddFlag(name, typ, minCount, maxCount, metaName, description)
	if err != nil {
		panic(err)
	}
	return fd
}

func greetingFor(px *cap.Parser) (text string, count int64, verbose bool) {
	name := "world"
	if v, ok := px.Flags().Get("--name"); ok {
		name = v.AsString()
	} else if v, ok := px.Positionals().Get("target"); ok {
		name = v.AsString()
	}
	count = 1
	if v, ok := px.Flags().Get("--count"); ok {
		count = v.AsInt()
	}
	return fmt.Sprintf("hello, %s!", name), count, px.Flags().Has("--verbose")
}

func emit(px *cap.Parser) {
	text, count, verbose := greetingFor(px)
	if !verbose {
		for i := int64(0); i < count; i++ {
			if i > 0 {
				fmt.Fprint(px.Env.Stdout(), " ")
			}
			fmt.Fprint(px.Env.Stdout(), text)
		}
		fmt.Fprintln(px.Env.Stdout())
		return
	}
	for i := int64(0); i < count; i++ {
		fmt.Fprintln(px.Env.Stdout(), text)
	}
}

func main() {
	px := buildParser()

	if err := px.Parse(os.Args[1:]); err != nil {
		return // ExitOnError already printed a message and exited
	}

	if v, ok := px.Flags().Get("--command-line"); ok {
		tokens, err := shellquote.Split(v.AsString())
		if err != nil {
			fmt.Fprintf(os.Stderr, "capdemo: invalid --command-line value: %s\n", err)
			os.Exit(2)
		}
		if err := px.Parse(tokens); err != nil {
			return
		}
	}

	emit(px)
}
