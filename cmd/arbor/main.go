/*
Command arbor draws trees with box-drawing characters.

	arbor demo --vertical
	arbor bst 50 20 70 10 --glyphs light
	arbor bst --random 30 --format html
	arbor outline notes.txt --indent 4
	curl -s https://example.com | arbor html - --table

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// options holds the flags shared by all subcommands.
type options struct {
	vertical bool
	size     int
	glyphs   string
	color    bool
	noColor  bool
	format   string
	trace    string
	table    bool
}

var opts options

// subcommands register themselves in init().
var subcommands []*cobra.Command

func main() {
	argparser := newArgparser()
	if err := argparser.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}

func newArgparser() *cobra.Command {
	argparser := &cobra.Command{
		Use:   "arbor {[flags]|SUBCOMMAND}",
		Short: "Draw trees with box-drawing characters",

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return setupTracing(opts.trace)
		},
	}
	flags := argparser.PersistentFlags()
	flags.BoolVar(&opts.vertical, "vertical", false, "draw the root at the top instead of at the left margin")
	flags.IntVar(&opts.size, "size", arbor.DefaultSize, "number of cells between a node and its children")
	flags.StringVar(&opts.glyphs, "glyphs", "heavy", "box-drawing characters: heavy, light or ascii")
	flags.BoolVar(&opts.color, "color", false, "always color the output")
	flags.BoolVar(&opts.noColor, "no-color", false, "never color the output")
	flags.StringVar(&opts.format, "format", "text", "output format: text, html or dot")
	flags.StringVar(&opts.trace, "trace", "", "trace level: debug, info or error")
	flags.BoolVar(&opts.table, "table", false, "list the arena of the tree after drawing it")
	for _, cmd := range subcommands {
		argparser.AddCommand(cmd)
	}
	return argparser
}

func setupTracing(level string) error {
	if level == "" {
		return nil
	}
	tl := tracing.TraceLevelFromString(level)
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tl)
	selector := tracing.SelectorForAdapter(gologadapter.GetAdapter())
	selector.Select("arbor").SetTraceLevel(tl) // the selector hands out a single tracer
	tracing.SetTraceSelector(selector)
	gtrace.CoreTracer.Infof("tracing with level %s", tl)
	return nil
}
