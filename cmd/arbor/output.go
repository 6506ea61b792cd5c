package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/console"
	arborhtml "github.com/npillmayer/arbor/html"
	"github.com/spf13/cobra"
)

func glyphTable(name string) (arbor.Glyphs, error) {
	switch strings.ToLower(name) {
	case "heavy", "":
		return arbor.HeavyBox, nil
	case "light":
		return arbor.LightBox, nil
	case "ascii":
		return arbor.ASCIIBox, nil
	}
	return arbor.Glyphs{}, fmt.Errorf("unknown glyph table %q", name)
}

// plainLayout labels nodes with their plain values and renders children after
// their parent, keeping the order of the input.
func plainLayout() arbor.Option[string] {
	return arbor.WithLayout[string](arbor.LayoutFuncs[string]{
		LabelFn: func(v string, _ []string) string { return v },
		SplitFn: arbor.SplitNone[string],
	})
}

// output renders a tree as configured by the command line flags.
func output[T any](cmd *cobra.Command, tree *arbor.Tree[T], p *arbor.PrintParams[T]) error {
	if p == nil {
		p = arbor.DefaultParams[T]()
	}
	glyphs, err := glyphTable(opts.glyphs)
	if err != nil {
		return err
	}
	p.Glyphs = glyphs
	p.Size = opts.size
	if err = p.Validate(); err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch opts.format {
	case "dot":
		err = arbor.Tree2Dot(tree, w, p)
	case "html":
		err = arborhtml.WritePre(w, render(tree, p))
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
	case "text", "":
		config := console.ConfigFromTerminal()
		if opts.color {
			config.Color = true
		} else if opts.noColor {
			config.Color = false
		}
		err = console.NewPrinter(glyphs, config).Print(w, render(tree, p))
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	if err == nil && opts.table {
		_, err = fmt.Fprintln(w, console.ArenaTable(tree, p))
	}
	return err
}

func render[T any](tree *arbor.Tree[T], p *arbor.PrintParams[T]) string {
	if opts.vertical {
		return tree.VerticalString(p)
	}
	return tree.HorizontalString(p)
}
