package main

import (
	"io"
	"os"

	"github.com/npillmayer/arbor"
	arborhtml "github.com/npillmayer/arbor/html"
	"github.com/spf13/cobra"
)

func init() {
	subcommands = append(subcommands, &cobra.Command{
		Use:   "html {FILE|-}",
		Short: "Draw the element hierarchy of an HTML fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				input = f
			}
			tree, err := arborhtml.TreeFromHTML(input)
			if err != nil {
				return err
			}
			return output(cmd, tree, arbor.NewParams(plainLayout()))
		},
	})
}
