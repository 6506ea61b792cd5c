package main

import (
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/textfile"
	"github.com/spf13/cobra"
)

func init() {
	var loadOpts textfile.Options
	cmd := &cobra.Command{
		Use:   "outline FILE",
		Short: "Draw an indented outline file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := textfile.Load(args[0], &loadOpts)
			if err != nil {
				return err
			}
			return output(cmd, tree, arbor.NewParams(plainLayout()))
		},
	}
	cmd.Flags().IntVar(&loadOpts.Indent, "indent", textfile.DefaultIndent, "spaces per level of indentation")
	cmd.Flags().StringVar(&loadOpts.SyntheticRoot, "root", "", "group top-level lines below a root `NAME`")
	subcommands = append(subcommands, cmd)
}
