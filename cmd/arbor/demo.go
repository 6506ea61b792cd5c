package main

import (
	"github.com/npillmayer/arbor"
	"github.com/spf13/cobra"
)

func init() {
	subcommands = append(subcommands, &cobra.Command{
		Use:   "demo",
		Short: "Draw a sample tree of 29 numbered nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := demoTree()
			if err != nil {
				return err
			}
			return output(cmd, tree, nil)
		},
	})
}

// demoTree creates a tree of nodes 0…28 of varying fan-out.
func demoTree() (*arbor.Tree[int], error) {
	tree := arbor.WithRoot(0)
	parents := []struct{ parent, children int }{
		{0, 4}, {1, 5}, {2, 7}, {3, 4}, {4, 3},
		{5, 1}, {6, 1}, {7, 1}, {8, 1}, {9, 1},
	}
	v := 1
	for _, p := range parents {
		for i := 0; i < p.children; i++ {
			if _, err := tree.AddChild(p.parent, v); err != nil {
				return nil, err
			}
			v++
		}
	}
	return tree, nil
}
