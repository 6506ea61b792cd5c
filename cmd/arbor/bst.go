package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/bst"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	var random int
	cmd := &cobra.Command{
		Use:   "bst [NUMBER...]",
		Short: "Insert numbers into a binary search tree and draw it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseNumbers(args)
			if err != nil {
				return err
			}
			if random > 0 {
				rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
				values = append(values, lo.Times(random, func(int) int {
					return rnd.Intn(1000)
				})...)
			}
			bt := bst.New[int]()
			for _, v := range values {
				bt.Insert(v)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "in-order: %v\n", bt.Inorder())
			return output(cmd, bt.Tree(), arbor.NewParams(arbor.WithLayout(bt.Layout())))
		},
	}
	cmd.Flags().IntVar(&random, "random", 0, "insert `N` additional random numbers")
	subcommands = append(subcommands, cmd)
}

func parseNumbers(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", arg)
		}
		values[i] = n
	}
	return values, nil
}
