package cmd

import (
	"fmt"

	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "parse [formulas...]",
		Short: "Parse formulas and print their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := formula.NewParser()
			out := cmd.OutOrStdout()
			for _, arg := range args {
				node, err := p.Parse(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				fmt.Fprintln(out, node.String())
				if tree {
					fmt.Fprint(out, node.Dump())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "Also print the expression tree")
	return cmd
}
