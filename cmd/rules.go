package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gnolang/ndcheck/check"
	"github.com/spf13/cobra"
)

// ndcheck rules
func newRulesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the enabled inference rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := check.New(root.cfgFile)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOLS\tNAME\tUSAGE")
			for _, r := range engine.Rules() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", strings.Join(r.Symbols(), ", "), r.Name(), r.Usage())
			}
			return w.Flush()
		},
	}
}
