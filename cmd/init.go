package cmd

import (
	"fmt"

	"github.com/gnolang/ndcheck/check"
	"github.com/spf13/cobra"
)

// ndcheck init
func newInitCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new checker configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.cfgFile
			if path == "" {
				path = check.DefaultConfigFile
			}
			if err := check.WriteConfig(path, check.DefaultConfig()); err != nil {
				return fmt.Errorf("error initializing config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
			return nil
		},
	}
}
