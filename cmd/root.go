package cmd

import (
	"time"

	"github.com/gnolang/ndcheck/check"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTimeout = time.Minute

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
}

// NewRootCmd builds the ndcheck command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:              "ndcheck [paths...]",
		Short:            "ndcheck - a natural deduction proof checker",
		Args:             cobra.ArbitraryArgs,
		SilenceUsage:     true,
		TraverseChildren: true, // Prioritize subcommands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	checkCmd := newCheckCmd(opts)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		// no subcommand
		if len(args) == 0 {
			return cmd.Help()
		}
		// Format: ndcheck [path1 path2 ...] => behaves like the check subcommand
		checkCmd.SetContext(cmd.Context())
		return checkCmd.RunE(checkCmd, args)
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", check.DefaultConfigFile, "Path to the configuration file")
	flags.DurationVar(&opts.timeout, "timeout", defaultTimeout, "Time allowed for checking all proofs")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newRulesCmd(opts))

	return rootCmd
}

func (o *rootOptions) initLogger() error {
	var (
		logger *zap.Logger
		err    error
	)
	if o.verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err = cfg.Build()
	}
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}

func Execute() error {
	return NewRootCmd().Execute()
}
