package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnolang/ndcheck/check"
	"github.com/gnolang/ndcheck/internal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errInvalidProof is returned when at least one checked proof has failures.
var errInvalidProof = errors.New("one or more proofs are not valid")

type checkOptions struct {
	ignoreRules string
	jsonOutput  bool
	outPath     string
	strict      bool
	parallel    bool
	cacheDir    string
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check proof files and directories of proof files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("please provide file or directory paths")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), root.timeout)
			defer cancel()

			config, err := check.LoadConfig(root.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cmd.Flags().Changed("strict") {
				config.StrictNames = opts.strict
			}
			if cmd.Flags().Changed("parallel") {
				config.Parallel = opts.parallel
			}

			engine, err := check.NewFromConfig(config)
			if err != nil {
				root.logger.Error("Failed to initialize proof engine", zap.Error(err))
				return err
			}

			if opts.ignoreRules != "" {
				for _, rule := range strings.Split(opts.ignoreRules, ",") {
					if err := engine.IgnoreRule(strings.TrimSpace(rule)); err != nil {
						return fmt.Errorf("--ignore: %w", err)
					}
				}
			}

			processor := check.Processor(check.ProcessFile)
			if opts.cacheDir != "" {
				cache, err := internal.NewCache(opts.cacheDir, engine.Fingerprint())
				if err != nil {
					return fmt.Errorf("failed to open cache: %w", err)
				}
				processor = check.Cached(cache, root.logger, processor)
			}

			return runCheckProcess(ctx, cmd.OutOrStdout(), root.logger, engine, args, processor, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ignoreRules, "ignore", "", "Comma-separated list of rule symbols to disable")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output reports in JSON format")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output path (when using JSON)")
	flags.BoolVar(&opts.strict, "strict", false, "Reject generalizations over names that are not arbitrary")
	flags.BoolVar(&opts.parallel, "parallel", false, "Check the lines of each proof concurrently")
	flags.StringVar(&opts.cacheDir, "cache-dir", "", "Reuse reports of unchanged files stored in this directory")

	return cmd
}

func runCheckProcess(
	ctx context.Context,
	out io.Writer,
	logger *zap.Logger,
	engine check.ProofChecker,
	paths []string,
	processor check.Processor,
	opts *checkOptions,
) error {
	results, err := check.ProcessFiles(ctx, logger, engine, paths, processor)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		if len(results) == 0 {
			return err
		}
	}

	if opts.jsonOutput {
		if perr := printJSON(out, results, opts.outPath); perr != nil {
			return perr
		}
	} else {
		printReports(out, results)
	}

	if err != nil {
		return err
	}
	for _, result := range results {
		if !result.Report.Valid {
			return errInvalidProof
		}
	}
	return nil
}

func printReports(out io.Writer, results []check.Result) {
	for _, result := range results {
		if !result.Report.Valid {
			fmt.Fprint(out, internal.FormatReport(result.Path, result.Document, result.Report))
		}
	}
	for _, result := range results {
		fmt.Fprint(out, internal.FormatSummary(result.Path, result.Report))
	}
}

func printJSON(out io.Writer, results []check.Result, outPath string) error {
	d, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling reports to JSON: %w", err)
	}
	if outPath == "" {
		_, err = fmt.Fprintln(out, string(d))
		return err
	}
	if err := os.WriteFile(outPath, d, 0o644); err != nil {
		return fmt.Errorf("error writing JSON output file: %w", err)
	}
	return nil
}
