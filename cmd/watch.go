package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gnolang/ndcheck/check"
	"github.com/gnolang/ndcheck/internal"
	tt "github.com/gnolang/ndcheck/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dirs...]",
		Short: "Re-check proof files whenever they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			engine, err := check.New(root.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to initialize proof engine: %w", err)
			}

			var mu sync.Mutex
			out := cmd.OutOrStdout()
			checkFile := func(path string) (tt.Report, error) {
				result, err := check.ProcessFile(engine, path)
				if err != nil {
					return tt.Report{}, err
				}
				return result.Report, nil
			}
			onReport := func(path string, report tt.Report) {
				mu.Lock()
				defer mu.Unlock()
				if !report.Valid {
					if doc, err := check.LoadDocument(path); err == nil {
						fmt.Fprint(out, internal.FormatReport(path, doc, report))
					}
				}
				fmt.Fprint(out, internal.FormatSummary(path, report))
			}

			watcher, err := internal.NewWatcher(root.logger, checkFile, onReport)
			if err != nil {
				return err
			}
			defer watcher.Close()

			if err := watcher.Add(args...); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			root.logger.Info("watching for proof changes", zap.Strings("dirs", args))
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
