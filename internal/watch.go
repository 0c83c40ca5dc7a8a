package internal

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	tt "github.com/gnolang/ndcheck/internal/types"
	"go.uber.org/zap"
)

var proofExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// IsProofFile reports whether path has an extension proof files use.
func IsProofFile(path string) bool {
	return proofExtensions[strings.ToLower(filepath.Ext(path))]
}

// CheckFunc checks the proof stored at path.
type CheckFunc func(path string) (tt.Report, error)

// Watcher re-checks proof files whenever they are written.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	check    CheckFunc
	onReport func(path string, report tt.Report)
	settle   time.Duration
}

func NewWatcher(logger *zap.Logger, check CheckFunc, onReport func(string, tt.Report)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:  fw,
		logger:   logger,
		check:    check,
		onReport: onReport,
		settle:   100 * time.Millisecond,
	}, nil
}

// Add watches dir and every directory below it.
func (w *Watcher) Add(dirs ...string) error {
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}
	return nil
}

// Run handles file events until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addCreatedDir(event.Name)
			return
		}
	}
	if !IsProofFile(event.Name) {
		return
	}

	// editors often write a file in several steps
	time.Sleep(w.settle)
	w.recheck(event.Name)
}

// addCreatedDir watches a directory that appeared after Add and checks
// the proof files written into it before the watch took effect.
func (w *Watcher) addCreatedDir(dir string) {
	if err := w.Add(dir); err != nil {
		w.logger.Error("error watching new directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	w.logger.Debug("watching new directory", zap.String("dir", dir))

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && IsProofFile(path) {
			w.recheck(path)
		}
		return nil
	})
}

func (w *Watcher) recheck(path string) {
	report, err := w.check(path)
	if err != nil {
		w.logger.Error("error checking proof", zap.String("file", path), zap.Error(err))
		return
	}
	w.logger.Debug("proof re-checked",
		zap.String("file", path),
		zap.Bool("valid", report.Valid),
		zap.Int("failures", len(report.Failures())))
	w.onReport(path, report)
}
