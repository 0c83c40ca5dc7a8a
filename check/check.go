package check

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gnolang/ndcheck/internal"
	"github.com/gnolang/ndcheck/internal/proof"
	tt "github.com/gnolang/ndcheck/internal/types"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

type ProofChecker interface {
	Check(doc *proof.Document) tt.Report
	IgnoreRule(symbol string) error
}

// Result is the outcome of checking one proof file.
type Result struct {
	ID       uuid.UUID       `json:"id"`
	Path     string          `json:"path"`
	Report   tt.Report       `json:"report"`
	Document *proof.Document `json:"-"`
}

// Processor checks the proof file at path.
type Processor func(ProofChecker, string) (Result, error)

// New creates an engine configured from the file at configurationPath.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(config)
}

// NewFromConfig creates an engine from an already loaded configuration.
func NewFromConfig(config Config) (*internal.Engine, error) {
	return internal.NewEngine(internal.Options{
		StrictNames: config.StrictNames,
		Parallel:    config.Parallel,
		Rules:       config.Rules,
	})
}

// ProcessFile loads and checks a single proof file.
func ProcessFile(engine ProofChecker, path string) (Result, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ID:       uuid.New(),
		Path:     path,
		Report:   engine.Check(doc),
		Document: doc,
	}, nil
}

// Cached wraps processor so unchanged files reuse their last report.
func Cached(cache *internal.Cache, logger *zap.Logger, processor Processor) Processor {
	return func(engine ProofChecker, path string) (Result, error) {
		if report, ok := cache.Get(path); ok {
			doc, err := LoadDocument(path)
			if err != nil {
				return Result{}, err
			}
			return Result{ID: uuid.New(), Path: path, Report: report, Document: doc}, nil
		}

		result, err := processor(engine, path)
		if err != nil {
			return result, err
		}
		if err := cache.Set(path, result.Report); err != nil && logger != nil {
			logger.Warn("Error caching report", zap.String("file", path), zap.Error(err))
		}
		return result, nil
	}
}

// ProcessFiles checks every path in order. Directories are searched
// for proof files.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine ProofChecker,
	paths []string,
	processor Processor,
) ([]Result, error) {
	var (
		allResults []Result
		errs       []error
	)
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			if ctx.Err() != nil {
				return nil, err
			}
			errs = append(errs, err)
		}
		allResults = append(allResults, results...)
	}

	return allResults, errors.Join(errs...)
}

// ProcessPath checks a proof file, or every proof file below a
// directory using one worker per CPU. Files that cannot be read are
// logged and reported in the returned error; the others are still
// checked.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine ProofChecker,
	path string,
	processor Processor,
) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		result, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		return []Result{result}, nil
	}

	files, err := findProofFiles(path)
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(len(files) > 1),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	results := make([]Result, len(files))
	fileErrs := make([]error, len(files))

	// limit the number of workers
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup

loop:
	for i, filePath := range files {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := processor(engine, filePath)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", filePath), zap.Error(err))
				}
				fileErrs[i] = err
			} else {
				results[i] = result
			}
			_ = bar.Add(1)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(files))
	for i := range files {
		if fileErrs[i] == nil {
			out = append(out, results[i])
		}
	}
	return out, errors.Join(fileErrs...)
}

// findProofFiles lists the proof files below dir in lexical order.
// Hidden files, such as the configuration, are skipped.
func findProofFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || !internal.IsProofFile(filePath) {
			return nil
		}
		files = append(files, filePath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", dir, err)
	}
	return files, nil
}
