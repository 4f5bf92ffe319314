package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ftomassetti/javaparser/internal/logging"
)

// Checker verifies one source file. A returned error is a finding about that
// file, not a failure of the run.
type Checker interface {
	Name() string
	Check(ctx context.Context, path string, src []byte) error
}

// Runner checks many files with one Checker.
type Runner struct {
	// Checker is applied to every discovered file.
	Checker Checker

	// Logger receives per-file debug output. Defaults to logging.Default().
	Logger *log.Logger
}

// New creates a new Runner for the given checker.
func New(checker Checker) *Runner {
	return &Runner{Checker: checker}
}

// Run discovers files under opts.Paths and checks them concurrently.
// Outcomes come back in path order whatever the completion order was.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = logging.Default()
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, len(files))}
	result.Stats.FilesDiscovered = len(files)

	logger.Debug("discovered files",
		logging.FieldFilesDiscovered, len(files),
		"checker", r.Checker.Name(),
	)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result.Files[i] = r.checkFile(groupCtx, logger, path)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range result.Files {
		result.accumulate(outcome)
	}

	logger.Debug("run complete",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
	)

	return result, nil
}

func (r *Runner) checkFile(ctx context.Context, logger *log.Logger, path string) FileOutcome {
	outcome := FileOutcome{Path: path}
	start := time.Now()

	src, err := os.ReadFile(path)
	if err != nil {
		outcome.ReadError = fmt.Errorf("read file: %w", err)
		return outcome
	}

	outcome.Error = r.Checker.Check(ctx, path, src)
	outcome.Duration = time.Since(start)

	if outcome.Error != nil {
		logger.Debug("check failed", logging.FieldPath, path, logging.FieldError, outcome.Error)
	}
	return outcome
}
