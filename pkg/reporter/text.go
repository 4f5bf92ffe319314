package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/ftomassetti/javaparser/internal/ui/pretty"
	"github.com/ftomassetti/javaparser/pkg/runner"
)

// TextReporter writes one entry per failing file and a summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	block  bool
	width  int
}

// NewTextReporter creates a text reporter. With block set the summary is a
// multi-line block sized to the terminal instead of a single line.
func NewTextReporter(opts Options, block bool) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		block:  block,
		width:  pretty.TerminalWidth(opts.Writer),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush report: %w", flushErr)
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	for _, outcome := range result.Files {
		if outcome.Passed() && !r.opts.Verbose {
			continue
		}
		if _, err := bw.WriteString(r.styles.FormatOutcome(outcome, relativePath(r.opts.WorkingDir, outcome.Path))); err != nil {
			return 0, fmt.Errorf("write report: %w", err)
		}
	}

	summary := r.styles.FormatSummaryOneLine(result.Stats)
	if r.block {
		summary = r.styles.FormatSummary(result.Stats, r.width)
	}
	if _, err := bw.WriteString(summary); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}

	return failures(result), nil
}
