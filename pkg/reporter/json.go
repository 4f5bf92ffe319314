package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/lexical"
	"github.com/ftomassetti/javaparser/pkg/parser"
	"github.com/ftomassetti/javaparser/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's result.
type JSONFileResult struct {
	Path       string       `json:"path"`
	Passed     bool         `json:"passed"`
	DurationMS float64      `json:"durationMs"`
	Error      string       `json:"error,omitempty"`
	Finding    *JSONFinding `json:"finding,omitempty"`
}

// JSONFinding carries the structured part of a failure.
type JSONFinding struct {
	Kind   string `json:"kind"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
	Node   string `json:"node,omitempty"`
	Start  int    `json:"start,omitempty"`
	End    int    `json:"end,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesChecked    int `json:"filesChecked"`
	FilesFailed     int `json:"filesFailed"`
	FilesErrored    int `json:"filesErrored"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return failures(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesChecked:    result.Stats.FilesChecked,
		FilesFailed:     result.Stats.FilesFailed,
		FilesErrored:    result.Stats.FilesErrored,
	}

	for _, outcome := range result.Files {
		if outcome.Passed() && !r.opts.Verbose {
			continue
		}

		fileResult := JSONFileResult{
			Path:       relativePath(r.opts.WorkingDir, outcome.Path),
			Passed:     outcome.Passed(),
			DurationMS: float64(outcome.Duration.Microseconds()) / 1000,
		}

		switch {
		case outcome.ReadError != nil:
			fileResult.Error = outcome.ReadError.Error()
			fileResult.Finding = &JSONFinding{Kind: "read"}
		case outcome.Error != nil:
			fileResult.Error = outcome.Error.Error()
			fileResult.Finding = finding(outcome.Error)
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}

func finding(err error) *JSONFinding {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &JSONFinding{Kind: "syntax", Line: syntaxErr.Pos.Line, Column: syntaxErr.Pos.Column}
	}

	var roundTrip *lexical.RoundTripError
	if errors.As(err, &roundTrip) {
		return &JSONFinding{
			Kind:  "roundtrip",
			Node:  roundTrip.Kind.String(),
			Start: roundTrip.Range.Start,
			End:   roundTrip.Range.End,
		}
	}

	var idempotence *csm.IdempotenceError
	if errors.As(err, &idempotence) {
		return &JSONFinding{Kind: "idempotence"}
	}

	return &JSONFinding{Kind: "other"}
}
