package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/fix"
	"github.com/ftomassetti/javaparser/pkg/lexical"
	"github.com/ftomassetti/javaparser/pkg/parser"
	"github.com/ftomassetti/javaparser/pkg/runner"
)

// FormatOutcome formats one checked file. Passing files get a single line;
// failures add the reason and, when the checker produced two texts, a diff
// between them.
func (s *Styles) FormatOutcome(outcome runner.FileOutcome, displayPath string) string {
	var builder strings.Builder

	if outcome.Passed() {
		builder.WriteString("  " + s.Pass.Render("ok") + "    " + s.FilePath.Render(displayPath) + "\n")
		return builder.String()
	}

	err := outcome.ReadError
	if err == nil {
		err = outcome.Error
	}

	builder.WriteString("  " + s.Fail.Render("FAIL") + "  " +
		s.FilePath.Render(displayPath) + s.Location.Render(location(err)) + "\n")
	builder.WriteString("        " + s.Message.Render(reason(err)) + "\n")

	if diff := mismatchDiff(displayPath, err); diff.HasChanges() {
		builder.WriteString(indentLines(s.FormatDiff(diff), "        "))
	}

	return builder.String()
}

func location(err error) string {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf(":%d:%d", syntaxErr.Pos.Line, syntaxErr.Pos.Column)
	}
	return ""
}

func reason(err error) string {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Message
	}
	return err.Error()
}

func mismatchDiff(path string, err error) *fix.Diff {
	var roundTrip *lexical.RoundTripError
	if errors.As(err, &roundTrip) {
		return fix.GenerateNamedDiff(path, path+" (printed)", []byte(roundTrip.Want), []byte(roundTrip.Got))
	}

	var idempotence *csm.IdempotenceError
	if errors.As(err, &idempotence) {
		return fix.GenerateNamedDiff(path+" (first)", path+" (second)",
			[]byte(idempotence.First), []byte(idempotence.Second))
	}
	return nil
}

func indentLines(text, prefix string) string {
	lines := strings.SplitAfter(text, "\n")
	var builder strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		builder.WriteString(prefix + line)
	}
	return builder.String()
}
