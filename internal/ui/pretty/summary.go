package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ftomassetti/javaparser/pkg/runner"
)

const (
	maxDividerWidth = 40
	wordFile        = "file"
	wordFiles       = "files"
)

func plural(count int) string {
	if count == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 of 12 files failed (1 unreadable)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	total := stats.FilesChecked + stats.FilesErrored
	failed := stats.FilesFailed + stats.FilesErrored

	if failed == 0 {
		return s.Success.Render("All files passed") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesChecked, plural(stats.FilesChecked))) + "\n"
	}

	msg := s.Failure.Render(fmt.Sprintf("%d of %d %s failed", failed, total, plural(total)))
	if stats.FilesErrored > 0 {
		msg += s.Dim.Render(fmt.Sprintf(" (%d unreadable)", stats.FilesErrored))
	}
	return msg + "\n"
}

// FormatSummary formats run statistics as a summary block. The divider is
// sized to width, up to 40 columns.
func (s *Styles) FormatSummary(stats runner.Stats, width int) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", max(1, min(width, maxDividerWidth))))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesChecked)) + "\n")

	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files unreadable:  " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	if stats.FilesFailed > 0 || stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Check failed"))
	} else {
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
