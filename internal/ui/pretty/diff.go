package pretty

import (
	"fmt"
	"strings"

	"github.com/ftomassetti/javaparser/pkg/fix"
)

// FormatDiff renders a unified diff with colored headers and lines.
func (s *Styles) FormatDiff(diff *fix.Diff) string {
	if !diff.HasChanges() {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render("--- a/"+strings.TrimPrefix(diff.OldName, "/")) + "\n")
	builder.WriteString(s.DiffHeader.Render("+++ b/"+strings.TrimPrefix(diff.NewName, "/")) + "\n")

	for _, hunk := range diff.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount, hunk.ModifiedStart, hunk.ModifiedCount)
		builder.WriteString(s.DiffHunk.Render(header) + "\n")

		for _, line := range hunk.Lines {
			switch line.Kind {
			case fix.DiffLineAdd:
				builder.WriteString(s.DiffAdd.Render("+"+line.Content) + "\n")
			case fix.DiffLineRemove:
				builder.WriteString(s.DiffRemove.Render("-"+line.Content) + "\n")
			default:
				builder.WriteString(s.DiffContext.Render(" "+line.Content) + "\n")
			}
		}
	}

	return builder.String()
}
