// Package fix renders line diffs between two versions of a source file.
package fix

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff represents a unified diff between original and modified content.
type Diff struct {
	// OldName labels the original side ("--- a/OldName").
	OldName string

	// NewName labels the modified side ("+++ b/NewName").
	NewName string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffHunk represents a single hunk in a unified diff.
type DiffHunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the original.
	OriginalStart int

	// OriginalCount is the number of lines from the original in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the modified.
	ModifiedStart int

	// ModifiedCount is the number of lines from the modified in this hunk.
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []DiffLine
}

// DiffLine represents a single line in a diff hunk.
type DiffLine struct {
	// Kind indicates whether this is a context, add, or remove line.
	Kind DiffLineKind

	// Content is the line content (without the diff prefix or line break).
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line added in the modified version.
	DiffLineAdd

	// DiffLineRemove is a line removed from the original version.
	DiffLineRemove
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// GenerateDiff creates a unified diff of one file. Returns nil if there are
// no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	return GenerateNamedDiff(path, path, original, modified)
}

// GenerateNamedDiff is GenerateDiff with distinct labels for the two sides.
func GenerateNamedDiff(oldName, newName string, original, modified []byte) *Diff {
	if string(original) == string(modified) {
		return nil
	}

	origLines := splitLines(original)
	modLines := splitLines(modified)

	matcher := difflib.NewMatcher(origLines, modLines)
	groups := matcher.GetGroupedOpCodes(contextLines)
	if len(groups) == 0 {
		return nil
	}

	diff := &Diff{OldName: oldName, NewName: newName}
	for _, group := range groups {
		hunk := buildHunk(group, origLines, modLines)
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				diff.Additions++
			case DiffLineRemove:
				diff.Deletions++
			}
		}
		diff.Hunks = append(diff.Hunks, hunk)
	}

	return diff
}

func buildHunk(group []difflib.OpCode, orig, mod []string) DiffHunk {
	first, last := group[0], group[len(group)-1]

	hunk := DiffHunk{
		OriginalStart: hunkStart(first.I1, last.I2),
		OriginalCount: last.I2 - first.I1,
		ModifiedStart: hunkStart(first.J1, last.J2),
		ModifiedCount: last.J2 - first.J1,
	}

	for _, op := range group {
		if op.Tag == 'e' {
			for _, line := range orig[op.I1:op.I2] {
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineContext, Content: line})
			}
			continue
		}
		if op.Tag == 'r' || op.Tag == 'd' {
			for _, line := range orig[op.I1:op.I2] {
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineRemove, Content: line})
			}
		}
		if op.Tag == 'r' || op.Tag == 'i' {
			for _, line := range mod[op.J1:op.J2] {
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineAdd, Content: line})
			}
		}
	}

	return hunk
}

// hunkStart converts a 0-based range start to the unified format, where an
// empty range names the line before it.
func hunkStart(start, end int) int {
	if start == end {
		return start
	}
	return start + 1
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("diff --git a/%s b/%s", trimRoot(d.OldName), trimRoot(d.NewName))
}

// String returns the diff in unified diff format (without the git header).
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", trimRoot(d.OldName))
	fmt.Fprintf(&builder, "+++ b/%s\n", trimRoot(d.NewName))

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			builder.WriteString(line.Kind.prefix())
			builder.WriteString(line.Content)
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

// FullString returns the complete diff including the git header.
func (d *Diff) FullString() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

func (k DiffLineKind) prefix() string {
	switch k {
	case DiffLineAdd:
		return "+"
	case DiffLineRemove:
		return "-"
	default:
		return " "
	}
}

func trimRoot(path string) string {
	return strings.TrimPrefix(path, "/")
}

// splitLines splits content into lines. A trailing line break does not
// start another line. Carriage returns stay part of the line so that
// end-of-line changes show up in the diff.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
