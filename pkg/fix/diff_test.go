package fix_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/fix"
)

func numberedLines(count int, changed map[int]string) []byte {
	var builder strings.Builder
	for idx := 1; idx <= count; idx++ {
		if text, ok := changed[idx]; ok {
			builder.WriteString(text)
		} else {
			fmt.Fprintf(&builder, "line %d", idx)
		}
		builder.WriteByte('\n')
	}
	return []byte(builder.String())
}

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for empty inputs", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, fix.GenerateDiff("A.java", nil, nil))
		assert.Nil(t, fix.GenerateDiff("A.java", []byte{}, []byte{}))
	})

	t.Run("returns nil for identical content", func(t *testing.T) {
		t.Parallel()

		content := []byte("class A {\n}\n")
		assert.Nil(t, fix.GenerateDiff("A.java", content, content))
	})

	t.Run("detects single line change", func(t *testing.T) {
		t.Parallel()

		original := []byte("class A {\n  int a;\n}\n")
		modified := []byte("class A {\n    int a;\n}\n")

		diff := fix.GenerateDiff("A.java", original, modified)
		require.NotNil(t, diff)
		require.True(t, diff.HasChanges())
		require.Len(t, diff.Hunks, 1)
		assert.Equal(t, 1, diff.Additions)
		assert.Equal(t, 1, diff.Deletions)

		hunk := diff.Hunks[0]
		assert.Equal(t, 1, hunk.OriginalStart)
		assert.Equal(t, 3, hunk.OriginalCount)
		assert.Equal(t, 1, hunk.ModifiedStart)
		assert.Equal(t, 3, hunk.ModifiedCount)
		assert.Equal(t, []fix.DiffLine{
			{Kind: fix.DiffLineContext, Content: "class A {"},
			{Kind: fix.DiffLineRemove, Content: "  int a;"},
			{Kind: fix.DiffLineAdd, Content: "    int a;"},
			{Kind: fix.DiffLineContext, Content: "}"},
		}, hunk.Lines)
	})

	t.Run("detects addition", func(t *testing.T) {
		t.Parallel()

		diff := fix.GenerateDiff("A.java", []byte("class A {\n}\n"), []byte("class A {\n    int a;\n}\n"))
		require.NotNil(t, diff)
		assert.Equal(t, 1, diff.Additions)
		assert.Equal(t, 0, diff.Deletions)
	})

	t.Run("detects deletion", func(t *testing.T) {
		t.Parallel()

		diff := fix.GenerateDiff("A.java", []byte("class A {\n    int a;\n}\n"), []byte("class A {\n}\n"))
		require.NotNil(t, diff)
		assert.Equal(t, 0, diff.Additions)
		assert.Equal(t, 1, diff.Deletions)
	})

	t.Run("handles new file", func(t *testing.T) {
		t.Parallel()

		diff := fix.GenerateDiff("A.java", nil, []byte("class A {\n}\n"))
		require.NotNil(t, diff)
		require.Len(t, diff.Hunks, 1)
		assert.Equal(t, 0, diff.Hunks[0].OriginalStart)
		assert.Equal(t, 0, diff.Hunks[0].OriginalCount)
		assert.Equal(t, 1, diff.Hunks[0].ModifiedStart)
		assert.Equal(t, 2, diff.Hunks[0].ModifiedCount)
	})

	t.Run("shows carriage return changes", func(t *testing.T) {
		t.Parallel()

		diff := fix.GenerateDiff("A.java", []byte("class A {\r\n}\r\n"), []byte("class A {\n}\n"))
		require.NotNil(t, diff)
		assert.Equal(t, 2, diff.Additions)
		assert.Equal(t, 2, diff.Deletions)
	})
}

func TestDiff_String(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for nil diff", func(t *testing.T) {
		t.Parallel()

		var diff *fix.Diff
		assert.Empty(t, diff.String())
		assert.Empty(t, diff.FullString())
		assert.Empty(t, diff.GitHeader())
	})

	t.Run("returns empty string for diff with no hunks", func(t *testing.T) {
		t.Parallel()

		diff := &fix.Diff{OldName: "A.java", NewName: "A.java"}
		assert.Empty(t, diff.String())
		assert.False(t, diff.HasChanges())
	})

	t.Run("produces unified diff format", func(t *testing.T) {
		t.Parallel()

		diff := fix.GenerateNamedDiff("/src/A.java", "canonical/src/A.java",
			[]byte("class A {}\n"), []byte("class A {\n}\n"))
		require.NotNil(t, diff)

		want := "diff --git a/src/A.java b/canonical/src/A.java\n" +
			"--- a/src/A.java\n" +
			"+++ b/canonical/src/A.java\n" +
			"@@ -1,1 +1,2 @@\n" +
			"-class A {}\n" +
			"+class A {\n" +
			"+}\n"
		assert.Equal(t, want, diff.FullString())
	})
}

func TestGenerateDiff_MultipleChanges(t *testing.T) {
	t.Parallel()

	t.Run("separates distant changes into hunks", func(t *testing.T) {
		t.Parallel()

		original := numberedLines(20, nil)
		modified := numberedLines(20, map[int]string{2: "changed 2", 18: "changed 18"})

		diff := fix.GenerateDiff("A.java", original, modified)
		require.NotNil(t, diff)
		require.Len(t, diff.Hunks, 2)

		assert.Equal(t, 1, diff.Hunks[0].OriginalStart)
		assert.Equal(t, 5, diff.Hunks[0].OriginalCount)
		assert.Equal(t, 15, diff.Hunks[1].OriginalStart)
		assert.Equal(t, 6, diff.Hunks[1].OriginalCount)
		assert.Equal(t, 2, diff.Additions)
		assert.Equal(t, 2, diff.Deletions)
	})

	t.Run("merges close changes into single hunk", func(t *testing.T) {
		t.Parallel()

		original := numberedLines(12, nil)
		modified := numberedLines(12, map[int]string{4: "changed 4", 8: "changed 8"})

		diff := fix.GenerateDiff("A.java", original, modified)
		require.NotNil(t, diff)
		require.Len(t, diff.Hunks, 1)
		assert.Equal(t, 1, diff.Hunks[0].OriginalStart)
		assert.Equal(t, 11, diff.Hunks[0].OriginalCount)
	})
}

func TestDiffHunk_Counts(t *testing.T) {
	t.Parallel()

	original := numberedLines(10, nil)
	modified := numberedLines(10, map[int]string{5: "changed 5"})

	diff := fix.GenerateDiff("A.java", original, modified)
	require.NotNil(t, diff)
	require.Len(t, diff.Hunks, 1)

	hunk := diff.Hunks[0]
	var context, removed, added int
	for _, line := range hunk.Lines {
		switch line.Kind {
		case fix.DiffLineContext:
			context++
		case fix.DiffLineRemove:
			removed++
		case fix.DiffLineAdd:
			added++
		}
	}

	assert.Equal(t, 6, context)
	assert.Equal(t, context+removed, hunk.OriginalCount)
	assert.Equal(t, context+added, hunk.ModifiedCount)
	assert.Equal(t, 2, hunk.OriginalStart)
}
