package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ftomassetti/javaparser/pkg/langdetect"
)

func TestIsJava(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{"src/main/java/A.java", true},
		{"Build.kt", false},
		{"README.md", false},
		{"script.groovy", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, langdetect.IsJava(testCase.path, nil))
		})
	}
}

func TestDetect_ByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, langdetect.Java, langdetect.Detect("A.java", nil))
	assert.Empty(t, langdetect.Detect("", nil))
}

func TestSkipDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{".", false},
		{"src/main/java", false},
		{".git", true},
		{"node_modules", true},
		{"vendor", true},
		{"module/target", true},
		{"build", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, langdetect.SkipDir(testCase.path))
		})
	}
}
