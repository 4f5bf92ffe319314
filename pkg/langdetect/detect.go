// Package langdetect decides which files hold Java source. It uses go-enry,
// the linguist port, so that files are classified the way code hosts do.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Java is the go-enry name of the language this tool reads.
const Java = "Java"

// contentCandidates narrows the classifier when only content is known.
//
//nolint:gochecknoglobals // Read-only lookup table.
var contentCandidates = []string{Java, "Kotlin", "Groovy", "Scala", "C#", "C++", "Go", "JavaScript"}

// Detect returns the language of a file from its name, falling back to its
// content when the name is not conclusive. It returns "" when unsure.
func Detect(path string, content []byte) string {
	if path != "" {
		if lang, safe := enry.GetLanguageByExtension(path); safe {
			return lang
		}
		if lang, safe := enry.GetLanguageByFilename(path); safe {
			return lang
		}
	}

	if len(content) == 0 {
		return ""
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}
	if lang, safe := enry.GetLanguageByClassifier(content, contentCandidates); safe {
		return lang
	}
	return ""
}

// IsJava reports whether path names a Java source file. Content is only
// consulted when the name has no extension.
func IsJava(path string, content []byte) bool {
	if filepath.Ext(path) != "" {
		lang, _ := enry.GetLanguageByExtension(path)
		return lang == Java
	}
	return Detect(path, content) == Java
}

// SkipDir reports whether a directory holds third-party or build output
// that is never checked. Hidden directories count.
func SkipDir(relPath string) bool {
	name := filepath.Base(relPath)
	if relPath != "." && strings.HasPrefix(name, ".") {
		return true
	}
	slashed := filepath.ToSlash(relPath)
	return enry.IsVendor(slashed+"/") || name == "build" || name == "target"
}

// IsGenerated reports whether a file looks machine-generated.
func IsGenerated(path string, content []byte) bool {
	return enry.IsGenerated(path, content)
}
