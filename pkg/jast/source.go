// Package jast provides the Java AST used by the printers:
// - SourceFile: the parsed file (content, line index, tokens, root)
// - Token stream: every byte classified, trivia included
// - Nodes: typed property slots described by a static metamodel
// - Changes: explicit descriptors delivered to observers before a mutation lands
package jast

// SourceFile is the result of parsing one Java compilation unit.
// Content, Lines and Tokens never change after parsing; Root may be mutated freely.
type SourceFile struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tokens is the full token stream covering every byte.
	Tokens []Token

	// Root is the CompilationUnit node.
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewSourceFile creates a SourceFile from content.
// It builds the line index but does not tokenize or parse.
func NewSourceFile(path string, content []byte) *SourceFile {
	return &SourceFile{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}
