package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// tokenizer performs a single-pass tokenization of Java source.
// It produces a contiguous, non-overlapping token stream covering [0, len(content)).
type tokenizer struct {
	content []byte
	tokens  []jast.Token
	pos     int
}

// operators are matched longest first.
var operators = []string{
	">>>=", "<<=", ">>=", ">>>", "...", "::", "->",
	"==", "!=", "<=", ">=", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
	"=", "<", ">", "!", "~", "?", ":", "+", "-", "*", "/", "&", "|", "^", "%",
}

// Tokenize splits content into tokens. Every byte belongs to exactly one token;
// whitespace, line breaks and comments are kept. Malformed input never fails
// here: unknown bytes become TokOther and unterminated literals or comments
// run to the end of the line or file.
func Tokenize(content []byte) []jast.Token {
	if len(content) == 0 {
		return nil
	}

	const initialCapacityDivisor = 3
	tok := &tokenizer{
		content: content,
		tokens:  make([]jast.Token, 0, len(content)/initialCapacityDivisor+1),
	}

	for tok.pos < len(tok.content) {
		tok.step()
	}

	return tok.tokens
}

func (t *tokenizer) step() {
	char := t.content[t.pos]

	switch {
	case char == '\n' || char == '\r':
		t.consumeNewline()
	case char == ' ' || char == '\t' || char == '\f':
		t.consumeWhitespace()
	case char == '/' && t.at(1) == '/':
		t.consumeLineComment()
	case char == '/' && t.at(1) == '*':
		t.consumeBlockComment()
	case char == '"':
		t.consumeQuoted('"', jast.TokStringLiteral)
	case char == '\'':
		t.consumeQuoted('\'', jast.TokCharLiteral)
	case isDigit(char) || (char == '.' && isDigit(t.at(1))):
		t.consumeNumber()
	case char == '.' && t.at(1) == '.' && t.at(2) == '.':
		t.emit(jast.TokSeparator, t.pos, t.pos+3)
	case isSeparator(char):
		t.emit(jast.TokSeparator, t.pos, t.pos+1)
	case isIdentStart(t.content[t.pos:]):
		t.consumeIdentifier()
	default:
		if op := t.matchOperator(); op != "" {
			t.emit(jast.TokOperator, t.pos, t.pos+len(op))
			return
		}
		_, size := utf8.DecodeRune(t.content[t.pos:])
		t.emit(jast.TokOther, t.pos, t.pos+size)
	}
}

// at returns the byte offset bytes ahead, or 0 past the end.
func (t *tokenizer) at(offset int) byte {
	if t.pos+offset < len(t.content) {
		return t.content[t.pos+offset]
	}
	return 0
}

func (t *tokenizer) consumeNewline() {
	start := t.pos
	if t.content[t.pos] == '\r' {
		t.pos++
		if t.pos < len(t.content) && t.content[t.pos] == '\n' {
			t.pos++
		}
	} else {
		t.pos++
	}
	t.emitTo(jast.TokNewline, start)
}

func (t *tokenizer) consumeWhitespace() {
	start := t.pos
	for t.pos < len(t.content) {
		switch t.content[t.pos] {
		case ' ', '\t', '\f':
			t.pos++
		default:
			t.emitTo(jast.TokWhitespace, start)
			return
		}
	}
	t.emitTo(jast.TokWhitespace, start)
}

func (t *tokenizer) consumeLineComment() {
	start := t.pos
	for t.pos < len(t.content) && t.content[t.pos] != '\n' && t.content[t.pos] != '\r' {
		t.pos++
	}
	t.emitTo(jast.TokLineComment, start)
}

func (t *tokenizer) consumeBlockComment() {
	start := t.pos
	kind := jast.TokBlockComment
	if t.at(2) == '*' && t.at(3) != '/' {
		kind = jast.TokJavadocComment
	}

	end := strings.Index(string(t.content[t.pos+2:]), "*/")
	if end < 0 {
		t.pos = len(t.content)
	} else {
		t.pos += 2 + end + 2
	}
	t.emitTo(kind, start)
}

func (t *tokenizer) consumeQuoted(quote byte, kind jast.TokenKind) {
	start := t.pos
	t.pos++
	for t.pos < len(t.content) {
		char := t.content[t.pos]
		switch {
		case char == '\\' && t.pos+1 < len(t.content):
			t.pos += 2
		case char == quote:
			t.pos++
			t.emitTo(kind, start)
			return
		case char == '\n' || char == '\r':
			t.emitTo(kind, start)
			return
		default:
			t.pos++
		}
	}
	t.emitTo(kind, start)
}

func (t *tokenizer) consumeNumber() {
	start := t.pos
	hex := t.content[t.pos] == '0' && (t.at(1) == 'x' || t.at(1) == 'X')
	floating := false

	for t.pos < len(t.content) {
		char := t.content[t.pos]
		switch {
		case char == '.':
			if t.at(1) == '.' {
				t.emitTo(numberKind(floating), start)
				return
			}
			floating = true
			t.pos++
		case (!hex && (char == 'e' || char == 'E')) || (hex && (char == 'p' || char == 'P')):
			floating = true
			t.pos++
			if t.pos < len(t.content) && (t.content[t.pos] == '+' || t.content[t.pos] == '-') {
				t.pos++
			}
		case isDigit(char) || isLetter(char) || char == '_':
			if !hex && (char == 'f' || char == 'F' || char == 'd' || char == 'D') {
				floating = true
			}
			t.pos++
		default:
			t.emitTo(numberKind(floating), start)
			return
		}
	}
	t.emitTo(numberKind(floating), start)
}

func numberKind(floating bool) jast.TokenKind {
	if floating {
		return jast.TokFloatingLiteral
	}
	return jast.TokIntegerLiteral
}

func (t *tokenizer) consumeIdentifier() {
	start := t.pos
	for t.pos < len(t.content) {
		r, size := utf8.DecodeRune(t.content[t.pos:])
		if !isIdentPart(r) {
			break
		}
		t.pos += size
	}

	kind := jast.TokIdentifier
	if jast.Keywords[string(t.content[start:t.pos])] {
		kind = jast.TokKeyword
	}
	t.emitTo(kind, start)
}

func (t *tokenizer) matchOperator() string {
	rest := t.content[t.pos:]
	for _, op := range operators {
		if len(rest) >= len(op) && string(rest[:len(op)]) == op {
			return op
		}
	}
	return ""
}

// emit adds a token for [start, end) and advances past it.
func (t *tokenizer) emit(kind jast.TokenKind, start, end int) {
	t.tokens = append(t.tokens, jast.Token{
		Kind:  kind,
		Text:  string(t.content[start:end]),
		Range: jast.Range{Start: start, End: end},
	})
	t.pos = end
}

// emitTo adds a token for [start, pos).
func (t *tokenizer) emitTo(kind jast.TokenKind, start int) {
	t.emit(kind, start, t.pos)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSeparator(b byte) bool {
	switch b {
	case '(', ')', '{', '}', '[', ']', ';', ',', '.', '@':
		return true
	default:
		return false
	}
}

func isIdentStart(rest []byte) bool {
	r, _ := utf8.DecodeRune(rest)
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
