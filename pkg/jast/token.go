package jast

// TokenKind classifies a token in Java source.
type TokenKind uint8

// Token kinds cover every byte in the source. Trivia (whitespace, newlines and
// comments) is kept in the stream so that the stream reproduces the input.
const (
	TokWhitespace TokenKind = iota
	TokNewline
	TokLineComment    // '// ...'
	TokBlockComment   // '/* ... */'
	TokJavadocComment // '/** ... */'
	TokIdentifier
	TokKeyword
	TokIntegerLiteral
	TokFloatingLiteral
	TokCharLiteral
	TokStringLiteral
	TokSeparator // ( ) { } [ ] ; , . @ ...
	TokOperator

	TokOther
)

var tokenKindNames = [...]string{
	TokWhitespace:      "Whitespace",
	TokNewline:         "Newline",
	TokLineComment:     "LineComment",
	TokBlockComment:    "BlockComment",
	TokJavadocComment:  "JavadocComment",
	TokIdentifier:      "Identifier",
	TokKeyword:         "Keyword",
	TokIntegerLiteral:  "IntegerLiteral",
	TokFloatingLiteral: "FloatingLiteral",
	TokCharLiteral:     "CharLiteral",
	TokStringLiteral:   "StringLiteral",
	TokSeparator:       "Separator",
	TokOperator:        "Operator",
	TokOther:           "Other",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return "TokenKind(?)"
}

// IsWhitespace reports whether the kind is horizontal whitespace or a line break.
func (k TokenKind) IsWhitespace() bool {
	return k == TokWhitespace || k == TokNewline
}

// IsComment reports whether the kind is one of the comment kinds.
func (k TokenKind) IsComment() bool {
	return k == TokLineComment || k == TokBlockComment || k == TokJavadocComment
}

// IsTrivia reports whether the parser skips tokens of this kind.
func (k TokenKind) IsTrivia() bool {
	return k.IsWhitespace() || k.IsComment()
}

// Token is a classified span of the source. Tokens are immutable once lexed.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Text is the literal source text of the token.
	Text string

	// Range is the byte span the token occupies.
	Range Range
}

// Is reports whether the token has the given kind and text.
func (t Token) Is(kind TokenKind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// ValidateTokens checks that a token slice is contiguous, non-overlapping and
// covers [0, contentLen) exactly, with each token's text matching its range length.
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}

	if tokens[0].Range.Start != 0 {
		return false
	}

	if tokens[len(tokens)-1].Range.End != contentLen {
		return false
	}

	for i, tok := range tokens {
		if tok.Range.Len() != len(tok.Text) || tok.Range.IsEmpty() {
			return false
		}
		if i > 0 && tok.Range.Start != tokens[i-1].Range.End {
			return false
		}
	}

	return true
}

// Keywords is the set of reserved words recognized by the tokenizer.
// The literals true, false and null are included.
var Keywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true,
}
