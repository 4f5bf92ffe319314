package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/jast"
	"github.com/ftomassetti/javaparser/pkg/parser"
)

type kindText struct {
	kind jast.TokenKind
	text string
}

func kindsAndTexts(tokens []jast.Token) []kindText {
	out := make([]kindText, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, kindText{kind: tok.Kind, text: tok.Text})
	}
	return out
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []kindText
	}{
		{
			name:    "field",
			content: "int x = 10;",
			want: []kindText{
				{jast.TokKeyword, "int"},
				{jast.TokWhitespace, " "},
				{jast.TokIdentifier, "x"},
				{jast.TokWhitespace, " "},
				{jast.TokOperator, "="},
				{jast.TokWhitespace, " "},
				{jast.TokIntegerLiteral, "10"},
				{jast.TokSeparator, ";"},
			},
		},
		{
			name:    "comments and newlines",
			content: "/** doc */\r\n// line\n/* block */",
			want: []kindText{
				{jast.TokJavadocComment, "/** doc */"},
				{jast.TokNewline, "\r\n"},
				{jast.TokLineComment, "// line"},
				{jast.TokNewline, "\n"},
				{jast.TokBlockComment, "/* block */"},
			},
		},
		{
			name:    "literals",
			content: `'z' "a\"b" 1.5f 0x1F`,
			want: []kindText{
				{jast.TokCharLiteral, "'z'"},
				{jast.TokWhitespace, " "},
				{jast.TokStringLiteral, `"a\"b"`},
				{jast.TokWhitespace, " "},
				{jast.TokFloatingLiteral, "1.5f"},
				{jast.TokWhitespace, " "},
				{jast.TokIntegerLiteral, "0x1F"},
			},
		},
		{
			name:    "longest operator wins",
			content: "a>>>=b...",
			want: []kindText{
				{jast.TokIdentifier, "a"},
				{jast.TokOperator, ">>>="},
				{jast.TokIdentifier, "b"},
				{jast.TokSeparator, "..."},
			},
		},
		{
			name:    "empty block comment is not javadoc",
			content: "/**/#",
			want: []kindText{
				{jast.TokBlockComment, "/**/"},
				{jast.TokOther, "#"},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tokens := parser.Tokenize([]byte(testCase.content))
			assert.Equal(t, testCase.want, kindsAndTexts(tokens))
			assert.True(t, jast.ValidateTokens(tokens, len(testCase.content)))
		})
	}
}

func TestTokenize_UnterminatedRunsToEnd(t *testing.T) {
	t.Parallel()

	content := "/* never closed\nint x;"
	tokens := parser.Tokenize([]byte(content))

	require.Len(t, tokens, 1)
	assert.Equal(t, jast.TokBlockComment, tokens[0].Kind)
	assert.True(t, jast.ValidateTokens(tokens, len(content)))
}

func TestTokenize_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, parser.Tokenize(nil))
}
