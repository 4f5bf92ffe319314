package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/config"
	"github.com/ftomassetti/javaparser/pkg/jast"
	"github.com/ftomassetti/javaparser/pkg/lexical"
	"github.com/ftomassetti/javaparser/pkg/parser"
)

func TestEndOfLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected config.EndOfLine
		sequence string
	}{
		{"lf", config.EOLLF, "\n"},
		{"CRLF", config.EOLCRLF, "\r\n"},
		{" cr ", config.EOLCR, "\r"},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			eol, err := config.ParseEndOfLine(testCase.input)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, eol)
			assert.Equal(t, testCase.sequence, eol.Sequence())
		})
	}

	_, err := config.ParseEndOfLine("native")
	require.Error(t, err)
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.DefaultIndent, cfg.Indent)
	assert.Equal(t, config.EOLLF, cfg.EndOfLine)
	assert.True(t, cfg.IndentInserted)
}

func TestCanonicalOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Indent = "\t"
	cfg.EndOfLine = config.EOLCRLF

	opts := cfg.CanonicalOptions()
	assert.Equal(t, "\t", opts.Indent)
	assert.Equal(t, "\r\n", opts.EndOfLine)
}

func TestLexicalOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Indent = "\t"

	file, err := parser.ParseString("class A {}")
	require.NoError(t, err)

	printer, err := lexical.SetupFile(file, cfg.LexicalOptions(nil)...)
	require.NoError(t, err)

	field := jast.NewFieldDeclaration(0, jast.NewPrimitiveType(jast.PrimitiveInt), jast.NewVariableDeclarator("a", nil))
	require.NoError(t, file.Root.List(jast.PropTypes).At(0).List(jast.PropMembers).Add(field))

	out, err := printer.Print(file.Root)
	require.NoError(t, err)
	assert.Equal(t, "class A {\n\tint a;\n}", out)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal parses to nothing", func(t *testing.T) {
		t.Parallel()

		data := config.GenerateTemplate(nil, config.TemplateOptions{})
		assert.Contains(t, string(data), "# indent: \"    \"")

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Empty(t, parsed.Indent)
	})

	t.Run("full parses back", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Indent = "\t"
		cfg.EndOfLine = config.EOLCR
		cfg.Ignore = []string{"gen/**"}

		parsed, err := config.FromYAML(config.GenerateTemplate(cfg, config.TemplateOptions{Full: true}))
		require.NoError(t, err)
		assert.Equal(t, "\t", parsed.Indent)
		assert.Equal(t, config.EOLCR, parsed.EndOfLine)
		assert.True(t, parsed.IndentInserted)
		assert.Equal(t, []string{"gen/**"}, parsed.Ignore)
	})
}
