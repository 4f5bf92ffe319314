package lexical_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/jast"
	"github.com/ftomassetti/javaparser/pkg/lexical"
	"github.com/ftomassetti/javaparser/pkg/parser"
)

const commentedClass = "class /*a comment*/ A {\t\t\n int f;\n\n\n         void foo(int p  ) { return  'z'  \t; }}"

func setupFile(t *testing.T, src string, opts ...lexical.Option) (*jast.SourceFile, *lexical.Printer) {
	t.Helper()

	file, err := parser.ParseString(src)
	require.NoError(t, err)

	printer, err := lexical.SetupFile(file, opts...)
	require.NoError(t, err)

	return file, printer
}

func setupMember(t *testing.T, src string) (*jast.Node, *lexical.Printer) {
	t.Helper()

	file, err := parser.ParseMemberString(src)
	require.NoError(t, err)

	printer, err := lexical.SetupFile(file)
	require.NoError(t, err)

	return file.Root, printer
}

func mustPrint(t *testing.T, printer *lexical.Printer, n *jast.Node) string {
	t.Helper()

	out, err := printer.Print(n)
	require.NoError(t, err)
	return out
}

func firstType(file *jast.SourceFile) *jast.Node {
	return file.Root.List(jast.PropTypes).At(0)
}

func TestPrint_RoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		"",
		"class A {}",
		commentedClass,
		"package a.b;\n\nimport java.util.*;\nimport static java.lang.Math.max;\n\npublic class A<T extends Comparable<T>> extends B implements C, D {\n}\n",
		"class A {\n    // leading\n    private static final int x = 1 + 2 * 3;\n\n    /** docs */\n    public abstract <T> T get(T[] values, int... rest) throws E1, E2;\n}\n",
		"class A {\r\n\tvoid run() {\r\n\t\twhile (i < 10) { i++; }\r\n\t\tif (a) b(); else { c.d(new E(1, \"s\")); }\r\n\t\t/* orphan */\r\n\t}\r\n}\r\n",
		"interface I { void m(); }  // trailing\n",
		"class A { List<List<String>> x = this.y; double d = 1.5e3; char c = '\\n'; boolean b = !true; }",
	}

	for _, src := range sources {
		t.Run(strings.ReplaceAll(src, "\n", `\n`), func(t *testing.T) {
			t.Parallel()

			file, printer := setupFile(t, src)
			assert.Equal(t, src, mustPrint(t, printer, file.Root))
			require.NoError(t, lexical.CheckRoundTrip(context.Background(), "", []byte(src)))
		})
	}
}

func TestPrint_EveryNodeReproducesItsSlice(t *testing.T) {
	t.Parallel()

	file, printer := setupFile(t, commentedClass)

	err := jast.WalkText(file.Root, func(n *jast.Node) error {
		require.True(t, printer.IsBound(n), "%s should be bound", n.Kind)
		assert.Equal(t, commentedClass[n.Range.Start:n.Range.End], mustPrint(t, printer, n), "%s", n.Kind)
		return nil
	})
	require.NoError(t, err)
}

func TestPrint_UnboundFallsBackToCanonical(t *testing.T) {
	t.Parallel()

	_, printer := setupFile(t, "class A {}")

	method := jast.NewMethodDeclaration(jast.ModPublic, jast.NewVoidType(), "run",
		[]*jast.Node{jast.NewParameter(jast.NewClassType("String"), "s")},
		jast.NewBlockStmt(jast.NewReturnStmt(nil)),
	)
	require.NoError(t, method.SetComment(jast.NewLineComment(" runs")))
	class := jast.NewClassDeclaration(0, "B", method)
	cu := jast.NewCompilationUnit(class)

	want, err := csm.Print(cu)
	require.NoError(t, err)

	got := mustPrint(t, printer, cu)
	assert.Equal(t, want, got)
	assert.False(t, printer.IsBound(cu))

	// Reparsing the canonical text and printing it preserved gives it back.
	reparsed, again := setupFile(t, got)
	assert.Equal(t, got, mustPrint(t, again, reparsed.Root))
}

func TestPrint_FprintMatchesPrint(t *testing.T) {
	t.Parallel()

	file, printer := setupFile(t, commentedClass)

	var out strings.Builder
	require.NoError(t, printer.Fprint(&out, file.Root))
	assert.Equal(t, mustPrint(t, printer, file.Root), out.String())
}

func TestTextOf(t *testing.T) {
	t.Parallel()

	method, printer := setupMember(t, "void foo(int p) {}")
	param := method.List(jast.PropParameters).At(0)

	text, ok := printer.TextOf(param)
	require.True(t, ok)

	want := []lexical.TextElement{
		lexical.ChildText{Child: param.Child(jast.PropType)},
		lexical.TokenText{Kind: jast.TokWhitespace, Text: " "},
		lexical.ChildText{Child: param.Child(jast.PropName)},
	}
	sameNode := cmp.Comparer(func(a, b *jast.Node) bool { return a == b })
	if diff := cmp.Diff(want, text.Elements(), sameNode); diff != "" {
		t.Errorf("TextOf(param) mismatch (-want +got):\n%s", diff)
	}

	_, ok = printer.TextOf(jast.NewSimpleName("x"))
	assert.False(t, ok)
}

func TestSetup_PhantomNodesAreSkipped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rng   jast.Range
		token string
	}{
		{name: "no range", rng: jast.NoRange},
		{name: "outside parent", rng: jast.Range{Start: 100, End: 101}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			src := "class A { int a; }"
			file, err := parser.ParseString(src)
			require.NoError(t, err)

			field := firstType(file).List(jast.PropMembers).At(0)
			declarator := field.List(jast.PropVariables).At(0)
			declarator.Range = testCase.rng

			printer, err := lexical.SetupFile(file)
			require.NoError(t, err)

			assert.False(t, printer.IsBound(declarator))
			assert.True(t, printer.IsBound(field))
			assert.Equal(t, src, mustPrint(t, printer, file.Root))
			assert.Equal(t, "a", mustPrint(t, printer, declarator))
		})
	}
}

func TestSetup_Assertions(t *testing.T) {
	t.Parallel()

	t.Run("token outside root", func(t *testing.T) {
		t.Parallel()

		file, err := parser.ParseString("class A {}")
		require.NoError(t, err)

		tokens := append(file.Tokens, jast.Token{
			Kind:  jast.TokIdentifier,
			Text:  "x",
			Range: jast.Range{Start: 10, End: 11},
		})

		_, err = lexical.Setup(tokens, file.Root)
		require.ErrorIs(t, err, lexical.ErrStructuralAssertion)
	})

	t.Run("overlapping children", func(t *testing.T) {
		t.Parallel()

		file, err := parser.ParseString("class A { int a; int b; }")
		require.NoError(t, err)

		members := firstType(file).List(jast.PropMembers)
		members.At(1).Range = jast.Range{Start: members.At(0).Range.Start + 1, End: members.At(1).Range.End}

		_, err = lexical.SetupFile(file)
		var assertErr *lexical.AssertionError
		require.ErrorAs(t, err, &assertErr)
		assert.Equal(t, jast.NodeClassOrInterfaceDeclaration, assertErr.Node.Kind)
	})

	t.Run("root without range", func(t *testing.T) {
		t.Parallel()

		_, err := lexical.Setup(nil, jast.NewCompilationUnit())
		require.ErrorIs(t, err, lexical.ErrStructuralAssertion)
	})
}

func TestCheckRoundTrip_SyntaxError(t *testing.T) {
	t.Parallel()

	err := lexical.CheckRoundTrip(context.Background(), "Bad.java", []byte("class {"))
	var syntaxErr *parser.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}
