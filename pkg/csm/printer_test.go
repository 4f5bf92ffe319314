package csm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/jast"
)

func intType() *jast.Node {
	return jast.NewPrimitiveType(jast.PrimitiveInt)
}

func intField(mods jast.Modifiers, name string, initializer *jast.Node) *jast.Node {
	return jast.NewFieldDeclaration(mods, intType(), jast.NewVariableDeclarator(name, initializer))
}

func TestPrint_Canonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node func() *jast.Node
		want string
	}{
		{
			name: "empty class",
			node: func() *jast.Node { return jast.NewClassDeclaration(0, "A") },
			want: "class A {\n}",
		},
		{
			name: "class with field",
			node: func() *jast.Node {
				return jast.NewClassDeclaration(0, "A", intField(0, "myField", nil))
			},
			want: "class A {\n    int myField;\n}",
		},
		{
			name: "members separated by blank line",
			node: func() *jast.Node {
				return jast.NewClassDeclaration(jast.ModPublic, "A",
					intField(0, "a", nil),
					intField(jast.ModPrivate|jast.ModStatic, "b", jast.NewIntegerLiteral("1")),
				)
			},
			want: "public class A {\n    int a;\n\n    private static int b = 1;\n}",
		},
		{
			name: "compilation unit",
			node: func() *jast.Node {
				cu := jast.NewCompilationUnit(jast.NewClassDeclaration(0, "A"))
				_ = cu.List(jast.PropImports).Add(jast.NewImportDeclaration("java.util", false, true))
				_ = cu.List(jast.PropImports).Add(jast.NewImportDeclaration("java.lang.Math.max", true, false))
				return cu
			},
			want: "import java.util.*;\nimport static java.lang.Math.max;\n\nclass A {\n}\n",
		},
		{
			name: "method with body",
			node: func() *jast.Node {
				params := []*jast.Node{jast.NewParameter(intType(), "p")}
				return jast.NewMethodDeclaration(jast.ModPublic, jast.NewVoidType(), "foo", params, jast.NewBlockStmt())
			},
			want: "public void foo(int p) {\n}",
		},
		{
			name: "method without body",
			node: func() *jast.Node {
				params := []*jast.Node{
					jast.NewParameter(jast.NewPrimitiveType(jast.PrimitiveFloat), "p1"),
					jast.NewParameter(jast.NewClassType("String"), "p2"),
				}
				return jast.NewMethodDeclaration(jast.ModAbstract, jast.NewVoidType(), "foo", params, nil)
			},
			want: "abstract void foo(float p1, String p2);",
		},
		{
			name: "statements",
			node: func() *jast.Node {
				return jast.NewBlockStmt(
					jast.NewReturnStmt(jast.NewCharLiteral("z")),
					jast.NewExpressionStmt(jast.NewBinaryExpr(jast.NewIntegerLiteral("10"), jast.OpPlus, jast.NewIntegerLiteral("2"))),
				)
			},
			want: "{\n    return 'z';\n    10 + 2;\n}",
		},
		{
			name: "if else",
			node: func() *jast.Node {
				return jast.NewIfStmt(jast.NewNameExpr("c"), jast.NewBlockStmt(), jast.NewReturnStmt(nil))
			},
			want: "if (c) {\n} else return;",
		},
		{
			name: "postfix and prefix unary",
			node: func() *jast.Node {
				return jast.NewBinaryExpr(
					jast.NewUnaryExpr(jast.OpPostIncrement, jast.NewNameExpr("i")),
					jast.OpPlus,
					jast.NewUnaryExpr(jast.OpUnaryMinus, jast.NewNameExpr("j")),
				)
			},
			want: "i++ + -j",
		},
		{
			name: "call and assignment",
			node: func() *jast.Node {
				call := jast.NewMethodCallExpr(jast.NewNameExpr("out"), "println", jast.NewStringLiteral("hi"), jast.NewBooleanLiteral(true))
				return jast.NewAssignExpr(jast.NewNameExpr("x"), jast.OpAssign, call)
			},
			want: `x = out.println("hi", true)`,
		},
		{
			name: "generic type",
			node: func() *jast.Node {
				return jast.NewClassType("Map", jast.NewClassType("String"), jast.NewArrayType(intType()))
			},
			want: "Map<String, int[]>",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := csm.Print(testCase.node())
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestPrint_LeadingComment(t *testing.T) {
	t.Parallel()

	field := intField(0, "f", nil)
	require.NoError(t, field.SetComment(jast.NewJavadocComment(" doc ")))
	class := jast.NewClassDeclaration(0, "A", field)

	got, err := csm.Print(class)
	require.NoError(t, err)
	assert.Equal(t, "class A {\n    /** doc */\n    int f;\n}", got)

	got, err = csm.Print(field)
	require.NoError(t, err)
	assert.Equal(t, "/** doc */\nint f;", got)
}

func TestPrint_OrphanComments(t *testing.T) {
	t.Parallel()

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		class := jast.NewClassDeclaration(0, "A")
		require.NoError(t, class.AddOrphanComment(jast.NewLineComment(" c")))

		got, err := csm.Print(class)
		require.NoError(t, err)
		assert.Equal(t, "class A {\n    // c\n}", got)
	})

	t.Run("between statements", func(t *testing.T) {
		t.Parallel()

		first := jast.NewExpressionStmt(jast.NewNameExpr("a"))
		first.Range = jast.Range{Start: 10, End: 20}
		second := jast.NewExpressionStmt(jast.NewNameExpr("b"))
		second.Range = jast.Range{Start: 35, End: 40}
		orphan := jast.NewLineComment(" c")
		orphan.Range = jast.Range{Start: 25, End: 30}

		block := jast.NewBlockStmt(first, second)
		require.NoError(t, block.AddOrphanComment(orphan))

		got, err := csm.Print(block)
		require.NoError(t, err)
		assert.Equal(t, "{\n    a;\n    // c\n    b;\n}", got)
	})
}

func TestPrinter_Options(t *testing.T) {
	t.Parallel()

	class := jast.NewClassDeclaration(0, "A", intField(0, "f", nil))
	printer := csm.NewPrinter(csm.Options{Indent: "\t", EndOfLine: "\r\n"})

	var out strings.Builder
	require.NoError(t, printer.Fprint(&out, class))
	assert.Equal(t, "class A {\r\n\tint f;\r\n}", out.String())
}

func TestPrinter_MissingDescription(t *testing.T) {
	t.Parallel()

	printer := csm.NewPrinter(csm.Options{}).WithRegistry(csm.NewRegistry())
	got, err := printer.Print(jast.NewClassDeclaration(0, "A"))
	require.ErrorIs(t, err, csm.ErrConfiguration)
	assert.Empty(t, got)
}

func TestAttributeLexemes(t *testing.T) {
	t.Parallel()

	lexemes, err := csm.AttributeLexemes(jast.NodeFieldDeclaration, jast.PropModifiers, jast.ModPublic|jast.ModFinal)
	require.NoError(t, err)
	assert.Equal(t, []csm.Lexeme{
		{Kind: jast.TokKeyword, Text: "public"},
		{Kind: jast.TokWhitespace, Text: " "},
		{Kind: jast.TokKeyword, Text: "final"},
		{Kind: jast.TokWhitespace, Text: " "},
	}, lexemes)

	lexemes, err = csm.AttributeLexemes(jast.NodeStringLiteralExpr, jast.PropValue, `a\n`)
	require.NoError(t, err)
	assert.Equal(t, []csm.Lexeme{{Kind: jast.TokStringLiteral, Text: `"a\n"`}}, lexemes)

	_, err = csm.AttributeLexemes(jast.NodeImportDeclaration, jast.PropStatic, true)
	assert.ErrorIs(t, err, csm.ErrConfiguration)
}
