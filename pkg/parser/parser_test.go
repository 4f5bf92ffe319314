package parser_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/jast"
	"github.com/ftomassetti/javaparser/pkg/parser"
)

func mustParse(t *testing.T, src string) *jast.SourceFile {
	t.Helper()

	file, err := parser.ParseString(src)
	require.NoError(t, err)
	require.NotNil(t, file.Root)

	return file
}

func textOf(file *jast.SourceFile, n *jast.Node) string {
	return string(file.Content[n.Range.Start:n.Range.End])
}

func TestParse_ClassMembers(t *testing.T) {
	t.Parallel()

	src := "package a.b;\n\nimport static java.util.Collections.*;\n\npublic class A<T extends Number> extends B implements C, D {\n" +
		"    private static int x = 1, y;\n" +
		"    public abstract void foo(final int p, String... rest) throws E;\n" +
		"}\n"
	file := mustParse(t, src)
	root := file.Root

	assert.Equal(t, jast.Range{Start: 0, End: len(src)}, root.Range)

	pkg := root.Child(jast.PropPackage)
	require.NotNil(t, pkg)
	assert.Equal(t, "a.b", jast.QualifiedName(pkg.Child(jast.PropName)))
	assert.Equal(t, "package a.b;", textOf(file, pkg))

	imports := root.List(jast.PropImports)
	require.Equal(t, 1, imports.Len())
	imp := imports.At(0)
	assert.True(t, imp.BoolAttr(jast.PropStatic))
	assert.True(t, imp.BoolAttr(jast.PropAsterisk))
	assert.Equal(t, "java.util.Collections", jast.QualifiedName(imp.Child(jast.PropName)))

	class := root.List(jast.PropTypes).At(0)
	require.NotNil(t, class)
	assert.Equal(t, "A", class.Identifier())
	assert.Equal(t, jast.ModPublic, class.Modifiers())
	assert.False(t, class.BoolAttr(jast.PropInterface))
	assert.Equal(t, 1, class.List(jast.PropTypeParameters).Len())
	assert.Equal(t, 1, class.List(jast.PropTypeParameters).At(0).List(jast.PropTypeBound).Len())
	assert.Equal(t, 1, class.List(jast.PropExtendedTypes).Len())
	assert.Equal(t, 2, class.List(jast.PropImplementedTypes).Len())

	members := class.List(jast.PropMembers)
	require.Equal(t, 2, members.Len())

	field := members.At(0)
	assert.Equal(t, jast.NodeFieldDeclaration, field.Kind)
	assert.Equal(t, jast.ModPrivate|jast.ModStatic, field.Modifiers())
	assert.Equal(t, "private static int x = 1, y;", textOf(file, field))
	variables := field.List(jast.PropVariables)
	require.Equal(t, 2, variables.Len())
	assert.Equal(t, "x = 1", textOf(file, variables.At(0)))
	assert.Nil(t, variables.At(1).Child(jast.PropInitializer))

	method := members.At(1)
	assert.Equal(t, jast.NodeMethodDeclaration, method.Kind)
	assert.Nil(t, method.Child(jast.PropBody))
	params := method.List(jast.PropParameters)
	require.Equal(t, 2, params.Len())
	assert.Equal(t, jast.ModFinal, params.At(0).Modifiers())
	assert.True(t, params.At(1).BoolAttr(jast.PropVarArgs))
	assert.Equal(t, 1, method.List(jast.PropThrownExceptions).Len())
}

func TestParse_Statements(t *testing.T) {
	t.Parallel()

	src := `class A {
    int foo(int a) {
        int b = a * 2 + 1;
        List<List<String>> names = new ArrayList<List<String>>();
        if (a > b) return -a; else { b++; }
        while (a != 0) a = a - 1;
        this.x.call(b, "s");
        ;
        return (b);
    }
}`
	file := mustParse(t, src)

	body := jast.FindByKind(file.Root, jast.NodeMethodDeclaration)[0].Child(jast.PropBody)
	statements := body.List(jast.PropStatements).Items()
	require.Len(t, statements, 7)

	decl := statements[0].Child(jast.PropExpression)
	assert.Equal(t, jast.NodeVariableDeclarationExpr, decl.Kind)
	sum := decl.List(jast.PropVariables).At(0).Child(jast.PropInitializer)
	assert.Equal(t, jast.NodeBinaryExpr, sum.Kind)
	assert.Equal(t, jast.OpPlus, sum.Attr(jast.PropOperator))
	assert.Equal(t, jast.OpMultiply, sum.Child(jast.PropLeft).Attr(jast.PropOperator))

	generic := statements[1].Child(jast.PropExpression)
	assert.Equal(t, "List<List<String>> names = new ArrayList<List<String>>()", textOf(file, generic))

	ifStmt := statements[2]
	assert.Equal(t, jast.NodeIfStmt, ifStmt.Kind)
	assert.Equal(t, jast.OpGreater, ifStmt.Child(jast.PropCondition).Attr(jast.PropOperator))
	assert.Equal(t, jast.NodeReturnStmt, ifStmt.Child(jast.PropThen).Kind)
	assert.Equal(t, jast.NodeBlockStmt, ifStmt.Child(jast.PropElse).Kind)

	assert.Equal(t, jast.NodeWhileStmt, statements[3].Kind)
	assign := statements[3].Child(jast.PropBody).Child(jast.PropExpression)
	assert.Equal(t, jast.NodeAssignExpr, assign.Kind)

	call := statements[4].Child(jast.PropExpression)
	assert.Equal(t, jast.NodeMethodCallExpr, call.Kind)
	assert.Equal(t, "call", call.Identifier())
	assert.Equal(t, jast.NodeFieldAccessExpr, call.Child(jast.PropScope).Kind)
	assert.Equal(t, 2, call.List(jast.PropArguments).Len())
	assert.Equal(t, "s", call.List(jast.PropArguments).At(1).StringAttr(jast.PropValue))

	assert.Equal(t, jast.NodeEmptyStmt, statements[5].Kind)
	assert.Equal(t, jast.NodeEnclosedExpr, statements[6].Child(jast.PropExpression).Kind)

	assert.True(t, jast.ValidateTokens(file.Tokens, len(src)))
}

func TestParse_Comments(t *testing.T) {
	t.Parallel()

	src := "/** doc */\nclass /*a comment*/ A {\n    // leading\n    int f; // trailing\n    /* end */\n}\n"
	file := mustParse(t, src)
	root := file.Root
	class := root.List(jast.PropTypes).At(0)

	require.NotNil(t, class.Comment())
	assert.Equal(t, jast.NodeJavadocComment, class.Comment().Kind)
	assert.Equal(t, " doc ", class.Comment().StringAttr(jast.PropContent))

	orphans := class.OrphanComments()
	require.Len(t, orphans, 3)
	assert.Equal(t, "a comment", orphans[0].StringAttr(jast.PropContent))
	assert.Equal(t, " trailing", orphans[1].StringAttr(jast.PropContent))
	assert.Equal(t, " end ", orphans[2].StringAttr(jast.PropContent))

	field := class.List(jast.PropMembers).At(0)
	require.NotNil(t, field.Comment())
	assert.Equal(t, jast.NodeLineComment, field.Comment().Kind)
	assert.Equal(t, " leading", field.Comment().StringAttr(jast.PropContent))
	assert.Equal(t, "int f;", textOf(file, field))
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		message string
	}{
		{name: "missing brace", src: "class A {", message: "unterminated class body"},
		{name: "constructor", src: "class A { A() {} }", message: "constructors are not supported"},
		{name: "not a type", src: "int x;", message: "expected class or interface"},
		{name: "bad expression", src: "class A { int x = ; }", message: "expected expression"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := parser.Parse(context.Background(), "A.java", []byte(testCase.src))
			require.Error(t, err)

			var syntaxErr *parser.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Contains(t, syntaxErr.Message, testCase.message)
			assert.True(t, strings.HasPrefix(err.Error(), "A.java:1:"))
		})
	}
}

func TestParse_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parser.Parse(ctx, "", []byte("class A {}"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestParse_RangesNest(t *testing.T) {
	t.Parallel()

	file := mustParse(t, "class A { void foo(char p1, int p2) { return 10 + 2; } }")

	err := jast.Walk(file.Root, func(n *jast.Node) error {
		for _, child := range n.Children() {
			assert.True(t, n.Range.Contains(child.Range), "%s not inside %s", child.Kind, n.Kind)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestParseMember(t *testing.T) {
	t.Parallel()

	src := "  public int foo(char p1, int p2) { return p1; }\n"
	file, err := parser.ParseMemberString(src)
	require.NoError(t, err)

	member := file.Root
	assert.Equal(t, jast.NodeMethodDeclaration, member.Kind)
	assert.Equal(t, jast.Range{Start: 0, End: len(src)}, member.Range)
	assert.Equal(t, "foo", member.Identifier())
	assert.Equal(t, 2, member.List(jast.PropParameters).Len())
	assert.Equal(t, "return p1;", textOf(file, member.Child(jast.PropBody).List(jast.PropStatements).At(0)))
}

func TestParseMember_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "trailing member", src: "int a; int b;"},
		{name: "constructor", src: "A() {}"},
		{name: "empty", src: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := parser.ParseMemberString(testCase.src)

			var syntaxErr *parser.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
		})
	}
}
