package jast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

func buildTestTree() *jast.Node {
	// CompilationUnit
	//   ClassOrInterfaceDeclaration A
	//     FieldDeclaration int f
	//     MethodDeclaration void foo()
	field := jast.NewFieldDeclaration(0, jast.NewPrimitiveType(jast.PrimitiveInt), jast.NewVariableDeclarator("f", nil))
	method := jast.NewMethodDeclaration(0, jast.NewVoidType(), "foo", nil, jast.NewBlockStmt())
	return jast.NewCompilationUnit(jast.NewClassDeclaration(0, "A", field, method))
}

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	var kinds []jast.NodeKind
	err := jast.Walk(buildTestTree(), func(n *jast.Node) error {
		kinds = append(kinds, n.Kind)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []jast.NodeKind{
		jast.NodeCompilationUnit,
		jast.NodeClassOrInterfaceDeclaration,
		jast.NodeSimpleName,
		jast.NodeFieldDeclaration,
		jast.NodePrimitiveType,
		jast.NodeVariableDeclarator,
		jast.NodeSimpleName,
		jast.NodeMethodDeclaration,
		jast.NodeVoidType,
		jast.NodeSimpleName,
		jast.NodeBlockStmt,
	}, kinds)
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	visited := 0
	err := jast.Walk(buildTestTree(), func(n *jast.Node) error {
		visited++
		if n.Kind == jast.NodeFieldDeclaration {
			return stop
		}
		return nil
	})

	require.ErrorIs(t, err, stop)
	assert.Equal(t, 4, visited)
}

func TestWalkWithContext_LeaveOrder(t *testing.T) {
	t.Parallel()

	depth, maxDepth := 0, 0
	err := jast.WalkWithContext(buildTestTree(),
		func(*jast.Node) error {
			depth++
			maxDepth = max(maxDepth, depth)
			return nil
		},
		func(*jast.Node) error {
			depth--
			return nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, 0, depth)
	assert.Equal(t, 5, maxDepth)
}

func TestFind(t *testing.T) {
	t.Parallel()

	root := buildTestTree()

	names := jast.FindByKind(root, jast.NodeSimpleName)
	require.Len(t, names, 3)

	method := jast.FindFirst(root, func(n *jast.Node) bool {
		return n.Kind == jast.NodeMethodDeclaration
	})
	require.NotNil(t, method)
	assert.Equal(t, "foo", method.Identifier())
	assert.Same(t, root, jast.Root(method))

	assert.Nil(t, jast.FindFirst(root, func(n *jast.Node) bool { return n.Kind == jast.NodeIfStmt }))
}
