package jast

import "strings"

// Typed constructors for nodes built in memory. They never carry a range.

// NewSimpleName creates a SimpleName.
func NewSimpleName(identifier string) *Node {
	return NewNode(NodeSimpleName, WithAttr(PropIdentifier, identifier))
}

// NewName creates a possibly qualified Name from dotted text, e.g. "java.util.List".
func NewName(qualified string) *Node {
	var name *Node
	for _, part := range strings.Split(qualified, ".") {
		name = NewNode(NodeName, WithChild(PropQualifier, name), WithAttr(PropIdentifier, part))
	}
	return name
}

// QualifiedName renders a Name node back to dotted text.
func QualifiedName(name *Node) string {
	if name == nil {
		return ""
	}
	if q := name.Child(PropQualifier); q != nil {
		return QualifiedName(q) + "." + name.Identifier()
	}
	return name.Identifier()
}

// NewCompilationUnit creates a compilation unit holding the given types.
func NewCompilationUnit(types ...*Node) *Node {
	return NewNode(NodeCompilationUnit, WithList(PropTypes, types...))
}

// NewImportDeclaration creates an import of a dotted name.
func NewImportDeclaration(qualified string, static, asterisk bool) *Node {
	return NewNode(NodeImportDeclaration,
		WithAttr(PropStatic, static),
		WithChild(PropName, NewName(qualified)),
		WithAttr(PropAsterisk, asterisk),
	)
}

// NewClassDeclaration creates a class with the given members.
func NewClassDeclaration(mods Modifiers, name string, members ...*Node) *Node {
	return NewNode(NodeClassOrInterfaceDeclaration,
		WithAttr(PropModifiers, mods),
		WithChild(PropName, NewSimpleName(name)),
		WithList(PropMembers, members...),
	)
}

// NewFieldDeclaration creates a field declaring one or more variables.
func NewFieldDeclaration(mods Modifiers, elementType *Node, variables ...*Node) *Node {
	return NewNode(NodeFieldDeclaration,
		WithAttr(PropModifiers, mods),
		WithChild(PropElementType, elementType),
		WithList(PropVariables, variables...),
	)
}

// NewVariableDeclarator creates a declarator; initializer may be nil.
func NewVariableDeclarator(name string, initializer *Node) *Node {
	return NewNode(NodeVariableDeclarator,
		WithChild(PropName, NewSimpleName(name)),
		WithChild(PropInitializer, initializer),
	)
}

// NewMethodDeclaration creates a method; a nil body produces an abstract method.
func NewMethodDeclaration(mods Modifiers, returnType *Node, name string, params []*Node, body *Node) *Node {
	return NewNode(NodeMethodDeclaration,
		WithAttr(PropModifiers, mods),
		WithChild(PropType, returnType),
		WithChild(PropName, NewSimpleName(name)),
		WithList(PropParameters, params...),
		WithChild(PropBody, body),
	)
}

// NewParameter creates a method parameter.
func NewParameter(paramType *Node, name string) *Node {
	return NewNode(NodeParameter,
		WithChild(PropType, paramType),
		WithChild(PropName, NewSimpleName(name)),
	)
}

// NewPrimitiveType creates a primitive type.
func NewPrimitiveType(p Primitive) *Node {
	return NewNode(NodePrimitiveType, WithAttr(PropPrimitive, p))
}

// NewVoidType creates the void type.
func NewVoidType() *Node {
	return NewNode(NodeVoidType)
}

// NewClassType creates a class type reference, e.g. "String".
func NewClassType(name string, typeArgs ...*Node) *Node {
	return NewNode(NodeClassOrInterfaceType,
		WithChild(PropName, NewSimpleName(name)),
		WithList(PropTypeArguments, typeArgs...),
	)
}

// NewArrayType creates an array of the component type.
func NewArrayType(component *Node) *Node {
	return NewNode(NodeArrayType, WithChild(PropComponentType, component))
}

// NewBlockStmt creates a block.
func NewBlockStmt(statements ...*Node) *Node {
	return NewNode(NodeBlockStmt, WithList(PropStatements, statements...))
}

// NewExpressionStmt wraps an expression as a statement.
func NewExpressionStmt(expr *Node) *Node {
	return NewNode(NodeExpressionStmt, WithChild(PropExpression, expr))
}

// NewReturnStmt creates a return; expr may be nil.
func NewReturnStmt(expr *Node) *Node {
	return NewNode(NodeReturnStmt, WithChild(PropExpression, expr))
}

// NewIfStmt creates an if statement; elseStmt may be nil.
func NewIfStmt(cond, then, elseStmt *Node) *Node {
	return NewNode(NodeIfStmt,
		WithChild(PropCondition, cond),
		WithChild(PropThen, then),
		WithChild(PropElse, elseStmt),
	)
}

// NewBinaryExpr creates a binary expression.
func NewBinaryExpr(left *Node, op BinaryOperator, right *Node) *Node {
	return NewNode(NodeBinaryExpr,
		WithChild(PropLeft, left),
		WithAttr(PropOperator, op),
		WithChild(PropRight, right),
	)
}

// NewUnaryExpr creates a unary expression.
func NewUnaryExpr(op UnaryOperator, expr *Node) *Node {
	return NewNode(NodeUnaryExpr,
		WithAttr(PropOperator, op),
		WithChild(PropExpression, expr),
	)
}

// NewAssignExpr creates an assignment.
func NewAssignExpr(target *Node, op AssignOperator, value *Node) *Node {
	return NewNode(NodeAssignExpr,
		WithChild(PropTarget, target),
		WithAttr(PropOperator, op),
		WithChild(PropValue, value),
	)
}

// NewNameExpr creates a reference to a name.
func NewNameExpr(identifier string) *Node {
	return NewNode(NodeNameExpr, WithChild(PropName, NewSimpleName(identifier)))
}

// NewMethodCallExpr creates a method call; scope may be nil.
func NewMethodCallExpr(scope *Node, name string, args ...*Node) *Node {
	return NewNode(NodeMethodCallExpr,
		WithChild(PropScope, scope),
		WithChild(PropName, NewSimpleName(name)),
		WithList(PropArguments, args...),
	)
}

// NewIntegerLiteral creates an integer literal from its source text.
func NewIntegerLiteral(value string) *Node {
	return NewNode(NodeIntegerLiteralExpr, WithAttr(PropValue, value))
}

// NewStringLiteral creates a string literal; value excludes the quotes.
func NewStringLiteral(value string) *Node {
	return NewNode(NodeStringLiteralExpr, WithAttr(PropValue, value))
}

// NewCharLiteral creates a char literal; value excludes the quotes.
func NewCharLiteral(value string) *Node {
	return NewNode(NodeCharLiteralExpr, WithAttr(PropValue, value))
}

// NewBooleanLiteral creates true or false.
func NewBooleanLiteral(value bool) *Node {
	return NewNode(NodeBooleanLiteralExpr, WithAttr(PropValue, value))
}

// NewLineComment creates a // comment; content excludes the slashes.
func NewLineComment(content string) *Node {
	return NewNode(NodeLineComment, WithAttr(PropContent, content))
}

// NewBlockComment creates a /* */ comment; content excludes the delimiters.
func NewBlockComment(content string) *Node {
	return NewNode(NodeBlockComment, WithAttr(PropContent, content))
}

// NewJavadocComment creates a /** */ comment; content excludes the delimiters.
func NewJavadocComment(content string) *Node {
	return NewNode(NodeJavadocComment, WithAttr(PropContent, content))
}
