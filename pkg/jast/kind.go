package jast

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds for the supported Java subset.
const (
	NodeCompilationUnit NodeKind = iota
	NodePackageDeclaration
	NodeImportDeclaration
	NodeName
	NodeSimpleName

	// Declarations.
	NodeClassOrInterfaceDeclaration
	NodeFieldDeclaration
	NodeVariableDeclarator
	NodeMethodDeclaration
	NodeParameter

	// Types.
	NodePrimitiveType
	NodeVoidType
	NodeClassOrInterfaceType
	NodeArrayType
	NodeTypeParameter

	// Statements.
	NodeBlockStmt
	NodeExpressionStmt
	NodeReturnStmt
	NodeIfStmt
	NodeWhileStmt
	NodeEmptyStmt

	// Expressions.
	NodeBinaryExpr
	NodeUnaryExpr
	NodeAssignExpr
	NodeEnclosedExpr
	NodeNameExpr
	NodeFieldAccessExpr
	NodeMethodCallExpr
	NodeObjectCreationExpr
	NodeVariableDeclarationExpr
	NodeThisExpr
	NodeNullLiteralExpr
	NodeIntegerLiteralExpr
	NodeDoubleLiteralExpr
	NodeStringLiteralExpr
	NodeCharLiteralExpr
	NodeBooleanLiteralExpr

	// Comments.
	NodeLineComment
	NodeBlockComment
	NodeJavadocComment

	nodeKindCount
)

var nodeKindNames = [...]string{
	NodeCompilationUnit:             "CompilationUnit",
	NodePackageDeclaration:          "PackageDeclaration",
	NodeImportDeclaration:           "ImportDeclaration",
	NodeName:                        "Name",
	NodeSimpleName:                  "SimpleName",
	NodeClassOrInterfaceDeclaration: "ClassOrInterfaceDeclaration",
	NodeFieldDeclaration:            "FieldDeclaration",
	NodeVariableDeclarator:          "VariableDeclarator",
	NodeMethodDeclaration:           "MethodDeclaration",
	NodeParameter:                   "Parameter",
	NodePrimitiveType:               "PrimitiveType",
	NodeVoidType:                    "VoidType",
	NodeClassOrInterfaceType:        "ClassOrInterfaceType",
	NodeArrayType:                   "ArrayType",
	NodeTypeParameter:               "TypeParameter",
	NodeBlockStmt:                   "BlockStmt",
	NodeExpressionStmt:              "ExpressionStmt",
	NodeReturnStmt:                  "ReturnStmt",
	NodeIfStmt:                      "IfStmt",
	NodeWhileStmt:                   "WhileStmt",
	NodeEmptyStmt:                   "EmptyStmt",
	NodeBinaryExpr:                  "BinaryExpr",
	NodeUnaryExpr:                   "UnaryExpr",
	NodeAssignExpr:                  "AssignExpr",
	NodeEnclosedExpr:                "EnclosedExpr",
	NodeNameExpr:                    "NameExpr",
	NodeFieldAccessExpr:             "FieldAccessExpr",
	NodeMethodCallExpr:              "MethodCallExpr",
	NodeObjectCreationExpr:          "ObjectCreationExpr",
	NodeVariableDeclarationExpr:     "VariableDeclarationExpr",
	NodeThisExpr:                    "ThisExpr",
	NodeNullLiteralExpr:             "NullLiteralExpr",
	NodeIntegerLiteralExpr:          "IntegerLiteralExpr",
	NodeDoubleLiteralExpr:           "DoubleLiteralExpr",
	NodeStringLiteralExpr:           "StringLiteralExpr",
	NodeCharLiteralExpr:             "CharLiteralExpr",
	NodeBooleanLiteralExpr:          "BooleanLiteralExpr",
	NodeLineComment:                 "LineComment",
	NodeBlockComment:                "BlockComment",
	NodeJavadocComment:              "JavadocComment",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// Kinds returns every node kind in declaration order.
func Kinds() []NodeKind {
	kinds := make([]NodeKind, 0, nodeKindCount)
	for kind := NodeKind(0); kind < nodeKindCount; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

// IsComment returns true for the three comment kinds.
func (k NodeKind) IsComment() bool {
	return k == NodeLineComment || k == NodeBlockComment || k == NodeJavadocComment
}

// IsStatement returns true for statement kinds.
func (k NodeKind) IsStatement() bool {
	switch k {
	case NodeBlockStmt, NodeExpressionStmt, NodeReturnStmt, NodeIfStmt,
		NodeWhileStmt, NodeEmptyStmt:
		return true
	default:
		return false
	}
}

// IsCommentable returns true for kinds that can own a leading comment.
func (k NodeKind) IsCommentable() bool {
	switch k {
	case NodePackageDeclaration, NodeImportDeclaration, NodeClassOrInterfaceDeclaration,
		NodeFieldDeclaration, NodeMethodDeclaration, NodeParameter:
		return true
	default:
		return k.IsStatement()
	}
}
