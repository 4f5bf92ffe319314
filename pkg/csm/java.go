package csm

import (
	"github.com/ftomassetti/javaparser/pkg/jast"
)

func init() {
	RegisterJava(DefaultRegistry)
}

// RegisterJava registers the canonical Java layout for every node kind.
func RegisterJava(r *Registry) {
	comma := CommaSeparated()

	r.Register(jast.NodeCompilationUnit, Seq(
		IfPresent(jast.PropPackage, Seq(Child(jast.PropPackage), Newline(), Newline())),
		List{Property: jast.PropImports, Post: Newline(), After: Seq(Newline(), Newline())},
		List{Property: jast.PropTypes, Post: Seq(Newline(), Newline()), After: Newline()},
	))
	r.Register(jast.NodePackageDeclaration, Seq(
		Comment{}, Keyword("package"), Space(), Child(jast.PropName), Sep(";"),
	))
	r.Register(jast.NodeImportDeclaration, Seq(
		Comment{}, Keyword("import"), Space(),
		IfTrue(jast.PropStatic, Seq(Keyword("static"), Space()), nil),
		Child(jast.PropName),
		IfTrue(jast.PropAsterisk, Seq(Sep("."), Op("*")), nil),
		Sep(";"),
	))
	r.Register(jast.NodeName, Seq(
		IfPresent(jast.PropQualifier, Seq(Child(jast.PropQualifier), Sep("."))),
		Attr(jast.PropIdentifier),
	))
	r.Register(jast.NodeSimpleName, Attr(jast.PropIdentifier))

	r.Register(jast.NodeClassOrInterfaceDeclaration, Seq(
		Comment{},
		Attr(jast.PropModifiers),
		IfTrue(jast.PropInterface, Keyword("interface"), Keyword("class")),
		Space(),
		Child(jast.PropName),
		List{Property: jast.PropTypeParameters, Before: Op("<"), Pre: comma, After: Op(">")},
		List{Property: jast.PropExtendedTypes, Before: Seq(Space(), Keyword("extends"), Space()), Pre: comma},
		List{Property: jast.PropImplementedTypes, Before: Seq(Space(), Keyword("implements"), Space()), Pre: comma},
		Space(), Sep("{"), Newline(), Indent{},
		List{Property: jast.PropMembers, Post: Seq(Newline(), Newline()), After: Newline()},
		Unindent{}, Sep("}"),
	))
	r.Register(jast.NodeFieldDeclaration, Seq(
		Comment{},
		Attr(jast.PropModifiers),
		Child(jast.PropElementType),
		List{Property: jast.PropVariables, Before: Space(), Pre: comma},
		Sep(";"),
	))
	r.Register(jast.NodeVariableDeclarator, Seq(
		Child(jast.PropName),
		IfPresent(jast.PropInitializer, Seq(Space(), Op("="), Space(), Child(jast.PropInitializer))),
	))
	r.Register(jast.NodeMethodDeclaration, Seq(
		Comment{},
		Attr(jast.PropModifiers),
		List{Property: jast.PropTypeParameters, Before: Op("<"), Pre: comma, After: Seq(Op(">"), Space())},
		Child(jast.PropType),
		Space(),
		Child(jast.PropName),
		Sep("("),
		List{Property: jast.PropParameters, Pre: comma},
		Sep(")"),
		List{Property: jast.PropThrownExceptions, Before: Seq(Space(), Keyword("throws"), Space()), Pre: comma},
		Conditional{
			Property:  jast.PropBody,
			Condition: IsPresent,
			Then:      Seq(Space(), Child(jast.PropBody)),
			Else:      Sep(";"),
		},
	))
	r.Register(jast.NodeParameter, Seq(
		Comment{},
		Attr(jast.PropModifiers),
		Child(jast.PropType),
		IfTrue(jast.PropVarArgs, Sep("..."), nil),
		Space(),
		Child(jast.PropName),
	))

	r.Register(jast.NodePrimitiveType, Attr(jast.PropPrimitive))
	r.Register(jast.NodeVoidType, Keyword("void"))
	r.Register(jast.NodeClassOrInterfaceType, Seq(
		IfPresent(jast.PropScope, Seq(Child(jast.PropScope), Sep("."))),
		Child(jast.PropName),
		List{Property: jast.PropTypeArguments, Before: Op("<"), Pre: comma, After: Op(">")},
	))
	r.Register(jast.NodeArrayType, Seq(Child(jast.PropComponentType), Sep("["), Sep("]")))
	r.Register(jast.NodeTypeParameter, Seq(
		Child(jast.PropName),
		List{
			Property: jast.PropTypeBound,
			Before:   Seq(Space(), Keyword("extends"), Space()),
			Pre:      Seq(Space(), Op("&"), Space()),
		},
	))

	r.Register(jast.NodeBlockStmt, Seq(
		Comment{},
		Sep("{"), Newline(), Indent{},
		List{Property: jast.PropStatements, Post: Newline(), After: Newline()},
		Unindent{}, Sep("}"),
	))
	r.Register(jast.NodeExpressionStmt, Seq(Comment{}, Child(jast.PropExpression), Sep(";")))
	r.Register(jast.NodeReturnStmt, Seq(
		Comment{},
		Keyword("return"),
		IfPresent(jast.PropExpression, Seq(Space(), Child(jast.PropExpression))),
		Sep(";"),
	))
	r.Register(jast.NodeIfStmt, Seq(
		Comment{},
		Keyword("if"), Space(), Sep("("), Child(jast.PropCondition), Sep(")"), Space(),
		Child(jast.PropThen),
		IfPresent(jast.PropElse, Seq(Space(), Keyword("else"), Space(), Child(jast.PropElse))),
	))
	r.Register(jast.NodeWhileStmt, Seq(
		Comment{},
		Keyword("while"), Space(), Sep("("), Child(jast.PropCondition), Sep(")"), Space(),
		Child(jast.PropBody),
	))
	r.Register(jast.NodeEmptyStmt, Seq(Comment{}, Sep(";")))

	r.Register(jast.NodeBinaryExpr, Seq(
		Child(jast.PropLeft), Space(), Attr(jast.PropOperator), Space(), Child(jast.PropRight),
	))
	r.Register(jast.NodeUnaryExpr, Seq(
		Conditional{Property: jast.PropOperator, Condition: IsPostfix, Else: Attr(jast.PropOperator)},
		Child(jast.PropExpression),
		Conditional{Property: jast.PropOperator, Condition: IsPostfix, Then: Attr(jast.PropOperator)},
	))
	r.Register(jast.NodeAssignExpr, Seq(
		Child(jast.PropTarget), Space(), Attr(jast.PropOperator), Space(), Child(jast.PropValue),
	))
	r.Register(jast.NodeEnclosedExpr, Seq(Sep("("), Child(jast.PropInner), Sep(")")))
	r.Register(jast.NodeNameExpr, Child(jast.PropName))
	r.Register(jast.NodeFieldAccessExpr, Seq(Child(jast.PropScope), Sep("."), Child(jast.PropName)))
	r.Register(jast.NodeMethodCallExpr, Seq(
		IfPresent(jast.PropScope, Seq(Child(jast.PropScope), Sep("."))),
		Child(jast.PropName),
		Sep("("),
		List{Property: jast.PropArguments, Pre: comma},
		Sep(")"),
	))
	r.Register(jast.NodeObjectCreationExpr, Seq(
		Keyword("new"), Space(), Child(jast.PropType),
		Sep("("),
		List{Property: jast.PropArguments, Pre: comma},
		Sep(")"),
	))
	r.Register(jast.NodeVariableDeclarationExpr, Seq(
		Attr(jast.PropModifiers),
		Child(jast.PropElementType),
		List{Property: jast.PropVariables, Before: Space(), Pre: comma},
	))
	r.Register(jast.NodeThisExpr, Keyword("this"))
	r.Register(jast.NodeNullLiteralExpr, Keyword("null"))
	for _, kind := range []jast.NodeKind{
		jast.NodeIntegerLiteralExpr, jast.NodeDoubleLiteralExpr, jast.NodeStringLiteralExpr,
		jast.NodeCharLiteralExpr, jast.NodeBooleanLiteralExpr,
	} {
		r.Register(kind, Attr(jast.PropValue))
	}

	r.Register(jast.NodeLineComment, Seq(commentToken(jast.TokLineComment, "//", ""), Newline()))
	r.Register(jast.NodeBlockComment, Seq(commentToken(jast.TokBlockComment, "/*", "*/"), Newline()))
	r.Register(jast.NodeJavadocComment, Seq(commentToken(jast.TokJavadocComment, "/**", "*/"), Newline()))
}

func commentToken(kind jast.TokenKind, open, closing string) Token {
	return Token{
		Kind: kind,
		Derive: func(n *jast.Node) string {
			return open + n.StringAttr(jast.PropContent) + closing
		},
	}
}
