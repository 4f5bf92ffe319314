package jast

// Property names one field of a node. The same property may have a different
// shape on different kinds; Meta resolves it per kind.
type Property uint8

// Properties, roughly in the order they appear in source.
const (
	PropPackage Property = iota
	PropImports
	PropTypes
	PropStatic
	PropAsterisk
	PropQualifier
	PropIdentifier
	PropModifiers
	PropInterface
	PropName
	PropTypeParameters
	PropExtendedTypes
	PropImplementedTypes
	PropMembers
	PropElementType
	PropVariables
	PropInitializer
	PropType
	PropParameters
	PropThrownExceptions
	PropBody
	PropVarArgs
	PropPrimitive
	PropScope
	PropTypeArguments
	PropComponentType
	PropTypeBound
	PropStatements
	PropExpression
	PropCondition
	PropThen
	PropElse
	PropLeft
	PropOperator
	PropRight
	PropTarget
	PropValue
	PropInner
	PropArguments
	PropContent

	// PropComment is the leading comment slot every node has.
	PropComment
	// PropOrphanComments is the list of comments not attached to any child.
	PropOrphanComments
)

var propertyNames = [...]string{
	PropPackage:          "Package",
	PropImports:          "Imports",
	PropTypes:            "Types",
	PropStatic:           "Static",
	PropAsterisk:         "Asterisk",
	PropQualifier:        "Qualifier",
	PropIdentifier:       "Identifier",
	PropModifiers:        "Modifiers",
	PropInterface:        "Interface",
	PropName:             "Name",
	PropTypeParameters:   "TypeParameters",
	PropExtendedTypes:    "ExtendedTypes",
	PropImplementedTypes: "ImplementedTypes",
	PropMembers:          "Members",
	PropElementType:      "ElementType",
	PropVariables:        "Variables",
	PropInitializer:      "Initializer",
	PropType:             "Type",
	PropParameters:       "Parameters",
	PropThrownExceptions: "ThrownExceptions",
	PropBody:             "Body",
	PropVarArgs:          "VarArgs",
	PropPrimitive:        "Primitive",
	PropScope:            "Scope",
	PropTypeArguments:    "TypeArguments",
	PropComponentType:    "ComponentType",
	PropTypeBound:        "TypeBound",
	PropStatements:       "Statements",
	PropExpression:       "Expression",
	PropCondition:        "Condition",
	PropThen:             "Then",
	PropElse:             "Else",
	PropLeft:             "Left",
	PropOperator:         "Operator",
	PropRight:            "Right",
	PropTarget:           "Target",
	PropValue:            "Value",
	PropInner:            "Inner",
	PropArguments:        "Arguments",
	PropContent:          "Content",
	PropComment:          "Comment",
	PropOrphanComments:   "OrphanComments",
}

func (p Property) String() string {
	if int(p) < len(propertyNames) && propertyNames[p] != "" {
		return propertyNames[p]
	}
	return "Property(?)"
}

// Shape says how a property stores its value.
type Shape uint8

// Property shapes.
const (
	ShapeAttribute Shape = iota // scalar value: string, bool, Modifiers, operators, Primitive
	ShapeSingle                 // one child node
	ShapeList                   // ordered child list
)

// PropertySpec describes one property of a node kind.
type PropertySpec struct {
	Property Property
	Shape    Shape

	// Optional is set for single children that may be absent.
	Optional bool
}

func attr(p Property) PropertySpec     { return PropertySpec{Property: p, Shape: ShapeAttribute} }
func single(p Property) PropertySpec   { return PropertySpec{Property: p, Shape: ShapeSingle} }
func optional(p Property) PropertySpec { return PropertySpec{Property: p, Shape: ShapeSingle, Optional: true} }
func list(p Property) PropertySpec     { return PropertySpec{Property: p, Shape: ShapeList} }

// metamodel is the dispatch table from kind to its properties in source order.
var metamodel = [nodeKindCount][]PropertySpec{
	NodeCompilationUnit:    {optional(PropPackage), list(PropImports), list(PropTypes)},
	NodePackageDeclaration: {single(PropName)},
	NodeImportDeclaration:  {attr(PropStatic), single(PropName), attr(PropAsterisk)},
	NodeName:               {optional(PropQualifier), attr(PropIdentifier)},
	NodeSimpleName:         {attr(PropIdentifier)},

	NodeClassOrInterfaceDeclaration: {
		attr(PropModifiers), attr(PropInterface), single(PropName), list(PropTypeParameters),
		list(PropExtendedTypes), list(PropImplementedTypes), list(PropMembers),
	},
	NodeFieldDeclaration:   {attr(PropModifiers), single(PropElementType), list(PropVariables)},
	NodeVariableDeclarator: {single(PropName), optional(PropInitializer)},
	NodeMethodDeclaration: {
		attr(PropModifiers), list(PropTypeParameters), single(PropType), single(PropName),
		list(PropParameters), list(PropThrownExceptions), optional(PropBody),
	},
	NodeParameter: {attr(PropModifiers), single(PropType), attr(PropVarArgs), single(PropName)},

	NodePrimitiveType:        {attr(PropPrimitive)},
	NodeVoidType:             {},
	NodeClassOrInterfaceType: {optional(PropScope), single(PropName), list(PropTypeArguments)},
	NodeArrayType:            {single(PropComponentType)},
	NodeTypeParameter:        {single(PropName), list(PropTypeBound)},

	NodeBlockStmt:      {list(PropStatements)},
	NodeExpressionStmt: {single(PropExpression)},
	NodeReturnStmt:     {optional(PropExpression)},
	NodeIfStmt:         {single(PropCondition), single(PropThen), optional(PropElse)},
	NodeWhileStmt:      {single(PropCondition), single(PropBody)},
	NodeEmptyStmt:      {},

	NodeBinaryExpr:              {single(PropLeft), attr(PropOperator), single(PropRight)},
	NodeUnaryExpr:               {attr(PropOperator), single(PropExpression)},
	NodeAssignExpr:              {single(PropTarget), attr(PropOperator), single(PropValue)},
	NodeEnclosedExpr:            {single(PropInner)},
	NodeNameExpr:                {single(PropName)},
	NodeFieldAccessExpr:         {single(PropScope), single(PropName)},
	NodeMethodCallExpr:          {optional(PropScope), single(PropName), list(PropArguments)},
	NodeObjectCreationExpr:      {single(PropType), list(PropArguments)},
	NodeVariableDeclarationExpr: {attr(PropModifiers), single(PropElementType), list(PropVariables)},
	NodeThisExpr:                {},
	NodeNullLiteralExpr:         {},
	NodeIntegerLiteralExpr:      {attr(PropValue)},
	NodeDoubleLiteralExpr:       {attr(PropValue)},
	NodeStringLiteralExpr:       {attr(PropValue)},
	NodeCharLiteralExpr:         {attr(PropValue)},
	NodeBooleanLiteralExpr:      {attr(PropValue)},

	NodeLineComment:    {attr(PropContent)},
	NodeBlockComment:   {attr(PropContent)},
	NodeJavadocComment: {attr(PropContent)},
}

// Meta returns the properties of a node kind in source order.
// The returned slice must not be modified.
func Meta(kind NodeKind) []PropertySpec {
	if kind >= nodeKindCount {
		return nil
	}
	return metamodel[kind]
}

// Lookup returns the spec of property p on kind, if the kind has it.
func Lookup(kind NodeKind, p Property) (PropertySpec, bool) {
	for _, spec := range Meta(kind) {
		if spec.Property == p {
			return spec, true
		}
	}
	return PropertySpec{}, false
}
