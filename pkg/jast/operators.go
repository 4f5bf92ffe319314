package jast

// BinaryOperator is the operator of a BinaryExpr.
type BinaryOperator uint8

// Binary operators.
const (
	OpOr BinaryOperator = iota
	OpAnd
	OpBitOr
	OpXor
	OpBitAnd
	OpEquals
	OpNotEquals
	OpLess
	OpGreater
	OpLessEquals
	OpGreaterEquals
	OpShiftLeft
	OpShiftRight
	OpUnsignedShiftRight
	OpPlus
	OpMinus
	OpMultiply
	OpDivide
	OpRemainder
)

var binarySymbols = [...]string{
	OpOr:                 "||",
	OpAnd:                "&&",
	OpBitOr:              "|",
	OpXor:                "^",
	OpBitAnd:             "&",
	OpEquals:             "==",
	OpNotEquals:          "!=",
	OpLess:               "<",
	OpGreater:            ">",
	OpLessEquals:         "<=",
	OpGreaterEquals:      ">=",
	OpShiftLeft:          "<<",
	OpShiftRight:         ">>",
	OpUnsignedShiftRight: ">>>",
	OpPlus:               "+",
	OpMinus:              "-",
	OpMultiply:           "*",
	OpDivide:             "/",
	OpRemainder:          "%",
}

var binaryPrecedence = [...]int{
	OpOr:                 1,
	OpAnd:                2,
	OpBitOr:              3,
	OpXor:                4,
	OpBitAnd:             5,
	OpEquals:             6,
	OpNotEquals:          6,
	OpLess:               7,
	OpGreater:            7,
	OpLessEquals:         7,
	OpGreaterEquals:      7,
	OpShiftLeft:          8,
	OpShiftRight:         8,
	OpUnsignedShiftRight: 8,
	OpPlus:               9,
	OpMinus:              9,
	OpMultiply:           10,
	OpDivide:             10,
	OpRemainder:          10,
}

// Symbol returns the source form of the operator.
func (op BinaryOperator) Symbol() string {
	if int(op) < len(binarySymbols) {
		return binarySymbols[op]
	}
	return "?"
}

// Precedence returns the binding strength; higher binds tighter.
func (op BinaryOperator) Precedence() int {
	if int(op) < len(binaryPrecedence) {
		return binaryPrecedence[op]
	}
	return 0
}

func (op BinaryOperator) String() string { return op.Symbol() }

// ParseBinaryOperator maps a symbol to its operator.
func ParseBinaryOperator(symbol string) (BinaryOperator, bool) {
	for op, s := range binarySymbols {
		if s == symbol {
			return BinaryOperator(op), true
		}
	}
	return 0, false
}

// UnaryOperator is the operator of a UnaryExpr.
type UnaryOperator uint8

// Unary operators.
const (
	OpUnaryPlus UnaryOperator = iota
	OpUnaryMinus
	OpNot
	OpComplement
	OpPreIncrement
	OpPreDecrement
	OpPostIncrement
	OpPostDecrement
)

var unarySymbols = [...]string{
	OpUnaryPlus:     "+",
	OpUnaryMinus:    "-",
	OpNot:           "!",
	OpComplement:    "~",
	OpPreIncrement:  "++",
	OpPreDecrement:  "--",
	OpPostIncrement: "++",
	OpPostDecrement: "--",
}

// Symbol returns the source form of the operator.
func (op UnaryOperator) Symbol() string {
	if int(op) < len(unarySymbols) {
		return unarySymbols[op]
	}
	return "?"
}

// IsPostfix reports whether the operator follows its operand.
func (op UnaryOperator) IsPostfix() bool {
	return op == OpPostIncrement || op == OpPostDecrement
}

func (op UnaryOperator) String() string { return op.Symbol() }

// AssignOperator is the operator of an AssignExpr.
type AssignOperator uint8

// Assignment operators.
const (
	OpAssign AssignOperator = iota
	OpPlusAssign
	OpMinusAssign
	OpMultiplyAssign
	OpDivideAssign
	OpRemainderAssign
	OpAndAssign
	OpOrAssign
	OpXorAssign
	OpShiftLeftAssign
	OpShiftRightAssign
	OpUnsignedShiftRightAssign
)

var assignSymbols = [...]string{
	OpAssign:                   "=",
	OpPlusAssign:               "+=",
	OpMinusAssign:              "-=",
	OpMultiplyAssign:           "*=",
	OpDivideAssign:             "/=",
	OpRemainderAssign:          "%=",
	OpAndAssign:                "&=",
	OpOrAssign:                 "|=",
	OpXorAssign:                "^=",
	OpShiftLeftAssign:          "<<=",
	OpShiftRightAssign:         ">>=",
	OpUnsignedShiftRightAssign: ">>>=",
}

// Symbol returns the source form of the operator.
func (op AssignOperator) Symbol() string {
	if int(op) < len(assignSymbols) {
		return assignSymbols[op]
	}
	return "?"
}

func (op AssignOperator) String() string { return op.Symbol() }

// ParseAssignOperator maps a symbol to its operator.
func ParseAssignOperator(symbol string) (AssignOperator, bool) {
	for op, s := range assignSymbols {
		if s == symbol {
			return AssignOperator(op), true
		}
	}
	return 0, false
}

// Primitive is the keyword of a PrimitiveType.
type Primitive uint8

// Primitive types.
const (
	PrimitiveBoolean Primitive = iota
	PrimitiveByte
	PrimitiveChar
	PrimitiveShort
	PrimitiveInt
	PrimitiveLong
	PrimitiveFloat
	PrimitiveDouble
)

var primitiveKeywords = [...]string{
	PrimitiveBoolean: "boolean",
	PrimitiveByte:    "byte",
	PrimitiveChar:    "char",
	PrimitiveShort:   "short",
	PrimitiveInt:     "int",
	PrimitiveLong:    "long",
	PrimitiveFloat:   "float",
	PrimitiveDouble:  "double",
}

// Keyword returns the Java keyword naming the primitive.
func (p Primitive) Keyword() string {
	if int(p) < len(primitiveKeywords) {
		return primitiveKeywords[p]
	}
	return "?"
}

func (p Primitive) String() string { return p.Keyword() }

// ParsePrimitive maps a keyword to its primitive type.
func ParsePrimitive(keyword string) (Primitive, bool) {
	for p, kw := range primitiveKeywords {
		if kw == keyword {
			return Primitive(p), true
		}
	}
	return 0, false
}
