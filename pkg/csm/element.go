// Package csm holds the concrete syntax model: a declarative description, per
// node kind, of how a node is rendered from its properties alone. One
// interpreter walks these descriptions; the canonical printer and the lexical
// printer plug in different sinks.
package csm

import (
	"github.com/ftomassetti/javaparser/pkg/jast"
)

// Element is one piece of a rendering description. The set of element types
// is closed.
type Element interface {
	isElement()
}

// Sequence renders its elements in order.
type Sequence struct {
	Elements []Element
}

// Token renders fixed text, or text derived from the node when Derive is set.
type Token struct {
	Kind   jast.TokenKind
	Text   string
	Derive func(n *jast.Node) string
}

// Attribute renders the scalar value of a property.
type Attribute struct {
	Property jast.Property
}

// SingleChild renders the child in a property; an absent child renders nothing.
type SingleChild struct {
	Property jast.Property
}

// List renders a child list. An empty list renders nothing at all, not even
// Before or After. Pre is emitted before every item but the first, Post after
// every item but the last.
type List struct {
	Property jast.Property
	Before   Element
	Pre      Element
	Post     Element
	After    Element
}

// Condition selects the branch of a Conditional.
type Condition uint8

// Conditions.
const (
	IsPresent  Condition = iota // single child is set
	IsNotEmpty                  // list has items
	IsTrue                      // bool attribute is true
	IsPostfix                   // unary operator follows its operand
)

// Conditional renders Then when the condition holds for Property, Else otherwise.
// Either branch may be nil.
type Conditional struct {
	Property  jast.Property
	Condition Condition
	Then      Element
	Else      Element
}

// Comment marks where a node's comment belongs; it renders nothing itself.
type Comment struct{}

// None renders nothing.
type None struct{}

// Indent increases the indentation of following lines.
type Indent struct{}

// Unindent decreases the indentation of following lines.
type Unindent struct{}

func (Sequence) isElement()    {}
func (Token) isElement()       {}
func (Attribute) isElement()   {}
func (SingleChild) isElement() {}
func (List) isElement()        {}
func (Conditional) isElement() {}
func (Comment) isElement()     {}
func (None) isElement()        {}
func (Indent) isElement()      {}
func (Unindent) isElement()    {}

// Seq builds a Sequence.
func Seq(elements ...Element) Sequence {
	return Sequence{Elements: elements}
}

// Keyword builds a keyword token.
func Keyword(text string) Token {
	return Token{Kind: jast.TokKeyword, Text: text}
}

// Sep builds a separator token such as "(" or ";".
func Sep(text string) Token {
	return Token{Kind: jast.TokSeparator, Text: text}
}

// Op builds an operator token such as "=" or "<".
func Op(text string) Token {
	return Token{Kind: jast.TokOperator, Text: text}
}

// Space builds a single space.
func Space() Token {
	return Token{Kind: jast.TokWhitespace, Text: " "}
}

// Newline builds a line break.
func Newline() Token {
	return Token{Kind: jast.TokNewline, Text: "\n"}
}

// Attr builds an Attribute.
func Attr(p jast.Property) Attribute {
	return Attribute{Property: p}
}

// Child builds a SingleChild.
func Child(p jast.Property) SingleChild {
	return SingleChild{Property: p}
}

// IfPresent renders then when the optional child p is set.
func IfPresent(p jast.Property, then Element) Conditional {
	return Conditional{Property: p, Condition: IsPresent, Then: then}
}

// IfTrue renders then when the bool attribute p is true, otherwise els.
func IfTrue(p jast.Property, then, els Element) Conditional {
	return Conditional{Property: p, Condition: IsTrue, Then: then, Else: els}
}

// CommaSeparated is the ", " separator used by most lists.
func CommaSeparated() Sequence {
	return Seq(Sep(","), Space())
}
