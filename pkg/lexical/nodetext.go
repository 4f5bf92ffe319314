package lexical

import (
	"slices"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// TextElement is one unit of a NodeText: a TokenText or a ChildText.
type TextElement interface {
	isTextElement()
}

// TokenText is verbatim text.
type TokenText struct {
	Kind jast.TokenKind
	Text string
}

// ChildText stands for the text of a child node, expanded when printed.
// Indent is prepended to every line of the child after its first; it is
// empty for text that came from the parsed source.
type ChildText struct {
	Child  *jast.Node
	Indent string
}

func (TokenText) isTextElement() {}
func (ChildText) isTextElement() {}

// NodeText is the maintained text of one node.
type NodeText struct {
	elements []TextElement
}

// Len returns the number of elements.
func (t *NodeText) Len() int {
	return len(t.elements)
}

// At returns element i.
func (t *NodeText) At(i int) TextElement {
	return t.elements[i]
}

// Elements returns a copy of the elements.
func (t *NodeText) Elements() []TextElement {
	return slices.Clone(t.elements)
}

// Insert places elements before index i.
func (t *NodeText) Insert(i int, elements ...TextElement) {
	t.elements = slices.Insert(t.elements, i, elements...)
}

// Remove deletes elements in [from, to).
func (t *NodeText) Remove(from, to int) {
	t.elements = slices.Delete(t.elements, from, to)
}

// Replace swaps element i.
func (t *NodeText) Replace(i int, element TextElement) {
	t.elements[i] = element
}

// FindChild returns the index of the ChildText referencing n, or -1.
func (t *NodeText) FindChild(n *jast.Node) int {
	for i, element := range t.elements {
		if child, ok := element.(ChildText); ok && child.Child == n {
			return i
		}
	}
	return -1
}

// FindToken returns the index of the first token at or after from with the
// given text, or -1.
func (t *NodeText) FindToken(text string, from int) int {
	for i := max(from, 0); i < len(t.elements); i++ {
		if token, ok := t.elements[i].(TokenText); ok && token.Text == text {
			return i
		}
	}
	return -1
}

func (t *NodeText) clone() *NodeText {
	return &NodeText{elements: slices.Clone(t.elements)}
}

func (t *NodeText) isTrivia(i int) bool {
	token, ok := t.elements[i].(TokenText)
	return ok && token.Kind.IsWhitespace()
}

// isComment reports whether element i is a ChildText holding a comment.
func (t *NodeText) isComment(i int) bool {
	child, ok := t.elements[i].(ChildText)
	return ok && child.Child.Kind.IsComment()
}
