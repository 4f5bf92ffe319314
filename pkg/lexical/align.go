package lexical

import (
	"slices"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/jast"
)

// span is the stretch [from, to) of a NodeText that one element of the
// node's description produced.
type span struct {
	from, to int
	ok       bool
}

func (s span) isEmpty() bool {
	return s.from == s.to
}

// aligner walks a node's description and its text side by side.
type aligner struct {
	n      *jast.Node
	text   *NodeText
	view   csm.View
	cursor int
}

// units flattens the sequences of a description. Layout-only elements are
// dropped.
func units(element csm.Element) []csm.Element {
	var out []csm.Element
	var walk func(csm.Element)
	walk = func(element csm.Element) {
		switch e := element.(type) {
		case nil:
		case csm.Sequence:
			for _, child := range e.Elements {
				walk(child)
			}
		case csm.Comment, csm.None, csm.Indent, csm.Unindent:
		default:
			out = append(out, element)
		}
	}
	walk(element)
	return out
}

func (a *aligner) align(elements []csm.Element) []span {
	spans := make([]span, len(elements))
	for i, element := range elements {
		spans[i] = a.unit(element)
	}
	return spans
}

func (a *aligner) unit(element csm.Element) span {
	switch e := element.(type) {
	case csm.Token:
		if e.Kind.IsWhitespace() {
			return a.trivia()
		}
		text := e.Text
		if e.Derive != nil {
			text = e.Derive(a.n)
		}
		return a.token(text)

	case csm.Attribute:
		lexemes, err := csm.AttributeLexemes(a.n.Kind, e.Property, a.view.Attr(a.n, e.Property))
		if err != nil {
			return span{}
		}
		return a.lexemes(lexemes)

	case csm.SingleChild:
		child := a.view.Child(a.n, e.Property)
		if child == nil {
			return span{from: a.cursor, to: a.cursor, ok: true}
		}
		return a.child(child)

	case csm.List:
		return a.list(e)

	case csm.Conditional:
		branch := e.Else
		if csm.Holds(a.n, e, a.view) {
			branch = e.Then
		}
		return a.sequence(units(branch))

	default:
		return span{from: a.cursor, to: a.cursor, ok: true}
	}
}

// sequence aligns elements in order and merges their spans. It fails when
// any element that produces text cannot be found.
func (a *aligner) sequence(elements []csm.Element) span {
	start := a.cursor
	spans := a.align(elements)
	for _, s := range spans {
		if !s.ok {
			return span{}
		}
	}
	return merge(start, spans)
}

// list aligns the items of a list. Separators are matched when present but
// only the items are required.
func (a *aligner) list(e csm.List) span {
	start := a.cursor
	items := a.view.Items(a.n, e.Property)
	if len(items) == 0 {
		return span{from: start, to: start, ok: true}
	}

	var spans []span
	optional := func(element csm.Element) {
		if element == nil {
			return
		}
		if s := a.sequence(units(element)); s.ok {
			spans = append(spans, s)
		}
	}

	optional(e.Before)
	for i, item := range items {
		if i > 0 {
			optional(e.Pre)
		}
		s := a.child(item)
		if !s.ok {
			return span{}
		}
		spans = append(spans, s)
		if i < len(items)-1 {
			optional(e.Post)
		}
	}
	optional(e.After)

	return merge(start, spans)
}

// merge joins aligned spans into one covering the non-empty ones.
func merge(start int, spans []span) span {
	from, to := -1, -1
	for _, s := range spans {
		if s.isEmpty() {
			continue
		}
		if from < 0 {
			from = s.from
		}
		to = s.to
	}
	if from < 0 {
		return span{from: start, to: start, ok: true}
	}
	return span{from: from, to: to, ok: true}
}

// trivia consumes a run of whitespace.
func (a *aligner) trivia() span {
	from := a.cursor
	for a.cursor < a.text.Len() && a.text.isTrivia(a.cursor) {
		a.cursor++
	}
	return span{from: from, to: a.cursor, ok: true}
}

// skip returns the first index at or after the cursor that is neither
// whitespace nor a comment.
func (a *aligner) skip() int {
	k := a.cursor
	for k < a.text.Len() && (a.text.isTrivia(k) || a.text.isComment(k)) {
		k++
	}
	return k
}

func (a *aligner) token(text string) span {
	k := a.skip()
	if k < a.text.Len() {
		if token, ok := a.text.At(k).(TokenText); ok && token.Text == text {
			a.cursor = k + 1
			return span{from: k, to: k + 1, ok: true}
		}
	}
	return span{}
}

func (a *aligner) lexemes(lexemes []csm.Lexeme) span {
	elements := make([]csm.Element, len(lexemes))
	for i, lexeme := range lexemes {
		elements[i] = csm.Token{Kind: lexeme.Kind, Text: lexeme.Text}
	}
	return a.sequence(elements)
}

// child finds the text of child, passing over tokens but not over the text
// of another structural child.
func (a *aligner) child(child *jast.Node) span {
	for k := a.cursor; k < a.text.Len(); k++ {
		element, ok := a.text.At(k).(ChildText)
		if !ok {
			continue
		}
		if element.Child == child {
			a.cursor = k + 1
			return span{from: k, to: k + 1, ok: true}
		}
		if !element.Child.Kind.IsComment() {
			break
		}
	}
	return span{}
}

// overrideView shows a node as it will be once a change is applied.
type overrideView struct {
	change jast.Change
}

func (v overrideView) Child(n *jast.Node, p jast.Property) *jast.Node {
	if n == v.change.Node && p == v.change.Property && v.change.Kind == jast.ChangeChildReplaced {
		return v.change.NewChild
	}
	return n.Child(p)
}

func (v overrideView) Items(n *jast.Node, p jast.Property) []*jast.Node {
	return n.List(p).Items()
}

func (v overrideView) Attr(n *jast.Node, p jast.Property) any {
	if n == v.change.Node && p == v.change.Property && v.change.Kind == jast.ChangeAttributeChanged {
		return v.change.NewValue
	}
	return n.Attr(p)
}

// references reports whether element renders property p.
func references(element csm.Element, p jast.Property) bool {
	switch e := element.(type) {
	case csm.Sequence:
		return slices.ContainsFunc(e.Elements, func(child csm.Element) bool { return references(child, p) })
	case csm.Attribute:
		return e.Property == p
	case csm.SingleChild:
		return e.Property == p
	case csm.List:
		return e.Property == p
	case csm.Conditional:
		return e.Property == p || references(e.Then, p) || references(e.Else, p)
	default:
		return false
	}
}
