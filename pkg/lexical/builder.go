package lexical

import (
	"strings"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/jast"
)

// textBuilder collects canonical output as text elements instead of a string.
// Lines it starts are indented by base plus one indent per level.
type textBuilder struct {
	p           *Printer
	base        string
	level       int
	atLineStart bool
	elements    []TextElement
}

func newTextBuilder(p *Printer, base string) *textBuilder {
	if !p.indentInserted {
		base = ""
	}
	return &textBuilder{p: p, base: base}
}

func (b *textBuilder) indentation() string {
	return b.base + strings.Repeat(b.p.indent, b.level)
}

func (b *textBuilder) lineStart() {
	if !b.atLineStart {
		return
	}
	if ws := b.indentation(); ws != "" {
		b.elements = append(b.elements, TokenText{Kind: jast.TokWhitespace, Text: ws})
	}
	b.atLineStart = false
}

func (b *textBuilder) Token(kind jast.TokenKind, text string) error {
	if kind == jast.TokNewline {
		b.elements = append(b.elements, TokenText{Kind: jast.TokNewline, Text: b.p.endOfLine})
		b.atLineStart = true
		return nil
	}
	if text == "" {
		return nil
	}
	b.lineStart()
	b.elements = append(b.elements, TokenText{Kind: kind, Text: text})
	return nil
}

func (b *textBuilder) Child(n *jast.Node) error {
	b.lineStart()
	b.elements = append(b.elements, ChildText{Child: n, Indent: b.indentation()})

	if n.Kind.IsComment() {
		// Parsed comments do not own the line break that ends them.
		if b.p.IsBound(n) {
			b.elements = append(b.elements, TokenText{Kind: jast.TokNewline, Text: b.p.endOfLine})
		}
		b.atLineStart = true
	}
	return nil
}

func (b *textBuilder) Indent() {
	b.level++
}

func (b *textBuilder) Unindent() {
	if b.level > 0 {
		b.level--
	}
}

// build renders the canonical text of n as a NodeText.
func (p *Printer) build(n *jast.Node) (*NodeText, error) {
	b := newTextBuilder(p, "")
	if err := p.registry.Render(n, b); err != nil {
		return nil, err
	}
	return &NodeText{elements: b.elements}, nil
}

// renderElement renders one element of n's description as text elements,
// reading properties through view.
func (p *Printer) renderElement(n *jast.Node, element csm.Element, view csm.View, base string) ([]TextElement, error) {
	b := newTextBuilder(p, base)
	if err := p.registry.RenderElement(n, element, b, view); err != nil {
		return nil, err
	}
	return b.elements, nil
}
