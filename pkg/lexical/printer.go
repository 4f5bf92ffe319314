// Package lexical prints a Java tree so that everything the program did not
// change comes out exactly as it was parsed.
//
// Setup gives every parsed node a NodeText: its own tokens interleaved with
// references to its children. Changes to the tree are observed as they happen
// and patched into the NodeText of the changed node. Nodes that never had
// text print in canonical layout until the first change to them binds them.
package lexical

import (
	"bufio"
	"io"
	"strings"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// Printer keeps the text of one tree in step with its changes.
// It is not safe for concurrent use; neither is the tree.
type Printer struct {
	settings

	root    *jast.Node
	texts   map[*jast.Node]*NodeText
	watched map[*jast.Node]struct{}
	pending *pendingText
}

// Root returns the node the printer observes.
func (p *Printer) Root() *jast.Node {
	return p.root
}

// IsBound reports whether n has a maintained text.
func (p *Printer) IsBound(n *jast.Node) bool {
	_, ok := p.texts[n]
	return ok
}

// TextOf returns a copy of the text maintained for n.
func (p *Printer) TextOf(n *jast.Node) (*NodeText, bool) {
	text, ok := p.texts[n]
	if !ok {
		return nil, false
	}
	return text.clone(), true
}

// Detach stops observing the tree and any subtree removed from it. Texts
// already bound stay printable.
func (p *Printer) Detach() {
	p.root.RemoveObserver(p)
	for n := range p.watched {
		n.RemoveObserver(p)
	}
	clear(p.watched)
}

// Print returns the text of n: its maintained text when bound, its canonical
// rendering otherwise.
func (p *Printer) Print(n *jast.Node) (string, error) {
	var buf strings.Builder
	if err := p.Fprint(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint streams the text of n to w. On error, w may hold a prefix of it.
func (p *Printer) Fprint(w io.Writer, n *jast.Node) error {
	bw := bufio.NewWriter(w)
	e := &expander{p: p, w: bw, atLineStart: true}

	if err := e.top(n); err != nil {
		return err
	}
	if e.err != nil {
		return e.err
	}
	return bw.Flush()
}

// Expand returns what text prints as, its children expanded through p.
// The text need not belong to any node.
func (p *Printer) Expand(text *NodeText) (string, error) {
	var buf strings.Builder
	bw := bufio.NewWriter(&buf)
	e := &expander{p: p, w: bw, atLineStart: true}

	if err := e.text(text); err != nil {
		return "", err
	}
	if e.err != nil {
		return "", e.err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// expander writes node texts, applying the accumulated indentation of
// inserted children to every line after their first.
type expander struct {
	p   *Printer
	w   *bufio.Writer
	err error

	prefix      string
	level       int
	atLineStart bool
}

func (e *expander) top(n *jast.Node) error {
	if text, ok := e.p.texts[n]; ok {
		return e.text(text)
	}

	sink := canonicalSink{e: e}
	if comment := n.Comment(); comment != nil {
		if err := sink.Child(comment); err != nil {
			return err
		}
	}
	return sink.Child(n)
}

func (e *expander) text(text *NodeText) error {
	saved := e.level
	e.level = 0
	defer func() { e.level = saved }()

	for _, element := range text.elements {
		switch element := element.(type) {
		case TokenText:
			e.write(element.Text)
		case ChildText:
			if err := e.child(element.Child, element.Indent); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *expander) child(n *jast.Node, indent string) error {
	saved := e.prefix
	e.prefix += indent
	defer func() { e.prefix = saved }()

	if text, ok := e.p.texts[n]; ok {
		return e.text(text)
	}

	saveLevel := e.level
	e.level = 0
	defer func() { e.level = saveLevel }()
	return e.p.registry.Render(n, canonicalSink{e: e})
}

func (e *expander) write(text string) {
	for text != "" {
		line, rest, found := strings.Cut(text, "\n")
		if strings.TrimRight(line, "\r") != "" {
			if e.atLineStart {
				e.emit(e.prefix)
				e.emit(strings.Repeat(e.p.indent, e.level))
				e.atLineStart = false
			}
		}
		e.emit(line)
		if !found {
			return
		}
		e.emit("\n")
		e.atLineStart = true
		text = rest
	}
}

func (e *expander) emit(s string) {
	if e.err != nil || s == "" {
		return
	}
	_, e.err = e.w.WriteString(s)
}

// canonicalSink renders an unbound node in canonical layout. Bound
// descendants still print their maintained text.
type canonicalSink struct {
	e *expander
}

func (s canonicalSink) Token(kind jast.TokenKind, text string) error {
	if kind == jast.TokNewline {
		s.e.write(s.e.p.endOfLine)
		return nil
	}
	s.e.write(text)
	return nil
}

func (s canonicalSink) Child(n *jast.Node) error {
	if _, ok := s.e.p.texts[n]; !ok {
		return s.e.p.registry.Render(n, s)
	}

	if err := s.e.child(n, strings.Repeat(s.e.p.indent, s.e.level)); err != nil {
		return err
	}
	if n.Kind.IsComment() {
		s.e.write(s.e.p.endOfLine)
	}
	return nil
}

func (s canonicalSink) Indent() {
	s.e.level++
}

func (s canonicalSink) Unindent() {
	if s.e.level > 0 {
		s.e.level--
	}
}
