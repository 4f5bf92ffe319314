package csm

import (
	"bytes"
	"io"
	"strings"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// Options controls canonical output.
type Options struct {
	// Indent is written once per indentation level. Defaults to four spaces.
	Indent string
	// EndOfLine is written for every line break. Defaults to "\n".
	EndOfLine string
}

func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = "    "
	}
	if o.EndOfLine == "" {
		o.EndOfLine = "\n"
	}
	return o
}

// Printer renders nodes in canonical layout, ignoring any original text.
type Printer struct {
	registry *Registry
	opts     Options
}

// NewPrinter creates a printer over the default registry.
func NewPrinter(opts Options) *Printer {
	return &Printer{registry: DefaultRegistry, opts: opts.withDefaults()}
}

// WithRegistry returns a copy of p that renders with r.
func (p *Printer) WithRegistry(r *Registry) *Printer {
	out := *p
	out.registry = r
	return &out
}

// Print renders n and returns the text.
func (p *Printer) Print(n *jast.Node) (string, error) {
	var buf bytes.Buffer
	if err := p.Fprint(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint renders n to w. A leading comment on n is rendered first.
func (p *Printer) Fprint(w io.Writer, n *jast.Node) error {
	out := &writer{registry: p.registry, opts: p.opts, atLineStart: true}
	if comment := n.Comment(); comment != nil {
		if err := out.Child(comment); err != nil {
			return err
		}
	}
	if err := out.Child(n); err != nil {
		return err
	}
	_, err := io.WriteString(w, out.buf.String())
	return err
}

// Print renders n canonically with default options.
func Print(n *jast.Node) (string, error) {
	return NewPrinter(Options{}).Print(n)
}

// Fprint renders n canonically to w with default options.
func Fprint(w io.Writer, n *jast.Node) error {
	return NewPrinter(Options{}).Fprint(w, n)
}

// writer is the canonical Sink. Indentation is written lazily before the
// first non-newline token of a line, so blank lines stay empty.
type writer struct {
	registry    *Registry
	opts        Options
	buf         strings.Builder
	indentLevel int
	atLineStart bool
}

func (w *writer) Token(kind jast.TokenKind, text string) error {
	if kind == jast.TokNewline {
		w.buf.WriteString(w.opts.EndOfLine)
		w.atLineStart = true
		return nil
	}
	if text == "" {
		return nil
	}
	if w.atLineStart {
		w.buf.WriteString(strings.Repeat(w.opts.Indent, w.indentLevel))
		w.atLineStart = false
	}
	w.buf.WriteString(text)
	return nil
}

func (w *writer) Child(n *jast.Node) error {
	return w.registry.Render(n, w)
}

func (w *writer) Indent() {
	w.indentLevel++
}

func (w *writer) Unindent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
