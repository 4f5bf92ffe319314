package csm

import (
	"fmt"
	"sort"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// Sink receives the output of the interpreter.
type Sink interface {
	// Token emits text; a TokNewline token ends the current line.
	Token(kind jast.TokenKind, text string) error
	// Child emits a nested node, comments included.
	Child(n *jast.Node) error
	Indent()
	Unindent()
}

// View reads node properties. Renderers that need to show a node as it is
// about to become pass a View that overrides one property.
type View interface {
	Child(n *jast.Node, p jast.Property) *jast.Node
	Items(n *jast.Node, p jast.Property) []*jast.Node
	Attr(n *jast.Node, p jast.Property) any
}

// NodeView reads properties straight from the node.
type NodeView struct{}

// Child implements View.
func (NodeView) Child(n *jast.Node, p jast.Property) *jast.Node { return n.Child(p) }

// Items implements View.
func (NodeView) Items(n *jast.Node, p jast.Property) []*jast.Node { return n.List(p).Items() }

// Attr implements View.
func (NodeView) Attr(n *jast.Node, p jast.Property) any { return n.Attr(p) }

// Holds evaluates the condition of c against n.
func Holds(n *jast.Node, c Conditional, view View) bool {
	switch c.Condition {
	case IsPresent:
		return view.Child(n, c.Property) != nil
	case IsNotEmpty:
		return len(view.Items(n, c.Property)) > 0
	case IsTrue:
		b, _ := view.Attr(n, c.Property).(bool)
		return b
	case IsPostfix:
		op, _ := view.Attr(n, c.Property).(jast.UnaryOperator)
		return op.IsPostfix()
	default:
		return false
	}
}

// Render interprets the description registered for n's kind and feeds sink.
// Orphan comments of n are interleaved by position between its children;
// whatever is left is emitted before the closing unindent, or at the end.
func (r *Registry) Render(n *jast.Node, sink Sink) error {
	element, err := r.Lookup(n.Kind)
	if err != nil {
		return err
	}

	orphans := n.OrphanComments()
	sort.SliceStable(orphans, func(i, j int) bool {
		return orphanKey(orphans[i]) < orphanKey(orphans[j])
	})

	in := &interpreter{
		node:      n,
		sink:      sink,
		view:      NodeView{},
		orphans:   orphans,
		unindents: countUnindents(element),
	}
	if err := in.element(element); err != nil {
		return err
	}
	return in.flush(nil)
}

// RenderElement interprets one element of n's description. It does not emit
// orphan comments.
func (r *Registry) RenderElement(n *jast.Node, element Element, sink Sink, view View) error {
	if view == nil {
		view = NodeView{}
	}
	in := &interpreter{node: n, sink: sink, view: view, unindents: -1}
	return in.element(element)
}

// Render renders n with the default registry.
func Render(n *jast.Node, sink Sink) error {
	return DefaultRegistry.Render(n, sink)
}

type interpreter struct {
	node      *jast.Node
	sink      Sink
	view      View
	orphans   []*jast.Node
	unindents int
}

func (in *interpreter) element(element Element) error {
	switch e := element.(type) {
	case Sequence:
		for _, child := range e.Elements {
			if err := in.element(child); err != nil {
				return err
			}
		}
		return nil

	case Token:
		text := e.Text
		if e.Derive != nil {
			text = e.Derive(in.node)
		}
		return in.sink.Token(e.Kind, text)

	case Attribute:
		lexemes, err := AttributeLexemes(in.node.Kind, e.Property, in.view.Attr(in.node, e.Property))
		if err != nil {
			return err
		}
		for _, lexeme := range lexemes {
			if err := in.sink.Token(lexeme.Kind, lexeme.Text); err != nil {
				return err
			}
		}
		return nil

	case SingleChild:
		child := in.view.Child(in.node, e.Property)
		if child == nil {
			return nil
		}
		return in.child(child)

	case List:
		return in.list(e)

	case Conditional:
		branch := e.Else
		if Holds(in.node, e, in.view) {
			branch = e.Then
		}
		if branch == nil {
			return nil
		}
		return in.element(branch)

	case Indent:
		in.sink.Indent()
		return nil

	case Unindent:
		if in.unindents == 1 {
			if err := in.flush(nil); err != nil {
				return err
			}
		}
		in.unindents--
		in.sink.Unindent()
		return nil

	case Comment, None:
		return nil

	default:
		return &ConfigError{Kind: in.node.Kind, Reason: fmt.Sprintf("unknown element %T", element)}
	}
}

func (in *interpreter) list(e List) error {
	items := in.view.Items(in.node, e.Property)
	if len(items) == 0 {
		return nil
	}

	if err := in.optional(e.Before); err != nil {
		return err
	}
	for i, item := range items {
		if i > 0 {
			if err := in.optional(e.Pre); err != nil {
				return err
			}
		}
		if err := in.child(item); err != nil {
			return err
		}
		if i < len(items)-1 {
			if err := in.optional(e.Post); err != nil {
				return err
			}
		}
	}
	return in.optional(e.After)
}

func (in *interpreter) optional(element Element) error {
	if element == nil {
		return nil
	}
	return in.element(element)
}

// child emits a structural child preceded by its leading comment.
func (in *interpreter) child(child *jast.Node) error {
	first := child
	if comment := child.Comment(); comment != nil {
		first = comment
	}
	if err := in.flush(first); err != nil {
		return err
	}
	if comment := child.Comment(); comment != nil {
		if err := in.sink.Child(comment); err != nil {
			return err
		}
	}
	return in.sink.Child(child)
}

// flush emits pending orphans that start before next, or all of them when
// next is nil.
func (in *interpreter) flush(next *jast.Node) error {
	for len(in.orphans) > 0 {
		orphan := in.orphans[0]
		if next != nil {
			if !orphan.Range.IsValid() || !next.Range.IsValid() || orphan.Range.Start >= next.Range.Start {
				return nil
			}
		}
		in.orphans = in.orphans[1:]
		if err := in.sink.Child(orphan); err != nil {
			return err
		}
	}
	return nil
}

func orphanKey(n *jast.Node) int {
	if !n.Range.IsValid() {
		return int(^uint(0) >> 1)
	}
	return n.Range.Start
}

func countUnindents(element Element) int {
	switch e := element.(type) {
	case Sequence:
		total := 0
		for _, child := range e.Elements {
			total += countUnindents(child)
		}
		return total
	case Unindent:
		return 1
	default:
		return 0
	}
}
