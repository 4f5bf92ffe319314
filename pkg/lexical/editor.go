package lexical

import (
	"github.com/ftomassetti/javaparser/internal/logging"
	"github.com/ftomassetti/javaparser/pkg/jast"
)

var _ jast.Committer = (*Printer)(nil)

// NodeChanged patches a copy of the text of the changed node. It runs before
// the change is applied; an error vetoes the change. The copy replaces the
// maintained text only once the change is applied, so a veto from any other
// observer leaves the text untouched too.
func (p *Printer) NodeChanged(change jast.Change) error {
	logger := p.log().With(
		"change", change.Kind.String(),
		"node", change.Node.Kind.String(),
		"property", change.Property.String(),
	)

	p.pending = nil

	text, err := p.apply(change)
	if err != nil {
		logger.Debug("change rejected", logging.FieldError, err)
		return err
	}

	if text != nil {
		p.pending = &pendingText{change: change, text: text}
	}

	logger.Debug("change accepted", "index", change.Index)
	return nil
}

// ChangeApplied stores the text patched for change and keeps following
// subtrees that change detached from the tree or attached to it.
func (p *Printer) ChangeApplied(change jast.Change) {
	if pending := p.pending; pending != nil && pending.change == change {
		p.texts[change.Node] = pending.text
		p.log().Debug("change applied",
			"change", change.Kind.String(),
			"node", change.Node.Kind.String(),
		)
	}
	p.pending = nil

	if change.Kind != jast.ChangeListAdded && change.OldChild != nil {
		p.watch(change.OldChild)
	}
	if change.NewChild != nil {
		p.unwatch(change.NewChild)
	}
}

// pendingText is a patch waiting for its change to be applied.
type pendingText struct {
	change jast.Change
	text   *NodeText
}

// watch observes a detached subtree, so texts bound inside it follow edits
// made while it is out of the tree.
func (p *Printer) watch(n *jast.Node) {
	if _, ok := p.watched[n]; ok {
		return
	}
	n.AddObserver(p)
	p.watched[n] = struct{}{}
}

// unwatch stops observing n directly once it is back under an observed node.
func (p *Printer) unwatch(n *jast.Node) {
	if _, ok := p.watched[n]; !ok {
		return
	}
	n.RemoveObserver(p)
	delete(p.watched, n)
}

func (p *Printer) apply(change jast.Change) (*NodeText, error) {
	n := change.Node

	switch change.Property {
	case jast.PropComment:
		if p.IsBound(n) || (n.Parent() != nil && p.IsBound(n.Parent())) {
			return nil, unsupported(change, "the comment of a bound node cannot change")
		}
		return nil, nil
	case jast.PropOrphanComments:
		if p.IsBound(n) {
			return nil, unsupported(change, "orphan comments of a bound node cannot change")
		}
		return nil, nil
	}

	text, err := p.editable(n)
	if err != nil {
		return nil, err
	}

	switch change.Kind {
	case jast.ChangeListAdded:
		err = p.listAdded(text, change)
	case jast.ChangeListRemoved:
		err = p.listRemoved(text, change)
	case jast.ChangeListReplaced:
		err = replaceChild(text, change)
	case jast.ChangeChildReplaced:
		if change.OldChild != nil && change.NewChild != nil {
			err = replaceChild(text, change)
		} else {
			err = p.propertyChanged(text, change)
		}
	case jast.ChangeAttributeChanged:
		if n.Kind.IsComment() {
			err = commentChanged(text, change)
		} else {
			err = p.propertyChanged(text, change)
		}
	default:
		err = unsupported(change, "unknown change kind")
	}
	if err != nil {
		return nil, err
	}

	return text, nil
}

// editable returns a copy of n's text to patch, binding n first if needed.
// Nothing is stored until the patch succeeds.
func (p *Printer) editable(n *jast.Node) (*NodeText, error) {
	if text, ok := p.texts[n]; ok {
		return text.clone(), nil
	}
	return p.build(n)
}

func replaceChild(text *NodeText, change jast.Change) error {
	at := text.FindChild(change.OldChild)
	if at < 0 {
		return assertionf(change.Node, "no text for replaced %s", change.OldChild.Kind)
	}
	old, _ := text.At(at).(ChildText)
	text.Replace(at, ChildText{Child: change.NewChild, Indent: old.Indent})
	return nil
}

func commentChanged(text *NodeText, change jast.Change) error {
	content, _ := change.NewValue.(string)
	for i := range text.Len() {
		token, ok := text.At(i).(TokenText)
		if !ok || !token.Kind.IsComment() {
			continue
		}
		text.Replace(i, TokenText{Kind: token.Kind, Text: commentText(change.Node.Kind, content)})
		return nil
	}
	return assertionf(change.Node, "comment has no comment token")
}

func commentText(kind jast.NodeKind, content string) string {
	switch kind {
	case jast.NodeLineComment:
		return "//" + content
	case jast.NodeJavadocComment:
		return "/**" + content + "*/"
	default:
		return "/*" + content + "*/"
	}
}
