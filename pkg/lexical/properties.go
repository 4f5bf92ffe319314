package lexical

import (
	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/jast"
)

type edit struct {
	from, to int
	elements []TextElement
}

// propertyChanged re-renders, with the new value, every element of n's
// description that shows the changed property, in place of the text the
// element produced before. Elements that produced nothing are inserted
// after the nearest element before them that did.
func (p *Printer) propertyChanged(text *NodeText, change jast.Change) error {
	n := change.Node
	description, err := p.registry.Lookup(n.Kind)
	if err != nil {
		return err
	}

	elements := units(description)
	a := &aligner{n: n, text: text, view: csm.NodeView{}}
	spans := a.align(elements)

	var edits []edit
	anchor := 0
	for i, element := range elements {
		s := spans[i]
		if !references(element, change.Property) {
			if s.ok && !s.isEmpty() {
				anchor = s.to
			}
			continue
		}
		if !s.ok {
			return assertionf(n, "cannot find the text showing %s", change.Property)
		}

		from, to := s.from, s.to
		if s.isEmpty() {
			from, to = anchor, anchor
		} else {
			anchor = s.to
		}

		rendered, err := p.renderElement(n, element, overrideView{change: change}, p.lineIndent(n, text, from))
		if err != nil {
			return err
		}
		edits = append(edits, edit{from: from, to: to, elements: rendered})
	}

	if len(edits) == 0 {
		return unsupported(change, "the property does not appear in the text")
	}

	for i := len(edits) - 1; i >= 0; i-- {
		text.Remove(edits[i].from, edits[i].to)
		text.Insert(edits[i].from, edits[i].elements...)
	}
	return nil
}
