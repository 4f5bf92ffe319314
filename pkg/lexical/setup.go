package lexical

import (
	"fmt"
	"sort"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// Setup binds the text of root and of every positioned node below it to the
// tokens that cover them, then follows every change made under root.
//
// Each token goes to the innermost node whose range contains it. A token no
// node can take is a structural assertion failure.
func Setup(tokens []jast.Token, root *jast.Node, opts ...Option) (*Printer, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	p := &Printer{
		settings: s,
		root:     root,
		texts:    make(map[*jast.Node]*NodeText),
		watched:  make(map[*jast.Node]struct{}),
	}

	if err := p.assign(tokens); err != nil {
		return nil, err
	}

	root.AddObserver(p)

	p.log().Debug("lexical setup complete",
		"tokens", len(tokens),
		"bound", len(p.texts),
	)

	return p, nil
}

// SetupFile is Setup for a parsed source file.
func SetupFile(file *jast.SourceFile, opts ...Option) (*Printer, error) {
	if file == nil || file.Root == nil {
		return nil, assertionf(nil, "source file has no tree")
	}

	p, err := Setup(file.Tokens, file.Root, opts...)
	if err != nil {
		return nil, fmt.Errorf("setup %s: %w", file.Path, err)
	}
	return p, nil
}

// isPhantom reports whether child has no text of its own inside parent.
func isPhantom(parent, child *jast.Node) bool {
	return !child.Range.IsValid() || !parent.Range.Contains(child.Range)
}

type assignment struct {
	positioned map[*jast.Node][]*jast.Node
	owned      map[*jast.Node][]jast.Token
}

func (a *assignment) children(n *jast.Node) ([]*jast.Node, error) {
	if kids, ok := a.positioned[n]; ok {
		return kids, nil
	}

	var kids []*jast.Node
	for _, child := range n.TextChildren() {
		if isPhantom(n, child) {
			continue
		}
		kids = append(kids, child)
	}

	for i := 1; i < len(kids); i++ {
		if kids[i-1].Range.End > kids[i].Range.Start {
			return nil, assertionf(n, "children %s and %s overlap", kids[i-1].Kind, kids[i].Kind)
		}
	}

	a.positioned[n] = kids
	return kids, nil
}

// owner descends from root to the innermost positioned node containing tok.
func (a *assignment) owner(root *jast.Node, tok jast.Token) (*jast.Node, error) {
	node := root
	for {
		kids, err := a.children(node)
		if err != nil {
			return nil, err
		}

		j := sort.Search(len(kids), func(k int) bool {
			return kids[k].Range.End > tok.Range.Start
		})
		if j == len(kids) {
			return node, nil
		}
		if kids[j].Range.Contains(tok.Range) {
			node = kids[j]
			continue
		}
		if kids[j].Range.Overlaps(tok.Range) {
			return nil, assertionf(node, "token %q at %d straddles the edge of %s",
				tok.Text, tok.Range.Start, kids[j].Kind)
		}
		return node, nil
	}
}

func (p *Printer) assign(tokens []jast.Token) error {
	root := p.root
	if !root.Range.IsValid() {
		return assertionf(root, "root has no source range")
	}

	a := &assignment{
		positioned: make(map[*jast.Node][]*jast.Node),
		owned:      make(map[*jast.Node][]jast.Token),
	}

	for _, tok := range tokens {
		if !root.Range.Contains(tok.Range) {
			return assertionf(root, "token %q at %d lies outside the root", tok.Text, tok.Range.Start)
		}
		node, err := a.owner(root, tok)
		if err != nil {
			return err
		}
		a.owned[node] = append(a.owned[node], tok)
	}

	return p.bindAll(a, root)
}

// bindAll merges the tokens and positioned children of n by start offset,
// then recurses.
func (p *Printer) bindAll(a *assignment, n *jast.Node) error {
	kids, err := a.children(n)
	if err != nil {
		return err
	}
	toks := a.owned[n]

	elements := make([]TextElement, 0, len(kids)+len(toks))
	i, j := 0, 0
	for i < len(toks) || j < len(kids) {
		if j == len(kids) || (i < len(toks) && toks[i].Range.Start < kids[j].Range.Start) {
			elements = append(elements, TokenText{Kind: toks[i].Kind, Text: toks[i].Text})
			i++
			continue
		}
		elements = append(elements, ChildText{Child: kids[j]})
		j++
	}
	p.texts[n] = &NodeText{elements: elements}

	for _, kid := range kids {
		if err := p.bindAll(a, kid); err != nil {
			return err
		}
	}
	return nil
}
