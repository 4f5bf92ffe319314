package lexical

import (
	"strings"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

func (p *Printer) listAdded(text *NodeText, change jast.Change) error {
	n := change.Node
	rule, ok := RuleFor(n.Kind, change.Property)
	if !ok {
		return unsupported(change, "no insertion rule for this list")
	}

	items := n.List(change.Property).Items()
	switch {
	case len(items) == 0:
		return p.insertFirst(text, n, rule, change.NewChild)
	case change.Index == 0:
		return p.insertBefore(text, n, rule, items[0], change.NewChild)
	default:
		return p.insertAfter(text, n, rule, items[change.Index-1], change.NewChild)
	}
}

// insertFirst places the only item of a list that was empty.
func (p *Printer) insertFirst(text *NodeText, n *jast.Node, rule InserterRule, child *jast.Node) error {
	pos, atStart, ok := resolveAnchor(text, n, rule.Anchors)
	if !ok {
		return assertionf(n, "no anchor for the first %s", child.Kind)
	}

	var elements []TextElement
	switch rule.Mode {
	case Plain:
		indent := p.childIndent(p.lineIndent(n, text, pos))
		elements = append(elements, templateElements(rule.Open)...)
		elements = append(elements, ChildText{Child: child, Indent: indent})
		elements = append(elements, templateElements(rule.Close)...)

	default:
		if atStart {
			elements = append(elements, ChildText{Child: child})
			breaks := 1
			if pos < text.Len() {
				breaks = rule.Gap
			}
			elements = append(elements, p.newlines(breaks)...)
			break
		}

		base := p.lineIndent(n, text, pos)
		indent := base
		if rule.Indented {
			indent += p.indent
		}
		elements = append(elements, p.newlines(rule.Gap)...)
		elements = appendIndent(elements, indent)
		elements = append(elements, ChildText{Child: child, Indent: p.childIndent(indent)})
		if rule.Mode == OwnLine && !newlineFollows(text, pos) {
			elements = append(elements, p.newlines(1)...)
			elements = appendIndent(elements, base)
		}
	}

	text.Insert(pos, elements...)
	return nil
}

// insertBefore places a new first item in front of the current one.
func (p *Printer) insertBefore(text *NodeText, n *jast.Node, rule InserterRule, first, child *jast.Node) error {
	at := itemStart(text, first)
	if at < 0 {
		return assertionf(n, "no text for list item %s", first.Kind)
	}

	var elements []TextElement
	if rule.Mode == Plain {
		indent := p.childIndent(p.lineIndent(n, text, at))
		elements = append(elements, ChildText{Child: child, Indent: indent})
		elements = append(elements, templateElements(rule.Separator)...)
	} else {
		indent := p.itemIndent(text, n, rule, at)
		elements = append(elements, ChildText{Child: child, Indent: p.childIndent(indent)})
		elements = append(elements, p.newlines(rule.Newlines)...)
		elements = appendIndent(elements, indent)
	}

	text.Insert(at, elements...)
	return nil
}

// insertAfter places a new item after prev.
func (p *Printer) insertAfter(text *NodeText, n *jast.Node, rule InserterRule, prev, child *jast.Node) error {
	at := text.FindChild(prev)
	if at < 0 {
		return assertionf(n, "no text for list item %s", prev.Kind)
	}

	var elements []TextElement
	if rule.Mode == Plain {
		indent := p.childIndent(p.lineIndent(n, text, at))
		elements = append(elements, templateElements(rule.Separator)...)
		elements = append(elements, ChildText{Child: child, Indent: indent})
	} else {
		indent := p.itemIndent(text, n, rule, itemStart(text, prev))
		elements = append(elements, p.newlines(rule.Newlines)...)
		elements = appendIndent(elements, indent)
		elements = append(elements, ChildText{Child: child, Indent: p.childIndent(indent)})
	}

	text.Insert(at+1, elements...)
	return nil
}

func (p *Printer) listRemoved(text *NodeText, change jast.Change) error {
	n := change.Node
	rule, ok := RuleFor(n.Kind, change.Property)
	if !ok {
		return unsupported(change, "no removal rule for this list")
	}

	old := change.OldChild
	at := text.FindChild(old)
	if at < 0 {
		return assertionf(n, "no text for removed %s", old.Kind)
	}
	from, to := itemStart(text, old), at+1
	remaining := n.List(change.Property).Len() - 1

	if rule.Mode != Plain {
		if remaining > 0 && change.Index == 0 {
			to = layoutAfter(text, to)
		} else {
			from = layoutBefore(text, from)
		}
		text.Remove(from, to)
		return nil
	}

	var (
		kept []int
		err  error
	)
	forward := remaining > 0 && change.Index == 0
	switch {
	case forward:
		to, kept, err = matchForward(text, n, to, template(rule.Separator))
	case remaining > 0:
		from, kept, err = matchBackward(text, n, from, template(rule.Separator))
	default:
		var before, after []int
		if from, before, err = matchBackward(text, n, from, template(rule.Open)); err == nil {
			to, after, err = matchForward(text, n, to, template(rule.Close))
		}
		kept = append(before, after...)
	}
	if err != nil {
		return err
	}

	comments := p.keptComments(text, n, kept, forward)
	text.Remove(from, to)
	text.Insert(from, comments...)
	return nil
}

// layoutBefore extends from back over the line breaks and indentation that
// separate an item in a line-mode list from what precedes it.
func layoutBefore(text *NodeText, from int) int {
	for from > 0 && text.isTrivia(from-1) {
		from--
	}
	return from
}

// layoutAfter extends to over the line breaks and indentation that follow an
// item in a line-mode list.
func layoutAfter(text *NodeText, to int) int {
	for to < text.Len() && text.isTrivia(to) {
		to++
	}
	return to
}

// keptComments returns the comments at indices kept, which lie inside text
// about to be removed, laid out to stand on their own. Comments that precede
// the remaining items are followed by a space, others are preceded by one.
func (p *Printer) keptComments(text *NodeText, n *jast.Node, kept []int, leading bool) []TextElement {
	var out []TextElement
	for _, k := range kept {
		comment, _ := text.At(k).(ChildText)
		switch {
		case comment.Child.Kind == jast.NodeLineComment:
			if !leading {
				out = append(out, TokenText{Kind: jast.TokWhitespace, Text: " "})
			}
			out = append(out, comment)
			out = append(out, p.newlines(1)...)
			out = appendIndent(out, p.lineIndent(n, text, k))
		case leading:
			out = append(out, comment, TokenText{Kind: jast.TokWhitespace, Text: " "})
		default:
			out = append(out, TokenText{Kind: jast.TokWhitespace, Text: " "}, comment)
		}
	}
	return out
}

// resolveAnchor returns the insertion index for the first anchor that
// resolves, and whether it is the start of the text.
func resolveAnchor(text *NodeText, n *jast.Node, anchors []Anchor) (int, bool, bool) {
	for _, anchor := range anchors {
		switch anchor.kind {
		case anchorToken:
			for i := range text.Len() {
				if token, ok := text.At(i).(TokenText); ok && !token.Kind.IsTrivia() && token.Text == anchor.text {
					return i + 1, false, true
				}
			}
		case anchorChild:
			if child := n.Child(anchor.property); child != nil {
				if at := text.FindChild(child); at >= 0 {
					return at + 1, false, true
				}
			}
		case anchorList:
			items := n.List(anchor.property).Items()
			if len(items) > 0 {
				if at := text.FindChild(items[len(items)-1]); at >= 0 {
					return at + 1, false, true
				}
			}
		case anchorStart:
			return 0, true, true
		}
	}
	return 0, false, false
}

// itemStart returns the index where item's text begins, its leading comment
// included.
func itemStart(text *NodeText, item *jast.Node) int {
	at := text.FindChild(item)
	if comment := item.Comment(); comment != nil && at >= 0 {
		if c := text.FindChild(comment); c >= 0 && c < at {
			return c
		}
	}
	return at
}

// itemIndent copies the indentation in front of an existing item, falling
// back to the indentation the rule would give a first item.
func (p *Printer) itemIndent(text *NodeText, n *jast.Node, rule InserterRule, at int) string {
	if at > 0 {
		if ws, ok := text.At(at - 1).(TokenText); ok && ws.Kind == jast.TokWhitespace {
			if at == 1 {
				return p.lineIndentOf(n, ws.Text)
			}
			if nl, ok := text.At(at - 2).(TokenText); ok && nl.Kind == jast.TokNewline {
				return ws.Text
			}
		}
		if nl, ok := text.At(at - 1).(TokenText); ok && nl.Kind == jast.TokNewline {
			return ""
		}
	}

	indent := p.lineIndent(n, text, at)
	if rule.Indented {
		indent += p.indent
	}
	return indent
}

// lineIndentOf handles whitespace at the very start of n's text: it is
// indentation only if the text of n starts a line in its parent.
func (p *Printer) lineIndentOf(n *jast.Node, ws string) string {
	parent := n.Parent()
	if parent == nil {
		return ws
	}
	ptext, ok := p.texts[parent]
	if !ok {
		return ws
	}
	at := ptext.FindChild(n)
	if at <= 0 {
		return ws
	}
	if nl, ok := ptext.At(at - 1).(TokenText); ok && nl.Kind == jast.TokNewline {
		return ws
	}
	return p.lineIndent(parent, ptext, at) + ws
}

// lineIndent returns the indentation of the line that contains position pos
// of n's text, looking into ancestors when the line starts before n.
func (p *Printer) lineIndent(n *jast.Node, text *NodeText, pos int) string {
	for {
		for k := min(pos, text.Len()) - 1; k >= 0; k-- {
			token, ok := text.At(k).(TokenText)
			if !ok || token.Kind != jast.TokNewline {
				continue
			}
			if k+1 < text.Len() {
				if ws, ok := text.At(k + 1).(TokenText); ok && ws.Kind == jast.TokWhitespace {
					return ws.Text
				}
			}
			return ""
		}

		parent := n.Parent()
		if parent == nil {
			return ""
		}
		ptext, ok := p.texts[parent]
		if !ok {
			return ""
		}
		at := ptext.FindChild(n)
		if at < 0 {
			return ""
		}
		if child, _ := ptext.At(at).(ChildText); child.Indent != "" {
			return ""
		}
		n, text, pos = parent, ptext, at
	}
}

func (p *Printer) childIndent(indent string) string {
	if !p.indentInserted {
		return ""
	}
	return indent
}

func (p *Printer) newlines(count int) []TextElement {
	out := make([]TextElement, count)
	for i := range out {
		out[i] = TokenText{Kind: jast.TokNewline, Text: p.endOfLine}
	}
	return out
}

func appendIndent(elements []TextElement, indent string) []TextElement {
	if indent == "" {
		return elements
	}
	return append(elements, TokenText{Kind: jast.TokWhitespace, Text: indent})
}

// newlineFollows reports whether only horizontal whitespace separates pos
// from the next line break.
func newlineFollows(text *NodeText, pos int) bool {
	for i := pos; i < text.Len(); i++ {
		token, ok := text.At(i).(TokenText)
		if !ok {
			return false
		}
		switch token.Kind {
		case jast.TokNewline:
			return true
		case jast.TokWhitespace:
			continue
		default:
			return false
		}
	}
	return false
}

// matchForward consumes want starting at from. Whitespace in want matches
// any run of whitespace, including none; comments are passed over and their
// indices returned. It returns the end of the match.
func matchForward(text *NodeText, n *jast.Node, from int, want []TokenText) (int, []int, error) {
	var comments []int
	k := from
	for _, tok := range want {
		for k < text.Len() && (text.isTrivia(k) || text.isComment(k)) {
			if text.isComment(k) {
				if tok.Kind.IsWhitespace() {
					break
				}
				comments = append(comments, k)
			}
			k++
		}
		if tok.Kind.IsWhitespace() {
			continue
		}
		if k == text.Len() || !sameToken(text.At(k), tok) {
			return 0, nil, assertionf(n, "expected %q after list item", tok.Text)
		}
		k++
	}
	return k, comments, nil
}

// matchBackward is matchForward running right to left, ending at to.
func matchBackward(text *NodeText, n *jast.Node, to int, want []TokenText) (int, []int, error) {
	var comments []int
	k := to
	for i := len(want) - 1; i >= 0; i-- {
		tok := want[i]
		for k > 0 && (text.isTrivia(k-1) || text.isComment(k-1)) {
			if text.isComment(k - 1) {
				if tok.Kind.IsWhitespace() {
					break
				}
				comments = append([]int{k - 1}, comments...)
			}
			k--
		}
		if tok.Kind.IsWhitespace() {
			continue
		}
		if k == 0 || !sameToken(text.At(k-1), tok) {
			return 0, nil, assertionf(n, "expected %q before list item", tok.Text)
		}
		k--
	}
	return k, comments, nil
}

func sameToken(element TextElement, want TokenText) bool {
	token, ok := element.(TokenText)
	return ok && strings.TrimSpace(token.Text) == strings.TrimSpace(want.Text) && !token.Kind.IsTrivia()
}
