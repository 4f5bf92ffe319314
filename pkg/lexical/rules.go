package lexical

import (
	"github.com/ftomassetti/javaparser/pkg/jast"
	"github.com/ftomassetti/javaparser/pkg/parser"
)

// Mode selects the layout an insertion adds around a new list item.
type Mode uint8

// Insertion modes.
const (
	// Plain adds only separators.
	Plain Mode = iota
	// OwnLine puts the item on its own line and ends that line when the
	// list was empty.
	OwnLine
	// LeadingLine starts a new line before the item only.
	LeadingLine
)

type anchorKind uint8

const (
	anchorToken anchorKind = iota
	anchorChild
	anchorList
	anchorStart
)

// Anchor locates where the first item of an empty list goes.
type Anchor struct {
	kind     anchorKind
	text     string
	property jast.Property
}

// AfterToken anchors after the first token of the parent with the given text.
func AfterToken(text string) Anchor {
	return Anchor{kind: anchorToken, text: text}
}

// AfterChild anchors after the child held in p, when there is one.
func AfterChild(p jast.Property) Anchor {
	return Anchor{kind: anchorChild, property: p}
}

// AfterList anchors after the last item of list p, when it has items.
func AfterList(p jast.Property) Anchor {
	return Anchor{kind: anchorList, property: p}
}

// AtStart anchors at the start of the parent's text.
func AtStart() Anchor {
	return Anchor{kind: anchorStart}
}

// InserterRule describes how items enter and leave one list property.
type InserterRule struct {
	// Anchors are tried in order for the first item of an empty list.
	Anchors []Anchor

	Mode Mode

	// Separator goes between items in Plain mode.
	Separator string
	// Open and Close surround the items of a non-empty list in Plain mode.
	Open  string
	Close string

	// Newlines is the number of line breaks between items in line modes.
	Newlines int
	// Gap is the number of line breaks between the anchor and the first item.
	Gap int
	// Indented places items one indent deeper than the anchor's line.
	Indented bool
}

type ruleKey struct {
	kind jast.NodeKind
	prop jast.Property
}

// inserterRules is the insertion table, keyed by parent kind and list.
//
//nolint:gochecknoglobals // Static dispatch table, read-only after init.
var inserterRules = map[ruleKey]InserterRule{
	{jast.NodeCompilationUnit, jast.PropImports}: {
		Anchors:  []Anchor{AfterChild(jast.PropPackage), AtStart()},
		Mode:     LeadingLine,
		Newlines: 1,
		Gap:      2,
	},
	{jast.NodeCompilationUnit, jast.PropTypes}: {
		Anchors:  []Anchor{AfterList(jast.PropImports), AfterChild(jast.PropPackage), AtStart()},
		Mode:     LeadingLine,
		Newlines: 2,
		Gap:      2,
	},
	{jast.NodeClassOrInterfaceDeclaration, jast.PropMembers}: {
		Anchors:  []Anchor{AfterToken("{")},
		Mode:     OwnLine,
		Newlines: 1,
		Gap:      1,
		Indented: true,
	},
	{jast.NodeClassOrInterfaceDeclaration, jast.PropTypeParameters}: {
		Anchors:   []Anchor{AfterChild(jast.PropName)},
		Separator: ", ",
		Open:      "<",
		Close:     ">",
	},
	{jast.NodeClassOrInterfaceDeclaration, jast.PropExtendedTypes}: {
		Anchors:   []Anchor{AfterToken(">"), AfterChild(jast.PropName)},
		Separator: ", ",
		Open:      " extends ",
	},
	{jast.NodeClassOrInterfaceDeclaration, jast.PropImplementedTypes}: {
		Anchors:   []Anchor{AfterList(jast.PropExtendedTypes), AfterToken(">"), AfterChild(jast.PropName)},
		Separator: ", ",
		Open:      " implements ",
	},
	{jast.NodeMethodDeclaration, jast.PropParameters}: {
		Anchors:   []Anchor{AfterToken("(")},
		Separator: ", ",
	},
	{jast.NodeMethodDeclaration, jast.PropThrownExceptions}: {
		Anchors:   []Anchor{AfterToken(")")},
		Separator: ", ",
		Open:      " throws ",
	},
	{jast.NodeBlockStmt, jast.PropStatements}: {
		Anchors:  []Anchor{AfterToken("{")},
		Mode:     LeadingLine,
		Newlines: 1,
		Gap:      1,
		Indented: true,
	},
	{jast.NodeFieldDeclaration, jast.PropVariables}: {
		Anchors:   []Anchor{AfterChild(jast.PropElementType)},
		Separator: ", ",
		Open:      " ",
	},
	{jast.NodeVariableDeclarationExpr, jast.PropVariables}: {
		Anchors:   []Anchor{AfterChild(jast.PropElementType)},
		Separator: ", ",
		Open:      " ",
	},
	{jast.NodeMethodCallExpr, jast.PropArguments}: {
		Anchors:   []Anchor{AfterToken("(")},
		Separator: ", ",
	},
	{jast.NodeObjectCreationExpr, jast.PropArguments}: {
		Anchors:   []Anchor{AfterToken("(")},
		Separator: ", ",
	},
	{jast.NodeClassOrInterfaceType, jast.PropTypeArguments}: {
		Anchors:   []Anchor{AfterChild(jast.PropName)},
		Separator: ", ",
		Open:      "<",
		Close:     ">",
	},
	{jast.NodeTypeParameter, jast.PropTypeBound}: {
		Anchors:   []Anchor{AfterChild(jast.PropName)},
		Separator: " & ",
		Open:      " extends ",
	},
}

// RuleFor returns the insertion rule for list p of kind, if there is one.
func RuleFor(kind jast.NodeKind, p jast.Property) (InserterRule, bool) {
	rule, ok := inserterRules[ruleKey{kind, p}]
	return rule, ok
}

// template tokenizes fixed rule text.
func template(text string) []TokenText {
	tokens := parser.Tokenize([]byte(text))
	out := make([]TokenText, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenText{Kind: tok.Kind, Text: tok.Text}
	}
	return out
}

func templateElements(text string) []TextElement {
	tokens := template(text)
	out := make([]TextElement, len(tokens))
	for i, tok := range tokens {
		out[i] = tok
	}
	return out
}
