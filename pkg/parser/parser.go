// Package parser turns Java source into a jast.SourceFile: a lossless token
// stream, a tree whose nodes carry source ranges, and comments attached to the
// nodes they document.
package parser

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// ErrInvalidTokens is returned when the token stream does not cover the content.
var ErrInvalidTokens = errors.New("invalid token stream: tokens do not cover content")

// Parse converts raw Java bytes into a fully-populated SourceFile.
//
// The steps are:
//  1. Check for context cancellation.
//  2. Tokenize the content, trivia included.
//  3. Parse the compilation unit with recursive descent.
//  4. Attach comments to the nodes they precede or sit inside.
//  5. Validate the token stream.
func Parse(ctx context.Context, path string, content []byte) (*jast.SourceFile, error) {
	return parseWith(ctx, path, content, (*parser).parseCompilationUnit)
}

// ParseString is Parse for in-memory source without a path.
func ParseString(src string) (*jast.SourceFile, error) {
	return Parse(context.Background(), "", []byte(src))
}

// ParseMember parses a single class member (field, method or nested type).
// The root's range is widened to the whole content so surrounding trivia
// belongs to it.
func ParseMember(ctx context.Context, path string, content []byte) (*jast.SourceFile, error) {
	return parseWith(ctx, path, content, func(p *parser) (*jast.Node, error) {
		member, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		if p.pos < len(p.toks) {
			return nil, p.errorf("unexpected %s after member", describe(p.peek()))
		}
		member.Range = jast.Range{Start: 0, End: len(p.file.Content)}
		return member, nil
	})
}

// ParseMemberString is ParseMember for in-memory source without a path.
func ParseMemberString(src string) (*jast.SourceFile, error) {
	return ParseMember(context.Background(), "", []byte(src))
}

func parseWith(
	ctx context.Context, path string, content []byte, entry func(p *parser) (*jast.Node, error),
) (*jast.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	file := jast.NewSourceFile(path, slices.Clone(content))

	p := newParser(file, Tokenize(file.Content))

	root, err := entry(p)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	file.Tokens = p.toks
	file.Root = root

	if err := attachComments(root, file.Tokens); err != nil {
		return nil, err
	}

	if !jast.ValidateTokens(file.Tokens, len(file.Content)) {
		return nil, ErrInvalidTokens
	}

	return file, nil
}

type parser struct {
	file *jast.SourceFile
	toks []jast.Token

	// pos is the index of the current significant token, or len(toks).
	pos int

	// lastEnd is the end offset of the last consumed significant token.
	lastEnd int
}

func newParser(file *jast.SourceFile, toks []jast.Token) *parser {
	p := &parser{file: file, toks: toks}
	p.skipTrivia()
	return p
}

func (p *parser) skipTrivia() {
	for p.pos < len(p.toks) && p.toks[p.pos].Kind.IsTrivia() {
		p.pos++
	}
}

func (p *parser) eof() jast.Token {
	end := len(p.file.Content)
	return jast.Token{Kind: jast.TokOther, Range: jast.Range{Start: end, End: end}}
}

// peek returns the current significant token.
func (p *parser) peek() jast.Token {
	if p.pos >= len(p.toks) {
		return p.eof()
	}
	return p.toks[p.pos]
}

// peekAt returns the n-th significant token after the current one.
func (p *parser) peekAt(n int) jast.Token {
	idx := p.pos
	for ; n > 0 && idx < len(p.toks); n-- {
		idx++
		for idx < len(p.toks) && p.toks[idx].Kind.IsTrivia() {
			idx++
		}
	}
	if idx >= len(p.toks) {
		return p.eof()
	}
	return p.toks[idx]
}

func (p *parser) next() jast.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.lastEnd = tok.Range.End
		p.pos++
		p.skipTrivia()
	}
	return tok
}

// is reports whether the current token is the given keyword, separator or operator.
func (p *parser) is(text string) bool {
	return isPunct(p.peek(), text)
}

func isPunct(tok jast.Token, text string) bool {
	switch tok.Kind {
	case jast.TokKeyword, jast.TokSeparator, jast.TokOperator:
		return tok.Text == text
	default:
		return false
	}
}

func (p *parser) accept(text string) bool {
	if p.is(text) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(text string) error {
	if !p.accept(text) {
		return p.errorf("expected %q, found %s", text, describe(p.peek()))
	}
	return nil
}

func (p *parser) expectIdentifier() (jast.Token, error) {
	tok := p.peek()
	if tok.Kind != jast.TokIdentifier {
		return tok, p.errorf("expected identifier, found %s", describe(tok))
	}
	return p.next(), nil
}

// splitAngle splits a token such as ">>" so that the current token is a single '>'.
func (p *parser) splitAngle() {
	tok := p.peek()
	if tok.Kind != jast.TokOperator || len(tok.Text) < 2 || tok.Text[0] != '>' {
		return
	}

	start := tok.Range.Start
	first := jast.Token{Kind: jast.TokOperator, Text: ">", Range: jast.Range{Start: start, End: start + 1}}
	rest := jast.Token{Kind: jast.TokOperator, Text: tok.Text[1:], Range: jast.Range{Start: start + 1, End: tok.Range.End}}

	p.toks[p.pos] = first
	p.toks = slices.Insert(p.toks, p.pos+1, rest)
}

func (p *parser) expectCloseAngle() error {
	p.splitAngle()
	return p.expect(">")
}

// start returns the offset at which the next node begins.
func (p *parser) start() int {
	return p.peek().Range.Start
}

// rangeFrom returns the range from start to the last consumed token.
func (p *parser) rangeFrom(start int) jast.Range {
	return jast.Range{Start: start, End: p.lastEnd}
}

type mark struct {
	pos     int
	lastEnd int
}

func (p *parser) mark() mark {
	return mark{pos: p.pos, lastEnd: p.lastEnd}
}

func (p *parser) reset(m mark) {
	p.pos = m.pos
	p.lastEnd = m.lastEnd
}

func (p *parser) errorf(format string, args ...any) error {
	offset := p.peek().Range.Start
	return &SyntaxError{
		Path:    p.file.Path,
		Offset:  offset,
		Pos:     p.file.PositionAt(offset),
		Message: fmt.Sprintf(format, args...),
	}
}

func describe(tok jast.Token) string {
	if tok.Text == "" {
		return "end of file"
	}
	return fmt.Sprintf("%q", tok.Text)
}

func (p *parser) parseCompilationUnit() (*jast.Node, error) {
	var opts []jast.NodeOption

	if p.is("package") {
		pkg, err := p.parsePackageDeclaration()
		if err != nil {
			return nil, err
		}
		opts = append(opts, jast.WithChild(jast.PropPackage, pkg))
	}

	var imports []*jast.Node
	for p.is("import") {
		imp, err := p.parseImportDeclaration()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}

	var types []*jast.Node
	for p.pos < len(p.toks) {
		if p.accept(";") {
			continue
		}
		typ, err := p.parseTypeDeclaration()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
	}

	opts = append(opts,
		jast.WithList(jast.PropImports, imports...),
		jast.WithList(jast.PropTypes, types...),
		jast.WithRange(jast.Range{Start: 0, End: len(p.file.Content)}),
	)

	return jast.NewNode(jast.NodeCompilationUnit, opts...), nil
}

func (p *parser) parsePackageDeclaration() (*jast.Node, error) {
	start := p.start()
	p.next()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if err := p.expect(";"); err != nil {
		return nil, err
	}

	return jast.NewNode(jast.NodePackageDeclaration,
		jast.WithChild(jast.PropName, name),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

func (p *parser) parseImportDeclaration() (*jast.Node, error) {
	start := p.start()
	p.next()

	static := p.accept("static")

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	asterisk := false
	if p.is(".") && isPunct(p.peekAt(1), "*") {
		p.next()
		p.next()
		asterisk = true
	}

	if err := p.expect(";"); err != nil {
		return nil, err
	}

	return jast.NewNode(jast.NodeImportDeclaration,
		jast.WithAttr(jast.PropStatic, static),
		jast.WithChild(jast.PropName, name),
		jast.WithAttr(jast.PropAsterisk, asterisk),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

// parseName parses a dotted name into nested Name nodes.
func (p *parser) parseName() (*jast.Node, error) {
	start := p.start()

	tok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	name := jast.NewNode(jast.NodeName,
		jast.WithAttr(jast.PropIdentifier, tok.Text),
		jast.WithRange(p.rangeFrom(start)),
	)

	for p.is(".") && p.peekAt(1).Kind == jast.TokIdentifier {
		p.next()
		tok = p.next()
		name = jast.NewNode(jast.NodeName,
			jast.WithChild(jast.PropQualifier, name),
			jast.WithAttr(jast.PropIdentifier, tok.Text),
			jast.WithRange(p.rangeFrom(start)),
		)
	}

	return name, nil
}

func (p *parser) parseSimpleName() (*jast.Node, error) {
	start := p.start()

	tok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	return jast.NewNode(jast.NodeSimpleName,
		jast.WithAttr(jast.PropIdentifier, tok.Text),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

func (p *parser) parseModifiers() jast.Modifiers {
	var mods jast.Modifiers
	for {
		tok := p.peek()
		if tok.Kind != jast.TokKeyword {
			return mods
		}
		mod, ok := jast.ParseModifier(tok.Text)
		if !ok {
			return mods
		}
		mods |= mod
		p.next()
	}
}
