package parser

import (
	"github.com/ftomassetti/javaparser/pkg/jast"
)

func (p *parser) parseBlock() (*jast.Node, error) {
	start := p.start()
	if err := p.expect("{"); err != nil {
		return nil, err
	}

	var statements []*jast.Node
	for !p.is("}") {
		if p.pos >= len(p.toks) {
			return nil, p.errorf("unterminated block")
		}
		stmt, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	p.next()

	return jast.NewNode(jast.NodeBlockStmt,
		jast.WithList(jast.PropStatements, statements...),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

// parseBlockStatement parses a local variable declaration or a statement.
func (p *parser) parseBlockStatement() (*jast.Node, error) {
	if decl, ok, err := p.tryLocalVariable(); ok || err != nil {
		return decl, err
	}
	return p.parseStatement()
}

// tryLocalVariable speculatively parses "Type name ...;". It reports ok=false
// and rewinds when the input is not a declaration.
func (p *parser) tryLocalVariable() (*jast.Node, bool, error) {
	tok := p.peek()
	if tok.Kind != jast.TokIdentifier && tok.Kind != jast.TokKeyword {
		return nil, false, nil
	}
	if tok.Kind == jast.TokKeyword && tok.Text != "final" {
		if _, ok := jast.ParsePrimitive(tok.Text); !ok {
			return nil, false, nil
		}
	}

	saved := p.mark()
	start := p.start()
	mods := p.parseModifiers()

	typ, err := p.parseType()
	if err != nil || p.peek().Kind != jast.TokIdentifier {
		if mods != 0 {
			return nil, true, p.errorf("expected local variable declaration")
		}
		p.reset(saved)
		return nil, false, nil
	}

	name, err := p.parseSimpleName()
	if err != nil {
		return nil, true, err
	}

	variables, err := p.parseDeclaratorsFrom(name)
	if err != nil {
		return nil, true, err
	}

	expr := jast.NewNode(jast.NodeVariableDeclarationExpr,
		jast.WithAttr(jast.PropModifiers, mods),
		jast.WithChild(jast.PropElementType, typ),
		jast.WithList(jast.PropVariables, variables...),
		jast.WithRange(p.rangeFrom(start)),
	)

	if err := p.expect(";"); err != nil {
		return nil, true, err
	}

	return jast.NewNode(jast.NodeExpressionStmt,
		jast.WithChild(jast.PropExpression, expr),
		jast.WithRange(p.rangeFrom(start)),
	), true, nil
}

func (p *parser) parseStatement() (*jast.Node, error) {
	start := p.start()

	switch {
	case p.is("{"):
		return p.parseBlock()

	case p.accept(";"):
		return jast.NewNode(jast.NodeEmptyStmt, jast.WithRange(p.rangeFrom(start))), nil

	case p.accept("return"):
		var expr *jast.Node
		if !p.is(";") {
			var err error
			if expr, err = p.parseExpression(); err != nil {
				return nil, err
			}
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}
		return jast.NewNode(jast.NodeReturnStmt,
			jast.WithChild(jast.PropExpression, expr),
			jast.WithRange(p.rangeFrom(start)),
		), nil

	case p.accept("if"):
		cond, err := p.parseParenthesized()
		if err != nil {
			return nil, err
		}
		then, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		var elseStmt *jast.Node
		if p.accept("else") {
			if elseStmt, err = p.parseStatement(); err != nil {
				return nil, err
			}
		}
		return jast.NewNode(jast.NodeIfStmt,
			jast.WithChild(jast.PropCondition, cond),
			jast.WithChild(jast.PropThen, then),
			jast.WithChild(jast.PropElse, elseStmt),
			jast.WithRange(p.rangeFrom(start)),
		), nil

	case p.accept("while"):
		cond, err := p.parseParenthesized()
		if err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return jast.NewNode(jast.NodeWhileStmt,
			jast.WithChild(jast.PropCondition, cond),
			jast.WithChild(jast.PropBody, body),
			jast.WithRange(p.rangeFrom(start)),
		), nil

	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}
		return jast.NewNode(jast.NodeExpressionStmt,
			jast.WithChild(jast.PropExpression, expr),
			jast.WithRange(p.rangeFrom(start)),
		), nil
	}
}

func (p *parser) parseParenthesized() (*jast.Node, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return expr, nil
}
