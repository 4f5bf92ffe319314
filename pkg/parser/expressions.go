package parser

import (
	"github.com/ftomassetti/javaparser/pkg/jast"
)

func (p *parser) parseExpression() (*jast.Node, error) {
	start := p.start()

	left, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Kind != jast.TokOperator {
		return left, nil
	}
	op, ok := jast.ParseAssignOperator(tok.Text)
	if !ok {
		return left, nil
	}

	switch left.Kind {
	case jast.NodeNameExpr, jast.NodeFieldAccessExpr:
	default:
		return nil, p.errorf("cannot assign to %s", left.Kind)
	}
	p.next()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return jast.NewNode(jast.NodeAssignExpr,
		jast.WithChild(jast.PropTarget, left),
		jast.WithAttr(jast.PropOperator, op),
		jast.WithChild(jast.PropValue, value),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

// parseBinary implements precedence climbing over the binary operators.
func (p *parser) parseBinary(minPrec int) (*jast.Node, error) {
	start := p.start()

	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.Kind != jast.TokOperator {
			return left, nil
		}
		op, ok := jast.ParseBinaryOperator(tok.Text)
		if !ok || op.Precedence() < minPrec {
			return left, nil
		}
		p.next()

		right, err := p.parseBinary(op.Precedence() + 1)
		if err != nil {
			return nil, err
		}

		left = jast.NewNode(jast.NodeBinaryExpr,
			jast.WithChild(jast.PropLeft, left),
			jast.WithAttr(jast.PropOperator, op),
			jast.WithChild(jast.PropRight, right),
			jast.WithRange(p.rangeFrom(start)),
		)
	}
}

var prefixOperators = map[string]jast.UnaryOperator{
	"+":  jast.OpUnaryPlus,
	"-":  jast.OpUnaryMinus,
	"!":  jast.OpNot,
	"~":  jast.OpComplement,
	"++": jast.OpPreIncrement,
	"--": jast.OpPreDecrement,
}

func (p *parser) parseUnary() (*jast.Node, error) {
	start := p.start()
	tok := p.peek()

	if op, ok := prefixOperators[tok.Text]; ok && tok.Kind == jast.TokOperator {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return jast.NewNode(jast.NodeUnaryExpr,
			jast.WithAttr(jast.PropOperator, op),
			jast.WithChild(jast.PropExpression, operand),
			jast.WithRange(p.rangeFrom(start)),
		), nil
	}

	expr, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}

	for {
		var op jast.UnaryOperator
		switch {
		case p.is("++"):
			op = jast.OpPostIncrement
		case p.is("--"):
			op = jast.OpPostDecrement
		default:
			return expr, nil
		}
		p.next()
		expr = jast.NewNode(jast.NodeUnaryExpr,
			jast.WithAttr(jast.PropOperator, op),
			jast.WithChild(jast.PropExpression, expr),
			jast.WithRange(p.rangeFrom(start)),
		)
	}
}

// parsePostfix parses a primary followed by field accesses and calls.
func (p *parser) parsePostfix() (*jast.Node, error) {
	start := p.start()

	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.is(".") {
		p.next()
		name, err := p.parseSimpleName()
		if err != nil {
			return nil, err
		}

		if p.is("(") {
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = jast.NewNode(jast.NodeMethodCallExpr,
				jast.WithChild(jast.PropScope, expr),
				jast.WithChild(jast.PropName, name),
				jast.WithList(jast.PropArguments, args...),
				jast.WithRange(p.rangeFrom(start)),
			)
			continue
		}

		expr = jast.NewNode(jast.NodeFieldAccessExpr,
			jast.WithChild(jast.PropScope, expr),
			jast.WithChild(jast.PropName, name),
			jast.WithRange(p.rangeFrom(start)),
		)
	}

	return expr, nil
}

func (p *parser) parsePrimary() (*jast.Node, error) {
	start := p.start()
	tok := p.peek()

	literal := func(kind jast.NodeKind, value any) (*jast.Node, error) {
		p.next()
		var opts []jast.NodeOption
		if value != nil {
			opts = append(opts, jast.WithAttr(jast.PropValue, value))
		}
		opts = append(opts, jast.WithRange(p.rangeFrom(start)))
		return jast.NewNode(kind, opts...), nil
	}

	switch tok.Kind {
	case jast.TokIntegerLiteral:
		return literal(jast.NodeIntegerLiteralExpr, tok.Text)
	case jast.TokFloatingLiteral:
		return literal(jast.NodeDoubleLiteralExpr, tok.Text)
	case jast.TokStringLiteral:
		return literal(jast.NodeStringLiteralExpr, unquote(tok.Text))
	case jast.TokCharLiteral:
		return literal(jast.NodeCharLiteralExpr, unquote(tok.Text))

	case jast.TokIdentifier:
		name, err := p.parseSimpleName()
		if err != nil {
			return nil, err
		}
		if p.is("(") {
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			return jast.NewNode(jast.NodeMethodCallExpr,
				jast.WithChild(jast.PropName, name),
				jast.WithList(jast.PropArguments, args...),
				jast.WithRange(p.rangeFrom(start)),
			), nil
		}
		return jast.NewNode(jast.NodeNameExpr,
			jast.WithChild(jast.PropName, name),
			jast.WithRange(p.rangeFrom(start)),
		), nil

	case jast.TokKeyword:
		switch tok.Text {
		case "true":
			return literal(jast.NodeBooleanLiteralExpr, true)
		case "false":
			return literal(jast.NodeBooleanLiteralExpr, false)
		case "null":
			return literal(jast.NodeNullLiteralExpr, nil)
		case "this":
			return literal(jast.NodeThisExpr, nil)
		case "new":
			return p.parseObjectCreation()
		}

	case jast.TokSeparator:
		if tok.Text == "(" {
			p.next()
			inner, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return jast.NewNode(jast.NodeEnclosedExpr,
				jast.WithChild(jast.PropInner, inner),
				jast.WithRange(p.rangeFrom(start)),
			), nil
		}

	default:
	}

	return nil, p.errorf("expected expression, found %s", describe(tok))
}

func (p *parser) parseObjectCreation() (*jast.Node, error) {
	start := p.start()
	p.next()

	typ, err := p.parseClassType()
	if err != nil {
		return nil, err
	}

	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}

	return jast.NewNode(jast.NodeObjectCreationExpr,
		jast.WithChild(jast.PropType, typ),
		jast.WithList(jast.PropArguments, args...),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

func (p *parser) parseArguments() ([]*jast.Node, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}

	var args []*jast.Node
	if !p.is(")") {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.accept(",") {
				break
			}
		}
	}

	if err := p.expect(")"); err != nil {
		return nil, err
	}

	return args, nil
}

// unquote strips the surrounding quotes of a string or char literal and keeps
// escapes as written, so the value prints back verbatim.
func unquote(text string) string {
	if len(text) >= 2 && text[0] == text[len(text)-1] {
		return text[1 : len(text)-1]
	}
	if len(text) >= 1 {
		return text[1:]
	}
	return text
}
