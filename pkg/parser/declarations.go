package parser

import (
	"github.com/ftomassetti/javaparser/pkg/jast"
)

func (p *parser) parseTypeDeclaration() (*jast.Node, error) {
	start := p.start()
	mods := p.parseModifiers()
	return p.parseClassOrInterface(start, mods)
}

func (p *parser) parseClassOrInterface(start int, mods jast.Modifiers) (*jast.Node, error) {
	var isInterface bool
	switch {
	case p.accept("class"):
	case p.accept("interface"):
		isInterface = true
	default:
		return nil, p.errorf("expected class or interface, found %s", describe(p.peek()))
	}

	name, err := p.parseSimpleName()
	if err != nil {
		return nil, err
	}

	typeParams, err := p.parseTypeParametersOpt()
	if err != nil {
		return nil, err
	}

	var extended, implemented []*jast.Node
	if p.accept("extends") {
		if extended, err = p.parseClassTypeList(); err != nil {
			return nil, err
		}
	}
	if !isInterface && p.accept("implements") {
		if implemented, err = p.parseClassTypeList(); err != nil {
			return nil, err
		}
	}

	if err := p.expect("{"); err != nil {
		return nil, err
	}

	var members []*jast.Node
	for !p.is("}") {
		if p.pos >= len(p.toks) {
			return nil, p.errorf("unterminated class body")
		}
		if p.accept(";") {
			continue
		}
		member, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	p.next()

	return jast.NewNode(jast.NodeClassOrInterfaceDeclaration,
		jast.WithAttr(jast.PropModifiers, mods),
		jast.WithAttr(jast.PropInterface, isInterface),
		jast.WithChild(jast.PropName, name),
		jast.WithList(jast.PropTypeParameters, typeParams...),
		jast.WithList(jast.PropExtendedTypes, extended...),
		jast.WithList(jast.PropImplementedTypes, implemented...),
		jast.WithList(jast.PropMembers, members...),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

func (p *parser) parseMember() (*jast.Node, error) {
	start := p.start()
	mods := p.parseModifiers()

	if p.is("class") || p.is("interface") {
		return p.parseClassOrInterface(start, mods)
	}

	typeParams, err := p.parseTypeParametersOpt()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind == jast.TokIdentifier && isPunct(p.peekAt(1), "(") {
		return nil, p.errorf("constructors are not supported")
	}

	var typ *jast.Node
	if p.is("void") {
		typeStart := p.start()
		p.next()
		typ = jast.NewNode(jast.NodeVoidType, jast.WithRange(p.rangeFrom(typeStart)))
	} else if typ, err = p.parseType(); err != nil {
		return nil, err
	}

	name, err := p.parseSimpleName()
	if err != nil {
		return nil, err
	}

	if p.is("(") {
		return p.parseMethodRest(start, mods, typeParams, typ, name)
	}

	if len(typeParams) > 0 || typ.Kind == jast.NodeVoidType {
		return nil, p.errorf("expected '(' after method name")
	}

	variables, err := p.parseDeclaratorsFrom(name)
	if err != nil {
		return nil, err
	}

	if err := p.expect(";"); err != nil {
		return nil, err
	}

	return jast.NewNode(jast.NodeFieldDeclaration,
		jast.WithAttr(jast.PropModifiers, mods),
		jast.WithChild(jast.PropElementType, typ),
		jast.WithList(jast.PropVariables, variables...),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

func (p *parser) parseMethodRest(start int, mods jast.Modifiers, typeParams []*jast.Node, typ, name *jast.Node) (*jast.Node, error) {
	p.next()

	var params []*jast.Node
	if !p.is(")") {
		for {
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.accept(",") {
				break
			}
		}
	}

	if err := p.expect(")"); err != nil {
		return nil, err
	}

	var thrown []*jast.Node
	if p.accept("throws") {
		var err error
		if thrown, err = p.parseClassTypeList(); err != nil {
			return nil, err
		}
	}

	var body *jast.Node
	if !p.accept(";") {
		var err error
		if body, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}

	return jast.NewNode(jast.NodeMethodDeclaration,
		jast.WithAttr(jast.PropModifiers, mods),
		jast.WithList(jast.PropTypeParameters, typeParams...),
		jast.WithChild(jast.PropType, typ),
		jast.WithChild(jast.PropName, name),
		jast.WithList(jast.PropParameters, params...),
		jast.WithList(jast.PropThrownExceptions, thrown...),
		jast.WithChild(jast.PropBody, body),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

func (p *parser) parseParameter() (*jast.Node, error) {
	start := p.start()
	mods := p.parseModifiers()

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	varArgs := p.accept("...")

	name, err := p.parseSimpleName()
	if err != nil {
		return nil, err
	}

	return jast.NewNode(jast.NodeParameter,
		jast.WithAttr(jast.PropModifiers, mods),
		jast.WithChild(jast.PropType, typ),
		jast.WithAttr(jast.PropVarArgs, varArgs),
		jast.WithChild(jast.PropName, name),
		jast.WithRange(p.rangeFrom(start)),
	), nil
}

// parseDeclaratorsFrom parses "name [= init] {, name [= init]}" given the first name.
func (p *parser) parseDeclaratorsFrom(first *jast.Node) ([]*jast.Node, error) {
	var declarators []*jast.Node
	name := first

	for {
		declarator, err := p.parseDeclaratorRest(name)
		if err != nil {
			return nil, err
		}
		declarators = append(declarators, declarator)

		if !p.accept(",") {
			return declarators, nil
		}
		if name, err = p.parseSimpleName(); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseDeclaratorRest(name *jast.Node) (*jast.Node, error) {
	var initializer *jast.Node
	if p.accept("=") {
		var err error
		if initializer, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	return jast.NewNode(jast.NodeVariableDeclarator,
		jast.WithChild(jast.PropName, name),
		jast.WithChild(jast.PropInitializer, initializer),
		jast.WithRange(p.rangeFrom(name.Range.Start)),
	), nil
}

func (p *parser) parseTypeParametersOpt() ([]*jast.Node, error) {
	if !p.accept("<") {
		return nil, nil
	}

	var params []*jast.Node
	for {
		start := p.start()
		name, err := p.parseSimpleName()
		if err != nil {
			return nil, err
		}

		var bounds []*jast.Node
		if p.accept("extends") {
			for {
				bound, err := p.parseClassType()
				if err != nil {
					return nil, err
				}
				bounds = append(bounds, bound)
				if !p.accept("&") {
					break
				}
			}
		}

		params = append(params, jast.NewNode(jast.NodeTypeParameter,
			jast.WithChild(jast.PropName, name),
			jast.WithList(jast.PropTypeBound, bounds...),
			jast.WithRange(p.rangeFrom(start)),
		))

		if !p.accept(",") {
			break
		}
	}

	if err := p.expectCloseAngle(); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *parser) parseClassTypeList() ([]*jast.Node, error) {
	var types []*jast.Node
	for {
		typ, err := p.parseClassType()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
		if !p.accept(",") {
			return types, nil
		}
	}
}

// parseType parses a primitive or class type followed by any number of [].
func (p *parser) parseType() (*jast.Node, error) {
	start := p.start()

	var typ *jast.Node
	if prim, ok := jast.ParsePrimitive(p.peek().Text); ok && p.peek().Kind == jast.TokKeyword {
		p.next()
		typ = jast.NewNode(jast.NodePrimitiveType,
			jast.WithAttr(jast.PropPrimitive, prim),
			jast.WithRange(p.rangeFrom(start)),
		)
	} else {
		var err error
		if typ, err = p.parseClassType(); err != nil {
			return nil, err
		}
	}

	for p.is("[") && isPunct(p.peekAt(1), "]") {
		p.next()
		p.next()
		typ = jast.NewNode(jast.NodeArrayType,
			jast.WithChild(jast.PropComponentType, typ),
			jast.WithRange(p.rangeFrom(start)),
		)
	}

	return typ, nil
}

// parseClassType parses Outer<A>.Inner<B> into nested ClassOrInterfaceType nodes.
func (p *parser) parseClassType() (*jast.Node, error) {
	start := p.start()
	var typ *jast.Node

	for {
		name, err := p.parseSimpleName()
		if err != nil {
			return nil, err
		}

		var args []*jast.Node
		if p.accept("<") {
			for {
				arg, err := p.parseType()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.accept(",") {
					break
				}
			}
			if err := p.expectCloseAngle(); err != nil {
				return nil, err
			}
		}

		typ = jast.NewNode(jast.NodeClassOrInterfaceType,
			jast.WithChild(jast.PropScope, typ),
			jast.WithChild(jast.PropName, name),
			jast.WithList(jast.PropTypeArguments, args...),
			jast.WithRange(p.rangeFrom(start)),
		)

		if !p.is(".") || p.peekAt(1).Kind != jast.TokIdentifier {
			return typ, nil
		}
		p.next()
	}
}
