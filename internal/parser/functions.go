package parser

import "github.com/wowstarworld/lambda-go/internal/ast"

// parseFunctionDeclaration parses `"operator"? "fn" TypeParams? Ident "("
// Params? ")" ("->" Type)? Body?` and enforces the body/modifier
// constraints from spec §4.3.
func (p *Parser) parseFunctionDeclaration(start int, access ast.Access, modifier ast.Modifier) (*ast.FunctionDeclaration, error) {
	isOperator := false
	if p.buf.IsIdentifierOf("operator") {
		p.buf.Next()
		isOperator = true
		p.buf.SkipWhitespaces()
	}
	if _, err := p.expectIdentifierOf("fn"); err != nil {
		return nil, err
	}

	typeParams, err := p.parseTypeParams()
	if err != nil {
		return nil, err
	}

	name, err := p.expectAnyIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunctuation('('); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunctuation(')'); err != nil {
		return nil, err
	}

	var returnType ast.Type
	if p.isArrow() {
		p.consumeArrow()
		returnType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	decl := &ast.FunctionDeclaration{
		IsOperator: isOperator,
		Access:     access,
		Modifier:   modifier,
		Name:       name.IdentValue,
		TypeParams: typeParams,
		Params:     params,
		ReturnType: returnType,
	}

	p.skipInlineWhitespaces()
	if modifier != ast.ModifierNative && modifier != ast.ModifierAbstract {
		p.buf.SkipWhitespaces()
	}
	switch {
	case modifier == ast.ModifierNative || modifier == ast.ModifierAbstract:
		if err := p.requireLineBreak(); err != nil {
			return nil, err
		}
	case p.buf.IsPunctuationOf('{'):
		block, err := p.parseBlockNode()
		if err != nil {
			return nil, err
		}
		decl.Body = block
	case p.buf.IsPunctuationOf('='):
		p.buf.Next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.requireLineBreak(); err != nil {
			return nil, err
		}
		decl.Body = &ast.ReturnStatement{Expr: expr, Range: ast.TokenRange{Start: p.buf.Position(), End: p.buf.Position()}}
	default:
		return nil, p.errf("function %q requires a body", name.IdentValue)
	}

	decl.Range = ast.TokenRange{Start: start, End: p.buf.Position()}
	return decl, nil
}

// isArrow reports whether the current position is the two-token `->`
// sequence. `->` is not in the binary operator table (operators.go), so
// it is recognized directly rather than through assembleOperator.
func (p *Parser) isArrow() bool {
	p.skipInlineWhitespaces()
	a, ok := p.buf.PeekN(0)
	if !ok || !a.IsPunctuationOf('-') {
		return false
	}
	b, ok := p.buf.PeekN(1)
	return ok && b.IsPunctuationOf('>')
}

func (p *Parser) consumeArrow() {
	p.buf.Next()
	p.buf.Next()
}

// parseParams parses a comma-separated parameter list up to (but not
// consuming) the closing `)`, then enforces "at most one rest parameter,
// trailing" (spec §4.3).
func (p *Parser) parseParams() ([]ast.FunctionParameter, error) {
	var params []ast.FunctionParameter
	for {
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf(')') || !p.buf.HasNext() {
			break
		}
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf(',') {
			p.buf.Next()
			continue
		}
		break
	}

	restCount := 0
	for i, prm := range params {
		if prm.IsRest {
			restCount++
			if i != len(params)-1 {
				return nil, p.errf("rest parameter %q must be the last parameter", prm.Name)
			}
		}
	}
	if restCount > 1 {
		return nil, p.errf("at most one rest parameter is allowed")
	}
	return params, nil
}

func (p *Parser) parseParam() (ast.FunctionParameter, error) {
	isRest := false
	if p.buf.IsPunctuationOf('*') {
		p.buf.Next()
		isRest = true
	}
	name, err := p.expectAnyIdentifier()
	if err != nil {
		return ast.FunctionParameter{}, err
	}
	param := ast.FunctionParameter{Name: name.IdentValue, IsRest: isRest}

	p.buf.SkipWhitespaces()
	if p.buf.IsPunctuationOf(':') {
		p.buf.Next()
		t, err := p.parseType()
		if err != nil {
			return ast.FunctionParameter{}, err
		}
		param.ValueType = t
	}
	p.buf.SkipWhitespaces()
	if p.buf.IsPunctuationOf('=') {
		p.buf.Next()
		def, err := p.parseExpression()
		if err != nil {
			return ast.FunctionParameter{}, err
		}
		param.Default = def
	}
	return param, nil
}
