package parser

import (
	"github.com/wowstarworld/lambda-go/internal/ast"
	"github.com/wowstarworld/lambda-go/internal/syntaxerr"
)

// parseVariableDeclaration parses `("var"|"val") TypeParams? Ident (":"
// Type)? ("=" Expr | "by" Expr)? Getter? Setter? LineBreak` and enforces
// the mutual-exclusion constraints from spec §4.3.
func (p *Parser) parseVariableDeclaration(start int, access ast.Access, modifier ast.Modifier) (*ast.VariableDeclaration, error) {
	mutableTok, ok := p.buf.Peek()
	if !ok || !(mutableTok.IsIdentifierOf("var") || mutableTok.IsIdentifierOf("val")) {
		return nil, p.errCode(syntaxerr.ErrUnexpectedToken, "expected 'var' or 'val'")
	}
	mutable := mutableTok.IsIdentifierOf("var")
	p.buf.Next()

	// TypeParams? — present in the grammar for symmetry with FunctionDecl;
	// rarely used in practice but accepted here since spec §4.3 lists it.
	if _, err := p.parseTypeParams(); err != nil {
		return nil, err
	}

	name, err := p.expectAnyIdentifier()
	if err != nil {
		return nil, err
	}

	decl := &ast.VariableDeclaration{Mutable: mutable, Access: access, Modifier: modifier, Name: name.IdentValue}

	p.skipInlineWhitespaces()
	if p.buf.IsPunctuationOf(':') {
		p.buf.Next()
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		decl.ValueType = t
	}

	p.skipInlineWhitespaces()
	switch {
	case p.buf.IsPunctuationOf('='):
		p.buf.Next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.Default = expr
	case p.buf.IsIdentifierOf("by"):
		p.buf.Next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.Delegate = expr
	}

	p.skipInlineWhitespaces()
	if p.buf.IsIdentifierOf("get") {
		p.buf.Next()
		body, err := p.parseAccessorBody()
		if err != nil {
			return nil, err
		}
		decl.Getter = &ast.Accessor{Body: body}
	}
	p.skipInlineWhitespaces()
	if p.buf.IsIdentifierOf("set") {
		p.buf.Next()
		body, err := p.parseAccessorBody()
		if err != nil {
			return nil, err
		}
		decl.Setter = &ast.Accessor{Body: body}
	}

	if err := p.validateVariableConstraints(decl); err != nil {
		return nil, err
	}

	if err := p.requireLineBreak(); err != nil {
		return nil, err
	}

	decl.Range = ast.TokenRange{Start: start, End: p.buf.Position()}
	return decl, nil
}

// parseAccessorBody parses a `{ block }` or `= expression` getter/setter
// body.
func (p *Parser) parseAccessorBody() (ast.Node, error) {
	p.buf.SkipWhitespaces()
	if p.buf.IsPunctuationOf('{') {
		return p.parseBlockNode()
	}
	if p.buf.IsPunctuationOf('=') {
		p.buf.Next()
		return p.parseExpression()
	}
	return nil, p.errf("expected accessor body")
}

// validateVariableConstraints enforces spec §4.3's "Variable declaration
// constraints": native/abstract forbid initializer/delegate/accessors; a
// delegate and an initializer are mutually exclusive; a delegate and a
// getter/setter are mutually exclusive; a setter on a val is rejected.
func (p *Parser) validateVariableConstraints(decl *ast.VariableDeclaration) error {
	if decl.Modifier == ast.ModifierNative || decl.Modifier == ast.ModifierAbstract {
		if decl.Default != nil || decl.Delegate != nil || decl.Getter != nil || decl.Setter != nil {
			return p.errCode(syntaxerr.ErrMutuallyExclusive,
				"%q variable %q may not have an initializer, delegate, or accessor", decl.Modifier, decl.Name)
		}
	}
	if decl.Delegate != nil && decl.Default != nil {
		return p.errCode(syntaxerr.ErrMutuallyExclusive, "variable %q cannot have both a delegate and an initializer", decl.Name)
	}
	if decl.Delegate != nil && (decl.Getter != nil || decl.Setter != nil) {
		return p.errCode(syntaxerr.ErrMutuallyExclusive, "variable %q cannot have both a delegate and an accessor", decl.Name)
	}
	if !decl.Mutable && decl.Setter != nil {
		return p.errCode(syntaxerr.ErrMutuallyExclusive, "val %q cannot have a setter", decl.Name)
	}
	return nil
}
