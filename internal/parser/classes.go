package parser

import (
	"github.com/wowstarworld/lambda-go/internal/ast"
	"github.com/wowstarworld/lambda-go/internal/syntaxerr"
)

// parseClassDeclaration parses `"class" Ident TypeParams? (":" Type (","
// Type)*)? "{" Declaration* "}"` and enforces spec §4.3's "Class
// declaration constraints".
func (p *Parser) parseClassDeclaration(start int, access ast.Access, modifier ast.Modifier) (*ast.ClassDeclaration, error) {
	if access == ast.AccessPrivate {
		return nil, p.errCode(syntaxerr.ErrInvalidModifier, "a class cannot be private")
	}
	if modifier == ast.ModifierNative {
		return nil, p.errCode(syntaxerr.ErrInvalidModifier, "a class cannot be native")
	}

	if _, err := p.expectIdentifierOf("class"); err != nil {
		return nil, err
	}
	name, err := p.expectAnyIdentifier()
	if err != nil {
		return nil, err
	}
	typeParams, err := p.parseTypeParams()
	if err != nil {
		return nil, err
	}

	decl := &ast.ClassDeclaration{Access: access, Modifier: modifier, Name: name.IdentValue, TypeParams: typeParams}

	p.buf.SkipWhitespaces()
	if p.buf.IsPunctuationOf(':') {
		p.buf.Next()
		super, err := p.parseType()
		if err != nil {
			return nil, err
		}
		decl.SuperClass = super
		p.buf.SkipWhitespaces()
		for p.buf.IsPunctuationOf(',') {
			p.buf.Next()
			iface, err := p.parseType()
			if err != nil {
				return nil, err
			}
			decl.Interfaces = append(decl.Interfaces, iface)
			p.buf.SkipWhitespaces()
		}
	}

	if _, err := p.expectPunctuation('{'); err != nil {
		return nil, err
	}
	for {
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf('}') || !p.buf.HasNext() {
			break
		}
		member, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		if _, nested := member.(*ast.ClassDeclaration); nested {
			return nil, p.errCode(syntaxerr.ErrNestedClass, "Inner classes are not allowed")
		}
		decl.Body = append(decl.Body, member)
	}
	if _, err := p.expectPunctuation('}'); err != nil {
		return nil, err
	}

	decl.Range = ast.TokenRange{Start: start, End: p.buf.Position()}
	return decl, nil
}
