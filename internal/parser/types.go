package parser

import (
	"github.com/wowstarworld/lambda-go/internal/ast"
	"github.com/wowstarworld/lambda-go/internal/syntaxerr"
)

// parseQualifiedName parses `Ident ("." Ident)*`, per GLOSSARY's
// `(package?, final)` pair: everything but the last segment is Package.
func (p *Parser) parseQualifiedName() (ast.QualifiedName, error) {
	first, err := p.expectAnyIdentifier()
	if err != nil {
		return ast.QualifiedName{}, err
	}
	segments := []string{first.IdentValue}
	for p.buf.IsPunctuationOf('.') {
		p.buf.Next()
		seg, err := p.expectAnyIdentifier()
		if err != nil {
			return ast.QualifiedName{}, err
		}
		segments = append(segments, seg.IdentValue)
	}
	final := segments[len(segments)-1]
	pkg := ""
	if len(segments) > 1 {
		pkg = joinDotted(segments[:len(segments)-1])
	}
	return ast.QualifiedName{Package: pkg, Final: final}, nil
}

func joinDotted(segments []string) string {
	out := segments[0]
	for _, s := range segments[1:] {
		out += "." + s
	}
	return out
}

// parseType parses `(QualifiedName TypeArgs? | "(" Type ")") "?"?`
// (spec §4.3).
func (p *Parser) parseType() (ast.Type, error) {
	p.buf.SkipWhitespaces()
	start := p.buf.Position()

	var base ast.Type
	if p.buf.IsPunctuationOf('(') {
		p.buf.Next()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunctuation(')'); err != nil {
			return nil, err
		}
		base = inner
	} else {
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		named := &ast.NamedType{Name: name, Range: ast.TokenRange{Start: start, End: p.buf.Position()}}
		if p.buf.IsPunctuationOf('<') {
			args, ok := p.tryParseTypeArguments()
			if ok {
				named.TypeArgs = args
			}
		}
		named.Range.End = p.buf.Position()
		base = named
	}

	if p.buf.IsPunctuationOf('?') {
		p.buf.Next()
		return &ast.NullableType{Base: base, Range: ast.TokenRange{Start: start, End: p.buf.Position()}}, nil
	}
	return base, nil
}

// parseTypeArgumentsCommitted parses `"<" Type ("," Type)* ">"` with real
// errors. Both callers — tryParseTypeArguments and tryPostfixCall's `<`
// disambiguation in expression position — run it on a SubBuffer and treat
// an error as "not a type-argument list". Class and function headers use
// parseTypeParams instead.
func (p *Parser) parseTypeArgumentsCommitted() ([]ast.Type, error) {
	if _, err := p.expectPunctuation('<'); err != nil {
		return nil, err
	}
	var args []ast.Type
	for {
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf('>') {
			break
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf(',') {
			p.buf.Next()
			continue
		}
		break
	}
	if _, err := p.expectPunctuation('>'); err != nil {
		return nil, p.errCode(syntaxerr.ErrMissingClosingAngle, "expected closing '>'")
	}
	return args, nil
}

// tryParseTypeArguments is the speculative variant used when a `<`
// appears mid-type and might simply not be a type-argument list at all
// (distinct from the call/comparison ambiguity in expressions.go, but the
// same "attempt and roll back" shape). Any error collapses to ok=false.
func (p *Parser) tryParseTypeArguments() (args []ast.Type, ok bool) {
	sub := p.buf.SubBuffer(0)
	tmp := newParser(sub)
	parsed, err := tmp.parseTypeArgumentsCommitted()
	if err != nil {
		return nil, false
	}
	p.buf.Adopt(sub)
	return parsed, true
}

// parseTypeParams parses `"<" TypeParam ("," TypeParam)* ">"` where
// TypeParam is `Ident (":" Type)?` (spec §3.2 `<T: Comparable>`).
func (p *Parser) parseTypeParams() ([]ast.TypeParameter, error) {
	p.buf.SkipWhitespaces()
	if !p.buf.IsPunctuationOf('<') {
		return nil, nil
	}
	p.buf.Next()
	var params []ast.TypeParameter
	for {
		p.buf.SkipWhitespaces()
		name, err := p.expectAnyIdentifier()
		if err != nil {
			return nil, err
		}
		tp := ast.TypeParameter{Name: name.IdentValue}
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf(':') {
			p.buf.Next()
			bound, err := p.parseType()
			if err != nil {
				return nil, err
			}
			tp.Bound = bound
		}
		params = append(params, tp)
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf(',') {
			p.buf.Next()
			continue
		}
		break
	}
	if _, err := p.expectPunctuation('>'); err != nil {
		return nil, p.errCode(syntaxerr.ErrMissingClosingAngle, "expected closing '>' in type parameter list")
	}
	return params, nil
}
