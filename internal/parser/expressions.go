package parser

import (
	"strconv"
	"strings"

	"github.com/wowstarworld/lambda-go/internal/ast"
	"github.com/wowstarworld/lambda-go/internal/syntaxerr"
	"github.com/wowstarworld/lambda-go/internal/token"
)

// unaryOperators lists the prefix operators accepted before a Base
// (spec §4.3 lists `UnaryExpr` as part of `Base` without naming its
// operator set; `-`, `!`, and `+` are the conventional minimal set and are
// recorded as a deliberate choice in DESIGN.md).
var unaryOperators = map[rune]string{'-': "-", '!': "!", '+': "+"}

// parseExpression parses `BinaryExpr` starting from the lowest precedence
// level (spec §4.3 `Expr := BinaryExpr`).
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseBinary(1)
}

// parseBinary implements precedence-climbing over the six levels in
// operators.go: minPrec is the lowest precedence this call will consume;
// recursive calls raise minPrec to get left-to-right association within a
// level (spec §4.3, §8 invariant 4).
func (p *Parser) parseBinary(minPrec int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, width := p.assembleOperator()
		if op == "" {
			break
		}
		if !isCompleteOperator(op) {
			return nil, p.errCode(syntaxerr.ErrInvalidOperator, "invalid operator lexeme %q", op)
		}
		prec := precedenceOf(op)
		if prec < minPrec {
			break
		}
		start := left.Pos().Start
		for i := 0; i < width; i++ {
			p.buf.Next()
		}
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{
			Left: left, Operator: op, Right: right,
			Range: ast.TokenRange{Start: start, End: p.buf.Position()},
		}
	}
	return left, nil
}

// parseUnary parses an optional prefix operator applied to a Base,
// otherwise falls through to postfix/call parsing.
func (p *Parser) parseUnary() (ast.Expression, error) {
	p.buf.SkipWhitespaces()
	t, ok := p.buf.Peek()
	if ok && t.IsPunctuation() {
		if op, known := unaryOperators[t.Punct]; known {
			start := p.buf.Position()
			p.buf.Next()
			operand, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return &ast.UnaryExpression{Operator: op, Operand: operand, Range: ast.TokenRange{Start: start, End: p.buf.Position()}}, nil
		}
	}
	return p.parsePostfix()
}

// parsePostfix parses a Base followed by zero or more chained call
// postfixes (spec §4.3 `Postfix := CallExpr -- chained: a<T>(x)(y)`),
// resolving the `<` call/type-argument ambiguity at each step.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipInlineWhitespaces()
		next, matched, err := p.tryPostfixCall(expr)
		if err != nil {
			return nil, err
		}
		if !matched {
			break
		}
		expr = next
	}
	return expr, nil
}

// tryPostfixCall attempts to extend expr with a call. A bare `(` always
// commits. A `<` commits only if parse_type_arguments succeeds on a
// sub-buffer AND is immediately followed by `(` (spec §4.2/§4.3 call
// disambiguation) — once that minimal check passes, argument parsing
// happens for real and its errors are NOT swallowed by the speculative
// rollback, since `<...>(` is by then unambiguously a call.
func (p *Parser) tryPostfixCall(callee ast.Expression) (ast.Expression, bool, error) {
	start := callee.Pos().Start

	if p.buf.IsPunctuationOf('(') {
		args, err := p.parseCallArguments()
		if err != nil {
			return nil, true, err
		}
		return &ast.CallExpression{Callee: callee, Args: args, Range: ast.TokenRange{Start: start, End: p.buf.Position()}}, true, nil
	}

	if p.buf.IsPunctuationOf('<') {
		sub := p.buf.SubBuffer(0)
		tmp := newParser(sub)
		typeArgs, err := tmp.parseTypeArgumentsCommitted()
		if err != nil || !tmp.buf.IsPunctuationOf('(') {
			return nil, false, nil
		}
		p.buf.Adopt(sub)
		args, err := p.parseCallArguments()
		if err != nil {
			return nil, true, err
		}
		return &ast.CallExpression{Callee: callee, TypeArgs: typeArgs, Args: args, Range: ast.TokenRange{Start: start, End: p.buf.Position()}}, true, nil
	}

	return nil, false, nil
}

// parseCallArguments parses `"(" (Argument ("," Argument)*)? ")"`,
// consuming the current `(` through the matching `)`.
func (p *Parser) parseCallArguments() ([]ast.FunctionArgument, error) {
	if _, err := p.expectPunctuation('('); err != nil {
		return nil, err
	}
	var args []ast.FunctionArgument
	for {
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf(')') || !p.buf.HasNext() {
			break
		}
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf(',') {
			p.buf.Next()
			continue
		}
		break
	}
	if _, err := p.expectPunctuation(')'); err != nil {
		return nil, err
	}
	return args, nil
}

// parseArgument parses one call argument: `"*"? (Ident "=")? Expr`. The
// `Ident "="` named form is distinguished from an equality expression
// (`Ident "==" ...`) by requiring exactly one `=`, not two.
func (p *Parser) parseArgument() (ast.FunctionArgument, error) {
	isRest := false
	if p.buf.IsPunctuationOf('*') {
		p.buf.Next()
		isRest = true
	}

	if !isRest {
		if name, ok := p.lookaheadNamedArgument(); ok {
			p.buf.Next() // identifier
			p.buf.SkipWhitespaces()
			p.buf.Next() // '='
			value, err := p.parseExpression()
			if err != nil {
				return ast.FunctionArgument{}, err
			}
			n := name
			return ast.FunctionArgument{Name: &n, Value: value}, nil
		}
	}

	value, err := p.parseExpression()
	if err != nil {
		return ast.FunctionArgument{}, err
	}
	return ast.FunctionArgument{Value: value, IsRest: isRest}, nil
}

// lookaheadNamedArgument reports whether the current position is
// `Identifier "="` with the `=` not itself the start of a longer operator
// (`==`/`===`), without consuming anything.
func (p *Parser) lookaheadNamedArgument() (string, bool) {
	t, ok := p.buf.Peek()
	if !ok || !t.IsIdentifier() {
		return "", false
	}
	sub := p.buf.SubBuffer(1)
	sub.SkipWhitespaces()
	if !sub.IsPunctuationOf('=') {
		return "", false
	}
	after := sub.SubBuffer(1)
	if after.IsPunctuationOf('=') {
		return "", false
	}
	return t.IdentValue, true
}

// parsePrimary parses `Literal | Ident | "(" Expr ")" | BlockExpr | IfExpr`
// (spec §4.3 `Base`, minus the unary case handled by parseUnary).
func (p *Parser) parsePrimary() (ast.Expression, error) {
	p.buf.SkipWhitespaces()
	t, ok := p.buf.Peek()
	if !ok {
		return nil, p.errCode(syntaxerr.ErrUnexpectedToken, "expected an expression")
	}

	switch {
	case t.Kind == token.Number:
		p.buf.Next()
		return numberLiteral(t), nil
	case t.Kind == token.String:
		p.buf.Next()
		return &ast.Literal{Kind: ast.LiteralString, Raw: t.StringRaw, StringValue: t.StringValue, Range: ast.TokenRange{Start: t.Start, End: t.End}}, nil
	case t.IsIdentifierOf("true"):
		p.buf.Next()
		return &ast.Literal{Kind: ast.LiteralBool, Raw: "true", BoolValue: true, Range: ast.TokenRange{Start: t.Start, End: t.End}}, nil
	case t.IsIdentifierOf("false"):
		p.buf.Next()
		return &ast.Literal{Kind: ast.LiteralBool, Raw: "false", BoolValue: false, Range: ast.TokenRange{Start: t.Start, End: t.End}}, nil
	case t.IsIdentifier() && !t.IsIdentifierOf("if"):
		p.buf.Next()
		return &ast.Identifier{Name: t.IdentValue, Range: ast.TokenRange{Start: t.Start, End: t.End}}, nil
	case t.IsPunctuationOf('('):
		start := p.buf.Position()
		p.buf.Next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunctuation(')'); err != nil {
			return nil, err
		}
		_ = start
		return inner, nil
	case t.IsPunctuationOf('{'):
		return p.parseBlockNode()
	case t.IsIdentifierOf("if"):
		return p.parseIfNode()
	default:
		return nil, p.errCode(syntaxerr.ErrUnexpectedToken, "unexpected token in expression")
	}
}

// numberLiteral converts a lexed Number token into a structured Literal,
// classifying it Int or Float by radix and the presence of a fraction or
// exponent (spec §3.2 `NumberLiteral`).
func numberLiteral(t token.Token) *ast.Literal {
	rng := ast.TokenRange{Start: t.Start, End: t.End}
	clean := strings.ReplaceAll(t.NumberRaw, "_", "")

	if t.NumberRadix != token.Decimal {
		base := 8
		switch t.NumberRadix {
		case token.Hexadecimal:
			base = 16
		case token.Binary:
			base = 2
		}
		digits := clean[2:]
		v, _ := strconv.ParseInt(digits, base, 64)
		return &ast.Literal{Kind: ast.LiteralInt, Raw: t.NumberRaw, IntValue: v, Range: rng}
	}

	if t.Decimal.HasFraction || t.Decimal.HasExponent {
		f, _ := strconv.ParseFloat(clean, 64)
		return &ast.Literal{Kind: ast.LiteralFloat, Raw: t.NumberRaw, FloatValue: f, Range: rng}
	}
	v, _ := strconv.ParseInt(clean, 10, 64)
	return &ast.Literal{Kind: ast.LiteralInt, Raw: t.NumberRaw, IntValue: v, Range: rng}
}
