package parser

import "github.com/wowstarworld/lambda-go/internal/ast"

// parseStatement parses `ReturnStmt | BlockStmt | IfStmt | ExprStmt`
// (spec §4.3 `Stmt`), plus local var/val/fn/class declarations. Used by
// the REPL entry point ParseStatement; `if` arms go through parseBranch and
// block contents through parseBlockBody.
func (p *Parser) parseStatement() (ast.Statement, error) {
	p.buf.SkipWhitespaces()
	switch {
	case p.buf.IsIdentifierOf("return"):
		return p.parseReturnStatement()
	case p.buf.IsIdentifierOf("if"):
		return p.parseIfNode()
	case p.buf.IsPunctuationOf('{'):
		return p.parseBlockNode()
	case p.buf.IsIdentifierOf("var") || p.buf.IsIdentifierOf("val"):
		decl, err := p.parseVariableDeclaration(p.buf.Position(), ast.AccessNone, ast.ModifierNone)
		if err != nil {
			return nil, err
		}
		return &ast.DeclarationStatement{Decl: decl, Range: decl.Range}, nil
	case p.buf.IsIdentifierOf("fn") || p.buf.IsIdentifierOf("operator"):
		decl, err := p.parseFunctionDeclaration(p.buf.Position(), ast.AccessNone, ast.ModifierNone)
		if err != nil {
			return nil, err
		}
		return &ast.DeclarationStatement{Decl: decl, Range: decl.Range}, nil
	case p.buf.IsIdentifierOf("class"):
		decl, err := p.parseClassDeclaration(p.buf.Position(), ast.AccessNone, ast.ModifierNone)
		if err != nil {
			return nil, err
		}
		return &ast.DeclarationStatement{Decl: decl, Range: decl.Range}, nil
	default:
		start := p.buf.Position()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.requireLineBreak(); err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Expr: expr, Range: ast.TokenRange{Start: start, End: p.buf.Position()}}, nil
	}
}

// parseReturnStatement parses `"return" Expr?`. The expression is omitted
// when the next significant token is a line break or block/program
// terminator.
func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	start := p.buf.Position()
	if _, err := p.expectIdentifierOf("return"); err != nil {
		return nil, err
	}
	p.skipInlineWhitespaces()
	if p.buf.IsLineBreak() || p.buf.IsPunctuationOf('}') || !p.buf.HasNext() {
		return &ast.ReturnStatement{Range: ast.TokenRange{Start: start, End: p.buf.Position()}}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Expr: expr, Range: ast.TokenRange{Start: start, End: p.buf.Position()}}, nil
}

// parseIfNode parses `"if" "(" Test ")" Then ("else" Else)?`. It produces
// one *ast.If usable as either a Statement (the common case, Then/Else are
// typically *ast.Block) or an Expression (spec §3.2 lists `If` under both
// variant sets with the same shape — see control_flow.go).
func (p *Parser) parseIfNode() (*ast.If, error) {
	start := p.buf.Position()
	if _, err := p.expectIdentifierOf("if"); err != nil {
		return nil, err
	}
	if _, err := p.expectPunctuation('('); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunctuation(')'); err != nil {
		return nil, err
	}

	then, err := p.parseBranch()
	if err != nil {
		return nil, err
	}

	node := &ast.If{Test: test, Then: then}

	p.buf.SkipWhitespaces()
	if p.buf.IsIdentifierOf("else") {
		p.buf.Next()
		elseBranch, err := p.parseBranch()
		if err != nil {
			return nil, err
		}
		node.Else = elseBranch
	}

	node.Range = ast.TokenRange{Start: start, End: p.buf.Position()}
	return node, nil
}

// parseBranch parses one `if`/`else` arm: a `{ }` block (most common) or,
// in expression position, a bare expression (spec §8 scenario 1's
// `if (a > b) b else a`).
func (p *Parser) parseBranch() (ast.Node, error) {
	p.buf.SkipWhitespaces()
	if p.buf.IsPunctuationOf('{') {
		return p.parseBlockNode()
	}
	if p.buf.IsIdentifierOf("return") {
		return p.parseReturnStatement()
	}
	if p.buf.IsIdentifierOf("if") {
		return p.parseIfNode()
	}
	return p.parseExpression()
}

// parseBlockNode parses `"{" Stmt* Trailing? "}"`.
func (p *Parser) parseBlockNode() (*ast.Block, error) {
	start := p.buf.Position()
	if _, err := p.expectPunctuation('{'); err != nil {
		return nil, err
	}
	stmts, trailing, err := p.parseBlockBody('}')
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunctuation('}'); err != nil {
		return nil, err
	}
	return &ast.Block{Stmts: stmts, Trailing: trailing, Range: ast.TokenRange{Start: start, End: p.buf.Position()}}, nil
}

// parseBlockBody parses the statement sequence inside a block up to (but
// not consuming) closer, implementing spec §4.3's "Block expression vs.
// block statement": the final bare expression becomes the block's
// Trailing value only when it is NOT followed by a line break before
// closer — i.e. it was never terminated as a statement in the first
// place.
func (p *Parser) parseBlockBody(closer rune) ([]ast.Statement, ast.Expression, error) {
	var stmts []ast.Statement
	for {
		p.buf.SkipWhitespaces()
		if p.buf.IsPunctuationOf(closer) || !p.buf.HasNext() {
			return stmts, nil, nil
		}

		switch {
		case p.buf.IsIdentifierOf("return"):
			s, err := p.parseReturnStatement()
			if err != nil {
				return nil, nil, err
			}
			stmts = append(stmts, s)
		case p.buf.IsIdentifierOf("if"):
			s, err := p.parseIfNode()
			if err != nil {
				return nil, nil, err
			}
			stmts = append(stmts, s)
		case p.buf.IsPunctuationOf('{'):
			s, err := p.parseBlockNode()
			if err != nil {
				return nil, nil, err
			}
			stmts = append(stmts, s)
		case p.buf.IsIdentifierOf("var") || p.buf.IsIdentifierOf("val"):
			decl, err := p.parseVariableDeclaration(p.buf.Position(), ast.AccessNone, ast.ModifierNone)
			if err != nil {
				return nil, nil, err
			}
			stmts = append(stmts, &ast.DeclarationStatement{Decl: decl, Range: decl.Range})
		case p.buf.IsIdentifierOf("fn") || p.buf.IsIdentifierOf("operator"):
			decl, err := p.parseFunctionDeclaration(p.buf.Position(), ast.AccessNone, ast.ModifierNone)
			if err != nil {
				return nil, nil, err
			}
			stmts = append(stmts, &ast.DeclarationStatement{Decl: decl, Range: decl.Range})
		case p.buf.IsIdentifierOf("class"):
			decl, err := p.parseClassDeclaration(p.buf.Position(), ast.AccessNone, ast.ModifierNone)
			if err != nil {
				return nil, nil, err
			}
			stmts = append(stmts, &ast.DeclarationStatement{Decl: decl, Range: decl.Range})
		default:
			start := p.buf.Position()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, nil, err
			}
			if p.buf.IsLineBreak() {
				p.buf.SkipLineBreak()
				stmts = append(stmts, &ast.ExpressionStatement{Expr: expr, Range: ast.TokenRange{Start: start, End: p.buf.Position()}})
				continue
			}
			return stmts, expr, nil
		}
	}
}
