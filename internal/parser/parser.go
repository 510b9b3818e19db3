// Package parser implements the recursive-descent, operator-precedence
// parser described in spec.md §4.3: one operation per grammatical
// category, predicates mirroring parse functions for LL(k) lookahead, and
// sub-buffer speculation at the few points backtracking is unavoidable
// (call/type-argument disambiguation).
package parser

import (
	"fmt"

	"github.com/wowstarworld/lambda-go/internal/ast"
	"github.com/wowstarworld/lambda-go/internal/cursor"
	"github.com/wowstarworld/lambda-go/internal/syntaxerr"
	"github.com/wowstarworld/lambda-go/internal/token"
)

// Parser owns a TokenBuffer and exposes one parse method per grammatical
// category (spec §2, §4.3).
type Parser struct {
	buf *cursor.TokenBuffer
}

func newParser(buf *cursor.TokenBuffer) *Parser {
	return &Parser{buf: buf}
}

// Parse tokenizes source and parses a full Program (spec §6.2).
func Parse(source, filename string) (*ast.Program, error) {
	buf, err := cursor.NewFromSource(source, filename)
	if err != nil {
		return nil, err
	}
	p := newParser(buf)
	return p.parseProgram()
}

// ParseStatement tokenizes source and parses a single statement — the REPL
// entry point from spec §6.2.
func ParseStatement(source, filename string) (ast.Statement, error) {
	buf, err := cursor.NewFromSource(source, filename)
	if err != nil {
		return nil, err
	}
	p := newParser(buf)
	p.buf.SkipWhitespaces()
	return p.parseStatement()
}

func (p *Parser) errf(format string, args ...any) *syntaxerr.SyntaxError {
	return p.buf.Err(fmt.Sprintf(format, args...), nil)
}

func (p *Parser) errCode(code syntaxerr.Code, format string, args ...any) *syntaxerr.SyntaxError {
	return p.buf.ErrCode(code, fmt.Sprintf(format, args...), nil)
}

// expectPunctuation consumes a single Punctuation token of the given
// character or fails with ErrMissingPunctuation.
func (p *Parser) expectPunctuation(ch rune) (token.Token, error) {
	p.buf.SkipWhitespaces()
	t, ok := p.buf.Peek()
	if !ok || !t.IsPunctuationOf(ch) {
		return token.Token{}, p.errCode(syntaxerr.ErrMissingPunctuation, "expected %q", ch)
	}
	p.buf.Next()
	return t, nil
}

// expectIdentifierOf consumes the named identifier or fails.
func (p *Parser) expectIdentifierOf(name string) (token.Token, error) {
	p.buf.SkipWhitespaces()
	t, ok := p.buf.Peek()
	if !ok || !t.IsIdentifierOf(name) {
		return token.Token{}, p.errCode(syntaxerr.ErrUnexpectedToken, "expected %q", name)
	}
	p.buf.Next()
	return t, nil
}

// expectAnyIdentifier consumes the current token as an identifier name,
// keyword or not — used wherever the grammar wants "a valid identifier
// token" regardless of whether it happens to be a contextual keyword
// (spec §6.1: keywords are "all parsed as identifiers by the lexer").
func (p *Parser) expectAnyIdentifier() (token.Token, error) {
	p.buf.SkipWhitespaces()
	t, ok := p.buf.Peek()
	if !ok || !t.IsIdentifier() {
		return token.Token{}, p.errCode(syntaxerr.ErrUnexpectedToken, "expected identifier")
	}
	p.buf.Next()
	return t, nil
}

// requireLineBreak consumes a single line-break Whitespace token or fails
// with ErrMissingLineBreak (spec §4.2 skip_line_break, §4.3 terminator
// rules).
func (p *Parser) requireLineBreak() error {
	if !p.buf.SkipLineBreak() {
		return p.errCode(syntaxerr.ErrMissingLineBreak, "expected line break")
	}
	return nil
}

// atEnd reports whether, after skipping plain whitespace, the buffer has
// no more tokens.
func (p *Parser) atEnd() bool {
	p.buf.SkipWhitespaces()
	return !p.buf.HasNext()
}

// skipInlineWhitespaces advances over Whitespace tokens that contain no
// newline, leaving a line-break token in place for requireLineBreak.
func (p *Parser) skipInlineWhitespaces() {
	for {
		t, ok := p.buf.Peek()
		if !ok || !t.IsWhitespace() || t.IsLineBreak() {
			return
		}
		p.buf.Next()
	}
}
