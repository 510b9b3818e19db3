// Package cursor implements the mutable, randomly-addressable token cursor
// the parser drives (spec.md §4.2). It wraps a fully-lexed token vector;
// the lexer never runs incrementally behind it.
package cursor

import (
	"github.com/wowstarworld/lambda-go/internal/lexer"
	"github.com/wowstarworld/lambda-go/internal/syntaxerr"
	"github.com/wowstarworld/lambda-go/internal/token"
)

// TokenBuffer is `{ tokens, position, src_info }` from spec §4.2. position
// is the index of the next token Next() would return.
type TokenBuffer struct {
	tokens   []token.Token
	position int
	filename string
}

// New wraps an already-lexed token vector. Most callers want
// NewFromSource, which also runs the lexer.
func New(tokens []token.Token, filename string) *TokenBuffer {
	return &TokenBuffer{tokens: tokens, filename: filename}
}

// NewFromSource lexes source in full and wraps the result. A lexical
// failure is upgraded to a *syntaxerr.SyntaxError at this boundary, per
// spec §7.
func NewFromSource(source, filename string) (*TokenBuffer, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		message := err.Error()
		offset := 0
		if le, ok := err.(*lexer.LexError); ok {
			offset = le.Offset
		}
		return nil, syntaxerr.FromLexError(message, offset, source, filename)
	}
	return New(tokens, filename), nil
}

// Filename returns the source-file name recorded at construction, used by
// SyntaxError rendering.
func (b *TokenBuffer) Filename() string { return b.filename }

// Tokens exposes the underlying token vector (read-only by convention;
// callers must not mutate it).
func (b *TokenBuffer) Tokens() []token.Token { return b.tokens }

// Position returns the current cursor index.
func (b *TokenBuffer) Position() int { return b.position }

// SetPosition moves the cursor to an arbitrary, bounds-clamped index.
func (b *TokenBuffer) SetPosition(p int) {
	if p < 0 {
		p = 0
	}
	if p > len(b.tokens) {
		p = len(b.tokens)
	}
	b.position = p
}

// HasNext reports whether a token remains at the current position.
func (b *TokenBuffer) HasNext() bool { return b.position < len(b.tokens) }

// Peek returns the token at the current position without advancing.
func (b *TokenBuffer) Peek() (token.Token, bool) { return b.PeekN(0) }

// PeekN returns the token at current+k without advancing.
func (b *TokenBuffer) PeekN(k int) (token.Token, bool) {
	idx := b.position + k
	if idx < 0 || idx >= len(b.tokens) {
		return token.Token{}, false
	}
	return b.tokens[idx], true
}

// Next returns the current token and advances past it.
func (b *TokenBuffer) Next() (token.Token, bool) {
	t, ok := b.Peek()
	if !ok {
		return token.Token{}, false
	}
	b.position++
	return t, true
}

// SkipWhitespaces advances over any run of Whitespace tokens at the
// current position.
func (b *TokenBuffer) SkipWhitespaces() {
	for {
		t, ok := b.Peek()
		if !ok || !t.IsWhitespace() {
			return
		}
		b.position++
	}
}

// SkipLineBreak advances over one Whitespace token that contains a line
// break and reports whether it found one. Per spec §4.2, absence is a
// syntax error at call sites requiring a statement terminator.
func (b *TokenBuffer) SkipLineBreak() bool {
	t, ok := b.Peek()
	if !ok || !t.IsLineBreak() {
		return false
	}
	b.position++
	return true
}

// IsIdentifier reports whether the current token is an Identifier.
func (b *TokenBuffer) IsIdentifier() bool {
	t, ok := b.Peek()
	return ok && t.IsIdentifier()
}

// IsIdentifierOf reports whether the current token is the named
// Identifier.
func (b *TokenBuffer) IsIdentifierOf(name string) bool {
	t, ok := b.Peek()
	return ok && t.IsIdentifierOf(name)
}

// IsPunctuation reports whether the current token is Punctuation.
func (b *TokenBuffer) IsPunctuation() bool {
	t, ok := b.Peek()
	return ok && t.IsPunctuation()
}

// IsPunctuationOf reports whether the current token is the given
// Punctuation character.
func (b *TokenBuffer) IsPunctuationOf(ch rune) bool {
	t, ok := b.Peek()
	return ok && t.IsPunctuationOf(ch)
}

// IsLineBreak reports whether the current token is a line-break
// Whitespace.
func (b *TokenBuffer) IsLineBreak() bool {
	t, ok := b.Peek()
	return ok && t.IsLineBreak()
}

// Err captures the current buffer position into a *syntaxerr.SyntaxError,
// so later formatting can recompute line/column by replaying token text
// (spec §4.2, §4.4).
func (b *TokenBuffer) Err(message string, cause error) *syntaxerr.SyntaxError {
	return &syntaxerr.SyntaxError{
		Message:  message,
		Cause:    cause,
		Code:     syntaxerr.ErrUnexpectedToken,
		Position: b.position,
		Tokens:   b.tokens,
		Filename: b.filename,
	}
}

// ErrCode is Err with an explicit error classification, used where the
// caller knows a more specific taxonomy bucket (spec §7).
func (b *TokenBuffer) ErrCode(code syntaxerr.Code, message string, cause error) *syntaxerr.SyntaxError {
	e := b.Err(message, cause)
	e.Code = code
	return e
}

// SubBuffer returns a cheap structural copy of the buffer, positioned at
// position+offset, sharing the same backing token slice. Used for
// speculative parsing such as the `<` call/comparison disambiguation (spec
// §4.2, §4.3): the caller can advance the copy freely and discard it on
// failure without disturbing the original cursor.
func (b *TokenBuffer) SubBuffer(offset int) *TokenBuffer {
	sub := &TokenBuffer{tokens: b.tokens, filename: b.filename}
	sub.SetPosition(b.position + offset)
	return sub
}

// Adopt moves this buffer's position to match other's. Used after a
// speculative SubBuffer parse succeeds and its result should be committed.
func (b *TokenBuffer) Adopt(other *TokenBuffer) {
	b.position = other.position
}
