// Package syntaxerr implements the position-aware error type shared by the
// lexer boundary, the token buffer, and the parser (spec.md §4.4, §7).
package syntaxerr

import (
	"fmt"
	"strings"

	"github.com/wowstarworld/lambda-go/internal/token"
)

// Code classifies a SyntaxError by its taxonomy bucket. Grounded on the
// teacher's parser/error.go code table; the values here name the taxonomy
// from spec §7 instead of DWScript's. The CLI does not map codes to exit
// statuses.
type Code string

const (
	ErrUnexpectedToken    Code = "unexpected_token"
	ErrMissingPunctuation Code = "missing_punctuation"
	ErrMissingLineBreak   Code = "missing_line_break"
	ErrMissingClosingAngle Code = "missing_closing_angle"
	ErrInvalidOperator    Code = "invalid_operator"
	ErrInvalidModifier    Code = "invalid_modifier"
	ErrNestedClass        Code = "nested_class"
	ErrInvalidTopLevel    Code = "invalid_top_level_declaration"
	ErrMutuallyExclusive  Code = "mutually_exclusive_attribute"
	ErrLexical            Code = "lexical_error"
)

// SyntaxError is the single error type surfaced by the token buffer and the
// parser. Position indexes into Tokens (not the character stream); Render
// recomputes line/column by replaying token text rather than rescanning the
// source, per spec §4.4. The exception is an error built by FromLexError:
// there Position is the character offset of the lexical failure and
// Tokens is empty.
type SyntaxError struct {
	Message  string
	Cause    error
	Code     Code
	Position int
	Tokens   []token.Token
	Filename string

	// presetLine/presetCol, when hasPreset is true, bypass the token-replay
	// algorithm in lineColumn — used by FromLexError, which fires before any
	// token vector exists.
	hasPreset             bool
	presetLine, presetCol int
}

func (e *SyntaxError) Error() string {
	return e.Render()
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

// Render produces the exact multi-line shape from spec §4.4:
//
//	SyntaxError: <message>
//	    at line L, column C (<filename>:<position>)
//	Caused by <cause>?
func (e *SyntaxError) Render() string {
	line, col := e.lineColumn()
	var b strings.Builder
	fmt.Fprintf(&b, "SyntaxError: %s\n", e.Message)
	fmt.Fprintf(&b, "    at line %d, column %d (%s:%d)", line, col, e.Filename, e.Position)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\nCaused by %s", e.Cause.Error())
	}
	return b.String()
}

// lineColumn replays tokens[0:Position], counting newlines inside
// Whitespace token text for the line and adding each non-whitespace
// token's rune length to the column, exactly as spec §4.4 describes. This
// mirrors the original implementation's SyntaxError::format, which
// recomputes position from buffered token text rather than the raw source
// (the raw source may not even be available once only the token vector is
// held).
func (e *SyntaxError) lineColumn() (line, col int) {
	if e.hasPreset {
		return e.presetLine, e.presetCol
	}
	line, col = 1, 1
	end := e.Position
	if end > len(e.Tokens) {
		end = len(e.Tokens)
	}
	for i := 0; i < end; i++ {
		t := e.Tokens[i]
		if t.Kind == token.Whitespace {
			for _, r := range t.WhitespaceText {
				if r == '\n' {
					line++
					col = 1
				} else {
					col++
				}
			}
			continue
		}
		col += len([]rune(t.Raw()))
	}
	return line, col
}

// FormatWithContext renders the error followed by a caret-pointing excerpt
// of source, grounded on the teacher's CompilerError.FormatWithContext.
// source must be the original text the tokens were lexed from.
func (e *SyntaxError) FormatWithContext(source string, contextLines int) string {
	line, col := e.lineColumn()
	lines := strings.Split(source, "\n")
	idx := line - 1

	var b strings.Builder
	b.WriteString(e.Render())
	b.WriteString("\n\n")

	lo := idx - contextLines
	if lo < 0 {
		lo = 0
	}
	hi := idx + contextLines
	if hi >= len(lines) {
		hi = len(lines) - 1
	}
	for i := lo; i <= hi && i >= 0; i++ {
		fmt.Fprintf(&b, "%4d | %s\n", i+1, lines[i])
		if i == idx {
			pad := strings.Repeat(" ", col-1)
			fmt.Fprintf(&b, "     | %s^\n", pad)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FromLexError upgrades a lexical-analysis failure into a SyntaxError at
// the buffer boundary (spec §7: "Lexer errors surface as a String reason
// upgraded to SyntaxError at the buffer boundary"). Since no token vector
// exists yet when lexing fails, line/column are computed by scanning the
// raw source directly up to offset, rather than by the token-replay
// algorithm Render uses for parser-stage errors.
func FromLexError(message string, offset int, source, filename string) *SyntaxError {
	runes := []rune(source)
	if offset > len(runes) {
		offset = len(runes)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if runes[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &SyntaxError{
		Message:    message,
		Code:       ErrLexical,
		Position:   offset,
		Filename:   filename,
		hasPreset:  true,
		presetLine: line,
		presetCol:  col,
	}
}
