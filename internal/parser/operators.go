package parser

import (
	"strings"

	"github.com/wowstarworld/lambda-go/internal/token"
)

// operatorsByLevel is the six-level precedence table from spec §4.3,
// highest first. Association within a level is left-to-right.
var operatorsByLevel = [][]string{
	{"**"},
	{"*", "/", "%"},
	{"+", "-"},
	{"&&", "&"},
	{"||", "|"},
	{"==", "!=", "===", "!==", ">=", "<=", ">", "<"},
}

// allOperators flattens operatorsByLevel for prefix/membership checks.
var allOperators = func() []string {
	var all []string
	for _, level := range operatorsByLevel {
		all = append(all, level...)
	}
	return all
}()

func precedenceOf(op string) int {
	for level, ops := range operatorsByLevel {
		for _, o := range ops {
			if o == op {
				// Lower index = higher precedence; invert so callers can
				// compare with ">=" meaning "binds at least as tightly".
				return len(operatorsByLevel) - level
			}
		}
	}
	return -1
}

func isOperatorPrefix(s string) bool {
	for _, op := range allOperators {
		if strings.HasPrefix(op, s) {
			return true
		}
	}
	return false
}

func isCompleteOperator(s string) bool {
	for _, op := range allOperators {
		if op == s {
			return true
		}
	}
	return false
}

// assembleOperator performs the greedy-but-bounded operator lexeme scan
// from spec §4.3: "while assembling an operator the parser peeks
// subsequent punctuation characters and stops when further extension
// would not match any known operator OR when the next token is not
// punctuation." It does not consume tokens — callers consume `width`
// tokens themselves once they decide to commit.
//
// Returns the longest such candidate string and how many tokens it spans.
// An empty candidate means the current token is not punctuation, or is
// punctuation that starts no known operator (such as `)` or `,`).
func (p *Parser) assembleOperator() (op string, width int) {
	candidate := ""
	count := 0
	for {
		t, ok := p.buf.PeekN(count)
		if !ok || t.Kind != token.Punctuation {
			break
		}
		next := candidate + string(t.Punct)
		if !isOperatorPrefix(next) {
			break
		}
		candidate = next
		count++
	}
	return candidate, count
}
