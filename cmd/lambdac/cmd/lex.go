package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wowstarworld/lambda-go/internal/lexer"
	"github.com/wowstarworld/lambda-go/internal/token"
)

var (
	lexShowPos        bool
	lexShowKind       bool
	lexKeepWhitespace bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lambda source file",
	Long: `Tokenize a Lambda source file and print the resulting tokens.

If no file is given, reads from stdin.

Examples:
  lambdac lex program.lambda
  lambdac lex --show-pos --show-kind program.lambda
  cat program.lambda | lambdac lex --keep-whitespace`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's line:column")
	lexCmd.Flags().BoolVar(&lexShowKind, "show-kind", false, "show each token's kind")
	lexCmd.Flags().BoolVar(&lexKeepWhitespace, "keep-whitespace", false, "include Whitespace tokens in the listing")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	runes := []rune(input)
	line, col := 1, 1
	lastOffset := 0

	for {
		tok, err := l.NextToken()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}

		line, col = advancePosition(runes, lastOffset, tok.Start, line, col)
		lastOffset = tok.Start

		if tok.Kind == token.End {
			break
		}
		if tok.Kind == token.Whitespace && !lexKeepWhitespace {
			continue
		}
		printToken(cmd.OutOrStdout(), tok, line, col)
	}
	return nil
}

// advancePosition recomputes line/column by scanning the raw source from
// lastOffset to target, grounded on syntaxerr.FromLexError's
// scan-from-source algorithm — the only position source before a
// TokenBuffer exists.
func advancePosition(runes []rune, lastOffset, target, line, col int) (int, int) {
	for i := lastOffset; i < target && i < len(runes); i++ {
		if runes[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func printToken(w io.Writer, tok token.Token, line, col int) {
	var out string
	if lexShowKind {
		out = fmt.Sprintf("[%-10s]", tok.Kind)
	}
	out += " " + fmt.Sprintf("%q", tok.Raw())
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", line, col)
	}
	fmt.Fprintln(w, out)
}

// readSource reads the single positional file argument, or stdin when
// none is given.
func readSource(args []string) (input, filename string, err error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}
