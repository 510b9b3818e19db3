package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lambdac",
	Short: "Lambda compiler front end",
	Long: `lambdac is the front end for the Lambda language: lexer, parser,
and bytecode codec, with no execution engine attached.

It exposes the stages of the pipeline individually so each can be
inspected on its own:
  - lex     tokenize a source file
  - parse   parse a source file and print or dump its AST
  - asm     parse a source file and emit its bytecode stream
  - disasm  print a bytecode stream one instruction per line
  - init    write a starter manifest
  - stdlib  list the bundled standard-library sources`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
