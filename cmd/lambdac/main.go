// Command lambdac is the Lambda front-end driver: lexing, parsing,
// bytecode assembly/disassembly, manifest scaffolding, and stdlib
// inspection, wired up as cobra subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/wowstarworld/lambda-go/cmd/lambdac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
