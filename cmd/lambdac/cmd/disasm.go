package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wowstarworld/lambda-go/internal/bytecode"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [file]",
	Short: "Disassemble a bytecode stream",
	Long: `Read a bytecode stream produced by "lambdac asm" and print one
decoded instruction per line, stopping at the first decode failure.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDisasm,
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}

func runDisasm(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	name := "<stdin>"
	if len(args) == 1 {
		name = args[0]
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	d := bytecode.NewDisassembler(cmd.OutOrStdout())
	return d.Disassemble(name, data)
}
