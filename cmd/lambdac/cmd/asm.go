package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wowstarworld/lambda-go/internal/ast"
	"github.com/wowstarworld/lambda-go/internal/bytecode"
	"github.com/wowstarworld/lambda-go/internal/parser"
)

var asmOut string

var asmCmd = &cobra.Command{
	Use:   "asm [file]",
	Short: "Assemble a Lambda source file into a bytecode stream",
	Long: `Parse a Lambda source file and emit the minimal metadata/constant
bytecode stream describing its top-level declarations: one Metadata
instruction naming the source file, followed by one Constant/NewObject
pair per top-level class declaration, and a closing Return.

If no file is given, reads from stdin. Writes to stdout unless --out
names a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsm,
}

func init() {
	rootCmd.AddCommand(asmCmd)
	asmCmd.Flags().StringVarP(&asmOut, "out", "o", "", "write the bytecode stream to this file instead of stdout")
}

func runAsm(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(input, filename)
	if err != nil {
		return err
	}

	instructions := []bytecode.Instruction{bytecode.Metadata(filename)}
	var constantIndex uint64
	for _, decl := range program.Declarations {
		if class, ok := decl.(*ast.ClassDeclaration); ok {
			instructions = append(instructions, bytecode.Constant(class.Name), bytecode.NewObject(constantIndex))
			constantIndex++
		}
	}
	instructions = append(instructions, bytecode.Return())

	b := bytecode.NewBuilder()
	b.WriteProgram(instructions)
	data := b.Bytes()

	if asmOut == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(asmOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", asmOut, err)
	}
	return nil
}
