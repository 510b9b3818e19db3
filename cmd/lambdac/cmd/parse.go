package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wowstarworld/lambda-go/internal/ast"
	"github.com/wowstarworld/lambda-go/internal/parser"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lambda source file and display its AST",
	Long: `Parse a Lambda source file into a Program and either print its
short form or, with --dump-ast, a full indented tree.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(input, filename)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if parseDumpAST {
		fmt.Fprintln(w, "Program")
		dumpASTNode(w, program, 1)
		return nil
	}
	fmt.Fprintln(w, program.String())
	return nil
}

func dumpASTNode(w io.Writer, node any, indent int) {
	pad := strings.Repeat("  ", indent)
	print := func(format string, args ...any) {
		fmt.Fprintf(w, pad+format+"\n", args...)
	}

	switch n := node.(type) {
	case *ast.Program:
		print("Package: %s", n.Package.Name.String())
		for _, imp := range n.Imports {
			print("Import: %s", imp.String())
		}
		for _, decl := range n.Declarations {
			dumpASTNode(w, decl, indent)
		}
	case *ast.FunctionDeclaration:
		print("FunctionDeclaration %s", n.Name)
		if n.Body != nil {
			dumpASTNode(w, n.Body, indent+1)
		}
	case *ast.VariableDeclaration:
		print("VariableDeclaration %s", n.String())
	case *ast.ClassDeclaration:
		print("ClassDeclaration %s", n.Name)
		for _, member := range n.Body {
			dumpASTNode(w, member, indent+1)
		}
	case *ast.Block:
		print("Block (%d statements)", len(n.Stmts))
		for _, stmt := range n.Stmts {
			dumpASTNode(w, stmt, indent+1)
		}
		if n.Trailing != nil {
			print("Trailing:")
			dumpASTNode(w, n.Trailing, indent+1)
		}
	case *ast.If:
		print("If")
		dumpASTNode(w, n.Test, indent+1)
		print("Then:")
		dumpASTNode(w, n.Then, indent+1)
		if n.Else != nil {
			print("Else:")
			dumpASTNode(w, n.Else, indent+1)
		}
	case *ast.ExpressionStatement:
		print("ExpressionStatement")
		dumpASTNode(w, n.Expr, indent+1)
	case *ast.ReturnStatement:
		print("ReturnStatement")
		if n.Expr != nil {
			dumpASTNode(w, n.Expr, indent+1)
		}
	case *ast.DeclarationStatement:
		dumpASTNode(w, n.Decl, indent)
	case *ast.BinaryExpression:
		print("BinaryExpression (%s)", n.Operator)
		dumpASTNode(w, n.Left, indent+1)
		dumpASTNode(w, n.Right, indent+1)
	case *ast.UnaryExpression:
		print("UnaryExpression (%s)", n.Operator)
		dumpASTNode(w, n.Operand, indent+1)
	case *ast.CallExpression:
		print("CallExpression")
		dumpASTNode(w, n.Callee, indent+1)
		for _, a := range n.Args {
			print("Arg: %s", a.String())
		}
	case *ast.Literal:
		print("Literal %s", n.String())
	case *ast.Identifier:
		print("Identifier %s", n.Name)
	case ast.Node:
		print("%T: %s", n, n.String())
	default:
		print("%T: %v", node, node)
	}
}
