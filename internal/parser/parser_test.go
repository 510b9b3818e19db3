package parser

import (
	"strings"
	"testing"

	"github.com/wowstarworld/lambda-go/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := Parse(src, "<test>")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return program
}

// TestGenericFunctionWithSpacedTypeParams is scenario 1: a type-parameter
// list separated from "fn" by whitespace, an expression-bodied function,
// and an if-expression used as an operand.
func TestGenericFunctionWithSpacedTypeParams(t *testing.T) {
	src := "package demo\n\nfn <T: Comparable> max(a: T, b: T) -> T = if (a > b) a else b\n"
	program := mustParse(t, src)
	if len(program.Declarations) != 1 {
		t.Fatalf("expected one declaration, got %d", len(program.Declarations))
	}
	fn, ok := program.Declarations[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", program.Declarations[0])
	}
	if len(fn.TypeParams) != 1 || fn.TypeParams[0].Name != "T" {
		t.Fatalf("expected one type parameter T, got %#v", fn.TypeParams)
	}
	ret, ok := fn.Body.(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("expected expression-body sugar to produce *ast.ReturnStatement, got %T", fn.Body)
	}
	if _, ok := ret.Expr.(*ast.If); !ok {
		t.Fatalf("expected the function body to be an *ast.If, got %T", ret.Expr)
	}
}

// TestRestParameterAndNamedArgument is scenario 2.
func TestRestParameterAndNamedArgument(t *testing.T) {
	src := "package demo\n\nfn f(prefix: String, *rest: Array<Int>) -> Int = 0\n\nfn g() -> Int {\n  f(prefix = \"x\")\n}\n"
	program := mustParse(t, src)
	if len(program.Declarations) != 2 {
		t.Fatalf("expected two declarations, got %d", len(program.Declarations))
	}
	f := program.Declarations[0].(*ast.FunctionDeclaration)
	if !f.Params[1].IsRest || f.Params[1].Name != "rest" {
		t.Fatalf("expected second parameter to be a rest parameter named rest, got %#v", f.Params[1])
	}

	g := program.Declarations[1].(*ast.FunctionDeclaration)
	block := g.Body.(*ast.Block)
	exprStmt := block.Stmts[0].(*ast.ExpressionStatement)
	call := exprStmt.Expr.(*ast.CallExpression)
	if len(call.Args) != 1 || call.Args[0].Name == nil || *call.Args[0].Name != "prefix" {
		t.Fatalf("expected one named argument 'prefix', got %#v", call.Args)
	}
}

// TestOperatorPrecedence is scenario 3: a + b * c == d parses as
// ((a + (b * c)) == d).
func TestOperatorPrecedence(t *testing.T) {
	src := "package demo\n\nfn f() -> Bool = a + b * c == d\n"
	program := mustParse(t, src)
	fn := program.Declarations[0].(*ast.FunctionDeclaration)
	ret := fn.Body.(*ast.ReturnStatement)
	top := ret.Expr.(*ast.BinaryExpression)
	if top.Operator != "==" {
		t.Fatalf("expected top-level operator '==', got %q", top.Operator)
	}
	left := top.Left.(*ast.BinaryExpression)
	if left.Operator != "+" {
		t.Fatalf("expected left side operator '+', got %q", left.Operator)
	}
	right := left.Right.(*ast.BinaryExpression)
	if right.Operator != "*" {
		t.Fatalf("expected nested operator '*', got %q", right.Operator)
	}
}

// TestCallVersusComparisonDisambiguation is scenario 4: f<Int>(x) is a
// generic call; a < b > c is two chained comparisons.
func TestCallVersusComparisonDisambiguation(t *testing.T) {
	src := "package demo\n\nfn g() -> Int {\n  f<Int>(x)\n}\n"
	program := mustParse(t, src)
	g := program.Declarations[0].(*ast.FunctionDeclaration)
	block := g.Body.(*ast.Block)
	exprStmt := block.Stmts[0].(*ast.ExpressionStatement)
	call, ok := exprStmt.Expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected a *ast.CallExpression, got %T", exprStmt.Expr)
	}
	if len(call.TypeArgs) != 1 {
		t.Fatalf("expected one type argument, got %d", len(call.TypeArgs))
	}

	src2 := "package demo\n\nfn h() -> Bool = a < b > c\n"
	program2 := mustParse(t, src2)
	h := program2.Declarations[0].(*ast.FunctionDeclaration)
	ret := h.Body.(*ast.ReturnStatement)
	outer := ret.Expr.(*ast.BinaryExpression)
	if outer.Operator != ">" {
		t.Fatalf("expected outer operator '>', got %q", outer.Operator)
	}
	if _, ok := outer.Left.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected left side to be a nested comparison, got %T", outer.Left)
	}
}

// TestNestedClassRejected is scenario 6: a class declared inside a class
// body is a syntax error, not a nested declaration.
func TestNestedClassRejected(t *testing.T) {
	src := "package demo\n\nclass Outer {\n  class Inner {}\n}\n"
	_, err := Parse(src, "<test>")
	if err == nil {
		t.Fatal("expected nested class declaration to fail")
	}
	if !strings.Contains(err.Error(), "Inner classes are not allowed") {
		t.Fatalf("expected the nested-class message, got %v", err)
	}
}

// TestEmptySourceErrorMessage is the boundary behavior for an empty
// program.
func TestEmptySourceErrorMessage(t *testing.T) {
	_, err := Parse("", "<test>")
	if err == nil {
		t.Fatal("expected empty source to fail")
	}
	if !strings.Contains(err.Error(), "Expected package definition") {
		t.Fatalf("expected the package-definition message, got %v", err)
	}
}

// TestNativeFunctionRequiresTrailingLineBreak is a boundary behavior: a
// native function has no body, but it still needs a terminating line
// break.
func TestNativeFunctionRequiresTrailingLineBreak(t *testing.T) {
	_, err := Parse("package demo\n\nnative fn f()", "<test>")
	if err == nil {
		t.Fatal("expected a native function with no trailing line break to fail")
	}
}

// TestValWithDelegateAndInitializerRejected is a boundary behavior: `by`
// and `=` are mutually exclusive.
func TestValWithDelegateAndInitializerRejected(t *testing.T) {
	_, err := Parse("package demo\n\nval x = 1 by d\n", "<test>")
	if err == nil {
		t.Fatal("expected a variable with both an initializer and a delegate to fail")
	}
}

func TestPackageAndImports(t *testing.T) {
	program := mustParse(t, "package demo.util\n\nimport lambda.collections.Box\n\nfn f() -> Int = 1\n")
	if program.Package.Name.String() != "demo.util" {
		t.Fatalf("expected package name demo.util, got %s", program.Package.Name.String())
	}
	if len(program.Imports) != 1 || program.Imports[0].Member != "Box" {
		t.Fatalf("expected one import of Box, got %#v", program.Imports)
	}
}

func TestClassWithSuperclassAndInterfaces(t *testing.T) {
	program := mustParse(t, "package demo\n\nclass Dog: Animal, Named {\n  var name: String\n}\n")
	class := program.Declarations[0].(*ast.ClassDeclaration)
	if class.SuperClass == nil || class.SuperClass.String() != "Animal" {
		t.Fatalf("expected superclass Animal, got %v", class.SuperClass)
	}
	if len(class.Interfaces) != 1 || class.Interfaces[0].String() != "Named" {
		t.Fatalf("expected one interface Named, got %#v", class.Interfaces)
	}
}
