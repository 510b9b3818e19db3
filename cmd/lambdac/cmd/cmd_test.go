package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/spf13/cobra"
)

// runCommand executes c in-process with the given args, capturing stdout.
// Cobra always executes from the root command, so the args are routed
// through the root with c's name in front.
func runCommand(t *testing.T, c *cobra.Command, args []string) string {
	t.Helper()
	var buf bytes.Buffer
	root := c.Root()
	root.SetArgs(append([]string{c.Name()}, args...))
	root.SetOut(&buf)
	if err := root.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	return buf.String()
}

func TestLexCommandPrintsTokens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.lambda")
	if err := os.WriteFile(path, []byte("package x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := runCommand(t, lexCmd, []string{path})
	if !strings.Contains(out, "package") {
		t.Fatalf("expected token listing to contain %q, got %q", "package", out)
	}
}

func TestParseCommandDumpsAST(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.lambda")
	src := "package x\n\nfn main() -> Int = 1\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	out := runCommand(t, parseCmd, []string{"--dump-ast", path})
	if !strings.Contains(out, "FunctionDeclaration main") {
		t.Fatalf("expected AST dump to name the function, got %q", out)
	}
}

func TestAsmCommandWritesBytecode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "x.lambda")
	out := filepath.Join(dir, "x.ld")
	if err := os.WriteFile(src, []byte("package x\n\nclass Foo {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	runCommand(t, asmCmd, []string{"--out", out, src})
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty bytecode stream")
	}
}

func TestInitCommandWritesManifest(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "lambda.yaml")
	runCommand(t, initCmd, []string{"--out", out})
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected manifest at %s: %v", out, err)
	}
}

func TestStdlibCommandLists(t *testing.T) {
	out := runCommand(t, stdlibCmd, nil)
	if !strings.Contains(out, "math.lambda") {
		t.Fatalf("expected stdlib listing to mention math.lambda, got %q", out)
	}
}

func TestParseCommandDumpSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.lambda")
	src := "package demo\n\nfn <T: Comparable> max(a: T, b: T) -> T = if (a > b) a else b\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	out := runCommand(t, parseCmd, []string{"--dump-ast", path})
	snaps.MatchSnapshot(t, out)
}
