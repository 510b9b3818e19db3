package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lambda.yaml")

	want := Default()
	want.Package = "demo.cli"
	if err := want.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Package != want.Package {
		t.Errorf("Package = %q, want %q", got.Package, want.Package)
	}
	if len(got.Sources) != 1 || got.Sources[0] != "src" {
		t.Errorf("Sources = %v, want [src]", got.Sources)
	}
}

func TestLoadMissingPackageField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lambda.yaml")
	if err := writeRaw(path, "sources: [\"src\"]\n"); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a manifest missing 'package'")
	}
}

func TestLoadStripsUTF8BOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lambda.yaml")
	bom := "\xEF\xBB\xBF"
	if err := writeRaw(path, bom+"package: bomtest\n"); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Package != "bomtest" {
		t.Errorf("Package = %q, want bomtest", m.Package)
	}
}

func writeRaw(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
