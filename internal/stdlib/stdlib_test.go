package stdlib

import "testing"

func TestFilesSorted(t *testing.T) {
	files := Files()
	if len(files) == 0 {
		t.Fatal("expected at least one bundled file")
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] > files[i] {
			t.Fatalf("Files() not sorted: %v", files)
		}
	}
}

func TestLookupKnownFile(t *testing.T) {
	src, ok := Lookup("math.lambda")
	if !ok {
		t.Fatal("expected math.lambda to be bundled")
	}
	if src == "" {
		t.Fatal("expected non-empty source")
	}
}

func TestLookupUnknownFile(t *testing.T) {
	if _, ok := Lookup("does-not-exist.lambda"); ok {
		t.Fatal("expected lookup of a missing file to fail")
	}
}

func TestDescribeMatchesIndex(t *testing.T) {
	for _, f := range Files() {
		if _, ok := Describe(f); !ok {
			t.Errorf("file %q has no index.yaml entry", f)
		}
	}
}
