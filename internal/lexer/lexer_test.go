package lexer

import (
	"strings"
	"testing"

	"github.com/wowstarworld/lambda-go/internal/token"
)

// TestRawRoundTrip checks invariant 1: concatenating Raw() across every
// token, including Whitespace tokens, losslessly reproduces the input.
func TestRawRoundTrip(t *testing.T) {
	src := "package demo\n\nfn add(a: Int, b: Int) -> Int = a + b\n"
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Raw())
	}
	if b.String() != src {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", b.String(), src)
	}
}

func TestDecimalEdgeCases(t *testing.T) {
	cases := []struct {
		src         string
		hasInteger  bool
		hasFraction bool
	}{
		{"1.", true, false},
		{".1", false, true},
		{"1.e3", true, false},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.src)
		if err != nil {
			t.Fatalf("%s: %v", c.src, err)
		}
		if len(toks) != 1 || toks[0].Kind != token.Number {
			t.Fatalf("%s: expected a single Number token, got %#v", c.src, toks)
		}
		d := toks[0].Decimal
		if d.HasInteger != c.hasInteger || d.HasFraction != c.hasFraction {
			t.Fatalf("%s: got HasInteger=%v HasFraction=%v", c.src, d.HasInteger, d.HasFraction)
		}
	}
}

func TestNumericUnderscoreRawPreservation(t *testing.T) {
	toks, err := Tokenize("1_000_000")
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].NumberRaw != "1_000_000" {
		t.Fatalf("expected underscores preserved in NumberRaw, got %q", toks[0].NumberRaw)
	}
}

func TestStringLiteralCannotCrossNewline(t *testing.T) {
	_, err := Tokenize("\"abc\ndef\"")
	if err == nil {
		t.Fatal("expected a string literal containing a newline to fail")
	}
}

func TestBacktickIdentifierAllowsNewline(t *testing.T) {
	toks, err := Tokenize("`a\nb`")
	if err != nil {
		t.Fatalf("expected a backtick identifier to allow a newline, got %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != token.Identifier {
		t.Fatalf("expected a single Identifier token, got %#v", toks)
	}
	if toks[0].IdentValue != "a\nb" {
		t.Fatalf("expected identifier value %q, got %q", "a\nb", toks[0].IdentValue)
	}
}

func TestUnknownCharacterFailsCollect(t *testing.T) {
	if _, err := Tokenize("#"); err == nil {
		t.Fatal("expected an unknown character to fail Collect")
	}
}

func TestRadixLiteralsRejectNoDigits(t *testing.T) {
	for _, src := range []string{"0x", "0o", "0b"} {
		if _, err := Tokenize(src); err == nil {
			t.Fatalf("%s: expected a radix literal with no digits to fail", src)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb\tc\\d\"e"`)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb\tc\\d\"e"
	if toks[0].StringValue != want {
		t.Fatalf("got %q want %q", toks[0].StringValue, want)
	}
}

func TestHexEscapeAboveASCIIEncodesAsUnicodeScalar(t *testing.T) {
	toks, err := Tokenize(`"\xe9"`)
	if err != nil {
		t.Fatal(err)
	}
	want := string(rune(0xe9))
	if toks[0].StringValue != want {
		t.Fatalf("got %q want %q", toks[0].StringValue, want)
	}
	if !strings.Contains(toks[0].StringValue, "é") {
		t.Fatalf("expected UTF-8 encoded U+00E9, got raw bytes %v", []byte(toks[0].StringValue))
	}
}

func TestCommentsAreDiscarded(t *testing.T) {
	toks, err := Tokenize("package x // trailing comment\n/* block */")
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range toks {
		if strings.Contains(tok.Raw(), "trailing comment") || strings.Contains(tok.Raw(), "block") {
			t.Fatalf("expected comment text to be discarded, found in %q", tok.Raw())
		}
	}
}
