package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestProgramSnapshots pins the printed form of each end-to-end scenario
// program, grounded on the teacher's fixture-test use of go-snaps for
// whole-program comparisons rather than field-by-field assertions.
func TestProgramSnapshots(t *testing.T) {
	scenarios := map[string]string{
		"generic_max":       "package demo\n\nfn <T: Comparable> max(a: T, b: T) -> T = if (a > b) a else b\n",
		"rest_and_named":    "package demo\n\nfn f(prefix: String, *rest: Array<Int>) -> Int = 0\n",
		"operator_precedence": "package demo\n\nfn f() -> Bool = a + b * c == d\n",
		"generic_call":      "package demo\n\nfn g() -> Int {\n  f<Int>(x)\n}\n",
		"class_hierarchy":   "package demo\n\nclass Dog: Animal, Named {\n  var name: String\n}\n",
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			program, err := Parse(src, name)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			snaps.MatchSnapshot(t, program.String())
			for _, decl := range program.Declarations {
				snaps.MatchSnapshot(t, decl.String())
			}
		})
	}
}
