package test

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func AssertEqual(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		t.Fatalf("%s != %s", observed, expected)
	}
}

// Minified output is mostly one long line, so this shows a quoted form of
// each side along with the line diff
func AssertEqualWithDiff(t *testing.T, observed string, expected string) {
	t.Helper()
	if observed != expected {
		t.Fatalf("%q != %q\n%s", observed, expected, Diff(expected, observed))
	}
}

func Diff(expected string, observed string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(observed),
		FromFile: "expected",
		ToFile:   "observed",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}
