package helpers

import (
	"strings"
	"testing"

	"github.com/minforge/jsmin/internal/logger"
	"github.com/minforge/jsmin/internal/test"
)

func TestJoiner(t *testing.T) {
	j := Joiner{}
	test.AssertEqual(t, j.Length(), uint32(0))
	test.AssertEqual(t, j.LastByte(), byte(0))
	test.AssertEqual(t, string(j.Done()), "")

	j.AddString("var")
	j.AddString("")
	j.AddString(" x")
	test.AssertEqual(t, j.Length(), uint32(5))
	test.AssertEqual(t, j.LastByte(), byte('x'))
	test.AssertEqual(t, string(j.Done()), "var x")
}

func TestTypoDetector(t *testing.T) {
	detector := MakeTypoDetector([]string{"--outfile", "--trace", "--timing"})

	check := func(typo string, expected string) {
		t.Helper()
		corrected, ok := detector.MaybeCorrectTypo(typo)
		test.AssertEqual(t, corrected, expected)
		test.AssertEqual(t, ok, expected != "")
	}

	check("--outfle", "--outfile")
	check("--outfille", "--outfile")
	check("--outfixe", "--outfile")
	check("--outfiel", "--outfile")
	check("--outfle=x.js", "--outfile")
	check("--tarce", "--trace")
	check("--outfile", "")
	check("--bundle", "")
}

func TestTimerLog(t *testing.T) {
	var nilTimer *Timer
	nilTimer.Begin("ignored")
	nilTimer.End("ignored")

	timer := &Timer{}
	timer.Begin("Outer")
	timer.Begin("Inner")
	timer.End("Inner")
	timer.End("Outer")

	log := logger.NewDeferLog()
	timer.Log(log)
	msgs := log.Done()
	test.AssertEqual(t, len(msgs), 1)
	notes := msgs[0].Notes
	test.AssertEqual(t, len(notes), 2)
	test.AssertEqual(t, strings.HasPrefix(notes[0], "Outer: "), true)
	test.AssertEqual(t, strings.HasPrefix(notes[1], "  Inner: "), true)
}

func TestCallerFrames(t *testing.T) {
	frames := CallerFrames(0)
	if len(frames) == 0 {
		t.Fatal("Expected at least one frame")
	}
	if !strings.HasPrefix(frames[0], "helpers.TestCallerFrames (helpers_test.go:") {
		t.Fatalf("Unexpected first frame %q", frames[0])
	}
	for _, frame := range frames {
		if strings.HasPrefix(frame, "runtime.") {
			t.Fatalf("Unexpected runtime frame %q", frame)
		}
	}
}
