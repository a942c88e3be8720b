package logger_test

import (
	"bytes"
	"testing"

	"github.com/minforge/jsmin/internal/logger"
	"github.com/minforge/jsmin/internal/test"
)

func expectMsgString(t *testing.T, msg logger.Msg, expected string) {
	t.Helper()
	observed := msg.String(logger.OutputOptions{IncludeSource: true}, logger.TerminalInfo{})
	test.AssertEqualWithDiff(t, observed, expected)
}

func TestMsgWithoutLocation(t *testing.T) {
	expectMsgString(t, logger.Msg{Kind: logger.Error, Text: "Invalid flag"}, "error: Invalid flag\n")
	expectMsgString(t, logger.Msg{Kind: logger.Info, Text: "Timing information", Notes: []string{"Minify: 1ms"}},
		"info: Timing information\n  Minify: 1ms\n")
}

func TestMsgWithLocation(t *testing.T) {
	source := logger.Source{PrettyPath: "input.js", Contents: "a = 1\nb = 'oops"}
	location := logger.LocationOrNil(&source, logger.Range{Loc: logger.Loc{Start: 10}, Len: 5})
	test.AssertEqual(t, location.Line, 2)
	test.AssertEqual(t, location.Column, 4)
	test.AssertEqual(t, location.LineText, "b = 'oops")

	expectMsgString(t, logger.Msg{Kind: logger.Error, Text: "Unterminated string literal", Location: location},
		"input.js:2:4: error: Unterminated string literal\nb = 'oops\n    ~~~~~\n")

	// A zero-length range gets a single caret
	location = logger.LocationOrNil(&source, logger.Range{Loc: logger.Loc{Start: 2}})
	expectMsgString(t, logger.Msg{Kind: logger.Warning, Text: "Here", Location: location},
		"input.js:1:2: warning: Here\na = 1\n  ^\n")

	// Without the source line, only the file name is shown
	observed := logger.Msg{Kind: logger.Warning, Text: "Here", Location: location}.String(logger.OutputOptions{}, logger.TerminalInfo{})
	test.AssertEqual(t, observed, "input.js: warning: Here\n")
}

func TestMsgTabStops(t *testing.T) {
	source := logger.Source{PrettyPath: "input.js", Contents: "\tx = 'a"}
	location := logger.LocationOrNil(&source, logger.Range{Loc: logger.Loc{Start: 5}, Len: 2})
	expectMsgString(t, logger.Msg{Kind: logger.Error, Text: "Tabs", Location: location},
		"input.js:1:5: error: Tabs\n  x = 'a\n      ~~\n")
}

func TestLocationOrNil(t *testing.T) {
	if logger.LocationOrNil(nil, logger.Range{}) != nil {
		t.Fatal("Expected no location without a source")
	}
}

func TestWriterLogLevels(t *testing.T) {
	var buffer bytes.Buffer
	log := logger.NewWriterLog(&buffer, logger.TerminalInfo{}, logger.OutputOptions{LogLevel: logger.LevelWarning})
	log.AddMsg(logger.Msg{Kind: logger.Info, Text: "hidden"})
	log.AddMsg(logger.Msg{Kind: logger.Warning, Text: "shown"})
	test.AssertEqual(t, log.HasErrors(), false)
	log.AddMsg(logger.Msg{Kind: logger.Error, Text: "also shown"})
	test.AssertEqual(t, log.HasErrors(), true)

	msgs := log.Done()
	test.AssertEqual(t, len(msgs), 3)
	test.AssertEqualWithDiff(t, buffer.String(), "warning: shown\nerror: also shown\n")
}

func TestWriterLogSummary(t *testing.T) {
	var buffer bytes.Buffer
	log := logger.NewWriterLog(&buffer, logger.TerminalInfo{}, logger.OutputOptions{LogLevel: logger.LevelInfo})
	log.AddMsg(logger.Msg{Kind: logger.Warning, Text: "a"})
	log.AddMsg(logger.Msg{Kind: logger.Error, Text: "b"})
	log.Done()
	test.AssertEqualWithDiff(t, buffer.String(), "warning: a\nerror: b\n1 warning and 1 error\n")
}

func TestWriterLogSilent(t *testing.T) {
	var buffer bytes.Buffer
	log := logger.NewWriterLog(&buffer, logger.TerminalInfo{}, logger.OutputOptions{LogLevel: logger.LevelSilent})
	log.AddMsg(logger.Msg{Kind: logger.Error, Text: "b"})
	log.Done()
	test.AssertEqual(t, buffer.String(), "")
}

func TestDeferLogSorts(t *testing.T) {
	log := logger.NewDeferLog()
	log.AddMsg(logger.Msg{Kind: logger.Error, Text: "second", Location: &logger.MsgLocation{File: "a.js", Line: 2}})
	log.AddMsg(logger.Msg{Kind: logger.Error, Text: "first", Location: &logger.MsgLocation{File: "a.js", Line: 1}})
	log.AddMsg(logger.Msg{Kind: logger.Warning, Text: "global"})

	msgs := log.Done()
	test.AssertEqual(t, msgs[0].Text, "global")
	test.AssertEqual(t, msgs[1].Text, "first")
	test.AssertEqual(t, msgs[2].Text, "second")
}

func TestOutputOptionsForArgs(t *testing.T) {
	options := logger.OutputOptionsForArgs([]string{"in.js", "--color=false", "--log-level=error"})
	test.AssertEqual(t, options.Color, logger.ColorNever)
	test.AssertEqual(t, options.LogLevel, logger.LevelError)
	test.AssertEqual(t, options.IncludeSource, true)
}
