package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minforge/jsmin/internal/exitcode"
	"github.com/minforge/jsmin/internal/helpers"
	"github.com/minforge/jsmin/internal/logger"
	"github.com/minforge/jsmin/pkg/api"
)

type stdio struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	stderrInfo logger.TerminalInfo
}

// This is returned once the messages explaining a failure have been logged
var errAlreadyLogged = errors.New("Minification failed")

// Run minifies the file named in "osArgs" (or stdin) and returns the exit code
func Run(osArgs []string) int {
	return run(osArgs, stdio{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		stderrInfo: logger.GetTerminalInfo(os.Stderr),
	})
}

func run(osArgs []string, stdio stdio) int {
	log := logger.NewWriterLog(stdio.stderr, stdio.stderrInfo, logger.OutputOptionsForArgs(osArgs))

	opts, err := parseOptions(osArgs)
	if err == nil {
		var timer *helpers.Timer
		if opts.timing {
			timer = &helpers.Timer{}
		}
		err = minifyFile(opts, stdio, log, timer)
		timer.Log(log)
	}

	if err != nil && !errors.Is(err, errAlreadyLogged) {
		log.AddMsg(logger.Msg{Kind: logger.Error, Text: err.Error()})
	}
	log.Done()
	return exitcode.Get(err)
}

func minifyFile(opts options, stdio stdio, log logger.Log, timer *helpers.Timer) error {
	timer.Begin("Read input")
	contents, err := readInput(opts.inputPath, stdio.stdin)
	timer.End("Read input")
	if err != nil {
		return err
	}

	// Messages are printed here instead of by the API so they go to the
	// same place as everything else
	minifyOptions := opts.minify
	minifyOptions.LogLevel = api.LogLevelSilent
	if opts.trace {
		minifyOptions.Trace = func(step api.TraceStep) {
			fmt.Fprintf(stdio.stderr, "%6d %-30s -> %-30s depth=%-4d sep=%-6q %-18s %q\n",
				step.Offset, step.State, step.NextState, step.StackDepth, step.Separator, step.TokenType, step.Lexeme)
		}
	}

	timer.Begin("Minify")
	result := api.Minify(string(contents), minifyOptions)
	timer.End("Minify")

	for _, msg := range result.Warnings {
		log.AddMsg(convertMessage(logger.Warning, msg))
	}
	for _, msg := range result.Errors {
		log.AddMsg(convertMessage(logger.Error, msg))
	}
	if len(result.Errors) > 0 {
		return errAlreadyLogged
	}

	timer.Begin("Write output")
	defer timer.End("Write output")
	return writeOutput(opts.outfile, stdio.stdout, result.Code)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		contents, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("Could not read from stdin: %s", err.Error())
		}
		return contents, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Could not read from file %q: %s", path, err.Error())
	}
	return contents, nil
}

func writeOutput(outfile string, stdout io.Writer, code []byte) error {
	if outfile == "" {
		if _, err := stdout.Write(code); err != nil {
			return fmt.Errorf("Failed to write to stdout: %s", err.Error())
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outfile), 0755); err != nil {
		return fmt.Errorf("Failed to create output directory: %s", err.Error())
	}
	if err := os.WriteFile(outfile, code, 0644); err != nil {
		return fmt.Errorf("Failed to write to output file: %s", err.Error())
	}
	return nil
}

func convertMessage(kind logger.MsgKind, msg api.Message) logger.Msg {
	var location *logger.MsgLocation
	if msg.Location != nil {
		location = &logger.MsgLocation{
			File:     msg.Location.File,
			Line:     msg.Location.Line,
			Column:   msg.Location.Column,
			Length:   msg.Location.Length,
			LineText: msg.Location.LineText,
		}
	}
	return logger.Msg{
		Kind:     kind,
		Text:     msg.Text,
		Location: location,
		Notes:    msg.Notes,
	}
}
