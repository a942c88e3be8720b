package api

import (
	"errors"
	"fmt"

	"github.com/minforge/jsmin/internal/helpers"
	"github.com/minforge/jsmin/internal/js_minifier"
	"github.com/minforge/jsmin/internal/logger"
)

func validateColor(value StderrColor) logger.UseColor {
	switch value {
	case ColorIfTerminal:
		return logger.ColorIfTerminal
	case ColorNever:
		return logger.ColorNever
	case ColorAlways:
		return logger.ColorAlways
	default:
		panic("Invalid color")
	}
}

func validateLogLevel(value LogLevel) logger.LogLevel {
	switch value {
	case LogLevelInfo:
		return logger.LevelInfo
	case LogLevelWarning:
		return logger.LevelWarning
	case LogLevelError:
		return logger.LevelError
	case LogLevelSilent:
		return logger.LevelSilent
	default:
		panic("Invalid log level")
	}
}

func validateLimit(log logger.Log, value int, name string, fallback int) int {
	if value < 0 {
		log.AddError(nil, logger.Range{}, fmt.Sprintf("Invalid %s: %d", name, value))
		return fallback
	}
	if value == 0 {
		return fallback
	}
	return value
}

func messagesOfKind(kind logger.MsgKind, msgs []logger.Msg) []Message {
	var filtered []Message
	for _, msg := range msgs {
		if msg.Kind == kind {
			var location *Location

			if msg.Location != nil {
				loc := msg.Location
				location = &Location{
					File:     loc.File,
					Line:     loc.Line,
					Column:   loc.Column,
					Length:   loc.Length,
					LineText: loc.LineText,
				}
			}

			filtered = append(filtered, Message{
				Text:     msg.Text,
				Location: location,
				Notes:    msg.Notes,
			})
		}
	}
	return filtered
}

func convertTraceStep(step js_minifier.TraceStep) TraceStep {
	return TraceStep{
		Offset:     step.Offset,
		Lexeme:     step.Lexeme,
		TokenType:  step.Type.String(),
		Separator:  step.Separator,
		State:      step.Before.String(),
		NextState:  step.After.String(),
		StackDepth: step.StackDepth,
	}
}

func minifyImpl(input string, options MinifyOptions) MinifyResult {
	var log logger.Log
	if options.LogLevel == LogLevelSilent {
		log = logger.NewDeferLog()
	} else {
		log = logger.NewStderrLog(logger.OutputOptions{
			IncludeSource: true,
			Color:         validateColor(options.Color),
			LogLevel:      validateLogLevel(options.LogLevel),
		})
	}

	source := logger.Source{
		PrettyPath: options.Sourcefile,
		Contents:   input,
	}
	if source.PrettyPath == "" {
		source.PrettyPath = "<stdin>"
	}

	// Convert and validate the options
	minifyOptions := js_minifier.Options{
		MaxLineLength: validateLimit(log, options.MaxLineLength, "max line length", js_minifier.DefaultMaxLineLength),
		StackLimit:    validateLimit(log, options.StackLimit, "stack limit", js_minifier.DefaultStackLimit),
	}
	if options.Trace != nil {
		minifyOptions.Trace = func(step js_minifier.TraceStep) {
			options.Trace(convertTraceStep(step))
		}
	}
	minifyOptions.StackLimitReached = func(offset int) {
		log.AddWarning(&source, logger.Range{Loc: logger.Loc{Start: int32(offset)}}, fmt.Sprintf(
			"Brackets are nested more than %d levels deep here, so whitespace after this point may not be fully removed",
			minifyOptions.StackLimit))
	}

	var code string
	if !log.HasErrors() {
		code = runMinifier(log, &source, minifyOptions)
	}

	msgs := log.Done()
	result := MinifyResult{
		Errors:   messagesOfKind(logger.Error, msgs),
		Warnings: messagesOfKind(logger.Warning, msgs),
	}
	if len(result.Errors) == 0 {
		result.Code = []byte(code)
	}
	return result
}

// Internal errors are reported as messages instead of crashing the caller
func runMinifier(log logger.Log, source *logger.Source, options js_minifier.Options) (code string) {
	defer func() {
		if r := recover(); r != nil {
			log.AddMsg(logger.Msg{
				Kind:  logger.Error,
				Text:  fmt.Sprintf("panic: %v", r),
				Notes: helpers.CallerFrames(0),
			})
			code = ""
		}
	}()

	code, err := js_minifier.Minify(source.Contents, options)
	var lexErr *js_minifier.LexError
	if errors.As(err, &lexErr) {
		log.AddError(source, logger.Range{Loc: logger.Loc{Start: int32(lexErr.Offset)}}, lexErr.Text)
	}
	return code
}
