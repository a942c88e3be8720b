package api

type Location struct {
	File     string
	Line     int // 1-based
	Column   int // 0-based, in bytes
	Length   int // in bytes
	LineText string
}

type Message struct {
	Text     string
	Location *Location
	Notes    []string
}

type StderrColor uint8

const (
	ColorIfTerminal StderrColor = iota
	ColorNever
	ColorAlways
)

type LogLevel uint8

const (
	LogLevelSilent LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
)

// TraceStep describes what the minifier did with one lexeme. States and
// token types are given by name and are only meant for debugging.
type TraceStep struct {
	Offset     int
	Lexeme     string
	TokenType  string
	Separator  string
	State      string
	NextState  string
	StackDepth int
}

////////////////////////////////////////////////////////////////////////////////
// Minify API

type MinifyOptions struct {
	Color    StderrColor
	LogLevel LogLevel

	// The file name used in messages. This defaults to "<stdin>".
	Sourcefile string

	// Lines are broken where it's safe once they get longer than this. Zero
	// means the default of 1000.
	MaxLineLength int

	// How deeply nested brackets are tracked. Zero means the default of 1000.
	StackLimit int

	Trace func(TraceStep)
}

type MinifyResult struct {
	Errors   []Message
	Warnings []Message

	// This is nil if there were any errors
	Code []byte
}

func Minify(input string, options MinifyOptions) MinifyResult {
	return minifyImpl(input, options)
}
