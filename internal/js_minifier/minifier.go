package js_minifier

import (
	"fmt"
	"strings"

	"github.com/minforge/jsmin/internal/helpers"
	"github.com/tdewolff/parse/v2"
)

const DefaultMaxLineLength = 1000

type Options struct {
	// A newline is inserted before a lexeme that would make the current output
	// line longer than this, where that is safe. Zero means the default.
	MaxLineLength int

	// The maximum depth of the state stack. Zero means the default.
	StackLimit int

	// If set, this is called once for every lexeme that is emitted
	Trace func(TraceStep)

	// If set, this is called with the offset of the first lexeme whose push
	// was dropped because the stack was full. Whitespace decisions after that
	// point may be more conservative than they need to be.
	StackLimitReached func(offset int)
}

type TraceStep struct {
	Offset     int
	Lexeme     string
	Type       TokenType
	Separator  string
	Before     State
	After      State
	StackDepth int
}

// LexError is returned for input that can't be split into lexemes, such as an
// unterminated string. Nothing is emitted when this happens.
type LexError struct {
	Text string

	// A byte offset into the source
	Offset int

	// These are 1-based and count characters, not bytes
	Line   int
	Column int
}

func newLexError(source string, offset int, text string) *LexError {
	line, column, _ := parse.Position(strings.NewReader(source), offset)
	return &LexError{
		Text:   text,
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Text)
}

type minifier struct {
	scanner
	options       Options
	joiner        helpers.Joiner
	stack         StateStack
	state         State
	lineLength    int
	afterDotless  bool
	maxLineLength int
	overflowed    bool
}

// Minify removes all whitespace and comments that aren't needed from the
// JavaScript source. Lexemes are copied through unchanged. This is safe to
// call from multiple goroutines at once.
func Minify(source string, options Options) (string, error) {
	m := minifier{
		scanner:       scanner{source: source},
		options:       options,
		stack:         NewStateStack(options.StackLimit),
		state:         SStatement.in(false),
		maxLineLength: options.MaxLineLength,
	}
	if m.maxLineLength <= 0 {
		m.maxLineLength = DefaultMaxLineLength
	}

	if err := m.run(); err != nil {
		return "", err
	}
	return string(m.joiner.Done()), nil
}

func (m *minifier) run() *LexError {
	for {
		if err := m.skipTrivia(); err != nil {
			return err
		}
		if m.atEnd() {
			return nil
		}

		// A "}" closes a "${" substitution if the template bookkeeping entry
		// is on top of the stack
		var marker State
		isContinuation := false
		if m.source[m.end] == '}' {
			if top, ok := m.stack.Peek(); ok && top.Kind == STemplateStringTail {
				marker, _ = m.stack.Pop()
				isContinuation = true
			}
		}

		before := m.state
		lex, err := m.next(m.state, isContinuation)
		if err != nil {
			return err
		}

		if isContinuation {
			separator := m.separator(TLiteral, lex, false)
			m.emit(separator, lex)
			m.continueTemplate(lex, marker)
			m.traceStep(lex, TLiteral, separator, before)
			continue
		}

		tokenType := Classify(m.state, lex.text)
		separator := m.separator(tokenType, lex, true)
		if separator == "\n" && m.state != before {
			// The state was reset because of a newline, so what this lexeme
			// means may have changed too
			tokenType = Classify(m.state, lex.text)
		}
		m.emit(separator, lex)

		if lex.template == templateHead {
			m.startTemplate()
		} else {
			m.apply(tokenType, lex)
		}
		m.traceStep(lex, tokenType, separator, before)
	}
}

func (m *minifier) traceStep(lex lexeme, tokenType TokenType, separator string, before State) {
	if m.options.Trace != nil {
		m.options.Trace(TraceStep{
			Offset:     lex.start,
			Lexeme:     lex.text,
			Type:       tokenType,
			Separator:  separator,
			Before:     before,
			After:      m.state,
			StackDepth: m.stack.Len(),
		})
	}
}

// This returns what must go between the previous output and this lexeme. It
// may also reset the state to a statement when a newline must be kept for
// automatic semicolon insertion.
func (m *minifier) separator(tokenType TokenType, lex lexeme, checkNewline bool) string {
	if checkNewline && m.hasNewlineBefore {
		if IsASI(m.state, tokenType) {
			m.state = SStatement.in(m.state.InGenerator)
			return "\n"
		}
		if KeepsNewline(m.state, tokenType) && !m.afterMemberBoundary() {
			return "\n"
		}
	}

	// Breaking before a "++", "--", or "=>" would change the meaning
	if m.joiner.Length() > 0 && m.lineLength+len(lex.text) > m.maxLineLength &&
		tokenType != TIncrOp && tokenType != TArrow && !IsASI(m.state, tokenType) {
		return "\n"
	}

	last := byte(';')
	if m.joiner.Length() > 0 {
		last = m.joiner.LastByte()
	}
	first := lex.text[0]

	switch {
	case !opChars[last] && !opChars[first]:
		// Two words would merge into one
		return " "

	case last == first && (first == '+' || first == '-' || first == '/'):
		// "a+ +b" must not become "a++b", and "a/ /b/" must not start a comment
		return " "

	case last == '<' && first == '!':
		// "a< !b" must not start an HTML comment
		return " "

	case m.afterDotless && tokenType == TDot && first == '.':
		// "42 .toString()" must not become a decimal point
		return " "
	}

	return ""
}

// Members of an object literal or class body that already end in one of these
// don't need a newline to separate them from the next member
func (m *minifier) afterMemberBoundary() bool {
	if m.state.Kind != SPropertyAssignment {
		return false
	}
	switch m.joiner.LastByte() {
	case '{', ',', ';', '}':
		return true
	}
	return false
}

func (m *minifier) emit(separator string, lex lexeme) {
	if separator != "" {
		m.joiner.AddString(separator)
		if separator == "\n" {
			m.lineLength = 0
		} else {
			m.lineLength += len(separator)
		}
	}

	m.joiner.AddString(lex.text)
	if i := strings.LastIndexByte(lex.text, '\n'); i != -1 {
		m.lineLength = len(lex.text) - i - 1
	} else {
		m.lineLength += len(lex.text)
	}
	m.afterDotless = lex.isDotlessNumber
}

func (m *minifier) apply(tokenType TokenType, lex lexeme) {
	t := m.state.lookup(tokenType, lex.text)
	if t == nil {
		return
	}

	inGenerator := m.state.InGenerator
	if t.Action.HasPush && !m.stack.Push(t.pushState(inGenerator)) && !m.overflowed {
		m.overflowed = true
		if m.options.StackLimitReached != nil {
			m.options.StackLimitReached(lex.start)
		}
	}
	if t.Action.Pop {
		if top, ok := m.stack.Pop(); ok {
			m.state = top
			return
		}
	}
	if t.Action.HasGoto {
		m.state = t.gotoState(inGenerator)
	}
}

// A template literal that opens a substitution remembers the state the whole
// literal would have led to, then scans the substitution as a fresh
// expression.
func (m *minifier) startTemplate() {
	inGenerator := m.state.InGenerator
	after := m.state
	if t := m.state.lookup(TLiteral, ""); t != nil && t.Action.HasGoto {
		after = t.gotoState(inGenerator)
	}
	m.stack.forcePush(after)
	m.stack.forcePush(STemplateStringTail.in(inGenerator))
	m.state = STemplateStringHead.in(inGenerator)
}

func (m *minifier) continueTemplate(lex lexeme, marker State) {
	switch lex.template {
	case templateMiddle:
		m.stack.forcePush(marker)
		m.state = STemplateStringHead.in(marker.InGenerator)

	case templateTail:
		if after, ok := m.stack.Pop(); ok {
			m.state = after
		}
	}
}
