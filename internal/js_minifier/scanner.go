package js_minifier

// The scanner splits the source into lexemes without interpreting them. It is
// called repeatedly by the driver, which passes in its current state because
// whether "/" starts a regular expression depends on what came before it.
//
// Lexemes are always slices of the source text. The minifier never rewrites a
// lexeme, it only decides what goes between two of them.

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type templatePart uint8

const (
	templateNone   templatePart = iota
	templateWhole               // "`...`"
	templateHead                // "`...${"
	templateMiddle              // "}...${"
	templateTail                // "}...`"
)

type lexeme struct {
	text     string
	start    int
	template templatePart

	// A number such as "42" that needs a space before a following "."
	isDotlessNumber bool
}

type scanner struct {
	source           string
	start            int
	end              int
	hasNewlineBefore bool
}

func (s *scanner) atEnd() bool {
	return s.end >= len(s.source)
}

func (s *scanner) errorAt(offset int, text string) *LexError {
	return newLexError(s.source, offset, text)
}

// Skips over whitespace and comments and records whether that crossed a line
// terminator. The start of the file counts as a new line.
func (s *scanner) skipTrivia() *LexError {
	s.hasNewlineBefore = s.end == 0

	for s.end < len(s.source) {
		c := s.source[s.end]

		switch c {
		case '\r', '\n':
			s.end++
			s.hasNewlineBefore = true
			continue

		case ' ', '\t', '\v', '\f':
			s.end++
			continue

		case '/':
			if strings.HasPrefix(s.source[s.end:], "//") {
				s.skipSingleLineComment()
				continue
			}
			if strings.HasPrefix(s.source[s.end:], "/*") {
				start := s.end
				length := strings.Index(s.source[start+2:], "*/")
				if length == -1 {
					return s.errorAt(start, "Expected \"*/\" to terminate multi-line comment")
				}
				s.end = start + 2 + length + 2
				if strings.ContainsAny(s.source[start:s.end], "\r\n\u2028\u2029") {
					s.hasNewlineBefore = true
				}
				continue
			}

		case '<':
			// Handle legacy HTML-style comments
			if strings.HasPrefix(s.source[s.end:], "<!--") {
				s.skipSingleLineComment()
				continue
			}

		case '-':
			// "-->" only starts a comment at the beginning of a line
			if s.hasNewlineBefore && strings.HasPrefix(s.source[s.end:], "-->") {
				s.skipSingleLineComment()
				continue
			}

		default:
			if c >= 0x80 {
				r, width := utf8.DecodeRuneInString(s.source[s.end:])
				if r == '\u2028' || r == '\u2029' {
					s.end += width
					s.hasNewlineBefore = true
					continue
				}
				if IsWhitespace(r) {
					s.end += width
					continue
				}
			}
		}

		return nil
	}

	return nil
}

// This stops in front of the line terminator so "skipTrivia" sees it
func (s *scanner) skipSingleLineComment() {
	for s.end < len(s.source) {
		c := s.source[s.end]
		if c == '\r' || c == '\n' {
			return
		}
		if c >= 0x80 {
			r, width := utf8.DecodeRuneInString(s.source[s.end:])
			if r == '\u2028' || r == '\u2029' {
				return
			}
			s.end += width
			continue
		}
		s.end++
	}
}

// Scans the lexeme at the cursor. "resumeTemplate" is set when the cursor is
// on the "}" that ends a "${" substitution.
func (s *scanner) next(state State, resumeTemplate bool) (lexeme, *LexError) {
	s.start = s.end
	c := s.source[s.end]

	switch {
	case resumeTemplate || c == '`':
		return s.scanTemplate()

	case c == '"' || c == '\'':
		return s.scanString(c)

	case c == '/' && !IsDivision(state):
		return s.scanRegExp()

	case c == '0' && s.peek(1) == 'x' || c == '0' && s.peek(1) == 'X':
		return s.scanPrefixedInteger("hexadecimal", isHexDigit)

	case c == '0' && (s.peek(1) == 'b' || s.peek(1) == 'B'):
		return s.scanPrefixedInteger("binary", isDecimalDigit)

	case c == '0' && (s.peek(1) == 'o' || s.peek(1) == 'O'):
		return s.scanPrefixedInteger("octal", isDecimalDigit)

	case isDecimalDigit(c) || (c == '.' && isDecimalDigit(s.peek(1))):
		return s.scanDecimal()

	case opChars[c]:
		return s.scanPunctuator(), nil

	default:
		return s.scanIdentifier(), nil
	}
}

func (s *scanner) peek(offset int) byte {
	if i := s.end + offset; i < len(s.source) {
		return s.source[i]
	}
	return 0
}

func (s *scanner) lexeme() lexeme {
	return lexeme{text: s.source[s.start:s.end], start: s.start}
}

func (s *scanner) scanString(quote byte) (lexeme, *LexError) {
	i := s.start + 1
	for i < len(s.source) {
		switch s.source[i] {
		case '\\':
			// Skip over the escaped character, which may be the quote
			i += 2
			continue

		case quote:
			s.end = i + 1
			return s.lexeme(), nil
		}
		i++
	}
	return lexeme{}, s.errorAt(s.start, "Unterminated string literal")
}

// Scans "`...`" or "`...${" when starting a template literal, and "}...`" or
// "}...${" when resuming one after a substitution.
func (s *scanner) scanTemplate() (lexeme, *LexError) {
	isStart := s.source[s.start] == '`'
	i := s.start + 1

	for i < len(s.source) {
		switch s.source[i] {
		case '\\':
			i += 2
			continue

		case '`':
			s.end = i + 1
			result := s.lexeme()
			if isStart {
				result.template = templateWhole
			} else {
				result.template = templateTail
			}
			return result, nil

		case '$':
			if i+1 < len(s.source) && s.source[i+1] == '{' {
				s.end = i + 2
				result := s.lexeme()
				if isStart {
					result.template = templateHead
				} else {
					result.template = templateMiddle
				}
				return result, nil
			}
		}
		i++
	}

	return lexeme{}, s.errorAt(s.start, "Unterminated template literal")
}

func (s *scanner) scanRegExp() (lexeme, *LexError) {
	i := s.start + 1
	unterminated := func() (lexeme, *LexError) {
		return lexeme{}, s.errorAt(s.start, "Unterminated regular expression")
	}

	for {
		if i >= len(s.source) {
			return unterminated()
		}

		switch s.source[i] {
		case '\\':
			i += 2
			continue

		case '\r', '\n':
			// Newlines aren't allowed in regular expressions
			return unterminated()

		case '[':
			// A "/" inside a character class doesn't end the expression
			i++
			for {
				if i >= len(s.source) {
					return unterminated()
				}
				c := s.source[i]
				if c == '\\' {
					i += 2
					continue
				}
				if c == '\r' || c == '\n' {
					return unterminated()
				}
				i++
				if c == ']' {
					break
				}
			}
			continue

		case '/':
			i++
			for i < len(s.source) && isIdentifierByte(s.source[i]) {
				i++
			}
			s.end = i
			return s.lexeme(), nil
		}

		i++
	}
}

// Scans "0x1F", "0b101" or "0o17", including "_" separators and a BigInt "n"
func (s *scanner) scanPrefixedInteger(kind string, isDigit func(byte) bool) (lexeme, *LexError) {
	i := s.start + 2
	digits := 0
	for i < len(s.source) && (isDigit(s.source[i]) || s.source[i] == '_') {
		if s.source[i] != '_' {
			digits++
		}
		i++
	}

	if digits == 0 {
		found := s.source[s.start:]
		if len(found) > 5 {
			found = found[:5] + "..."
		}
		return lexeme{}, s.errorAt(s.start, fmt.Sprintf("Expected a %s number but found %q", kind, found))
	}

	if i < len(s.source) && s.source[i] == 'n' {
		i++
	}

	s.end = i
	result := s.lexeme()
	result.isDotlessNumber = true
	return result, nil
}

func (s *scanner) scanDecimal() (lexeme, *LexError) {
	i := s.skipDigits(s.start)
	isDotless := true

	if i < len(s.source) && s.source[i] == '.' {
		isDotless = false
		dots := 1
		for i+dots < len(s.source) && s.source[i+dots] == '.' {
			dots++
		}

		switch {
		case dots == 1 || i == s.start:
			// "1.5" or ".5"
			i = s.skipDigits(i + 1)

		case dots == 2:
			// "1..toString()" is the number "1." followed by a property access
			i++

		default:
			return lexeme{}, s.errorAt(i, "The number has too many decimal points")
		}
	}

	if i < len(s.source) && (s.source[i] == 'e' || s.source[i] == 'E') {
		if i+1 < len(s.source) && (s.source[i+1] == 'e' || s.source[i+1] == 'E') {
			return lexeme{}, s.errorAt(i, "The number has several exponent markers")
		}
		i++
		if i < len(s.source) && (s.source[i] == '+' || s.source[i] == '-') {
			i++
		}
		if i >= len(s.source) || !isDecimalDigit(s.source[i]) {
			return lexeme{}, s.errorAt(s.start, "Expected decimal digits after the exponent")
		}
		i = s.skipDigits(i)
	} else if isDotless && i < len(s.source) && s.source[i] == 'n' {
		// BigInt literal
		i++
	}

	s.end = i
	result := s.lexeme()
	result.isDotlessNumber = isDotless
	return result, nil
}

func (s *scanner) skipDigits(i int) int {
	for i < len(s.source) && (isDecimalDigit(s.source[i]) || s.source[i] == '_') {
		i++
	}
	return i
}

// Finds the longest punctuator at the cursor, falling back to a single
// character if nothing in the table matches
func (s *scanner) scanPunctuator() lexeme {
	length := 1
	for n := longestPunctuator; n > 1; n-- {
		if s.start+n > len(s.source) {
			continue
		}
		candidate := s.source[s.start : s.start+n]
		if _, ok := tokenTypes[candidate]; !ok {
			continue
		}

		// Lookahead to disambiguate with "a?.1:b"
		if candidate == "?." && isDecimalDigit(s.peek(2)) {
			continue
		}

		length = n
		break
	}

	s.end = s.start + length
	return s.lexeme()
}

// Identifiers, keywords, and anything else runs until the next whitespace or
// punctuation character
func (s *scanner) scanIdentifier() lexeme {
	i := s.start
loop:
	for i < len(s.source) {
		c := s.source[i]
		switch {
		case opChars[c]:
			break loop

		case c == ' ', c == '\t', c == '\n', c == '\r', c == '\v', c == '\f':
			break loop

		case c >= 0x80:
			r, width := utf8.DecodeRuneInString(s.source[i:])
			if r == '\u2028' || r == '\u2029' || IsWhitespace(r) {
				break loop
			}
			i += width
			continue
		}
		i++
	}

	// Always make progress, even on a byte nothing else wants
	if i == s.start {
		i++
	}

	s.end = i
	return s.lexeme()
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentifierByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '$'
}

// See the "White Space Code Points" table in the ECMAScript standard
func IsWhitespace(codePoint rune) bool {
	switch codePoint {
	case
		'\u0009', // character tabulation
		'\u000B', // line tabulation
		'\u000C', // form feed
		'\u0020', // space
		'\u00A0', // no-break space

		// Unicode "Space_Separator" code points
		'\u1680', // ogham space mark
		'\u2000', // en quad
		'\u2001', // em quad
		'\u2002', // en space
		'\u2003', // em space
		'\u2004', // three-per-em space
		'\u2005', // four-per-em space
		'\u2006', // six-per-em space
		'\u2007', // figure space
		'\u2008', // punctuation space
		'\u2009', // thin space
		'\u200A', // hair space
		'\u202F', // narrow no-break space
		'\u205F', // medium mathematical space
		'\u3000', // ideographic space

		'\uFEFF': // zero width non-breaking space
		return true

	default:
		return false
	}
}
