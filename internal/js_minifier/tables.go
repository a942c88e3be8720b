package js_minifier

// The minifier never builds a syntax tree. Instead it runs a small state
// machine over the token stream that knows just enough about the grammar to
// decide where whitespace is significant. Everything the machine knows lives in
// the tables below. They are filled in once by "init" and never modified after
// that, so they can be read from any number of goroutines.

type TokenType uint8

// If you add a new token type, remember to add it to "tokenTypeToString" too
const (
	TNone TokenType = iota

	TUnaryOp   // ! ~ delete new typeof void ...
	TIncrOp    // ++ --
	TBinaryOp  // binary and assignment operators, except + - and .
	TAddOp     // + - (may be unary or binary)
	TDot       // . ?.
	THook      // ?
	TColon     // :
	TComma     // ,
	TSemicolon // ;
	TBraceOpen
	TBraceClose
	TParenOpen  // ( [
	TParenClose // ) ]
	TArrow      // =>
	TReturn     // break continue return throw
	TIf         // catch for if switch while with
	TDo         // case do else finally try
	TVar        // const let var
	TYield
	TFunction
	TClass
	TLiteral // identifiers, literals, unknown keywords and anything else
	TSpecial // lexemes that mean something unusual in the current state

	tokenTypeCount
)

var tokenTypeToString = [tokenTypeCount]string{
	TNone:       "none",
	TUnaryOp:    "unary-operator",
	TIncrOp:     "increment-operator",
	TBinaryOp:   "binary-operator",
	TAddOp:      "add-operator",
	TDot:        "dot",
	THook:       "hook",
	TColon:      "colon",
	TComma:      "comma",
	TSemicolon:  "semicolon",
	TBraceOpen:  "brace-open",
	TBraceClose: "brace-close",
	TParenOpen:  "paren-open",
	TParenClose: "paren-close",
	TArrow:      "arrow",
	TReturn:     "return",
	TIf:         "if",
	TDo:         "do",
	TVar:        "var",
	TYield:      "yield",
	TFunction:   "function",
	TClass:      "class",
	TLiteral:    "literal",
	TSpecial:    "special",
}

func (t TokenType) String() string {
	if t < tokenTypeCount {
		return tokenTypeToString[t]
	}
	return "unknown"
}

// Lexemes with a fixed type. Anything not in here is a literal.
var tokenTypes = map[string]TokenType{
	"!":      TUnaryOp,
	"~":      TUnaryOp,
	"...":    TUnaryOp,
	"delete": TUnaryOp,
	"new":    TUnaryOp,
	"typeof": TUnaryOp,
	"void":   TUnaryOp,

	"++": TIncrOp,
	"--": TIncrOp,

	"!=":         TBinaryOp,
	"!==":        TBinaryOp,
	"%":          TBinaryOp,
	"%=":         TBinaryOp,
	"&":          TBinaryOp,
	"&&":         TBinaryOp,
	"&&=":        TBinaryOp,
	"&=":         TBinaryOp,
	"*":          TBinaryOp,
	"**":         TBinaryOp,
	"**=":        TBinaryOp,
	"*=":         TBinaryOp,
	"+=":         TBinaryOp,
	"-=":         TBinaryOp,
	"/":          TBinaryOp,
	"/=":         TBinaryOp,
	"<":          TBinaryOp,
	"<<":         TBinaryOp,
	"<<=":        TBinaryOp,
	"<=":         TBinaryOp,
	"=":          TBinaryOp,
	"==":         TBinaryOp,
	"===":        TBinaryOp,
	">":          TBinaryOp,
	">=":         TBinaryOp,
	">>":         TBinaryOp,
	">>=":        TBinaryOp,
	">>>":        TBinaryOp,
	">>>=":       TBinaryOp,
	"??":         TBinaryOp,
	"??=":        TBinaryOp,
	"^":          TBinaryOp,
	"^=":         TBinaryOp,
	"|":          TBinaryOp,
	"|=":         TBinaryOp,
	"||":         TBinaryOp,
	"||=":        TBinaryOp,
	"in":         TBinaryOp,
	"instanceof": TBinaryOp,

	"+": TAddOp,
	"-": TAddOp,

	".":  TDot,
	"?.": TDot,

	"?": THook,
	":": TColon,
	",": TComma,
	";": TSemicolon,
	"{": TBraceOpen,
	"}": TBraceClose,
	"(": TParenOpen,
	"[": TParenOpen,
	")": TParenClose,
	"]": TParenClose,

	"=>": TArrow,

	"break":    TReturn,
	"continue": TReturn,
	"return":   TReturn,
	"throw":    TReturn,

	"catch":  TIf,
	"for":    TIf,
	"if":     TIf,
	"switch": TIf,
	"while":  TIf,
	"with":   TIf,

	"case":    TDo,
	"do":      TDo,
	"else":    TDo,
	"finally": TDo,
	"try":     TDo,

	"const": TVar,
	"let":   TVar,
	"var":   TVar,

	"yield":    TYield,
	"function": TFunction,
	"class":    TClass,
}

// Characters that can never be part of an identifier, keyword or number. Two
// adjacent tokens only need a space between them if neither side is one of
// these.
var opChars = [256]bool{
	'!': true, '"': true, '%': true, '&': true, '\'': true, '(': true,
	')': true, '*': true, '+': true, ',': true, '-': true, '.': true,
	'/': true, ':': true, ';': true, '<': true, '=': true, '>': true,
	'?': true, '[': true, ']': true, '^': true, '`': true, '{': true,
	'|': true, '}': true, '~': true,
}

// This is the length of ">>>=", the longest punctuator in "tokenTypes"
const longestPunctuator = 4

type StateKind uint8

// If you add a new state, remember to add it to "stateKindToString" too
const (
	SStatement StateKind = iota
	SCondition
	SFunction
	SGeneratorFunction
	SPropertyAssignment
	SExpression
	SExpressionNoNewline
	SExpressionOperator
	SExpressionDot
	SExpressionEnd
	SExpressionArrowFunc
	SExpressionTernary
	SExpressionTernaryOperator
	SExpressionTernaryDot
	SExpressionTernaryArrowFunc
	SParenExpression
	SParenExpressionOperator
	SParenExpressionDot
	SParenExpressionArrowFunc
	SPropertyExpression
	SPropertyExpressionOperator
	SPropertyExpressionDot
	SPropertyExpressionArrowFunc
	SClass
	SImportExport
	SAsync
	STemplateStringHead
	STemplateStringTail

	stateKindCount
)

var stateKindToString = [stateKindCount]string{
	SStatement:                   "statement",
	SCondition:                   "condition",
	SFunction:                    "function",
	SGeneratorFunction:           "generator-function",
	SPropertyAssignment:          "property-assignment",
	SExpression:                  "expression",
	SExpressionNoNewline:         "expression-no-newline",
	SExpressionOperator:          "expression-operator",
	SExpressionDot:               "expression-dot",
	SExpressionEnd:               "expression-end",
	SExpressionArrowFunc:         "expression-arrow-func",
	SExpressionTernary:           "expression-ternary",
	SExpressionTernaryOperator:   "expression-ternary-operator",
	SExpressionTernaryDot:        "expression-ternary-dot",
	SExpressionTernaryArrowFunc:  "expression-ternary-arrow-func",
	SParenExpression:             "paren-expression",
	SParenExpressionOperator:     "paren-expression-operator",
	SParenExpressionDot:          "paren-expression-dot",
	SParenExpressionArrowFunc:    "paren-expression-arrow-func",
	SPropertyExpression:          "property-expression",
	SPropertyExpressionOperator:  "property-expression-operator",
	SPropertyExpressionDot:       "property-expression-dot",
	SPropertyExpressionArrowFunc: "property-expression-arrow-func",
	SClass:                       "class",
	SImportExport:                "import-export",
	SAsync:                       "async",
	STemplateStringHead:          "template-string-head",
	STemplateStringTail:          "template-string-tail",
}

func (k StateKind) String() string {
	if k < stateKindCount {
		return stateKindToString[k]
	}
	return "unknown"
}

// A state is a syntactic context plus whether that context is lexically
// inside the body of a generator function. Only the generator flag decides how
// "yield" is classified, but it has to survive every transition, so each
// context exists twice.
type State struct {
	Kind        StateKind
	InGenerator bool
}

func (s State) String() string {
	if s.InGenerator {
		return s.Kind.String() + "*"
	}
	return s.Kind.String()
}

// Function headers are never marked as being inside a generator because the
// body they introduce decides that for itself.
func (k StateKind) hasGeneratorMirror() bool {
	return k != SFunction && k != SGeneratorFunction
}

func (k StateKind) in(inGenerator bool) State {
	return State{Kind: k, InGenerator: inGenerator && k.hasGeneratorMirror()}
}

type Action struct {
	Goto    StateKind
	Push    StateKind
	HasGoto bool
	HasPush bool
	Pop     bool
}

func goTo(target StateKind) Action {
	return Action{Goto: target, HasGoto: true}
}

func push(returnTo StateKind) Action {
	return Action{Push: returnTo, HasPush: true}
}

func pushGoTo(returnTo StateKind, target StateKind) Action {
	return Action{Push: returnTo, HasPush: true, Goto: target, HasGoto: true}
}

var pop = Action{Pop: true}

// This is an action that matches but does nothing
var stay = Action{}

type transition struct {
	Action Action

	// The resolved targets, indexed by whether the current state is inside a
	// generator function
	gotos  [2]State
	pushes [2]State
}

type stateTable struct {
	byType   [tokenTypeCount]*transition
	specials map[string]*transition
}

// Indexed by [InGenerator][Kind]. The second half is generated from the first.
var model [2][stateKindCount]stateTable

// The "[no LineTerminator here]" states. If a newline separated the previous
// token from one of these token types, that newline has to survive.
var asiTable [stateKindCount][tokenTypeCount]bool

// Class bodies are scanned as object literals, but unlike object literals
// their members may be separated by nothing but a newline. A newline before
// one of these token types is kept without resetting the state.
var keepNewlineTable [stateKindCount][tokenTypeCount]bool

// In these states a "/" is the division operator. Everywhere else it starts a
// regular expression literal.
var divStates [stateKindCount]bool

type baseEntries map[TokenType]Action

// "whenOperand" builds the entries shared by every state that expects the
// start of an expression. "operator" is the state that follows a complete
// operand, and also the state that nested brackets return to.
func whenOperand(operator StateKind, extra baseEntries) baseEntries {
	entries := baseEntries{
		TBraceOpen: pushGoTo(operator, SPropertyAssignment),
		TParenOpen: pushGoTo(operator, SParenExpression),
		TFunction:  pushGoTo(operator, SFunction),
		TClass:     pushGoTo(operator, SClass),
		TLiteral:   goTo(operator),
	}
	for tokenType, action := range extra {
		entries[tokenType] = action
	}
	return entries
}

// "whenDot" builds the entries for the state after a "." where every keyword
// is just a property name.
func whenDot(operator StateKind) baseEntries {
	entries := baseEntries{
		TParenOpen: pushGoTo(operator, SParenExpression),
	}
	for _, tokenType := range []TokenType{
		TUnaryOp, TBinaryOp, TReturn, TIf, TDo, TVar, TFunction, TClass, TLiteral,
	} {
		entries[tokenType] = goTo(operator)
	}
	return entries
}

// The state after a complete operand at the start of an expression
var expressionOperator = baseEntries{
	TBinaryOp:   goTo(SExpression),
	TAddOp:      goTo(SExpression),
	TDot:        goTo(SExpressionDot),
	THook:       pushGoTo(SExpression, SExpressionTernary),
	TColon:      goTo(SStatement),
	TComma:      goTo(SExpression),
	TSemicolon:  goTo(SStatement),
	TArrow:      goTo(SExpressionArrowFunc),
	TParenOpen:  pushGoTo(SExpressionOperator, SParenExpression),
	TBraceClose: pop,
	TFunction:   pushGoTo(SExpressionOperator, SFunction),
}

// "extend" returns a copy of "base" with the entries of "extra" added
func extend(base baseEntries, extra baseEntries) baseEntries {
	entries := baseEntries{}
	for tokenType, action := range base {
		entries[tokenType] = action
	}
	for tokenType, action := range extra {
		entries[tokenType] = action
	}
	return entries
}

var baseModel = map[StateKind]baseEntries{
	SStatement: {
		TUnaryOp:    goTo(SExpression),
		TIncrOp:     goTo(SExpression),
		TAddOp:      goTo(SExpression),
		TBraceOpen:  push(SStatement),
		TBraceClose: pop,
		TParenOpen:  pushGoTo(SExpressionOperator, SParenExpression),
		TReturn:     goTo(SExpressionNoNewline),
		TIf:         goTo(SCondition),
		TVar:        goTo(SExpression),
		TFunction:   pushGoTo(SStatement, SFunction),
		TClass:      pushGoTo(SStatement, SClass),
		TLiteral:    goTo(SExpressionOperator),
	},

	SCondition: {
		TParenOpen: pushGoTo(SStatement, SParenExpression),
		TBraceOpen: pushGoTo(SStatement, SStatement),
	},

	SFunction: {
		TBraceOpen: goTo(SStatement),
		TParenOpen: pushGoTo(SFunction, SParenExpression),
	},

	SGeneratorFunction: {
		TBraceOpen: goTo(SStatement),
		TParenOpen: pushGoTo(SGeneratorFunction, SParenExpression),
	},

	// Keywords are property names here, so they deliberately have no entry
	SPropertyAssignment: {
		TColon:      goTo(SPropertyExpression),
		TBraceOpen:  pushGoTo(SPropertyAssignment, SStatement),
		TBraceClose: pop,
		TParenOpen:  pushGoTo(SPropertyAssignment, SParenExpression),
	},

	SExpression: whenOperand(SExpressionOperator, baseEntries{
		TSemicolon:  goTo(SStatement),
		TBraceClose: pop,
		TReturn:     goTo(SExpressionNoNewline),
	}),

	SExpressionNoNewline: whenOperand(SExpressionOperator, baseEntries{
		TUnaryOp:    goTo(SExpression),
		TIncrOp:     goTo(SExpression),
		TAddOp:      goTo(SExpression),
		TSemicolon:  goTo(SStatement),
		TBraceClose: pop,
		TReturn:     goTo(SExpressionNoNewline),
	}),

	SExpressionOperator: expressionOperator,

	SExpressionDot: whenDot(SExpressionOperator),

	SExpressionEnd: {
		TSemicolon:  goTo(SStatement),
		TComma:      goTo(SExpression),
		TBraceClose: pop,
	},

	SExpressionArrowFunc: whenOperand(SExpressionOperator, baseEntries{
		TUnaryOp:    goTo(SExpression),
		TIncrOp:     goTo(SExpression),
		TAddOp:      goTo(SExpression),
		TSemicolon:  goTo(SStatement),
		TBraceOpen:  pushGoTo(SExpressionEnd, SStatement),
		TBraceClose: pop,
	}),

	SExpressionTernary: whenOperand(SExpressionTernaryOperator, nil),

	SExpressionTernaryOperator: {
		TBinaryOp:  goTo(SExpressionTernary),
		TAddOp:     goTo(SExpressionTernary),
		TDot:       goTo(SExpressionTernaryDot),
		THook:      pushGoTo(SExpressionTernary, SExpressionTernary),
		TColon:     pop,
		TComma:     goTo(SExpressionTernary),
		TArrow:     goTo(SExpressionTernaryArrowFunc),
		TParenOpen: pushGoTo(SExpressionTernaryOperator, SParenExpression),
		TFunction:  pushGoTo(SExpressionTernaryOperator, SFunction),
	},

	SExpressionTernaryDot: whenDot(SExpressionTernaryOperator),

	SExpressionTernaryArrowFunc: whenOperand(SExpressionTernaryOperator, baseEntries{
		TBraceOpen: pushGoTo(SExpressionTernaryOperator, SStatement),
	}),

	SParenExpression: whenOperand(SParenExpressionOperator, baseEntries{
		TParenClose: pop,
	}),

	SParenExpressionOperator: {
		TBinaryOp:   goTo(SParenExpression),
		TAddOp:      goTo(SParenExpression),
		TDot:        goTo(SParenExpressionDot),
		THook:       pushGoTo(SParenExpression, SExpressionTernary),
		TColon:      goTo(SParenExpression),
		TComma:      goTo(SParenExpression),
		TSemicolon:  goTo(SParenExpression),
		TArrow:      goTo(SParenExpressionArrowFunc),
		TParenOpen:  pushGoTo(SParenExpressionOperator, SParenExpression),
		TParenClose: pop,
		TFunction:   pushGoTo(SParenExpressionOperator, SFunction),
	},

	SParenExpressionDot: whenDot(SParenExpressionOperator),

	SParenExpressionArrowFunc: whenOperand(SParenExpressionOperator, baseEntries{
		TBraceOpen:  pushGoTo(SParenExpressionOperator, SStatement),
		TParenClose: pop,
	}),

	SPropertyExpression: whenOperand(SPropertyExpressionOperator, baseEntries{
		TBraceClose: pop,
	}),

	SPropertyExpressionOperator: {
		TBinaryOp:   goTo(SPropertyExpression),
		TAddOp:      goTo(SPropertyExpression),
		TDot:        goTo(SPropertyExpressionDot),
		THook:       pushGoTo(SPropertyExpression, SExpressionTernary),
		TComma:      goTo(SPropertyAssignment),
		TSemicolon:  goTo(SPropertyAssignment),
		TArrow:      goTo(SPropertyExpressionArrowFunc),
		TParenOpen:  pushGoTo(SPropertyExpressionOperator, SParenExpression),
		TBraceClose: pop,
		TFunction:   pushGoTo(SPropertyExpressionOperator, SFunction),

		// Only a class body can have another member directly after a value
		TUnaryOp: goTo(SPropertyAssignment),
		TReturn:  goTo(SPropertyAssignment),
		TIf:      goTo(SPropertyAssignment),
		TDo:      goTo(SPropertyAssignment),
		TVar:     goTo(SPropertyAssignment),
		TLiteral: goTo(SPropertyAssignment),
	},

	SPropertyExpressionDot: whenDot(SPropertyExpressionOperator),

	SPropertyExpressionArrowFunc: whenOperand(SPropertyExpressionOperator, baseEntries{
		TBraceOpen:  pushGoTo(SPropertyExpressionOperator, SStatement),
		TBraceClose: pop,
	}),

	// The class body is scanned like an object literal. Its closing "}" pops
	// the state that was pushed before the "class" keyword.
	SClass: {
		TBraceOpen: goTo(SPropertyAssignment),
		TParenOpen: pushGoTo(SClass, SParenExpression),
	},

	SImportExport: {
		TSemicolon: goTo(SStatement),
		TVar:       goTo(SExpression),
		TFunction:  pushGoTo(SStatement, SFunction),
		TClass:     pushGoTo(SStatement, SClass),
		TBraceOpen: pushGoTo(SExpressionOperator, SPropertyAssignment),
		TParenOpen: pushGoTo(SExpressionOperator, SParenExpression),
		TDot:       goTo(SExpressionDot),
		TLiteral:   goTo(SExpressionOperator),
	},

	// An "async" that starts a statement is either an identifier or the start
	// of an async function declaration. A declaration is a statement, so the
	// "/" after its body starts a regular expression.
	SAsync: extend(expressionOperator, baseEntries{
		TFunction: pushGoTo(SStatement, SFunction),
	}),

	// The expression inside "${" starts out like a parenthesized one. Its
	// closing "}" never gets here because the scanner resumes the template.
	STemplateStringHead: whenOperand(SParenExpressionOperator, nil),

	STemplateStringTail: {},
}

var baseSpecials = map[StateKind]map[string]Action{
	SStatement: {
		"import": goTo(SImportExport),
		"export": goTo(SImportExport),
		"async":  goTo(SAsync),
	},
	SFunction: {
		"*": goTo(SGeneratorFunction),
	},
	// The "of" in "for (x of y)" is followed by an expression
	SParenExpressionOperator: {
		"of": goTo(SParenExpression),
	},
	SPropertyAssignment: {
		"*": pushGoTo(SPropertyAssignment, SGeneratorFunction),
		"=": goTo(SPropertyExpression),
	},
	SImportExport: {
		"default": goTo(SExpression),
		"async":   goTo(SAsync),
		"*":       stay,
		"as":      stay,
		"from":    stay,
	},
}

var expressionOperatorASI = []TokenType{
	TUnaryOp, TIncrOp, TBraceOpen, TReturn, TIf, TDo, TVar, TFunction, TClass,
	TLiteral,
}

var baseASI = map[StateKind][]TokenType{
	SExpressionNoNewline: {
		TUnaryOp, TIncrOp, TAddOp, TBraceOpen, TParenOpen, TReturn, TIf, TDo,
		TVar, TFunction, TClass, TLiteral,
	},
	SExpressionOperator: expressionOperatorASI,
	SAsync:              expressionOperatorASI,
	SExpressionEnd: {
		TUnaryOp, TIncrOp, TAddOp, TBraceOpen, TParenOpen, TReturn, TIf, TDo,
		TVar, TFunction, TClass, TLiteral,
	},
}

var baseKeepNewline = map[StateKind][]TokenType{
	SPropertyAssignment: {
		TUnaryOp, TBinaryOp, TParenOpen, TReturn, TIf, TDo, TVar, TFunction,
		TClass, TLiteral, TSpecial,
	},
	SPropertyExpressionOperator: {
		TUnaryOp, TReturn, TIf, TDo, TVar, TLiteral,
	},
}

var baseDivStates = []StateKind{
	SExpressionOperator,
	SAsync,
	SExpressionTernaryOperator,
	SParenExpressionOperator,
	SPropertyExpressionOperator,
}

func init() {
	for kind, entries := range baseModel {
		for tokenType, action := range entries {
			model[0][kind].byType[tokenType] = newTransition(action)
		}
		for lexeme, action := range baseSpecials[kind] {
			if model[0][kind].specials == nil {
				model[0][kind].specials = make(map[string]*transition)
			}
			model[0][kind].specials[lexeme] = newTransition(action)
		}
	}

	// Generate the generator-mirrored half. It shares the same entries, and
	// only the resolved targets differ.
	for kind := StateKind(0); kind < stateKindCount; kind++ {
		if kind.hasGeneratorMirror() {
			model[1][kind] = model[0][kind]
		}
	}

	// A "{" after a method name opens a method body. That body is not inside
	// a generator even if the object literal is, so this is the one entry that
	// is not mirrored.
	methodBody := *model[0][SPropertyAssignment].byType[TBraceOpen]
	methodBody.gotos[1] = SStatement.in(false)
	model[1][SPropertyAssignment].byType[TBraceOpen] = &methodBody

	// The body of a generator function is where the generator flag comes from
	generatorBody := model[0][SGeneratorFunction].byType[TBraceOpen]
	generatorBody.gotos = [2]State{SStatement.in(true), SStatement.in(true)}

	for kind, tokenTypes := range baseASI {
		for _, tokenType := range tokenTypes {
			asiTable[kind][tokenType] = true
		}
	}

	for kind, tokenTypes := range baseKeepNewline {
		for _, tokenType := range tokenTypes {
			keepNewlineTable[kind][tokenType] = true
		}
	}

	for _, kind := range baseDivStates {
		divStates[kind] = true
	}
}

func newTransition(action Action) *transition {
	t := &transition{Action: action}
	if action.HasGoto {
		t.gotos = [2]State{action.Goto.in(false), action.Goto.in(true)}
	}
	if action.HasPush {
		t.pushes = [2]State{action.Push.in(false), action.Push.in(true)}
	}
	return t
}

func generatorIndex(inGenerator bool) int {
	if inGenerator {
		return 1
	}
	return 0
}

func (t *transition) gotoState(inGenerator bool) State {
	return t.gotos[generatorIndex(inGenerator)]
}

func (t *transition) pushState(inGenerator bool) State {
	return t.pushes[generatorIndex(inGenerator)]
}

func (s State) table() *stateTable {
	if s.InGenerator {
		return &model[1][s.Kind]
	}
	return &model[0][s.Kind]
}

// Classify returns the token type of a lexeme in the given state
func Classify(state State, lexeme string) TokenType {
	if _, ok := state.table().specials[lexeme]; ok {
		return TSpecial
	}
	tokenType, ok := tokenTypes[lexeme]
	if !ok {
		return TLiteral
	}
	if tokenType == TYield {
		// "yield" is only a keyword inside a generator function
		if state.InGenerator {
			return TReturn
		}
		return TLiteral
	}
	return tokenType
}

func (s State) lookup(tokenType TokenType, lexeme string) *transition {
	table := s.table()
	if tokenType == TSpecial {
		return table.specials[lexeme]
	}
	return table.byType[tokenType]
}

// IsASI returns whether a newline before a token of this type must be kept
func IsASI(state State, tokenType TokenType) bool {
	return asiTable[state.Kind][tokenType]
}

// KeepsNewline returns whether a newline before a token of this type is kept
// without the state being reset
func KeepsNewline(state State, tokenType TokenType) bool {
	return keepNewlineTable[state.Kind][tokenType]
}

// IsDivision returns whether a "/" in this state is the division operator
func IsDivision(state State) bool {
	return divStates[state.Kind]
}

// Transition returns the action for a token, or false if the state has none
func Transition(state State, tokenType TokenType, lexeme string) (Action, bool) {
	if t := state.lookup(tokenType, lexeme); t != nil {
		return t.Action, true
	}
	return Action{}, false
}
