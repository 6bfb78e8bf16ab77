package lexmach

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrkit"
	"github.com/npillmayer/slrkit/lr"
	"github.com/npillmayer/slrkit/lr/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'slrkit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("slrkit.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer     *lexmachine.Lexer
	terminals map[slrkit.TokType]string // token IDs to terminal names
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{terminals: make(map[slrkit.TokType]string)}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(escape(lit)), MakeToken(lit, tokenIds[lit]))
		adapter.terminals[slrkit.TokType(tokenIds[lit])] = lit
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
		adapter.terminals[slrkit.TokType(tokenIds[name])] = name
	}
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// escape quotes every character of a literal which is not a letter or digit.
func escape(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Option configures the token classes of a grammar lexer.
type Option func(*config)

type config struct {
	ident, number, str string
}

// IdentTerminal sets the terminal for identifiers (default "id").
func IdentTerminal(name string) Option {
	return func(c *config) { c.ident = name }
}

// NumberTerminal sets the terminal for numbers (default "constant").
func NumberTerminal(name string) Option {
	return func(c *config) { c.number = name }
}

// StringTerminal sets the terminal for double quoted strings (default
// "string_constant").
func StringTerminal(name string) Option {
	return func(c *config) { c.str = name }
}

// Token IDs for class terminals. Terminals of a grammar get IDs from
// firstLiteralID on.
const (
	identID        = scanner.Ident
	numberID       = scanner.Int
	stringID       = scanner.String
	firstLiteralID = 10
)

// ForGrammar creates a lexer for the terminals of a grammar. Every terminal
// except the class terminals for identifiers, numbers and strings is matched
// literally. Literals take precedence over identifiers of equal length, making
// keywords out of terminals like "if". White space is skipped.
func ForGrammar(g *lr.Grammar, opts ...Option) (*LMAdapter, error) {
	c := &config{
		ident:  scanner.IdentTerminal,
		number: scanner.NumberTerminal,
		str:    scanner.StringTerminal,
	}
	for _, opt := range opts {
		opt(c)
	}
	var literals []string
	tokenIds := make(map[string]int)
	for _, A := range g.Terminals() {
		switch A.Name {
		case c.ident, c.number, c.str:
			continue
		}
		tokenIds[A.Name] = firstLiteralID + len(literals)
		literals = append(literals, A.Name)
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), MakeToken(c.ident, identID))
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), MakeToken(c.number, numberID))
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken(c.str, stringID))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	adapter, err := NewLMAdapter(init, literals, nil, tokenIds)
	if err != nil {
		return nil, fmt.Errorf("cannot create lexer for grammar %s: %w", g.Name, err)
	}
	adapter.terminals[identID] = c.ident
	adapter.terminals[numberID] = c.number
	adapter.terminals[stringID] = c.str
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface. Tokens with an ID known to the adapter are delivered as
// scanner.TerminalTokens.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError, terminals: lm.terminals}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner   *lexmachine.Scanner
	Error     func(error)
	terminals map[slrkit.TokType]string
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unconsumed input is reported
// to the error handler and skipped.
func (lms *LMScanner) NextToken() slrkit.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(lms.scanner.TC)
		return scanner.MakeDefaultToken(scanner.EOF, "", slrkit.Span{end, end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	typ := slrkit.TokType(token.Type)
	span := slrkit.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))}
	if name, ok := lms.terminals[typ]; ok {
		return scanner.MakeTerminalToken(typ, string(token.Lexeme), span, lr.T(name))
	}
	return scanner.MakeDefaultToken(typ, string(token.Lexeme), span)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
