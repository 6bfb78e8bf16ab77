/*
Package scanner defines an interface for scanners to be used with parsers of package lr.

Two default scanner implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) an adapter for lexmachine, living in sub-package `lexmach`.

Parsers work on terminal symbols of a grammar, not on tokens. Scanners set up
for a grammar deliver TerminalTokens, which know their terminal. For other
tokens a Mapper translates tokens into terminals. GrammarMapper maps tokens
spelling a terminal of a grammar onto that terminal, and token categories onto
the class terminals 'id', 'constant' and 'string_constant'.

    scan := scanner.GoTokenizer("input", r, scanner.ForGrammar(g))
    token := scan.NextToken()
    A := scanner.TerminalOf(token, nil)   // e.g., terminal ':=' or 'id'

text/scanner delivers punctuation one rune at a time. A tokenizer set up with
ForGrammar joins runes into multi-rune terminals of the grammar, like ':=' or
'->', taking the longest run which is a prefix of some terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrkit"
	"github.com/npillmayer/slrkit/lr"
)

// tracer traces with key 'slrkit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("slrkit.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() slrkit.Token
	SetErrorHandler(func(error))
}

// TerminalToken is a token which has been classified as a terminal of a
// grammar by the scanner producing it.
type TerminalToken interface {
	slrkit.Token
	Terminal() (lr.Symbol, bool)
}

// TerminalOf returns the terminal a token stands for. Tokens classified by
// their scanner report their own terminal, all others are handed to mapper.
// A nil mapper maps a token to the terminal spelling its lexeme.
func TerminalOf(token slrkit.Token, mapper Mapper) lr.Symbol {
	if tt, ok := token.(TerminalToken); ok {
		if A, ok := tt.Terminal(); ok {
			return A
		}
	}
	if mapper == nil {
		return LexemeMapper(token)
	}
	return mapper(token)
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	Error        func(error)     // error handler
	unifyStrings bool            // convert single chars to strings
	classify     Mapper          // classifies tokens as terminals, if set
	operators    map[string]bool // prefixes of multi-rune operator terminals
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. If the tokenizer has been
// set up for a grammar, it returns tokens implementing TerminalToken.
func (t *DefaultTokenizer) NextToken() slrkit.Token {
	tok := t.Scan()
	if tok == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings && (tok == scanner.RawString || tok == scanner.Char) {
		tok = scanner.String
	}
	start := uint64(t.Position.Offset)
	lexeme := t.TokenText()
	if tok > 0 && len(t.operators) > 0 { // single rune, may start an operator
		lexeme = t.joinOperator(lexeme)
	}
	token := DefaultToken{
		kind:   slrkit.TokType(tok),
		lexeme: lexeme,
		span:   slrkit.Span{start, uint64(t.Pos().Offset)},
	}
	if t.classify != nil && tok != scanner.EOF {
		token.terminal = t.classify(token)
		token.classified = true
	}
	return token
}

// joinOperator appends runes to a punctuation lexeme for as long as the
// result is the prefix of an operator terminal.
func (t *DefaultTokenizer) joinOperator(lexeme string) string {
	for {
		r := t.Peek()
		if r == scanner.EOF || !t.operators[lexeme+string(r)] {
			return lexeme
		}
		lexeme += string(t.Next())
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind       slrkit.TokType
	lexeme     string
	Val        interface{}
	span       slrkit.Span
	terminal   lr.Symbol
	classified bool
}

var _ TerminalToken = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ slrkit.TokType, lexeme string, span slrkit.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// MakeTerminalToken creates a token classified as terminal A.
func MakeTerminalToken(typ slrkit.TokType, lexeme string, span slrkit.Span, A lr.Symbol) DefaultToken {
	token := MakeDefaultToken(typ, lexeme, span)
	token.terminal, token.classified = A, true
	return token
}

// TokType is part of interface slrkit.Token.
func (t DefaultToken) TokType() slrkit.TokType {
	return t.kind
}

// Value is part of interface slrkit.Token.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of interface slrkit.Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface slrkit.Token.
func (t DefaultToken) Span() slrkit.Span {
	return t.span
}

// Terminal is part of interface TerminalToken.
func (t DefaultToken) Terminal() (lr.Symbol, bool) {
	return t.terminal, t.classified
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments. Comments are skipped by default.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

// WithMapper lets the tokenizer classify every token with mapper.
func WithMapper(mapper Mapper) Option {
	return func(t *DefaultTokenizer) {
		t.classify = mapper
	}
}

// ForGrammar sets up the tokenizer for the terminals of g: multi-rune
// operator terminals are scanned as a single token, and tokens are
// classified with GrammarMapper(g).
func ForGrammar(g *lr.Grammar) Option {
	return func(t *DefaultTokenizer) {
		t.classify = GrammarMapper(g)
		t.operators = operatorPrefixes(g)
	}
}

// operatorPrefixes collects the prefixes of all terminals of g which consist
// of two or more punctuation runes.
func operatorPrefixes(g *lr.Grammar) map[string]bool {
	prefixes := make(map[string]bool)
	for _, A := range g.Terminals() {
		if utf8.RuneCountInString(A.Name) < 2 || !isOperator(A.Name) {
			continue
		}
		for i := range A.Name {
			if i > 0 {
				prefixes[A.Name[:i]] = true
			}
		}
		prefixes[A.Name] = true
		tracer().Debugf("operator terminal %q", A.Name)
	}
	return prefixes
}

func isOperator(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			return false
		}
	}
	return true
}
