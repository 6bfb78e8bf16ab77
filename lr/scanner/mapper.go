package scanner

import (
	"github.com/npillmayer/slrkit"
	"github.com/npillmayer/slrkit/lr"
)

// Class terminals used by GrammarMapper for tokens which do not spell a
// terminal of the grammar.
const (
	IdentTerminal  = "id"
	NumberTerminal = "constant"
	StringTerminal = "string_constant"
)

// Mapper translates an input token into a terminal symbol of a grammar.
type Mapper func(slrkit.Token) lr.Symbol

// LexemeMapper takes the lexeme of a token as the name of a terminal.
func LexemeMapper(token slrkit.Token) lr.Symbol {
	return lr.T(token.Lexeme())
}

// GrammarMapper creates a mapper for tokens of the default tokenizer.
// Tokens spelling a terminal of g are mapped onto that terminal. Otherwise
// identifiers are mapped to 'id', numbers to 'constant' and strings and
// characters to 'string_constant'. Anything else is mapped to the terminal
// spelling its lexeme.
func GrammarMapper(g *lr.Grammar) Mapper {
	return func(token slrkit.Token) lr.Symbol {
		if A := lr.T(token.Lexeme()); g.HasSymbol(A) {
			return A
		}
		switch token.TokType() {
		case Ident:
			return lr.T(IdentTerminal)
		case Int, Float:
			return lr.T(NumberTerminal)
		case String, RawString, Char:
			return lr.T(StringTerminal)
		}
		tracer().Debugf("token %q is not a terminal of grammar %s", token.Lexeme(), g.Name)
		return lr.T(token.Lexeme())
	}
}
