/*
Package slr provides an SLR(1)-parser. Clients have to use the tools
of package lr to prepare the necessary parse tables. The SLR parser
utilizes these tables to create a right derivation for a given input,
provided either as a sequence of terminals or through a scanner interface.

This parser is intended for small to moderate grammars, e.g. for configuration
input, small domain-specific languages or for teaching purposes. It is *not*
intended for full-fledged programming languages (there are superb other tools
around for these kinds of usages, usually creating LALR(1)-parsers, which are
able to recognize a super-set of SLR-languages).

The main focus for this implementation is adaptability and on-the-fly usage.
Clients are able to construct the parse tables from a grammar and use the
parser directly, without a code-generation or compile step. If you want, you
can create a grammar from user input and use a parser for it in a couple of
lines of code.

Package slr can only handle SLR(1) grammars. All SLR-grammars are deterministic
(but not vice versa).

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("id").End()  // Var  --> Sign id
	b.LHS("Sign").T("+").End()            // Sign --> +
	b.LHS("Sign").T("-").End()            // Sign --> -
	b.LHS("Sign").Epsilon()               // Sign --> ε
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	lrgen := lr.NewTableGenerator(lr.Analysis(g))
	if err := lrgen.CreateTables(); err != nil { ... }  // cannot use an SLR parser

Finally parse some input:

	p, err := slr.NewParser(lrgen)
	trace, err := p.Parse([]lr.Symbol{lr.T("+"), lr.T("id")})

The trace lists every shift, reduce, goto and accept step the parser
performed. With option WithTreeBuilding the parser will build a derivation
tree as well.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'slrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slrkit.lr")
}
