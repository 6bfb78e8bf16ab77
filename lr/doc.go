/*
Package lr implements prerequisites for SLR(1) parsing: grammars, grammar
analysis, the characteristic finite state machine (CFSM) and parsing tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain epsilon-productions. The LHS of the first rule is the start symbol.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()     // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b").End()            // B  ->  b
    b.LHS("B").Epsilon()               // B  ->  ε
    b.LHS("D").T("d").End()            // D  ->  d
    b.LHS("D").Epsilon()               // D  ->  ε
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [A a]
   1: [A] ::= [B D]
   2: [B] ::= [b]
   3: [B] ::= [ε]
   4: [D] ::= [d]
   5: [D] ::= [ε]

Alternatively, grammars may be loaded from text, one rule per line and
alternatives separated by '|':

    S->A a
    A->B D
    B->b|epsilon
    D->d|epsilon

Names consisting of upper case letters, underscores and primes denote
non-terminals; everything else is a terminal.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an FnF object, which computes FIRST and
FOLLOW sets for the grammar.

Although FIRST and FOLLOW-sets are mainly intended to be used for internal
purposes of constructing the parser tables, methods for getting FIRST(N)
and FOLLOW(N) of non-terminals are defined to be public.

    fnf := lr.Analysis(g)  // analyser for grammar above
    for _, N := range g.Nonterminals() {
        fmt.Printf("FIRST(%s) = %v\n", N.Name, fnf.FirstSet(N))
    }

    // Output:
    FIRST(S) = {t:a, t:b, t:d}
    FIRST(A) = {t:b, t:d, ε}
    FIRST(B) = {t:b, ε}
    FIRST(D) = {t:d, ε}

Validators IsLeftRecursionFree and IsDeterministic check a grammar for
direct left recursion and for alternatives sharing a symbol at the same
position.

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First a characteristic finite state machine (CFSM) is built from the
grammar. The CFSM will then be transformed into an SLR(1) parsing table,
holding shift, reduce, goto and accept actions.
The CFSM will not be thrown away, but is made available to the client.
This is intended for debugging purposes, but may be useful for error
recovery, too. It can be exported to Graphviz's Dot-format.

Example:

    lrgen := lr.NewTableGenerator(fnf)  // fnf is an FnF, see above
    if err := lrgen.CreateTables(); err != nil {
        ...                             // grammar is not SLR(1)
    }
    table := lrgen.Table()

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'slrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slrkit.lr")
}
