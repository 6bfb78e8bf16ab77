package lr

import (
	"bytes"
	"fmt"
)

// FnF holds the FIRST and FOLLOW sets of the non-terminals of a grammar.
// Both are computed once, when the FnF is created, and are immutable
// afterwards.
type FnF struct {
	g      *Grammar
	first  map[Symbol]*SymbolSet
	follow map[Symbol]*SymbolSet
}

// Analysis computes FIRST and FOLLOW sets for a grammar.
func Analysis(g *Grammar) *FnF {
	return NewFnF(g)
}

// NewFnF computes FIRST and FOLLOW sets for a grammar.
func NewFnF(g *Grammar) *FnF {
	fnf := &FnF{
		g:      g,
		first:  make(map[Symbol]*SymbolSet, len(g.nonterminals)),
		follow: make(map[Symbol]*SymbolSet, len(g.nonterminals)),
	}
	for _, A := range g.nonterminals {
		fnf.first[A] = NewSymbolSet()
		fnf.follow[A] = NewSymbolSet()
	}
	fnf.computeFirst()
	fnf.computeFollow()
	return fnf
}

// Grammar returns the grammar this analysis is for.
func (fnf *FnF) Grammar() *Grammar {
	return fnf.g
}

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 4.5.3/4.5.4: fixed point iteration over all rules until no set changes.
func (fnf *FnF) computeFirst() {
	pass := 0
	for changed := true; changed; {
		changed = false
		pass++
		for _, r := range fnf.g.rules {
			if fnf.first[r.LHS].AddAll(fnf.firstOfSequence(r.rhs)) {
				changed = true
			}
		}
	}
	tracer().Debugf("FIRST sets stable after %d passes", pass)
}

func (fnf *FnF) computeFollow() {
	fnf.follow[fnf.g.StartSymbol()].Add(EndMarker)
	pass := 0
	for changed := true; changed; {
		changed = false
		pass++
		for _, r := range fnf.g.rules {
			for i, X := range r.rhs {
				if !X.IsNonTerminal() {
					continue
				}
				// every occurrence of X is considered on its own
				trailer := fnf.firstOfSequence(r.rhs[i+1:])
				if fnf.follow[X].AddAll(trailer, Epsilon) {
					changed = true
				}
				if trailer.Contains(Epsilon) {
					if fnf.follow[X].AddAll(fnf.follow[r.LHS]) {
						changed = true
					}
				}
			}
		}
	}
	tracer().Debugf("FOLLOW sets stable after %d passes", pass)
}

// firstOfSequence computes FIRST(X1 … Xn) from the FIRST sets computed so far.
// ε is included iff every Xi can vanish (in particular for an empty sequence).
func (fnf *FnF) firstOfSequence(syms []Symbol) *SymbolSet {
	F := NewSymbolSet()
	for _, A := range syms {
		switch A.Kind {
		case TerminalKind, EndMarkerKind:
			F.Add(A)
			return F
		case EpsilonKind:
			continue
		case NonterminalKind:
			FA := fnf.first[A]
			F.AddAll(FA, Epsilon)
			if !FA.Contains(Epsilon) {
				return F
			}
		}
	}
	F.Add(Epsilon)
	return F
}

// FirstOfSequence returns FIRST(X1 … Xn) for a sequence of grammar symbols.
func (fnf *FnF) FirstOfSequence(syms []Symbol) *SymbolSet {
	return fnf.firstOfSequence(syms)
}

// FirstSet returns a copy of FIRST(A). For a terminal A, FIRST(A) = {A}.
func (fnf *FnF) FirstSet(A Symbol) *SymbolSet {
	switch A.Kind {
	case NonterminalKind:
		if F, ok := fnf.first[A]; ok {
			return F.Copy()
		}
		return NewSymbolSet()
	case TerminalKind, EpsilonKind, EndMarkerKind:
		return NewSymbolSet(A)
	}
	return NewSymbolSet()
}

// FollowSet returns a copy of FOLLOW(A), or an empty set if A is not a
// non-terminal of the grammar.
func (fnf *FnF) FollowSet(A Symbol) *SymbolSet {
	if F, ok := fnf.follow[A]; ok {
		return F.Copy()
	}
	return NewSymbolSet()
}

// First returns FIRST(A) as a sorted slice.
func (fnf *FnF) First(A Symbol) []Symbol {
	return fnf.FirstSet(A).Values()
}

// Follow returns FOLLOW(A) as a sorted slice.
func (fnf *FnF) Follow(A Symbol) []Symbol {
	return fnf.FollowSet(A).Values()
}

// followOf gives read-only access to FOLLOW(A) without copying.
func (fnf *FnF) followOf(A Symbol) *SymbolSet {
	if F, ok := fnf.follow[A]; ok {
		return F
	}
	return NewSymbolSet()
}

// Equals compares two analyses set by set.
func (fnf *FnF) Equals(other *FnF) bool {
	if other == nil || len(fnf.first) != len(other.first) {
		return false
	}
	for A, F := range fnf.first {
		if !F.Equals(other.first[A]) || !fnf.follow[A].Equals(other.follow[A]) {
			return false
		}
	}
	return true
}

func (fnf *FnF) String() string {
	var b bytes.Buffer
	for _, A := range fnf.g.nonterminals {
		b.WriteString(fmt.Sprintf("FIRST(%s) = %v\tFOLLOW(%s) = %v\n",
			A.Display(), fnf.first[A], A.Display(), fnf.follow[A]))
	}
	return b.String()
}
