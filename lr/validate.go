package lr

// IsLeftRecursionFree returns true iff no rule of g is directly left recursive,
// i.e. there is no rule whose first RHS symbol equals its LHS. Indirect left
// recursion is not detected.
func IsLeftRecursionFree(g *Grammar) bool {
	return len(LeftRecursiveRules(g)) == 0
}

// LeftRecursiveRules returns the directly left recursive rules of g.
func LeftRecursiveRules(g *Grammar) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.rhs[0] == r.LHS {
			tracer().Debugf("rule %s is left recursive", r)
			rules = append(rules, r)
		}
	}
	return rules
}

// IsDeterministic checks that the alternatives of every non-terminal differ
// symbol by symbol: for each RHS position k, no two alternatives of a
// non-terminal may carry the same symbol at position k. Alternatives shorter
// than k do not take part in the check for position k.
func IsDeterministic(g *Grammar) bool {
	return len(NondeterministicNonterminals(g)) == 0
}

// NondeterministicNonterminals returns the non-terminals failing the
// determinism check of IsDeterministic.
func NondeterministicNonterminals(g *Grammar) []Symbol {
	var offenders []Symbol
	for _, A := range g.nonterminals {
		alts := g.byLHS[A]
		maxlen := 0
		for _, r := range alts {
			if r.Len() > maxlen {
				maxlen = r.Len()
			}
		}
	positions:
		for k := 0; k < maxlen; k++ {
			seen := make(map[Symbol]bool, len(alts))
			for _, r := range alts {
				if k >= r.Len() {
					continue
				}
				if seen[r.rhs[k]] {
					tracer().Debugf("alternatives of %s share %s at position %d", A.Display(), r.rhs[k], k)
					offenders = append(offenders, A)
					break positions
				}
				seen[r.rhs[k]] = true
			}
		}
	}
	return offenders
}

// Validate runs the grammar validators and returns a *GrammarShapeError if g
// is left recursive or non-deterministic.
func Validate(g *Grammar) error {
	lrec := LeftRecursiveRules(g)
	nondet := NondeterministicNonterminals(g)
	if len(lrec) == 0 && len(nondet) == 0 {
		return nil
	}
	return &GrammarShapeError{LeftRecursive: lrec, Nondeterministic: nondet}
}
