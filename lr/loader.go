package lr

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadGrammar reads a grammar from a line oriented source. Each non-empty line
// holds the rules for one non-terminal:
//
//    E->T E'
//    E'->+ T E'|epsilon
//    F->( E )|id
//
// Alternatives are separated by '|', symbols by blanks. Names consisting of
// upper case letters, underscores and primes denote non-terminals, the word
// "epsilon" denotes ε and everything else is a terminal.
func LoadGrammar(name string, r io.Reader) (*Grammar, error) {
	b := NewGrammarBuilder(name)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fail := func(reason string) error {
			return &LoadGrammarError{Source: name, Line: lineno, Text: line, Reason: reason}
		}
		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, fail("missing '->'")
		}
		lhs := strings.TrimSpace(parts[0])
		if !IsNonterminalName(lhs) {
			return nil, fail(fmt.Sprintf("LHS %q is not a non-terminal", lhs))
		}
		for _, alt := range strings.Split(parts[1], "|") {
			names := strings.Fields(alt)
			if len(names) == 0 {
				return nil, fail("empty alternative")
			}
			rb := b.LHS(lhs)
			for _, nm := range names {
				switch {
				case nm == "epsilon":
					if len(names) > 1 {
						return nil, fail("epsilon must be the only symbol of an alternative")
					}
					rb.Sym(Epsilon)
				case IsNonterminalName(nm):
					rb.N(nm)
				default:
					rb.T(nm)
				}
			}
			rb.End()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", name, err)
	}
	if lineno == 0 {
		return nil, &LoadGrammarError{Source: name, Reason: "no rules"}
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, &LoadGrammarError{Source: name, Line: lineno, Reason: err.Error()}
	}
	return g, nil
}
