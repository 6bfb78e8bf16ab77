package lr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestValidators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "expr", exprGrammar)
	if !IsLeftRecursionFree(g) || !IsDeterministic(g) {
		t.Errorf("expected expression grammar to pass both validators")
	}
	if err := Validate(g); err != nil {
		t.Errorf("expected expression grammar to be valid, got %v", err)
	}
	g = loadGrammar(t, "nondet", "S->a A|a B\nA->x\nB->y")
	if !IsLeftRecursionFree(g) {
		t.Errorf("expected grammar to be free of left recursion")
	}
	if IsDeterministic(g) {
		t.Errorf("expected grammar with S -> a A | a B to be non-deterministic")
	}
	if nd := NondeterministicNonterminals(g); len(nd) != 1 || nd[0] != N("S") {
		t.Errorf("expected S to be reported, have %v", nd)
	}
	g = loadGrammar(t, "leftrec", "A->A b|c")
	if IsLeftRecursionFree(g) {
		t.Errorf("expected grammar with A -> A b to be left recursive")
	}
	err := Validate(g)
	var serr *GrammarShapeError
	if !errors.As(err, &serr) {
		t.Fatalf("expected GrammarShapeError, got %v", err)
	}
	if len(serr.LeftRecursive) != 1 || serr.LeftRecursive[0].Serial != 0 {
		t.Errorf("expected rule 0 to be reported as left recursive, have %v", serr.LeftRecursive)
	}
}

func TestDeterminismIgnoresShorterAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "filled", "S->a b|c b c|d")
	if IsDeterministic(g) {
		t.Errorf("expected b at position 1 in two alternatives to be rejected")
	}
	g = loadGrammar(t, "filled", "S->a b|c d e|f")
	if !IsDeterministic(g) {
		t.Errorf("expected alternatives of different lengths to be accepted")
	}
}
