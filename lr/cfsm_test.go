package lr

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "expr", exprGrammar)
	i := StartItem(g.Rule(6)) // F -> ( E )
	if i.String() != "[F] ::= [• ( E )]" {
		t.Errorf("unexpected start item %s", i)
	}
	if A, ok := i.PeekSymbol(); !ok || A != T("(") {
		t.Errorf("expected ( after dot, have %v", A)
	}
	if _, err := i.Solve(N("E")); !errors.Is(err, ErrCannotSolve) {
		t.Errorf("expected ErrCannotSolve, got %v", err)
	}
	var err error
	for _, A := range g.Rule(6).RHS() {
		if i, err = i.Solve(A); err != nil {
			t.Fatal(err)
		}
	}
	if !i.Final() || i.String() != "[F] ::= [( E ) •]" {
		t.Errorf("expected final item, have %s", i)
	}
	if _, ok := i.PeekSymbol(); ok {
		t.Errorf("expected no symbol after dot of final item")
	}
	if !StartItem(g.Rule(2)).Final() {
		t.Errorf("expected item for epsilon rule to be final")
	}
}

func TestClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "expr", exprGrammar)
	C := NewClosure(g, StartItem(g.Rule(0)))
	if C.Size() != 4 { // E -> .T E', T -> .F T', F -> .( E ), F -> .id
		t.Errorf("expected closure of 4 items, have %v", C)
	}
	again := NewClosure(g, C.Items()...)
	if !C.Equals(again) || C.Key() != again.Key() {
		t.Errorf("expected closure to be idempotent")
	}
	items := C.Items()
	reversed := make([]Item, len(items))
	for k, i := range items {
		reversed[len(items)-1-k] = i
	}
	if !C.Equals(NewClosure(g, reversed...)) {
		t.Errorf("expected closure equality to be independent of item order")
	}
	if C.Equals(NewClosure(g, StartItem(g.Rule(3)))) {
		t.Errorf("did not expect closures of different items to be equal")
	}
	if C.IsFinal() {
		t.Errorf("did not expect closure to be final")
	}
	if !NewClosure(g, StartItem(g.Rule(7)).advance()).IsFinal() {
		t.Errorf("expected closure of F -> id . to be final")
	}
}

func TestCFSMExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "expr", exprGrammar)
	cfsm := quietCFSM(g)
	if cfsm.AugmentedRule().LHS != N("E''") {
		t.Errorf("expected augmented start symbol E'', have %v", cfsm.AugmentedRule().LHS)
	}
	if cfsm.Size() != 16 {
		t.Fatalf("expected 16 states, have %d", cfsm.Size())
	}
	S0 := cfsm.State(0)
	if S0 != cfsm.S0 || S0.Size() != 5 || !S0.Contains(StartItem(cfsm.AugmentedRule())) {
		t.Errorf("unexpected start state %v", S0)
	}
	gotos := []struct {
		from int
		A    Symbol
		to   int
	}{
		{0, N("E"), 1}, {0, N("T"), 2}, {0, N("F"), 3}, {0, T("("), 4}, {0, T("id"), 5},
		{2, N("E'"), 6}, {2, T("+"), 7}, {3, N("T'"), 8}, {3, T("*"), 9},
		{4, N("E"), 10}, {4, N("T"), 2}, {4, N("F"), 3}, {4, T("("), 4}, {4, T("id"), 5},
		{7, N("T"), 11}, {7, N("F"), 3}, {7, T("("), 4}, {7, T("id"), 5},
		{9, N("F"), 12}, {9, T("("), 4}, {9, T("id"), 5},
		{10, T(")"), 13}, {11, N("E'"), 14}, {11, T("+"), 7},
		{12, N("T'"), 15}, {12, T("*"), 9},
	}
	for _, e := range gotos {
		if to, ok := cfsm.Goto(e.from, e.A); !ok || to != e.to {
			t.Errorf("expected goto(I%d, %s) = I%d, have I%d", e.from, e.A.Display(), e.to, to)
		}
	}
	if len(cfsm.Transitions()) != len(gotos) {
		t.Errorf("expected %d transitions, have %d", len(gotos), len(cfsm.Transitions()))
	}
	if len(cfsm.TransitionsFrom(0)) != 5 || len(cfsm.TransitionsFrom(5)) != 0 {
		t.Errorf("unexpected transitions for states 0 and 5")
	}
	if cfsm.AcceptingState() != 1 {
		t.Errorf("expected accepting state 1, have %d", cfsm.AcceptingState())
	}
	for _, s := range cfsm.States() {
		for _, other := range cfsm.States() {
			if s != other && s.Equals(other) {
				t.Errorf("states I%d and I%d are equal", s.ID, other.ID)
			}
		}
	}
	var buf bytes.Buffer
	if err := cfsm.ToGraphViz(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "s010 -> s013 [label=\")\"]") {
		t.Errorf("expected Graphviz output to contain edge from 10 to 13")
	}
}

func TestAugmentedNameIsFresh(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "primes", "S->a S'\nS'->b S''|epsilon\nS''->c")
	if A := augmentedRule(g).LHS; A != N("S'''") {
		t.Errorf("expected augmented start symbol S''', have %v", A)
	}
}

func TestCFSMChainGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	n := 300
	b := NewGrammarBuilder("chain")
	for k := 0; k < n-1; k++ {
		b.LHS(fmt.Sprintf("A%d", k)).T(fmt.Sprintf("x%d", k)).N(fmt.Sprintf("A%d", k+1)).End()
	}
	b.LHS(fmt.Sprintf("A%d", n-1)).T(fmt.Sprintf("x%d", n-1)).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	cfsm := quietCFSM(g)
	if cfsm.Size() != 2*n+1 {
		t.Fatalf("expected %d states, have %d", 2*n+1, cfsm.Size())
	}
	for i, s := range cfsm.States() {
		if s.ID != i {
			t.Errorf("expected state at position %d to have ID %d, has %d", i, i, s.ID)
		}
	}
	if to, ok := cfsm.Goto(0, T("x0")); !ok || to != 2 {
		t.Errorf("expected goto(I0, x0) = I2, have I%d", to)
	}
}

// quietCFSM builds a CFSM with tracing turned down to Info level.
func quietCFSM(g *Grammar) *CFSM {
	level := tracing.Select("slrkit.lr").GetTraceLevel()
	tracing.Select("slrkit.lr").SetTraceLevel(tracing.LevelInfo)
	defer tracing.Select("slrkit.lr").SetTraceLevel(level)
	return buildCFSM(g)
}
