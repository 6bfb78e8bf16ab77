package lr

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprGrammar = `
E->T E'
E'->+ T E'|epsilon
T->F T'
T'->* F T'|epsilon
F->( E )|id
`

func loadGrammar(t *testing.T, name, src string) *Grammar {
	g, err := LoadGrammar(name, strings.NewReader(src))
	if err != nil {
		t.Fatalf("cannot load grammar %s: %v", name, err)
	}
	return g
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.RuleCount() != 6 {
		t.Errorf("expected 6 rules, have %d", g.RuleCount())
	}
	if g.StartSymbol() != N("S") {
		t.Errorf("expected start symbol S, is %v", g.StartSymbol())
	}
	if len(g.Terminals()) != 3 || len(g.Nonterminals()) != 4 {
		t.Errorf("expected 3 terminals and 4 non-terminals, have %v and %v",
			g.Terminals(), g.Nonterminals())
	}
	if !g.Rule(3).IsEpsilon() {
		t.Errorf("expected rule 3 to be an epsilon rule, is %v", g.Rule(3))
	}
	if g.Rule(6) != nil || g.Rule(-1) != nil {
		t.Errorf("expected rules out of range to be nil")
	}
	for i, r := range g.Rules() {
		if r.Serial != i {
			t.Errorf("expected rule %v to have serial %d", r, i)
		}
	}
}

func TestBuilderRejectsMalformedRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected empty RHS to be rejected")
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").T("a").Sym(Epsilon).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected epsilon among other symbols to be rejected")
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").T("a").Sym(EndMarker).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected end marker in RHS to be rejected")
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").T("S").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected symbol of mixed kinds to be rejected")
	}
	if _, err := NewGrammarBuilder("empty").Grammar(); err == nil {
		t.Errorf("expected grammar without rules to be rejected")
	}
}

func TestLoadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "expr", exprGrammar)
	if g.RuleCount() != 8 {
		t.Fatalf("expected 8 rules, have %d", g.RuleCount())
	}
	if g.Rule(0).String() != "[E] ::= [T E']" {
		t.Errorf("unexpected rule 0: %s", g.Rule(0))
	}
	if !g.Rule(2).IsEpsilon() || g.Rule(2).LHS != N("E'") {
		t.Errorf("expected rule 2 to be E' -> ε, is %s", g.Rule(2))
	}
	if r := g.Rule(7); r.LHS != N("F") || r.RHS()[0] != T("id") {
		t.Errorf("expected rule 7 to be F -> id, is %s", r)
	}
	terms := symbolNames(g.Terminals())
	if strings.Join(terms, " ") != "+ * ( ) id" {
		t.Errorf("unexpected terminals %v", terms)
	}
	nonterms := symbolNames(g.Nonterminals())
	if strings.Join(nonterms, " ") != "E T E' F T'" {
		t.Errorf("unexpected non-terminals %v", nonterms)
	}
}

func TestLoadGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	inputs := []struct {
		src  string
		line int
	}{
		{"S->a\nS a b", 2},
		{"s->a", 1},
		{"S->a||b", 1},
		{"S->a epsilon", 1},
		{"\n\nS->", 3},
	}
	for _, input := range inputs {
		_, err := LoadGrammar("broken", strings.NewReader(input.src))
		var lerr *LoadGrammarError
		if !errors.As(err, &lerr) {
			t.Errorf("expected LoadGrammarError for %q, got %v", input.src, err)
			continue
		}
		if lerr.Line != input.line {
			t.Errorf("expected error for %q in line %d, got %d", input.src, input.line, lerr.Line)
		}
	}
}

func TestGrammarQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "expr", exprGrammar)
	if rules := g.FindNonTermRules(N("T'")); len(rules) != 2 {
		t.Errorf("expected 2 rules for T', have %v", rules)
	}
	if rules := g.RulesWithRHS(N("E")); len(rules) != 1 || rules[0].Serial != 6 {
		t.Errorf("expected rule 6 to be the only one with E in RHS, have %v", rules)
	}
	if rules := g.RulesWithRHS(T("+")); len(rules) != 1 || rules[0].Serial != 1 {
		t.Errorf("expected rule 1 to be the only one with + in RHS, have %v", rules)
	}
	if A, ok := g.SymbolByName("id"); !ok || A != T("id") {
		t.Errorf("expected to find terminal id, got %v", A)
	}
	if _, ok := g.SymbolByName("X"); ok {
		t.Errorf("did not expect to find symbol X")
	}
	count := 0
	g.EachSymbol(func(A Symbol) { count++ })
	if count != 10 {
		t.Errorf("expected 10 symbols, have %d", count)
	}
}

func TestSymbols(t *testing.T) {
	if T("x") == N("x") {
		t.Errorf("expected symbols of different kind to differ")
	}
	if T("x") != T("x") {
		t.Errorf("expected terminal symbols with same name to be equal")
	}
	if Epsilon.String() != "ε" || EndMarker.String() != "$" || N("A").String() != "N:A" {
		t.Errorf("unexpected symbol representations")
	}
	S := NewSymbolSet(T("b"), N("A"), T("a"), EndMarker, Epsilon)
	if !S.Add(T("c")) || S.Add(T("a")) {
		t.Errorf("expected Add to report changes")
	}
	vals := S.Values()
	if vals[0] != T("a") || vals[len(vals)-1] != EndMarker {
		t.Errorf("expected sorted symbols, have %v", vals)
	}
	for _, name := range []string{"E", "E'", "T_LIST", "A''"} {
		if !IsNonterminalName(name) {
			t.Errorf("expected %q to be a non-terminal name", name)
		}
	}
	for _, name := range []string{"id", "+", "'", "Ab", "epsilon"} {
		if IsNonterminalName(name) {
			t.Errorf("expected %q not to be a non-terminal name", name)
		}
	}
}

func TestGrammarIsImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "abc", "S->B c\nB->b")
	rules := g.FindNonTermRules(N("B"))
	rules[0] = g.Rule(0)
	if again := g.FindNonTermRules(N("B")); len(again) != 1 || again[0] != g.Rule(1) {
		t.Errorf("expected rules for B to be unaffected by caller, have %v", again)
	}
	all := g.Rules()
	all[1] = all[0]
	if g.Rule(1).LHS != N("B") {
		t.Errorf("expected rule 1 to be unaffected by caller, is %v", g.Rule(1))
	}
	terms := g.Terminals()
	terms[0] = T("x")
	if !g.HasSymbol(T("b")) || g.HasSymbol(T("x")) {
		t.Errorf("expected terminals to be unaffected by caller, have %v", g.Terminals())
	}
	C := NewClosure(g, StartItem(g.Rule(0)))
	if C.Size() != 2 || !C.Contains(StartItem(g.Rule(1))) {
		t.Errorf("expected closure to expand B with B -> b, have %v", C)
	}
}
