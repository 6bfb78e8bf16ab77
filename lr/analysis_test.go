package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func checkSet(t *testing.T, what string, A Symbol, S *SymbolSet, expected ...Symbol) {
	t.Helper()
	if !S.Equals(NewSymbolSet(expected...)) {
		t.Errorf("%s(%s) = %v, expected %v", what, A.Display(), S, NewSymbolSet(expected...))
	}
}

func TestFirstFollowExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "expr", exprGrammar)
	fnf := Analysis(g)
	t.Logf("\n%s", fnf)
	for _, A := range []string{"E", "T", "F"} {
		checkSet(t, "FIRST", N(A), fnf.FirstSet(N(A)), T("("), T("id"))
	}
	checkSet(t, "FIRST", N("E'"), fnf.FirstSet(N("E'")), T("+"), Epsilon)
	checkSet(t, "FIRST", N("T'"), fnf.FirstSet(N("T'")), T("*"), Epsilon)
	checkSet(t, "FOLLOW", N("E"), fnf.FollowSet(N("E")), EndMarker, T(")"))
	checkSet(t, "FOLLOW", N("E'"), fnf.FollowSet(N("E'")), EndMarker, T(")"))
	checkSet(t, "FOLLOW", N("T"), fnf.FollowSet(N("T")), T("+"), EndMarker, T(")"))
	checkSet(t, "FOLLOW", N("T'"), fnf.FollowSet(N("T'")), T("+"), EndMarker, T(")"))
	checkSet(t, "FOLLOW", N("F"), fnf.FollowSet(N("F")), T("*"), T("+"), EndMarker, T(")"))
	checkSet(t, "FIRST", T("id"), fnf.FirstSet(T("id")), T("id"))
}

func TestFirstFollowIsFixedPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "expr", exprGrammar)
	if !Analysis(g).Equals(NewFnF(g)) {
		t.Errorf("expected repeated analysis to yield identical sets")
	}
}

func TestFirstOfSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "expr", exprGrammar)
	fnf := Analysis(g)
	seq := []Symbol{N("T'"), N("E'")}
	checkSet(t, "FIRST", N("T'E'"), fnf.FirstOfSequence(seq), T("*"), T("+"), Epsilon)
	seq = []Symbol{N("T'"), T(")")}
	checkSet(t, "FIRST", N("T')"), fnf.FirstOfSequence(seq), T("*"), T(")"))
	checkSet(t, "FIRST", Epsilon, fnf.FirstOfSequence(nil), Epsilon)
}

func TestFirstFollowReferenceGrammars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	g := loadGrammar(t, "G1", `
S->a B D h
B->c C
C->b C|epsilon
D->E F
E->g|epsilon
F->f|epsilon
`)
	fnf := Analysis(g)
	checkSet(t, "FIRST", N("S"), fnf.FirstSet(N("S")), T("a"))
	checkSet(t, "FIRST", N("B"), fnf.FirstSet(N("B")), T("c"))
	checkSet(t, "FIRST", N("C"), fnf.FirstSet(N("C")), T("b"), Epsilon)
	checkSet(t, "FIRST", N("D"), fnf.FirstSet(N("D")), T("g"), T("f"), Epsilon)
	checkSet(t, "FIRST", N("E"), fnf.FirstSet(N("E")), T("g"), Epsilon)
	checkSet(t, "FIRST", N("F"), fnf.FirstSet(N("F")), T("f"), Epsilon)
	checkSet(t, "FOLLOW", N("S"), fnf.FollowSet(N("S")), EndMarker)
	checkSet(t, "FOLLOW", N("B"), fnf.FollowSet(N("B")), T("g"), T("f"), T("h"))
	checkSet(t, "FOLLOW", N("C"), fnf.FollowSet(N("C")), T("g"), T("f"), T("h"))
	checkSet(t, "FOLLOW", N("D"), fnf.FollowSet(N("D")), T("h"))
	checkSet(t, "FOLLOW", N("E"), fnf.FollowSet(N("E")), T("f"), T("h"))
	checkSet(t, "FOLLOW", N("F"), fnf.FollowSet(N("F")), T("h"))
	//
	g = loadGrammar(t, "G2", `
S->A
A->a B A'
A'->d A'|epsilon
B->b
C->g
`)
	fnf = Analysis(g)
	checkSet(t, "FIRST", N("A'"), fnf.FirstSet(N("A'")), T("d"), Epsilon)
	checkSet(t, "FIRST", N("C"), fnf.FirstSet(N("C")), T("g"))
	checkSet(t, "FOLLOW", N("A"), fnf.FollowSet(N("A")), EndMarker)
	checkSet(t, "FOLLOW", N("A'"), fnf.FollowSet(N("A'")), EndMarker)
	checkSet(t, "FOLLOW", N("B"), fnf.FollowSet(N("B")), T("d"), EndMarker)
	checkSet(t, "FOLLOW", N("C"), fnf.FollowSet(N("C")))
	//
	g = loadGrammar(t, "G3", `
S->( L )|a
L->S L'
L'->, S L'|epsilon
`)
	fnf = Analysis(g)
	checkSet(t, "FIRST", N("S"), fnf.FirstSet(N("S")), T("("), T("a"))
	checkSet(t, "FIRST", N("L"), fnf.FirstSet(N("L")), T("("), T("a"))
	checkSet(t, "FIRST", N("L'"), fnf.FirstSet(N("L'")), T(","), Epsilon)
	checkSet(t, "FOLLOW", N("S"), fnf.FollowSet(N("S")), EndMarker, T(","), T(")"))
	checkSet(t, "FOLLOW", N("L"), fnf.FollowSet(N("L")), T(")"))
	checkSet(t, "FOLLOW", N("L'"), fnf.FollowSet(N("L'")), T(")"))
	//
	g = loadGrammar(t, "G4", "S->A a A b|B b B a\nA->epsilon\nB->epsilon")
	fnf = Analysis(g)
	checkSet(t, "FIRST", N("S"), fnf.FirstSet(N("S")), T("a"), T("b"))
	checkSet(t, "FIRST", N("A"), fnf.FirstSet(N("A")), Epsilon)
	checkSet(t, "FOLLOW", N("A"), fnf.FollowSet(N("A")), T("a"), T("b"))
	checkSet(t, "FOLLOW", N("B"), fnf.FollowSet(N("B")), T("a"), T("b"))
}
