package lr

import (
	"bytes"
	"errors"
	"fmt"
)

// --- Rules -----------------------------------------------------------------

// Rule is a production rule of a grammar
//
//    LHS ➞ X1 … Xn
//
// Rules are immutable. Serial is the position of the rule within the grammar's
// list of rules; parsing tables refer to rules by serial. The augmented start
// rule created for table construction has serial -1.
type Rule struct {
	Serial int
	LHS    Symbol
	rhs    []Symbol
}

// RHS returns a copy of the right hand side of the rule.
func (r *Rule) RHS() []Symbol {
	rhs := make([]Symbol, len(r.rhs))
	copy(rhs, r.rhs)
	return rhs
}

// Len returns the number of RHS symbols. An epsilon rule has length 1.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for a rule of the form A ➞ ε.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsEpsilon()
}

// Equals compares two rules by content (LHS and RHS), ignoring their serials.
func (r *Rule) Equals(other *Rule) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil || r.LHS != other.LHS || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, A := range r.rhs {
		if A != other.rhs[i] {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	b.WriteString(r.LHS.Display())
	b.WriteString("] ::= [")
	for i, A := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Display())
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar. Grammars are created with a GrammarBuilder
// and are immutable afterwards. The order of rules is significant: the LHS of
// the first rule is the start symbol, and rule serials are used as payload of
// reduce actions in parsing tables.
type Grammar struct {
	Name         string
	rules        []*Rule
	nonterminals []Symbol
	terminals    []Symbol
	byLHS        map[Symbol][]*Rule
}

// Rule returns rule no. i, or nil if i is out of range.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all rules in order.
func (g *Grammar) Rules() []*Rule {
	rules := make([]*Rule, len(g.rules))
	copy(rules, g.rules)
	return rules
}

// RuleCount returns the number of rules.
func (g *Grammar) RuleCount() int {
	return len(g.rules)
}

// StartSymbol returns the LHS of the first rule.
func (g *Grammar) StartSymbol() Symbol {
	return g.rules[0].LHS
}

// Terminals returns the terminals of the grammar in order of appearance.
func (g *Grammar) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// Nonterminals returns the non-terminals of the grammar in order of appearance.
func (g *Grammar) Nonterminals() []Symbol {
	return append([]Symbol(nil), g.nonterminals...)
}

// EachSymbol iterates over all terminals, then all non-terminals.
func (g *Grammar) EachSymbol(mapper func(A Symbol)) {
	for _, A := range g.terminals {
		mapper(A)
	}
	for _, A := range g.nonterminals {
		mapper(A)
	}
}

// HasSymbol checks if A is a terminal or non-terminal of g.
func (g *Grammar) HasSymbol(A Symbol) bool {
	switch A.Kind {
	case TerminalKind:
		return contains(g.terminals, A)
	case NonterminalKind:
		return contains(g.nonterminals, A)
	case EpsilonKind, EndMarkerKind:
		return false
	}
	return false
}

// SymbolByName finds a terminal or non-terminal by name.
func (g *Grammar) SymbolByName(name string) (Symbol, bool) {
	for _, A := range g.nonterminals {
		if A.Name == name {
			return A, true
		}
	}
	for _, A := range g.terminals {
		if A.Name == name {
			return A, true
		}
	}
	return Symbol{}, false
}

// FindNonTermRules returns all rules with LHS N, in grammar order.
func (g *Grammar) FindNonTermRules(N Symbol) []*Rule {
	return append([]*Rule(nil), g.byLHS[N]...)
}

// RulesWithRHS returns all rules with symbol A somewhere on the right hand side.
func (g *Grammar) RulesWithRHS(A Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if contains(r.rhs, A) {
			rules = append(rules, r)
		}
	}
	return rules
}

// Dump traces the grammar's rules at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("Nonterminals: %v\n", symbolNames(g.nonterminals)))
	b.WriteString(fmt.Sprintf("Terminals: %v\n", symbolNames(g.terminals)))
	b.WriteString("Production rules:\n")
	for _, r := range g.rules {
		b.WriteString(fmt.Sprintf("%3d: %s\n", r.Serial, r))
	}
	return b.String()
}

func symbolNames(syms []Symbol) []string {
	names := make([]string, len(syms))
	for i, A := range syms {
		names[i] = A.Display()
	}
	return names
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a helper for constructing grammars.
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S  ➞  A a
//    b.LHS("A").T("b").End()         // A  ➞  b
//    b.LHS("A").Epsilon()            // A  ➞  ε
//    g, err := b.Grammar()
//
// Terminals and non-terminals are collected in order of appearance.
type GrammarBuilder struct {
	name  string
	rules []*Rule
	err   error
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{name: name}
}

// RuleBuilder collects the RHS of a rule under construction.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// LHS starts a new rule with non-terminal name on the left hand side.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	if name == "" {
		gb.fail(errors.New("empty name for LHS of rule"))
	}
	return &RuleBuilder{gb: gb, lhs: N(name)}
}

// N appends a non-terminal to the RHS.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	return rb.Sym(N(name))
}

// T appends a terminal to the RHS.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	return rb.Sym(T(name))
}

// Sym appends an arbitrary symbol to the RHS. Epsilon is only valid as the single
// RHS symbol; the end-marker is never valid.
func (rb *RuleBuilder) Sym(A Symbol) *RuleBuilder {
	switch A.Kind {
	case TerminalKind, NonterminalKind:
		if A.Name == "" {
			rb.gb.fail(fmt.Errorf("empty symbol name in rule for %s", rb.lhs.Display()))
		}
	case EpsilonKind:
	case EndMarkerKind:
		rb.gb.fail(fmt.Errorf("end-marker not allowed in rule for %s", rb.lhs.Display()))
	}
	rb.rhs = append(rb.rhs, A)
	return rb
}

// Epsilon ends an epsilon-rule A ➞ ε.
func (rb *RuleBuilder) Epsilon() *Rule {
	if len(rb.rhs) > 0 {
		rb.gb.fail(fmt.Errorf("epsilon must be the only RHS symbol in rule for %s", rb.lhs.Display()))
	}
	rb.rhs = []Symbol{Epsilon}
	return rb.End()
}

// End ends a rule and adds it to the grammar under construction.
func (rb *RuleBuilder) End() *Rule {
	if len(rb.rhs) == 0 {
		rb.gb.fail(fmt.Errorf("empty RHS in rule for %s; use Epsilon()", rb.lhs.Display()))
	}
	if len(rb.rhs) > 1 && contains(rb.rhs, Epsilon) {
		rb.gb.fail(fmt.Errorf("epsilon must be the only RHS symbol in rule for %s", rb.lhs.Display()))
	}
	r := &Rule{
		Serial: len(rb.gb.rules),
		LHS:    rb.lhs,
		rhs:    append([]Symbol(nil), rb.rhs...),
	}
	rb.gb.rules = append(rb.gb.rules, r)
	return r
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		gb.err = err
	}
}

// Grammar returns the grammar built so far. It checks the invariants of a
// grammar and returns an error if the rules do not form a well-formed grammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", gb.name)
	}
	g := &Grammar{
		Name:  gb.name,
		rules: append([]*Rule(nil), gb.rules...),
		byLHS: make(map[Symbol][]*Rule),
	}
	names := make(map[string]SymbolKind)
	classify := func(A Symbol) error {
		if A.Kind != TerminalKind && A.Kind != NonterminalKind {
			return nil
		}
		if k, ok := names[A.Name]; ok {
			if k != A.Kind {
				return fmt.Errorf("symbol %q used as terminal and as non-terminal", A.Name)
			}
			return nil
		}
		names[A.Name] = A.Kind
		if A.Kind == TerminalKind {
			g.terminals = append(g.terminals, A)
		} else {
			g.nonterminals = append(g.nonterminals, A)
		}
		return nil
	}
	for _, r := range g.rules {
		if err := classify(r.LHS); err != nil {
			return nil, err
		}
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
		for _, A := range r.rhs {
			if err := classify(A); err != nil {
				return nil, err
			}
		}
	}
	for _, A := range g.nonterminals {
		if len(g.byLHS[A]) == 0 {
			tracer().Infof("non-terminal %s of grammar %s has no rules", A.Display(), g.Name)
		}
	}
	return g, nil
}
