package lr

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/slrkit/lr/iteratable"
)

// === CFSM Construction =====================================================

// Transition is a directed edge of the CFSM, labeled with a grammar symbol.
type Transition struct {
	Symbol Symbol
	From   int
	To     int
}

func (t Transition) String() string {
	return fmt.Sprintf("I%d --%s--> I%d", t.From, t.Symbol.Display(), t.To)
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram, also known as the canonical collection of LR(0) item
// sets. It will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes, or even to
// compute your own tables from it.
type CFSM struct {
	g         *Grammar               // this CFSM is for Grammar g
	augmented *Rule                  // S' ➞ S
	states    *arraylist.List        // all the states, indexed by closure ID
	byKey     map[string][]*Closure  // states by fingerprint
	edges     *arraylist.List        // all the edges between states
	gotos     map[int]map[Symbol]int // edges by source state and label
	S0        *Closure               // start state
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar) *CFSM {
	return &CFSM{
		g:         g,
		augmented: augmentedRule(g),
		states:    arraylist.New(),
		byKey:     make(map[string][]*Closure),
		edges:     arraylist.New(),
		gotos:     make(map[int]map[Symbol]int),
	}
}

// augmentedRule creates S' ➞ S for a grammar with start symbol S. The name of
// S' is S with primes appended until it does not clash with a grammar symbol.
func augmentedRule(g *Grammar) *Rule {
	S := g.StartSymbol()
	name := S.Name + "'"
	for {
		if _, clash := g.SymbolByName(name); !clash {
			break
		}
		name += "'"
	}
	return &Rule{Serial: -1, LHS: N(name), rhs: []Symbol{S}}
}

// We need this for the BFS work list. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*Closure)
	c2 := s2.(*Closure)
	return utils.IntComparator(c1.ID, c2.ID)
}

// Find a CFSM state by the contained item set.
func (c *CFSM) findState(C *Closure) *Closure {
	for _, s := range c.byKey[C.Key()] {
		if s.Equals(C) {
			return s
		}
	}
	return nil
}

// Add a state to the CFSM. Checks first if state is present.
func (c *CFSM) addState(C *Closure) (*Closure, bool) {
	if s := c.findState(C); s != nil {
		return s, false
	}
	C.ID = c.states.Size()
	c.states.Add(C)
	c.byKey[C.Key()] = append(c.byKey[C.Key()], C)
	return C, true
}

func (c *CFSM) addEdge(from, to *Closure, A Symbol) {
	c.edges.Add(Transition{Symbol: A, From: from.ID, To: to.ID})
	if c.gotos[from.ID] == nil {
		c.gotos[from.ID] = make(map[Symbol]int)
	}
	c.gotos[from.ID][A] = to.ID
}

// buildCFSM constructs the canonical collection breadth-first, starting with
// the closure of S' ➞ • S.
func buildCFSM(g *Grammar) *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	cfsm := emptyCFSM(g)
	closure0 := NewClosure(g, StartItem(cfsm.augmented))
	cfsm.S0, _ = cfsm.addState(closure0)
	cfsm.S0.Dump()
	S := treeset.NewWith(stateComparator)
	S.Add(cfsm.S0)
	for it := S.Iterator(); it.First(); it = S.Iterator() {
		s := it.Value().(*Closure)
		S.Remove(s)
		symbols, groups := groupBySymbol(s)
		for _, A := range symbols {
			gotoset := iteratable.NewSet(len(groups[A]))
			for _, i := range groups[A] {
				gotoset.Add(i.advance())
			}
			snew, isNew := cfsm.addState(newClosureFromSet(g, gotoset))
			if isNew {
				S.Add(snew)
				snew.Dump()
			}
			tracer().Debugf("goto(I%d, %s) = I%d", s.ID, A.Display(), snew.ID)
			cfsm.addEdge(s, snew, A)
		}
		tracer().Debugf("-----------------------------------------------------------------")
	}
	tracer().Infof("CFSM for grammar %s has %d states", g.Name, cfsm.Size())
	return cfsm
}

// groupBySymbol collects the non-final items of a closure by the symbol after
// their dot. Symbols are returned in order of first occurrence.
func groupBySymbol(C *Closure) ([]Symbol, map[Symbol][]Item) {
	var symbols []Symbol
	groups := make(map[Symbol][]Item)
	for _, i := range C.Items() {
		A, ok := i.PeekSymbol()
		if !ok {
			continue
		}
		if _, seen := groups[A]; !seen {
			symbols = append(symbols, A)
		}
		groups[A] = append(groups[A], i)
	}
	return symbols, groups
}

// Grammar returns the grammar the CFSM has been built for.
func (c *CFSM) Grammar() *Grammar {
	return c.g
}

// AugmentedRule returns S' ➞ S, the rule used to seed the canonical collection.
// It is not part of the grammar.
func (c *CFSM) AugmentedRule() *Rule {
	return c.augmented
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// States returns all states, in order of their IDs.
func (c *CFSM) States() []*Closure {
	states := make([]*Closure, c.states.Size())
	for k, x := range c.states.Values() {
		states[k] = x.(*Closure)
	}
	return states
}

// State returns the state with ID i, or nil.
func (c *CFSM) State(i int) *Closure {
	x, ok := c.states.Get(i)
	if !ok {
		return nil
	}
	return x.(*Closure)
}

// Transitions returns all edges of the CFSM in order of creation.
func (c *CFSM) Transitions() []Transition {
	edges := make([]Transition, c.edges.Size())
	for k, x := range c.edges.Values() {
		edges[k] = x.(Transition)
	}
	return edges
}

// TransitionsFrom returns the outgoing edges of state i.
func (c *CFSM) TransitionsFrom(i int) []Transition {
	var edges []Transition
	it := c.edges.Iterator()
	for it.Next() {
		e := it.Value().(Transition)
		if e.From == i {
			edges = append(edges, e)
		}
	}
	return edges
}

// Goto returns the target of the transition from state i over A.
func (c *CFSM) Goto(i int, A Symbol) (int, bool) {
	to, ok := c.gotos[i][A]
	return to, ok
}

// AcceptingState returns the ID of the state containing S' ➞ S •.
func (c *CFSM) AcceptingState() int {
	final := StartItem(c.augmented).advance()
	for _, s := range c.States() {
		if s.Contains(final) {
			return s.ID
		}
	}
	return -1
}

// ToGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	accept := c.AcceptingState()
	for _, s := range c.States() {
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s.ID == accept), s.ID, forGraphviz(s)))
	}
	for _, e := range c.Transitions() {
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To,
			escapeGraphviz(e.Symbol.Display())))
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func nodecolor(accept bool) string {
	if accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(C *Closure) string {
	var b bytes.Buffer
	for _, i := range C.Items() {
		b.WriteString(escapeGraphviz(i.String()))
		b.WriteString("\\l")
	}
	return b.String()
}

var graphvizEscaper = strings.NewReplacer(
	`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`)

func escapeGraphviz(s string) string {
	return graphvizEscaper.Replace(s)
}
