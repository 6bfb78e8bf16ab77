package lr

import (
	"bytes"
	"fmt"
	"io"

	"github.com/npillmayer/slrkit/lr/sparse"
)

// === Parser Actions ========================================================

// ActionKind is the kind of an entry in a parsing table.
type ActionKind int8

// Kinds of parser actions. The zero value is the error action, which is the
// content of every cell not set during table construction.
const (
	ErrorAction ActionKind = iota
	ShiftAction
	ReduceAction
	GotoAction
	AcceptAction
)

func (k ActionKind) String() string {
	switch k {
	case ErrorAction:
		return "error"
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case GotoAction:
		return "goto"
	case AcceptAction:
		return "accept"
	}
	panic(fmt.Sprintf("unknown action kind %d", int8(k)))
}

// Action is an entry of a parsing table. Target is the state to shift to or to
// go to, or the serial of the rule to reduce with. It is unused for Accept and
// Error.
type Action struct {
	Kind   ActionKind
	Target int
}

// Shift creates a shift action to state.
func Shift(state int) Action { return Action{Kind: ShiftAction, Target: state} }

// Reduce creates a reduce action for the rule with the given serial.
func Reduce(rule int) Action { return Action{Kind: ReduceAction, Target: rule} }

// Goto creates a goto action to state.
func Goto(state int) Action { return Action{Kind: GotoAction, Target: state} }

// Accept creates an accept action.
func Accept() Action { return Action{Kind: AcceptAction} }

func errorAction() Action { return Action{} }

// IsError is true for empty table cells.
func (a Action) IsError() bool {
	return a.Kind == ErrorAction
}

func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.Target)
	case ReduceAction:
		return fmt.Sprintf("r%d", a.Target)
	case GotoAction:
		return fmt.Sprintf("%d", a.Target)
	case AcceptAction:
		return "acc"
	}
	return ""
}

// === Parsing Table =========================================================

// Table is an SLR(1) parsing table. Rows are CFSM states, columns are the
// terminals of a grammar (in grammar order), followed by its non-terminals
// and the end marker. Terminal and end marker columns hold shift, reduce and
// accept actions, non-terminal columns hold goto actions.
//
// Cells are stored sparsely as pairs (kind, target). Looking up a cell is
// total: unset cells and unknown symbols yield an error action.
type Table struct {
	matrix  *sparse.IntMatrix
	columns []Symbol
	colinx  map[Symbol]int
}

func newTable(g *Grammar, rows int) *Table {
	t := &Table{colinx: make(map[Symbol]int)}
	t.columns = append(t.columns, g.Terminals()...)
	t.columns = append(t.columns, g.Nonterminals()...)
	t.columns = append(t.columns, EndMarker)
	for j, A := range t.columns {
		t.colinx[A] = j
	}
	t.matrix = sparse.NewIntMatrix(rows, len(t.columns), sparse.DefaultNullValue)
	return t
}

func (t *Table) set(row int, A Symbol, a Action) {
	j, ok := t.colinx[A]
	if !ok {
		panic(fmt.Sprintf("lr.Table.set() for unknown symbol %s", A))
	}
	t.matrix.Set(row, j, int32(a.Kind), int32(a.Target))
}

// Action returns the table cell for state row and symbol A.
func (t *Table) Action(row int, A Symbol) Action {
	j, ok := t.colinx[A]
	if !ok || row < 0 || row >= t.matrix.M() {
		return errorAction()
	}
	kind, target := t.matrix.Values(row, j)
	if kind == t.matrix.NullValue() {
		return errorAction()
	}
	return Action{Kind: ActionKind(kind), Target: int(target)}
}

// Rows returns the number of states.
func (t *Table) Rows() int {
	return t.matrix.M()
}

// Columns returns the column symbols of the table.
func (t *Table) Columns() []Symbol {
	return append([]Symbol(nil), t.columns...)
}

// Size returns the number of non-error cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Expected returns the lookahead symbols with a non-error action in state row.
func (t *Table) Expected(row int) []Symbol {
	var exp []Symbol
	t.matrix.Each(func(i, j int, kind, _ int32) {
		if i == row && !t.columns[j].IsNonTerminal() && ActionKind(kind) != ErrorAction {
			exp = append(exp, t.columns[j])
		}
	})
	return exp
}

// Equals compares two tables cell by cell.
func (t *Table) Equals(other *Table) bool {
	if other == nil || len(t.columns) != len(other.columns) {
		return false
	}
	for j, A := range t.columns {
		if other.columns[j] != A {
			return false
		}
	}
	return t.matrix.Equals(other.matrix)
}

func (t *Table) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%6s", ""))
	for _, A := range t.columns {
		b.WriteString(fmt.Sprintf("%6s", A.Display()))
	}
	b.WriteString("\n")
	for i := 0; i < t.Rows(); i++ {
		b.WriteString(fmt.Sprintf("%6s", fmt.Sprintf("I%d", i)))
		for _, A := range t.columns {
			b.WriteString(fmt.Sprintf("%6s", t.Action(i, A)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// === Table Generation ======================================================

// ShadowedReduce records a reduce action which has been overwritten by a
// reduce action for a different rule during table construction. This happens
// for states holding more than one completed item, if those items are not all
// completed, and their FOLLOW sets overlap. Grammars with shadowed reductions
// are not SLR(1), but the tables will still drive a (deterministic) parse.
type ShadowedReduce struct {
	State      int
	Symbol     Symbol
	Rule       *Rule // the overwritten reduction
	ShadowedBy *Rule // the reduction installed instead
}

func (sr ShadowedReduce) String() string {
	return fmt.Sprintf("state %d on %s: reduce %d shadowed by reduce %d",
		sr.State, sr.Symbol.Display(), sr.Rule.Serial, sr.ShadowedBy.Serial)
}

// Option configures a TableGenerator.
type Option func(lrgen *TableGenerator)

// StrictSLR makes table construction fail with a ReduceReduceConflict instead
// of recording a ShadowedReduce.
func StrictSLR(b bool) Option {
	return func(lrgen *TableGenerator) {
		lrgen.strict = b
	}
}

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G, then a FnF-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an SLR(1)-parser recognizing grammar G.
type TableGenerator struct {
	g        *Grammar
	fnf      *FnF
	dfa      *CFSM
	table    *Table
	shadowed []ShadowedReduce
	strict   bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(fnf *FnF, opts ...Option) *TableGenerator {
	lrgen := &TableGenerator{
		g:   fnf.Grammar(),
		fnf: fnf,
	}
	for _, opt := range opts {
		opt(lrgen)
	}
	return lrgen
}

// Grammar returns the grammar the tables are created for.
func (lrgen *TableGenerator) Grammar() *Grammar {
	return lrgen.g
}

// FnF returns the FIRST and FOLLOW sets the tables are based on.
func (lrgen *TableGenerator) FnF() *FnF {
	return lrgen.fnf
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		lrgen.dfa = buildCFSM(lrgen.g)
	}
	return lrgen.dfa
}

// Table returns the parsing table, or nil if CreateTables() has not yet
// been called successfully.
func (lrgen *TableGenerator) Table() *Table {
	if lrgen.table == nil {
		tracer().Errorf("tables not yet initialized")
	}
	return lrgen.table
}

// Shadowed returns the reductions overwritten during table construction.
func (lrgen *TableGenerator) Shadowed() []ShadowedReduce {
	return lrgen.shadowed
}

// CreateTables creates the parsing table for an SLR(1) parser. It returns a
// *ReduceReduceConflict or a *ShiftReduceConflict if the grammar is not SLR(1).
//
// For every state of the CFSM:
//
// - if the state consists of more than one item, all of them completed, the
//   FOLLOW sets of their LHS must not overlap;
//
// - every completed item A ➞ α • produces a reduce entry for each
//   terminal in FOLLOW(A);
//
// - every transition over a non-terminal produces a goto entry, every
//   transition over a terminal a produces a shift entry, unless a completed
//   item of the state would reduce on a;
//
// - the state holding S' ➞ S • accepts on $.
func (lrgen *TableGenerator) CreateTables() error {
	cfsm := lrgen.CFSM()
	table := newTable(lrgen.g, cfsm.Size())
	lrgen.shadowed = nil
	lrgen.table = nil
	for _, state := range cfsm.States() {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		if err := lrgen.checkReduceReduce(state); err != nil {
			return err
		}
		if err := lrgen.addReduceActions(table, state); err != nil {
			return err
		}
		if err := lrgen.addShiftAndGotoActions(table, state); err != nil {
			return err
		}
		if err := lrgen.addAcceptAction(table, state); err != nil {
			return err
		}
	}
	tracer().Infof("SLR(1) table of size %d x %d with %d entries",
		table.Rows(), len(table.columns), table.Size())
	lrgen.table = table
	return nil
}

// lookaheads returns the symbols on which a completed item reduces.
func (lrgen *TableGenerator) lookaheads(i Item) *SymbolSet {
	if i.rule == lrgen.dfa.augmented {
		return NewSymbolSet(EndMarker)
	}
	return lrgen.fnf.followOf(i.rule.LHS)
}

func (lrgen *TableGenerator) checkReduceReduce(state *Closure) error {
	if state.Size() < 2 || !state.IsFinal() {
		return nil
	}
	items := state.Items()
	conflicts := NewSymbolSet()
	for x := 0; x < len(items); x++ {
		for y := x + 1; y < len(items); y++ {
			common := lrgen.lookaheads(items[x]).Intersect(lrgen.lookaheads(items[y]))
			conflicts.AddAll(common)
		}
	}
	if conflicts.Empty() {
		return nil
	}
	tracer().Debugf("reduce/reduce conflict in state %d on %v", state.ID, conflicts)
	return &ReduceReduceConflict{
		State:      state.ID,
		Items:      items,
		Lookaheads: conflicts.Values(),
	}
}

func (lrgen *TableGenerator) addReduceActions(table *Table, state *Closure) error {
	reducers := make(map[Symbol]Item)
	for _, i := range state.FinalItems() {
		if i.rule == lrgen.dfa.augmented {
			continue
		}
		for _, la := range lrgen.fnf.followOf(i.rule.LHS).Values() {
			prev := table.Action(state.ID, la)
			if prev.Kind == ReduceAction && prev.Target != i.rule.Serial {
				if lrgen.strict {
					return &ReduceReduceConflict{
						State:      state.ID,
						Items:      []Item{reducers[la], i},
						Lookaheads: []Symbol{la},
					}
				}
				shadow := ShadowedReduce{
					State:      state.ID,
					Symbol:     la,
					Rule:       lrgen.g.Rule(prev.Target),
					ShadowedBy: i.rule,
				}
				tracer().Infof("%s", shadow)
				lrgen.shadowed = append(lrgen.shadowed, shadow)
			}
			tracer().Debugf("    creating reduce_%d action entry @ %v for %v", i.rule.Serial, la, i.rule)
			table.set(state.ID, la, Reduce(i.rule.Serial))
			reducers[la] = i
		}
	}
	return nil
}

func (lrgen *TableGenerator) addShiftAndGotoActions(table *Table, state *Closure) error {
	for _, e := range lrgen.dfa.TransitionsFrom(state.ID) {
		A := e.Symbol
		switch A.Kind {
		case NonterminalKind:
			table.set(state.ID, A, Goto(e.To))
		case TerminalKind:
			var reducing []Item
			for _, i := range state.FinalItems() {
				if i.rule != lrgen.dfa.augmented && lrgen.fnf.followOf(i.rule.LHS).Contains(A) {
					reducing = append(reducing, i)
				}
			}
			if len(reducing) > 0 {
				tracer().Debugf("shift/reduce conflict in state %d on %s", state.ID, A.Display())
				return &ShiftReduceConflict{
					State:  state.ID,
					Symbol: A,
					Items:  reducing,
				}
			}
			tracer().Debugf("    creating shift action entry --%v--> %d", A, e.To)
			table.set(state.ID, A, Shift(e.To))
		default:
			return fmt.Errorf("invalid transition label %s from state %d", A, state.ID)
		}
	}
	return nil
}

func (lrgen *TableGenerator) addAcceptAction(table *Table, state *Closure) error {
	final := StartItem(lrgen.dfa.augmented).advance()
	if !state.Contains(final) {
		return nil
	}
	if prev := table.Action(state.ID, EndMarker); prev.Kind == ReduceAction {
		var items = []Item{final}
		for _, i := range state.FinalItems() {
			if i.rule.Serial == prev.Target {
				items = append(items, i)
			}
		}
		return &ReduceReduceConflict{
			State:      state.ID,
			Items:      items,
			Lookaheads: []Symbol{EndMarker},
		}
	}
	tracer().Debugf("    creating accept action entry in state %d", state.ID)
	table.set(state.ID, EndMarker, Accept())
	return nil
}

// === Export ================================================================

// ActionTableAsHTML exports the SLR(1) parsing table in HTML-format.
func (lrgen *TableGenerator) ActionTableAsHTML(w io.Writer) error {
	if lrgen.table == nil {
		tracer().Errorf("parsing table not yet created, cannot export to HTML")
		return ErrTablesNotCreated
	}
	var b bytes.Buffer
	table := lrgen.table
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("SLR(1) table for %s, %d entries<p>", lrgen.g.Name, table.Size()))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range table.columns {
		b.WriteString(fmt.Sprintf("<td>%s</td>", html(A.Display())))
	}
	b.WriteString("</tr>\n")
	var td string // table cell
	for i := 0; i < table.Rows(); i++ {
		b.WriteString(fmt.Sprintf("<tr><td>state %d</td>\n", i))
		for _, A := range table.columns {
			if a := table.Action(i, A); a.IsError() {
				td = "&nbsp;"
			} else {
				td = a.String()
			}
			b.WriteString("<td>")
			b.WriteString(td)
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := w.Write(b.Bytes())
	return err
}

var htmlEscaper = map[rune]string{'<': "&lt;", '>': "&gt;", '&': "&amp;", '"': "&quot;"}

func html(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		if esc, ok := htmlEscaper[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
