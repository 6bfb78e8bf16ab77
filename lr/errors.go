package lr

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrCannotSolve is returned when an item is advanced over a symbol which is
// not the symbol after its dot.
var ErrCannotSolve = errors.New("cannot advance item over symbol")

// ErrTablesNotCreated is returned when tables are requested before CreateTables().
var ErrTablesNotCreated = errors.New("parsing tables not yet created")

// LoadGrammarError is returned for malformed grammar source text.
type LoadGrammarError struct {
	Source string // name of the grammar source
	Line   int    // 1-based line number
	Text   string // offending line
	Reason string
}

func (e *LoadGrammarError) Error() string {
	return fmt.Sprintf("%s:%d: not a context-free grammar rule: %s (%q)", e.Source, e.Line, e.Reason, e.Text)
}

// GrammarShapeError reports grammars rejected by the grammar validators.
type GrammarShapeError struct {
	LeftRecursive    []*Rule  // rules with direct left recursion
	Nondeterministic []Symbol // non-terminals with alternatives sharing a symbol position
}

func (e *GrammarShapeError) Error() string {
	var b bytes.Buffer
	b.WriteString("grammar rejected:")
	for _, r := range e.LeftRecursive {
		b.WriteString(fmt.Sprintf(" left recursive rule %s;", r))
	}
	for _, A := range e.Nondeterministic {
		b.WriteString(fmt.Sprintf(" non-deterministic alternatives for %s;", A.Display()))
	}
	return b.String()
}

// ReduceReduceConflict is returned by table construction if two reductions are
// admissible under the same lookahead, i.e., the grammar is not SLR(1).
type ReduceReduceConflict struct {
	State      int      // index of the closure in the canonical collection
	Items      []Item   // the competing final items
	Lookaheads []Symbol // lookaheads admitting more than one reduction
}

func (e *ReduceReduceConflict) Error() string {
	return fmt.Sprintf("reduce/reduce conflict in state %d on %v between %s",
		e.State, symbolNames(e.Lookaheads), itemList(e.Items))
}

// ShiftReduceConflict is returned by table construction if a shift and a reduce
// are admissible under the same lookahead.
type ShiftReduceConflict struct {
	State  int    // index of the closure in the canonical collection
	Symbol Symbol // lookahead terminal
	Items  []Item // final items whose FOLLOW set contains Symbol
}

func (e *ShiftReduceConflict) Error() string {
	return fmt.Sprintf("shift/reduce conflict in state %d on %s with %s",
		e.State, e.Symbol.Display(), itemList(e.Items))
}

func itemList(items []Item) string {
	var b bytes.Buffer
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	return b.String()
}
