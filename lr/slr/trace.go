package slr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/slrkit/lr"
)

// StepKind is the kind of a parser step.
type StepKind int8

// A reduce step is always followed by a goto step.
const (
	ShiftStep StepKind = iota
	ReduceStep
	GotoStep
	AcceptStep
)

func (k StepKind) String() string {
	switch k {
	case ShiftStep:
		return "SHIFT"
	case ReduceStep:
		return "REDUCE"
	case GotoStep:
		return "GOTO"
	case AcceptStep:
		return "END"
	}
	panic(fmt.Sprintf("unknown step kind %d", int8(k)))
}

// Step is a single move of the parser's stack machine.
//
// From is the state on top of the stack when the step is performed, To is the
// state pushed by a shift or goto (-1 otherwise). Rule is the serial of the
// rule for a reduce step (-1 otherwise). Symbol is the shifted terminal, the
// LHS of a goto or the lookahead of a reduce or accept step.
// Stack is the contents of the parse stack before the step.
type Step struct {
	N      int
	Kind   StepKind
	From   int
	To     int
	Rule   int
	Symbol lr.Symbol
	Stack  string
}

// Trace is the record of a parse.
type Trace struct {
	Steps []Step
	g     *lr.Grammar
}

func (t *Trace) add(step Step) {
	step.N = len(t.Steps) + 1
	t.Steps = append(t.Steps, step)
}

// Len returns the number of steps.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Steps)
}

// Accepted is true if the last step is an accept step.
func (t *Trace) Accepted() bool {
	return t.Len() > 0 && t.Steps[len(t.Steps)-1].Kind == AcceptStep
}

// Actions returns a compact form of the trace, one string per step:
//
//    S(0,5,id)    shift id from state 0 to state 5
//    R(7)         reduce with rule 7
//    G(0,3,F)     goto from state 0 to state 3 with F
//    A(1)         accept in state 1
//
func (t *Trace) Actions() []string {
	acts := make([]string, 0, t.Len())
	for _, s := range t.Steps {
		switch s.Kind {
		case ShiftStep, GotoStep:
			acts = append(acts, fmt.Sprintf("%c(%d,%d,%s)", s.Kind.String()[0], s.From, s.To,
				s.Symbol.Display()))
		case ReduceStep:
			acts = append(acts, "R("+strconv.Itoa(s.Rule)+")")
		case AcceptStep:
			acts = append(acts, "A("+strconv.Itoa(s.From)+")")
		}
	}
	return acts
}

// Lines returns a human readable form of the trace, three lines per step:
// a step header, the stack before the step and the action taken.
func (t *Trace) Lines() []string {
	lines := make([]string, 0, 3*t.Len())
	for _, s := range t.Steps {
		lines = append(lines, fmt.Sprintf("=== STEP %d ===", s.N))
		lines = append(lines, "-> STACK STATE: "+s.Stack)
		lines = append(lines, t.describe(s))
	}
	return lines
}

func (t *Trace) describe(s Step) string {
	switch s.Kind {
	case ShiftStep:
		return fmt.Sprintf("SHIFT: from %d to %d with %s", s.From, s.To, s.Symbol.Display())
	case ReduceStep:
		rule := fmt.Sprintf("%d", s.Rule)
		if t.g != nil {
			if r := t.g.Rule(s.Rule); r != nil {
				rule = r.String()
			}
		}
		return "REDUCE: use production rule " + rule
	case GotoStep:
		return fmt.Sprintf("GOTO: from %d to %d with %s", s.From, s.To, s.Symbol.Display())
	}
	return fmt.Sprintf("END: from %d to ACCEPTED with %s", s.From, s.Symbol.Display())
}

func (t *Trace) String() string {
	var b bytes.Buffer
	for _, l := range t.Lines() {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

// stackString renders the parse stack as alternating states and symbols,
// bottom first.
func (p *Parser) stackString() string {
	var b strings.Builder
	b.WriteString("[")
	for k, item := range p.stack {
		if k > 0 {
			b.WriteString(" ")
			b.WriteString(item.sym.Display())
			b.WriteString(" ")
		}
		b.WriteString(strconv.Itoa(item.state))
	}
	b.WriteString("]")
	return b.String()
}
