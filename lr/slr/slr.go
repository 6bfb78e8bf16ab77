package slr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/slrkit"
	"github.com/npillmayer/slrkit/lr"
	"github.com/npillmayer/slrkit/lr/scanner"
)

// ErrEndMarkerInInput is returned if an input sequence contains the end
// marker. The parser appends it on its own.
var ErrEndMarkerInInput = errors.New("input must not contain the end marker $")

// ParsingError is returned if the parser encounters an input symbol for which
// the parsing table holds no action.
type ParsingError struct {
	Trace       *Trace       // steps performed up to the error
	State       int          // state on top of the stack
	Symbol      lr.Symbol    // offending lookahead (or LHS for a missing goto)
	Position    int          // index of the lookahead in the input
	Expected    []lr.Symbol  // symbols with an action in State
	Token       slrkit.Token // offending token, if parsing from a tokenizer
	MissingGoto bool         // the table has no goto for Symbol after a reduce
}

func (e *ParsingError) Error() string {
	if e.MissingGoto {
		return fmt.Sprintf("no goto from state %d with %s", e.State, e.Symbol.Display())
	}
	return fmt.Sprintf("syntax error at position %d: no action in state %d with %s, expected one of %v",
		e.Position, e.State, e.Symbol.Display(), names(e.Expected))
}

// Parser is an SLR(1)-parser type. Create and initialize one with slr.NewParser(...)
type Parser struct {
	G         *lr.Grammar
	table     *lr.Table
	stack     []stackitem // parser stack
	stackcap  int
	buildTree bool
	root      *Node
}

// We store pairs of state-IDs and symbols on the parse stack. The bottom
// item carries state 0 and no symbol.
type stackitem struct {
	state int         // ID of a CFSM state
	sym   lr.Symbol   // grammar symbol (terminal or non-terminal)
	span  slrkit.Span // input span over which this symbol reaches
	node  *Node       // derivation tree node, if tree building is on
}

// Option configures a parser.
type Option func(p *Parser)

// WithTreeBuilding lets the parser construct a derivation tree, available
// through Parser.Tree after a successful parse.
func WithTreeBuilding(b bool) Option {
	return func(p *Parser) {
		p.buildTree = b
	}
}

// WithStackCapacity sets the initial capacity of the parse stack.
func WithStackCapacity(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.stackcap = n
		}
	}
}

// NewParser creates an SLR(1) parser from a table generator. It returns
// lr.ErrTablesNotCreated if lrgen.CreateTables() has not succeeded before.
func NewParser(lrgen *lr.TableGenerator, opts ...Option) (*Parser, error) {
	if lrgen == nil || lrgen.Table() == nil {
		return nil, lr.ErrTablesNotCreated
	}
	return NewTableParser(lrgen.Grammar(), lrgen.Table(), opts...), nil
}

// NewTableParser creates an SLR(1) parser for a grammar and its parsing table.
func NewTableParser(g *lr.Grammar, table *lr.Table, opts ...Option) *Parser {
	p := &Parser{
		G:        g,
		table:    table,
		stackcap: 512,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tree returns the derivation tree of the last successful parse, or nil if
// tree building is off.
func (p *Parser) Tree() *Node {
	return p.root
}

// input is a lookahead for the parser: a terminal and the token it
// originates from (tokens are nil for symbol input).
type input struct {
	sym   lr.Symbol
	token slrkit.Token
	span  slrkit.Span
}

// Parse runs the parser over a sequence of terminals. The end marker $ is
// appended by the parser and must not be part of tokens.
//
// The returned trace lists the steps of the parse. If the input is not
// accepted, Parse returns a *ParsingError, holding the trace up to the
// offending symbol.
func (p *Parser) Parse(tokens []lr.Symbol) (*Trace, error) {
	in := make([]input, 0, len(tokens)+1)
	for k, A := range tokens {
		if A.IsEndMarker() {
			return nil, ErrEndMarkerInInput
		}
		in = append(in, input{sym: A, span: slrkit.Span{uint64(k), uint64(k + 1)}})
	}
	return p.run(in)
}

// ParseTokens reads tokens from a scanner until EOF and parses the resulting
// sequence of terminals. Tokens classified by the scanner (see
// scanner.TerminalToken) carry their terminal, all others are mapped with
// mapper. If mapper is nil, a token's lexeme is taken as the name of the
// terminal.
func (p *Parser) ParseTokens(scan scanner.Tokenizer, mapper scanner.Mapper) (*Trace, error) {
	var in []input
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		A := scanner.TerminalOf(token, mapper)
		tracer().Debugf("got token %q/%d from scanner, mapped to %v", token.Lexeme(), token.TokType(), A)
		if A.IsEndMarker() {
			return nil, ErrEndMarkerInInput
		}
		in = append(in, input{sym: A, token: token, span: token.Span()})
	}
	return p.run(in)
}

// run is the stack machine of the parser.
// http://www.cse.unt.edu/~sweany/CSCE3650/HANDOUTS/LRParseAlg.pdf
func (p *Parser) run(in []input) (*Trace, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.G == nil || p.table == nil {
		tracer().Errorf("SLR(1)-parser not initialized")
		return nil, lr.ErrTablesNotCreated
	}
	var end slrkit.Span
	if len(in) > 0 {
		to := in[len(in)-1].span.To()
		end = slrkit.Span{to, to}
	}
	in = append(in, input{sym: lr.EndMarker, span: end})
	p.stack = make([]stackitem, 1, p.stackcap)
	p.stack[0] = stackitem{state: 0} // push S0
	p.root = nil
	trace := &Trace{g: p.G}
	pos := 0
	for {
		la := in[pos]
		tos := p.stack[len(p.stack)-1]
		action := p.lookahead(tos.state, la.sym)
		tracer().Debugf("action(%d, %s) = %v", tos.state, la.sym.Display(), action)
		switch action.Kind {
		case lr.ShiftAction:
			trace.add(Step{Kind: ShiftStep, From: tos.state, To: action.Target, Rule: -1,
				Symbol: la.sym, Stack: p.stackString()})
			item := stackitem{state: action.Target, sym: la.sym, span: la.span}
			if p.buildTree {
				item.node = &Node{Symbol: la.sym, Rule: -1, Token: la.token, Span: la.span}
			}
			p.stack = append(p.stack, item) // push a terminal state onto stack
			pos++
		case lr.ReduceAction:
			rule := p.G.Rule(action.Target)
			trace.add(Step{Kind: ReduceStep, From: tos.state, To: -1, Rule: rule.Serial,
				Symbol: la.sym, Stack: p.stackString()})
			item := p.reduce(rule, la)
			from := p.stack[len(p.stack)-1].state
			next := p.table.Action(from, rule.LHS)
			if next.Kind != lr.GotoAction {
				tracer().Errorf("no goto from state %d with %s", from, rule.LHS)
				return trace, &ParsingError{
					Trace:       trace,
					State:       from,
					Symbol:      rule.LHS,
					Position:    pos,
					Token:       la.token,
					MissingGoto: true,
				}
			}
			trace.add(Step{Kind: GotoStep, From: from, To: next.Target, Rule: -1,
				Symbol: rule.LHS, Stack: p.stackString()})
			item.state = next.Target
			p.stack = append(p.stack, item) // push a non-terminal state onto stack
		case lr.AcceptAction:
			trace.add(Step{Kind: AcceptStep, From: tos.state, To: -1, Rule: -1,
				Symbol: la.sym, Stack: p.stackString()})
			if p.buildTree && len(p.stack) > 1 {
				p.root = p.stack[len(p.stack)-1].node
			}
			tracer().Infof("input accepted after %d steps", len(trace.Steps))
			return trace, nil
		default: // no action found
			tracer().Infof("no action in state %d with %s", tos.state, la.sym)
			return trace, &ParsingError{
				Trace:    trace,
				State:    tos.state,
				Symbol:   la.sym,
				Position: pos,
				Expected: p.table.Expected(tos.state),
				Token:    la.token,
			}
		}
	}
}

// lookahead returns the action for a lookahead symbol. Non-terminals are
// never valid lookaheads.
func (p *Parser) lookahead(state int, A lr.Symbol) lr.Action {
	if A.IsTerminal() || A.IsEndMarker() {
		return p.table.Action(state, A)
	}
	return lr.Action{Kind: lr.ErrorAction}
}

// reduce performs a reduce action for a rule
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn should be represented on the stack as states
//
//    [TOS]  Sn(Xn, span_n) ... S1(X1, span1)  ...
//
// Epsilon rules do not pop anything. reduce returns a stack item for the LHS
// without a state.
func (p *Parser) reduce(rule *lr.Rule, la input) stackitem {
	tracer().Debugf("reduce %v", rule)
	n := rule.Len()
	if rule.IsEpsilon() {
		n = 0
	}
	handle := p.stack[len(p.stack)-n:]
	var handlespan slrkit.Span
	for k, sym := range rule.RHS()[:n] {
		if handle[k].sym != sym {
			tracer().Errorf("expected %v on stack, got %v", sym, handle[k].sym)
		}
		handlespan = handlespan.Extend(handle[k].span)
	}
	if n == 0 { // epsilon was just before lookahead
		pos := la.span.From()
		handlespan = slrkit.Span{pos, pos}
	}
	item := stackitem{sym: rule.LHS, span: handlespan}
	if p.buildTree {
		node := &Node{Symbol: rule.LHS, Rule: rule.Serial, Span: handlespan}
		for _, h := range handle {
			node.Children = append(node.Children, h.node)
		}
		if n == 0 {
			node.Children = []*Node{{Symbol: lr.Epsilon, Rule: -1, Span: handlespan}}
		}
		item.node = node
	}
	p.stack = p.stack[:len(p.stack)-n] // pop handle
	return item
}

func names(syms []lr.Symbol) []string {
	n := make([]string, len(syms))
	for k, A := range syms {
		n[k] = A.Display()
	}
	return n
}
