package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrkit/lr"
	"github.com/npillmayer/slrkit/lr/slr"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces to the CLI's log adapter.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// The built-in grammar for expressions, free of left recursion.
const exprGrammar = `E->T E'
E'->+ T E'|epsilon
T->F T'
T'->* F T'|epsilon
F->( E )|id
`

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadGrammar reads the grammar given by flag --grammar, or the built-in one.
func loadGrammar() (*lr.Grammar, error) {
	if *rootFlags.grammar == "" {
		return lr.LoadGrammar("expressions", strings.NewReader(exprGrammar))
	}
	f, err := os.Open(*rootFlags.grammar)
	if err != nil {
		return nil, fmt.Errorf("cannot open the grammar file %s: %w", *rootFlags.grammar, err)
	}
	defer f.Close()
	return lr.LoadGrammar(*rootFlags.grammar, f)
}

// checkGrammar runs the grammar validators and prints their verdicts.
func checkGrammar(g *lr.Grammar) error {
	if lr.IsLeftRecursionFree(g) {
		pterm.Success.Println("Grammar is free of left recursion")
	}
	if lr.IsDeterministic(g) {
		pterm.Success.Println("Grammar is deterministic")
	}
	return lr.Validate(g)
}

// createTables builds the CFSM and the SLR(1) table for a grammar.
func createTables(g *lr.Grammar, opts ...lr.Option) (*lr.TableGenerator, error) {
	lrgen := lr.NewTableGenerator(lr.Analysis(g), opts...)
	if err := lrgen.CreateTables(); err != nil {
		return lrgen, err
	}
	for _, sr := range lrgen.Shadowed() {
		pterm.Warning.Println(sr.String())
	}
	return lrgen, nil
}

func printGrammar(g *lr.Grammar) {
	pterm.Info.Printf("Grammar %s\n", g.Name)
	data := pterm.TableData{{"#", "Rule"}}
	for _, r := range g.Rules() {
		data = append(data, []string{fmt.Sprintf("%d", r.Serial), r.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printRules(title string, rules []*lr.Rule) {
	pterm.Info.Println(title)
	for _, r := range rules {
		pterm.Printf("%3d: %s\n", r.Serial, r)
	}
}

func printFirstFollow(fnf *lr.FnF) {
	data := pterm.TableData{{"Non-terminal", "FIRST", "FOLLOW"}}
	for _, A := range fnf.Grammar().Nonterminals() {
		data = append(data, []string{
			A.Display(),
			symbolList(fnf.First(A)),
			symbolList(fnf.Follow(A)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printClosures(cfsm *lr.CFSM) {
	for _, s := range cfsm.States() {
		pterm.Info.Printf("I%d\n", s.ID)
		for _, i := range s.Items() {
			pterm.Printf("    %s\n", i)
		}
	}
}

func printTable(table *lr.Table) {
	header := []string{"State"}
	for _, A := range table.Columns() {
		header = append(header, A.Display())
	}
	data := pterm.TableData{header}
	for i := 0; i < table.Rows(); i++ {
		row := []string{fmt.Sprintf("%d", i)}
		for _, A := range table.Columns() {
			row = append(row, table.Action(i, A).String())
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printTrace(trace *slr.Trace, verbose bool) {
	if verbose {
		for _, line := range trace.Lines() {
			pterm.Println(line)
		}
		return
	}
	pterm.Println(strings.Join(trace.Actions(), " "))
}

func printTree(root *slr.Node) {
	if root == nil {
		return
	}
	var ll pterm.LeveledList
	root.Walk(func(n *slr.Node, depth int) bool {
		text := n.Symbol.Display()
		if n.Token != nil {
			text = fmt.Sprintf("%s %q", text, n.Token.Lexeme())
		}
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: text})
		return true
	})
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func symbolList(syms []lr.Symbol) string {
	names := make([]string, len(syms))
	for i, A := range syms {
		names[i] = A.Display()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
