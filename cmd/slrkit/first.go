package main

import (
	"fmt"

	"github.com/npillmayer/slrkit/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var firstFlags = struct {
	lhs *string
	rhs *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "first",
		Short:   "Check a grammar and print its FIRST and FOLLOW sets",
		Example: `  slrkit first -g expr.grammar --rhs E`,
		Args:    cobra.NoArgs,
		RunE:    runFirst,
	}
	firstFlags.lhs = cmd.Flags().String("lhs", "", "list the rules with this non-terminal on the left hand side")
	firstFlags.rhs = cmd.Flags().String("rhs", "", "list the rules with this symbol on the right hand side")
	rootCmd.AddCommand(cmd)
}

func runFirst(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	printGrammar(g)
	if *firstFlags.lhs != "" {
		A, ok := g.SymbolByName(*firstFlags.lhs)
		if !ok || !A.IsNonTerminal() {
			return fmt.Errorf("%s is not a non-terminal of grammar %s", *firstFlags.lhs, g.Name)
		}
		printRules(fmt.Sprintf("Rules for %s", A.Display()), g.FindNonTermRules(A))
	}
	if *firstFlags.rhs != "" {
		A, ok := g.SymbolByName(*firstFlags.rhs)
		if !ok {
			return fmt.Errorf("%s is not a symbol of grammar %s", *firstFlags.rhs, g.Name)
		}
		printRules(fmt.Sprintf("Rules with %s on the right hand side", A.Display()), g.RulesWithRHS(A))
	}
	if err := checkGrammar(g); err != nil {
		pterm.Error.Println(err.Error())
	}
	printFirstFollow(lr.Analysis(g))
	return nil
}
