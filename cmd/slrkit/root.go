package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace   *string
	grammar *string
}{}

var rootCmd = &cobra.Command{
	Use:   "slrkit",
	Short: "Generate SLR(1) parsing tables from a grammar and parse with them",
	Long: `slrkit provides the following features:
- Checks a grammar and prints its FIRST and FOLLOW sets.
- Generates the canonical collection of LR(0) items and an SLR(1) parsing table.
- Parses input with the table and prints every step of the parser.
Grammars are read from a file with one rule per line, e.g.
    E->T E'
    E'->+ T E'|epsilon
Without a grammar file, a built-in expression grammar is used.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	rootFlags.grammar = rootCmd.PersistentFlags().StringP("grammar", "g", "", "grammar file path (default built-in expression grammar)")
}

// Execute runs the root command and reports errors.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// setup initializes display and logging for every sub-command.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	gtrace.SyntaxTracer.SetTraceLevel(level)
	for _, key := range []string{"slrkit.lr", "slrkit.scanner"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *rootFlags.trace)
	return nil
}
