package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/slrkit/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	html     *string
	dot      *string
	strict   *bool
	closures *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table",
		Short:   "Generate the canonical collection and the SLR(1) parsing table of a grammar",
		Example: `  slrkit table -g expr.grammar --html table.html --dot cfsm.dot`,
		Args:    cobra.NoArgs,
		RunE:    runTable,
	}
	tableFlags.html = cmd.Flags().String("html", "", "export the parsing table to this HTML file")
	tableFlags.dot = cmd.Flags().String("dot", "", "export the CFSM to this Graphviz file")
	tableFlags.strict = cmd.Flags().Bool("strict", false, "report shadowed reductions as reduce/reduce conflicts")
	tableFlags.closures = cmd.Flags().Bool("closures", true, "print the canonical collection")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	lrgen, err := createTables(g, lr.StrictSLR(*tableFlags.strict))
	if *tableFlags.closures {
		printClosures(lrgen.CFSM())
	}
	if *tableFlags.dot != "" {
		if err := export(*tableFlags.dot, lrgen.CFSM().ToGraphViz); err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}
	printTable(lrgen.Table())
	if *tableFlags.html != "" {
		if err := export(*tableFlags.html, lrgen.ActionTableAsHTML); err != nil {
			return err
		}
	}
	pterm.Success.Printf("SLR(1) table with %d states\n", lrgen.Table().Rows())
	return nil
}

func export(filename string, write func(w io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create file %s: %w", filename, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("cannot write file %s: %w", filename, err)
	}
	tracer().Infof("Exported to %s", filename)
	return nil
}
