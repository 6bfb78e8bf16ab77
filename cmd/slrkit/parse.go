package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/npillmayer/slrkit/lr"
	"github.com/npillmayer/slrkit/lr/scanner"
	"github.com/npillmayer/slrkit/lr/scanner/lexmach"
	"github.com/npillmayer/slrkit/lr/slr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source     *string
	lexer      *string
	tree       *bool
	verbose    *bool
	skipChecks *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse [input…]",
		Short: "Parse input and print the steps of the parser",
		Example: `  slrkit parse "a + b * c"
  slrkit parse -g expr.grammar --lexer none "id + id * id"
  slrkit parse -s program.txt --lexer lexmachine --tree`,
		RunE: runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default arguments, then stdin)")
	parseFlags.lexer = cmd.Flags().String("lexer", "go", "tokenizer [go|lexmachine|none]; 'none' reads blank separated terminals")
	parseFlags.tree = cmd.Flags().Bool("tree", false, "print the derivation tree")
	parseFlags.verbose = cmd.Flags().BoolP("verbose", "v", false, "print stack states for every step")
	parseFlags.skipChecks = cmd.Flags().Bool("skip-checks", false, "do not reject left recursive or non-deterministic grammars")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	p, err := makeParser(*parseFlags.skipChecks, slr.WithTreeBuilding(*parseFlags.tree))
	if err != nil {
		return err
	}
	trace, err := parseInput(p, *parseFlags.lexer, input)
	if trace != nil {
		printTrace(trace, *parseFlags.verbose)
	}
	if err != nil {
		return err
	}
	pterm.Success.Println("Input accepted")
	if *parseFlags.tree {
		printTree(p.Tree())
	}
	return nil
}

func readInput(args []string) (string, error) {
	if *parseFlags.source != "" {
		b, err := ioutil.ReadFile(*parseFlags.source)
		if err != nil {
			return "", fmt.Errorf("cannot read the source file %s: %w", *parseFlags.source, err)
		}
		return string(b), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("cannot read from stdin: %w", err)
	}
	return string(b), nil
}

// makeParser loads and checks the grammar and creates a parser for it.
func makeParser(skipChecks bool, opts ...slr.Option) (*slr.Parser, error) {
	g, err := loadGrammar()
	if err != nil {
		return nil, err
	}
	if !skipChecks {
		if err := lr.Validate(g); err != nil {
			return nil, err
		}
	}
	lrgen, err := createTables(g)
	if err != nil {
		return nil, err
	}
	return slr.NewParser(lrgen, opts...)
}

// parseInput tokenizes input with the selected lexer and runs the parser.
func parseInput(p *slr.Parser, lexer string, input string) (*slr.Trace, error) {
	var trace *slr.Trace
	var err error
	switch lexer {
	case "go":
		scan := scanner.GoTokenizer("input", strings.NewReader(input),
			scanner.UnifyStrings(true), scanner.ForGrammar(p.G))
		scan.SetErrorHandler(func(e error) { pterm.Error.Println(e.Error()) })
		trace, err = p.ParseTokens(scan, nil)
	case "lexmachine":
		lm, e := lexmach.ForGrammar(p.G)
		if e != nil {
			return nil, e
		}
		scan, e := lm.Scanner(input)
		if e != nil {
			return nil, e
		}
		scan.SetErrorHandler(func(e error) { pterm.Error.Println(e.Error()) })
		trace, err = p.ParseTokens(scan, nil)
	case "none":
		var terminals []lr.Symbol
		for _, name := range strings.Fields(input) {
			terminals = append(terminals, lr.T(name))
		}
		trace, err = p.Parse(terminals)
	default:
		return nil, fmt.Errorf("unknown lexer %q, use one of go, lexmachine or none", lexer)
	}
	var perr *slr.ParsingError
	if errors.As(err, &perr) && perr.Token != nil {
		err = fmt.Errorf("%w (token %q at %v)", err, perr.Token.Lexeme(), perr.Token.Span())
	}
	return trace, err
}
