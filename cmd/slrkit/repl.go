package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/slrkit/lr/slr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	lexer *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse input lines interactively",
		Long: `repl reads input lines and parses each of them.
Lines starting with ':' are commands:
    :tree      toggle printing of derivation trees
    :verbose   toggle printing of stack states
    :quit      leave
Quit with <ctrl>D as well.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	replFlags.lexer = cmd.Flags().String("lexer", "go", "tokenizer [go|lexmachine|none]")
	rootCmd.AddCommand(cmd)
}

// Intp is our interpreter object
type Intp struct {
	parser  *slr.Parser
	repl    *readline.Instance
	tree    bool
	verbose bool
}

func runREPL(cmd *cobra.Command, args []string) error {
	p, err := makeParser(false, slr.WithTreeBuilding(true))
	if err != nil {
		return err
	}
	repl, err := readline.New("slrkit> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{parser: p, repl: repl}
	pterm.Info.Printf("Welcome to slrkit, parsing with grammar %s\n", p.G.Name)
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval parses a line of input or executes a command. It returns true if
// the user wants to quit.
func (intp *Intp) Eval(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":tree":
		intp.tree = !intp.tree
		pterm.Info.Printf("tree output is %v\n", intp.tree)
		return false
	case ":verbose":
		intp.verbose = !intp.verbose
		pterm.Info.Printf("verbose output is %v\n", intp.verbose)
		return false
	}
	trace, err := parseInput(intp.parser, *replFlags.lexer, line)
	if trace != nil {
		printTrace(trace, intp.verbose)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	pterm.Success.Println("accepted")
	if intp.tree {
		printTree(intp.parser.Tree())
	}
	return false
}
