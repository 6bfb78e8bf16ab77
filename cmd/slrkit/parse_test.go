package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrkit/lr/slr"
)

func TestParseInputLexers(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	p, err := makeParser(false, slr.WithTreeBuilding(true))
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range []struct {
		lexer, text string
	}{
		{"go", "a + b * c"},
		{"go", "(count+n) * x"},
		{"lexmachine", "count * (x + y)"},
		{"none", "id + id * ( id )"},
	} {
		trace, err := parseInput(p, input.lexer, input.text)
		if err != nil {
			t.Errorf("expected %q to be accepted with lexer %s, got %v", input.text, input.lexer, err)
			continue
		}
		if !trace.Accepted() || p.Tree() == nil {
			t.Errorf("expected %q to be accepted with a derivation tree", input.text)
		}
	}
}

func TestParseInputErrors(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	teardown := gotestingadapter.QuickConfig(t, "slrkit.lr")
	defer teardown()
	//
	p, err := makeParser(false)
	if err != nil {
		t.Fatal(err)
	}
	_, err = parseInput(p, "go", "a + 2")
	var perr *slr.ParsingError
	if !errors.As(err, &perr) || perr.Token == nil || perr.Token.Lexeme() != "2" {
		t.Fatalf("expected number to be rejected, got %v", err)
	}
	if !strings.Contains(err.Error(), `token "2"`) {
		t.Errorf("expected error message to name the offending token, is %q", err.Error())
	}
	if _, err = parseInput(p, "none", "id id"); !errors.As(err, &perr) || perr.Position != 1 {
		t.Errorf("expected second id to be rejected, got %v", err)
	}
	if _, err = parseInput(p, "yacc", "id"); err == nil || !strings.Contains(err.Error(), "unknown lexer") {
		t.Errorf("expected unknown lexer to be reported, got %v", err)
	}
}
