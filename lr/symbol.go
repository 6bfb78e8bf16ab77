package lr

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolKind discriminates the variants of grammar symbols.
type SymbolKind int8

// Grammar symbols are either terminals or non-terminals. Epsilon and the
// end-marker are special symbols with exactly one instance each.
const (
	TerminalKind SymbolKind = iota
	NonterminalKind
	EpsilonKind
	EndMarkerKind
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalKind:
		return "terminal"
	case NonterminalKind:
		return "non-terminal"
	case EpsilonKind:
		return "epsilon"
	case EndMarkerKind:
		return "end-marker"
	}
	panic(fmt.Sprintf("unknown symbol kind %d", k))
}

// Symbol is a grammar symbol. Symbols are values: two symbols are equal if
// they are of the same kind and carry the same name. A terminal "A" and a
// non-terminal "A" are therefore different symbols. Symbols may be used as
// map keys.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Epsilon denotes the empty word. It occurs only as the single RHS symbol of
// an epsilon-production.
var Epsilon = Symbol{Kind: EpsilonKind, Name: "epsilon"}

// EndMarker is the lookahead sentinel appended to every input.
var EndMarker = Symbol{Kind: EndMarkerKind, Name: "$"}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Kind: TerminalKind, Name: name}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: NonterminalKind, Name: name}
}

// IsTerminal returns true if A is a terminal symbol (neither epsilon nor $).
func (A Symbol) IsTerminal() bool {
	return A.Kind == TerminalKind
}

// IsNonTerminal returns true if A is a non-terminal symbol.
func (A Symbol) IsNonTerminal() bool {
	return A.Kind == NonterminalKind
}

// IsEpsilon returns true if A is the epsilon symbol.
func (A Symbol) IsEpsilon() bool {
	return A.Kind == EpsilonKind
}

// IsEndMarker returns true if A is the end-marker $.
func (A Symbol) IsEndMarker() bool {
	return A.Kind == EndMarkerKind
}

// String returns a debug representation, distinguishing symbol kinds.
func (A Symbol) String() string {
	switch A.Kind {
	case TerminalKind:
		return "t:" + A.Name
	case NonterminalKind:
		return "N:" + A.Name
	case EpsilonKind:
		return "ε"
	case EndMarkerKind:
		return "$"
	}
	panic(fmt.Sprintf("symbol %q of unknown kind %d", A.Name, A.Kind))
}

// Display returns the bare name of a symbol, as it appears in grammar files.
func (A Symbol) Display() string {
	if A.Kind == EpsilonKind {
		return "ε"
	}
	return A.Name
}

var nonterminalPattern = regexp.MustCompile(`^[A-Z_']*[A-Z][A-Z_']*$`)

// IsNonterminalName checks if a name follows the convention for non-terminals:
// upper case letters, underscores and primes, with at least one letter.
func IsNonterminalName(s string) bool {
	return nonterminalPattern.MatchString(s)
}

// symbolComparator orders symbols by kind, then by name.
func symbolComparator(a, b interface{}) int {
	A, B := a.(Symbol), b.(Symbol)
	if c := utils.IntComparator(int(A.Kind), int(B.Kind)); c != 0 {
		return c
	}
	return utils.StringComparator(A.Name, B.Name)
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is a sorted set of grammar symbols, used for FIRST and FOLLOW sets.
// Iteration order is deterministic: terminals first (by name), then
// non-terminals, epsilon and $.
type SymbolSet struct {
	tree *treeset.Set
}

// NewSymbolSet creates a set containing the given symbols.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{tree: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.tree.Add(A)
	}
	return S
}

// Add inserts a symbol and returns true if the set changed.
func (S *SymbolSet) Add(A Symbol) bool {
	if S.tree.Contains(A) {
		return false
	}
	S.tree.Add(A)
	return true
}

// AddAll inserts all symbols of other, skipping the symbols in except.
// It returns true if the set changed.
func (S *SymbolSet) AddAll(other *SymbolSet, except ...Symbol) bool {
	if other == nil {
		return false
	}
	changed := false
	for _, x := range other.tree.Values() {
		A := x.(Symbol)
		if contains(except, A) {
			continue
		}
		if S.Add(A) {
			changed = true
		}
	}
	return changed
}

// Contains is a predicate for set membership.
func (S *SymbolSet) Contains(A Symbol) bool {
	if S == nil {
		return false
	}
	return S.tree.Contains(A)
}

// Size returns the number of symbols in the set.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.tree.Size()
}

// Empty is true for a set without symbols.
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the symbols of the set in sorted order.
func (S *SymbolSet) Values() []Symbol {
	if S == nil {
		return nil
	}
	vals := make([]Symbol, 0, S.tree.Size())
	for _, x := range S.tree.Values() {
		vals = append(vals, x.(Symbol))
	}
	return vals
}

// Copy returns an independent copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	C := NewSymbolSet()
	C.AddAll(S)
	return C
}

// Intersect returns a new set with the symbols contained in both S and other.
func (S *SymbolSet) Intersect(other *SymbolSet) *SymbolSet {
	I := NewSymbolSet()
	for _, A := range S.Values() {
		if other.Contains(A) {
			I.Add(A)
		}
	}
	return I
}

// Equals is true if both sets contain the same symbols.
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, A := range S.Values() {
		if !other.Contains(A) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, A := range S.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(A.Display())
	}
	b.WriteString("}")
	return b.String()
}

func contains(syms []Symbol, A Symbol) bool {
	for _, B := range syms {
		if A == B {
			return true
		}
	}
	return false
}
