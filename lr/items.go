package lr

import (
	"bytes"
	"fmt"
)

// Item is an LR(0) item: a rule with a dot marking how much of its RHS has
// been recognized.
//
//    [E] ::= [T • E']
//
// Items are values and may be used as map keys. Items of the same grammar are
// equal iff they refer to the same rule and have their dot at the same position.
type Item struct {
	rule *Rule
	dot  int
}

// StartItem returns the item for r with the dot at position 0.
func StartItem(r *Rule) Item {
	return Item{rule: r, dot: 0}
}

// Rule returns the rule of an item.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the position of the dot.
func (i Item) Dot() int {
	return i.dot
}

// Final is true if the dot is behind the last RHS symbol or in front of ε.
func (i Item) Final() bool {
	return i.dot >= len(i.rule.rhs) || i.rule.rhs[i.dot].IsEpsilon()
}

// PeekSymbol returns the symbol after the dot. ok is false for final items.
func (i Item) PeekSymbol() (A Symbol, ok bool) {
	if i.Final() {
		return Symbol{}, false
	}
	return i.rule.rhs[i.dot], true
}


// Solve returns a new item with the dot moved over A. It returns an error
// wrapping ErrCannotSolve if A is not the symbol after the dot.
func (i Item) Solve(A Symbol) (Item, error) {
	B, ok := i.PeekSymbol()
	if !ok || A != B {
		return i, fmt.Errorf("%w: %s over %s", ErrCannotSolve, i, A)
	}
	return i.advance(), nil
}

func (i Item) advance() Item {
	return Item{rule: i.rule, dot: i.dot + 1}
}

// key is a compact identity of an item, used for closure fingerprints.
func (i Item) key() string {
	return fmt.Sprintf("%d.%d", i.rule.Serial, i.dot)
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	b.WriteString(i.rule.LHS.Display())
	b.WriteString("] ::= [")
	for k, A := range i.rule.rhs {
		if k == i.dot {
			b.WriteString("• ")
		}
		b.WriteString(A.Display())
		if k < len(i.rule.rhs)-1 {
			b.WriteString(" ")
		}
	}
	if i.dot >= len(i.rule.rhs) {
		b.WriteString(" •")
	}
	b.WriteString("]")
	return b.String()
}
