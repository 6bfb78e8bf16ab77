package lr

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/slrkit/lr/iteratable"
)

// TODO: Improve documentation...
// https://stackoverflow.com/questions/12968048/what-is-the-closure-of-a-left-recursive-lr0-item-with-epsilon-transitions

// Closure is a closed set of LR(0) items, i.e., a state of the characteristic
// finite state machine. Items keep the order in which they were added, which
// makes construction of the canonical collection deterministic. Equality of
// closures does not depend on item order.
type Closure struct {
	ID    int // index in the canonical collection, -1 if not part of one
	items *iteratable.Set
	key   string
}

// NewClosure creates the closure of a set of seed items: for every item with
// a non-terminal A after the dot, start items for all rules of A are added,
// until no more items can be added.
func NewClosure(g *Grammar, seeds ...Item) *Closure {
	S := iteratable.NewSet(len(seeds))
	for _, i := range seeds {
		S.Add(i)
	}
	return newClosureFromSet(g, S)
}

func newClosureFromSet(g *Grammar, S *iteratable.Set) *Closure {
	C := closureSet(g, S)
	return &Closure{ID: -1, items: C, key: fingerprint(C)}
}

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing
//
// https://www.cs.bgu.ac.il/~comp151/wiki.files/ps6.html#sec-2-7-3
func closureSet(g *Grammar, S *iteratable.Set) *iteratable.Set {
	C := S.Copy() // add start items to closure
	C.IterateOnce()
	for C.Next() {
		item := C.Item().(Item)
		A, ok := item.PeekSymbol()   // get symbol A after dot
		if ok && A.IsNonTerminal() { // A is non-terminal
			for _, r := range g.FindNonTermRules(A) {
				C.Add(StartItem(r))
			}
		}
	}
	return C
}

type closureFingerprint struct {
	Items []string
}

// fingerprint hashes the sorted item keys of a closure, giving closures with
// equal item sets equal fingerprints.
func fingerprint(S *iteratable.Set) string {
	keys := make([]string, 0, S.Size())
	for _, x := range S.Values() {
		keys = append(keys, x.(Item).key())
	}
	sort.Strings(keys)
	h, err := structhash.Hash(closureFingerprint{Items: keys}, 1)
	if err != nil {
		tracer().Errorf("cannot hash closure: %v", err)
		return strings.Join(keys, "|")
	}
	return h
}

// Items returns the items of the closure in insertion order.
func (c *Closure) Items() []Item {
	vals := c.items.Values()
	items := make([]Item, len(vals))
	for k, x := range vals {
		items[k] = x.(Item)
	}
	return items
}

// Size returns the number of items.
func (c *Closure) Size() int {
	return c.items.Size()
}

// Contains checks if an item is part of the closure.
func (c *Closure) Contains(i Item) bool {
	return c.items.Contains(i)
}

// Key returns the fingerprint of the closure's item set.
func (c *Closure) Key() string {
	return c.key
}

// IsFinal is true if every item of the closure is final.
func (c *Closure) IsFinal() bool {
	for _, i := range c.Items() {
		if !i.Final() {
			return false
		}
	}
	return true
}

// FinalItems returns the final items of a closure.
func (c *Closure) FinalItems() []Item {
	var final []Item
	for _, i := range c.Items() {
		if i.Final() {
			final = append(final, i)
		}
	}
	return final
}

// Equals compares closures by their item sets.
func (c *Closure) Equals(other *Closure) bool {
	if other == nil || c.key != other.key {
		return false
	}
	return c.items.Equals(other.items)
}

// Dump is a debugging helper
func (c *Closure) Dump() {
	tracer().Debugf("--- state %03d -----------", c.ID)
	for k, i := range c.Items() {
		tracer().Debugf("[%2d] %s", k+1, i)
	}
	tracer().Debugf("-------------------------")
}

func (c *Closure) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("I%d {", c.ID))
	for k, i := range c.Items() {
		if k > 0 {
			b.WriteString(", ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(i.String())
	}
	b.WriteString(" }")
	return b.String()
}
