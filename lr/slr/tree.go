package slr

import (
	"github.com/npillmayer/slrkit"
	"github.com/npillmayer/slrkit/lr"
)

// Node is a node of a derivation tree. Inner nodes stand for reductions and
// carry the serial of the reduced rule; leaves are terminals or ε and have
// Rule == -1.
type Node struct {
	Symbol   lr.Symbol
	Rule     int
	Children []*Node
	Token    slrkit.Token // input token for terminals, if parsed from a tokenizer
	Span     slrkit.Span
}

// IsLeaf is true for terminals and ε.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk visits the tree depth-first, parents before children, left to right.
// Returning false from visit skips the children of a node.
func (n *Node) Walk(visit func(n *Node, depth int) bool) {
	type entry struct {
		node  *Node
		depth int
	}
	stack := []entry{{n, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.node == nil || !visit(e.node, e.depth) {
			continue
		}
		for k := len(e.node.Children) - 1; k >= 0; k-- {
			stack = append(stack, entry{e.node.Children[k], e.depth + 1})
		}
	}
}

// Leaves returns the terminal leaves of the tree from left to right,
// skipping ε.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node, depth int) bool {
		if node.IsLeaf() && node.Symbol.IsTerminal() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}
