package cyk

import (
	"fmt"

	"github.com/npillmayer/cfgparse"
)

// Node is a node of a derivation tree. It is one of
//
//     *TerminalNode   an input token
//     *UnitNode       a production A → a, with a terminal node as its child
//     *BinaryNode     a production A → B C, with two children
//
// Spans of nodes are measured in tokens, not in characters.
type Node interface {
	Symbol() string
	Span() cfgparse.Span
	isNode()
}

// TerminalNode is a leaf of a derivation tree.
type TerminalNode struct {
	Terminal string
	span     cfgparse.Span
}

// UnitNode represents the application of a unit production.
type UnitNode struct {
	LHS   string
	Child *TerminalNode
}

// BinaryNode represents the application of a production A → B C.
type BinaryNode struct {
	LHS         string
	Left, Right Node
	span        cfgparse.Span
}

// Symbol returns the terminal.
func (t *TerminalNode) Symbol() string { return t.Terminal }

// Span returns the position of the terminal within the input.
func (t *TerminalNode) Span() cfgparse.Span { return t.span }

func (t *TerminalNode) isNode() {}

func (t *TerminalNode) String() string {
	return t.Terminal
}

// Symbol returns the left-hand side of the production.
func (u *UnitNode) Symbol() string { return u.LHS }

// Span is the span of the child node.
func (u *UnitNode) Span() cfgparse.Span { return u.Child.span }

func (u *UnitNode) isNode() {}

func (u *UnitNode) String() string {
	return fmt.Sprintf("%s → %s", u.LHS, u.Child.Terminal)
}

// Symbol returns the left-hand side of the production.
func (b *BinaryNode) Symbol() string { return b.LHS }

// Span covers the spans of both children.
func (b *BinaryNode) Span() cfgparse.Span { return b.span }

func (b *BinaryNode) isNode() {}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("%s → %s %s", b.LHS, b.Left.Symbol(), b.Right.Symbol())
}

func newUnitNode(A, a string, pos int) *UnitNode {
	return &UnitNode{
		LHS: A,
		Child: &TerminalNode{
			Terminal: a,
			span:     cfgparse.Span{uint64(pos), uint64(pos + 1)},
		},
	}
}

func newBinaryNode(A string, left, right Node) *BinaryNode {
	return &BinaryNode{
		LHS:   A,
		Left:  left,
		Right: right,
		span:  left.Span().Extend(right.Span()),
	}
}

// children returns the right-hand side of a node's production.
func children(n Node) []Node {
	switch node := n.(type) {
	case *UnitNode:
		return []Node{node.Child}
	case *BinaryNode:
		return []Node{node.Left, node.Right}
	}
	return nil
}
